package index

import "fmt"

func shallowCloneInner[Ix any](inner Ix) Ix {
	sc, ok := any(inner).(interface{ ShallowClone() Ix })
	if !ok {
		panic(fmt.Sprintf("index: inner index %T does not support shallow cloning", inner))
	}
	return sc.ShallowClone()
}
