package aggregation

import (
	"math"

	"github.com/hupe1980/indexed"
)

// StdDev maintains the sample standard deviation of the indexed values
// using Welford's online algorithm: a running mean, a running sum of
// squared deviations and a sample count, updated in O(1) per operation
// with no samples retained.
//
// Because samples are not retained, removals reconstruct prior state
// from the running values; very large or high-variance streams can
// accumulate floating-point drift. That is the price of O(1) space, not
// a bug.
type StdDev[T Number] struct {
	mean      float64
	sumSqDiff float64
	count     uint64
}

// NewStdDev creates a standard-deviation aggregate.
func NewStdDev[T Number]() *StdDev[T] {
	return &StdDev[T]{}
}

func (a *StdDev[T]) Insert(s indexed.Seal, op indexed.Insert[T]) {
	x := float64(*op.New)
	a.count++

	// M_new = M_old + (x - M_old) / n
	oldMean := a.mean
	a.mean = oldMean + (x-oldMean)/float64(a.count)

	// S_new = S_old + (x - M_old) * (x - M_new)
	a.sumSqDiff += (x - oldMean) * (x - a.mean)
}

func (a *StdDev[T]) Remove(s indexed.Seal, op indexed.Remove[T]) {
	x := float64(*op.Existing)
	n := a.count

	if n <= 1 {
		a.mean = 0
		a.sumSqDiff = 0
		a.count = 0
		return
	}

	// M_new = (n * M_old - x) / (n - 1)
	oldMean := a.mean
	a.mean = (float64(n)*oldMean - x) / float64(n-1)

	// S_new = S_old - (x - M_old) * (x - M_new), clamped against drift.
	a.sumSqDiff -= (x - oldMean) * (x - a.mean)
	a.sumSqDiff = math.Max(a.sumSqDiff, 0)

	a.count = n - 1
}

func (a *StdDev[T]) Update(s indexed.Seal, op indexed.Update[T]) {
	oldVal := float64(*op.Existing)
	newVal := float64(*op.New)
	n := a.count

	if n == 0 {
		return
	}
	if n == 1 {
		a.mean = newVal
		a.sumSqDiff = 0
		return
	}

	// Remove the old sample, then add the new one, without the count
	// round-trip.
	oldMean := a.mean
	meanWithoutOld := (float64(n)*oldMean - oldVal) / float64(n-1)
	sumSqDiffWithoutOld := a.sumSqDiff - (oldVal-oldMean)*(oldVal-meanWithoutOld)

	newMean := meanWithoutOld + (newVal-meanWithoutOld)/float64(n)
	newSumSqDiff := sumSqDiffWithoutOld + (newVal-meanWithoutOld)*(newVal-newMean)

	a.mean = newMean
	a.sumSqDiff = math.Max(newSumSqDiff, 0)
}

// Value returns the sample standard deviation, or exactly 0 with fewer
// than two samples.
func (a *StdDev[T]) Value() float64 {
	if a.count < 2 {
		return 0
	}
	return math.Sqrt(a.sumSqDiff / float64(a.count-1))
}

// ShallowClone copies the aggregate; its state is O(1).
func (a *StdDev[T]) ShallowClone() *StdDev[T] {
	clone := *a
	return &clone
}
