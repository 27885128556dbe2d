// Package strkey provides lexicographic string bound helpers shared by
// the ordered indexes.
package strkey

// PrefixSuccessor returns the least string greater than every string
// with the given prefix, forming the exclusive upper bound of the
// half-open range that starts-with queries scan. ok is false when no
// such bound exists (empty prefix, or a prefix of only 0xff bytes),
// meaning the scan is unbounded above.
func PrefixSuccessor(prefix string) (string, bool) {
	b := []byte(prefix)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] != 0xff {
			b[i]++
			return string(b[:i+1]), true
		}
	}
	return "", false
}
