package index

import (
	"strings"

	"github.com/tidwall/btree"

	"github.com/hupe1980/indexed"
)

// SuffixTree is a substring-search index over string records. Every
// suffix of every indexed string (including the empty suffix) maps to
// the set of keys whose string has that suffix, so a containment query
// reduces to a prefix scan: a string contains pattern exactly when one
// of its suffixes starts with pattern.
//
// Insert and remove cost O(len * log n), one ordered-map entry per
// suffix; queries cost O(log n) plus the size of the answer.
type SuffixTree struct {
	tr    btree.Map[string, indexed.KeySet]
	mkSet indexed.KeySetFactory
}

// NewSuffixTree creates an empty substring-search index.
func NewSuffixTree(opts ...Option) *SuffixTree {
	c := newConfig(opts)
	return &SuffixTree{mkSet: c.mkSet}
}

func (ix *SuffixTree) Insert(s indexed.Seal, op indexed.Insert[string]) {
	v := *op.New
	for i := 0; i <= len(v); i++ {
		suffix := v[i:]
		set, ok := ix.tr.Get(suffix)
		if !ok {
			set = ix.mkSet()
			ix.tr.Set(suffix, set)
		}
		set.Insert(op.Key)
	}
}

func (ix *SuffixTree) Update(s indexed.Seal, op indexed.Update[string]) {
	if *op.New == *op.Existing {
		return
	}
	indexed.UpdateAsRemoveInsert[string](ix, s, op)
}

func (ix *SuffixTree) Remove(s indexed.Seal, op indexed.Remove[string]) {
	v := *op.Existing
	for i := 0; i <= len(v); i++ {
		suffix := v[i:]
		set, ok := ix.tr.Get(suffix)
		if !ok {
			continue
		}
		set.Remove(op.Key)
		if set.IsEmpty() {
			ix.tr.Delete(suffix)
		}
	}
}

// ContainsGetAll returns the keys of all records containing pattern as a
// substring. The empty pattern matches every record; a pattern longer
// than any indexed string matches none.
func (ix *SuffixTree) ContainsGetAll(pattern string) indexed.Distinct {
	// A record containing the pattern at several positions appears under
	// several suffixes; dedupe before claiming distinctness.
	seen := make(map[indexed.Key]struct{})
	var keys []indexed.Key

	ix.tr.Ascend(pattern, func(suffix string, set indexed.KeySet) bool {
		if !strings.HasPrefix(suffix, pattern) {
			return false
		}
		for k := range set.All() {
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
		return true
	})
	return indexed.UnsafeDistinct(keys)
}

// ContainsGetOne returns the key of one record containing pattern as a
// substring.
func (ix *SuffixTree) ContainsGetOne(pattern string) (indexed.Key, bool) {
	var (
		found indexed.Key
		ok    bool
	)
	ix.tr.Ascend(pattern, func(suffix string, set indexed.KeySet) bool {
		if !strings.HasPrefix(suffix, pattern) {
			return false
		}
		for k := range set.All() {
			found, ok = k, true
			return false
		}
		return true
	})
	return found, ok
}

// ShallowClone copies the index. Cost is proportional to the number of
// distinct suffixes unless the key sets themselves clone cheaply.
func (ix *SuffixTree) ShallowClone() *SuffixTree {
	clone := &SuffixTree{mkSet: ix.mkSet}
	ix.tr.Scan(func(suffix string, set indexed.KeySet) bool {
		clone.tr.Set(suffix, set.Clone())
		return true
	})
	return clone
}

// EndsWith returns the keys of all records ending in exactly suffix.
func (ix *SuffixTree) EndsWith(suffix string) indexed.Distinct {
	set, ok := ix.tr.Get(suffix)
	if !ok {
		return indexed.Distinct{}
	}
	return set.Distinct()
}
