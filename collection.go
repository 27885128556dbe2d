package indexed

import "iter"

// Collection owns a record store and one (possibly composite) index, and
// keeps both consistent: every mutation updates the store and notifies
// the index atomically, in an order that lets the index safely observe
// both the old and the new value during the call.
//
// A Collection is not safe for concurrent use; wrap it in a lock if it
// is shared between goroutines.
type Collection[In any, Ix Index[In]] struct {
	index     Ix
	store     Store[In]
	nextKeyID uint64
	logger    *Logger
}

// New creates an empty collection around the given index value.
func New[In any, Ix Index[In]](ix Ix, opts ...Option[In]) *Collection[In, Ix] {
	o := options[In]{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.store == nil {
		o.store = NewMapStore[In]()
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}

	return &Collection[In, Ix]{
		index:  ix,
		store:  o.store,
		logger: o.logger,
	}
}

// GetByKey looks up an item by its key.
func (c *Collection[In, Ix]) GetByKey(key Key) (In, bool) {
	return c.store.Get(key)
}

// Insert adds a new item and returns its freshly allocated key. It
// cannot fail: the key is generated, so no duplicate exists.
func (c *Collection[In, Ix]) Insert(value In) Key {
	key := c.mkKey()
	c.store.Set(key, value)
	c.index.Insert(sealToken{}, Insert[In]{Key: key, New: &value})

	c.logger.Debug("insert", "key", key.Uint64())
	return key
}

// InsertAll inserts every given item in order.
func (c *Collection[In, Ix]) InsertAll(values ...In) {
	for _, v := range values {
		c.Insert(v)
	}
}

// UpdateByKey replaces (or creates) the item under key with f's result.
// f receives a pointer to the current value, or nil if the key holds
// nothing. The index observes an Update when the item existed and an
// Insert otherwise, in both cases before the store is overwritten.
func (c *Collection[In, Ix]) UpdateByKey(key Key, f func(existing *In) In) {
	existing, ok := c.store.Get(key)
	if ok {
		value := f(&existing)
		c.index.Update(sealToken{}, Update[In]{Key: key, New: &value, Existing: &existing})
		c.store.Set(key, value)
	} else {
		value := f(nil)
		c.index.Insert(sealToken{}, Insert[In]{Key: key, New: &value})
		c.store.Set(key, value)
	}

	c.logger.Debug("update", "key", key.Uint64(), "existed", ok)
}

// AdjustByKey replaces the item under key with f's result, if the key
// holds one. The index observes a single Update.
func (c *Collection[In, Ix]) AdjustByKey(key Key, f func(existing In) In) {
	existing, ok := c.store.Get(key)
	if !ok {
		return
	}
	value := f(existing)
	c.index.Update(sealToken{}, Update[In]{Key: key, New: &value, Existing: &existing})
	c.store.Set(key, value)

	c.logger.Debug("adjust", "key", key.Uint64())
}

// AdjustByKeyMut mutates the item under key in place, if the key holds
// one. The index observes a Remove of the old value followed by an
// Insert of the mutated one.
func (c *Collection[In, Ix]) AdjustByKeyMut(key Key, f func(value *In)) {
	existing, ok := c.store.Get(key)
	if !ok {
		return
	}
	c.index.Remove(sealToken{}, Remove[In]{Key: key, Existing: &existing})
	c.store.Delete(key)

	f(&existing)
	c.store.Set(key, existing)
	c.index.Insert(sealToken{}, Insert[In]{Key: key, New: &existing})

	c.logger.Debug("adjust-mut", "key", key.Uint64())
}

// DeleteByKey removes the item under key, returning it if it existed.
// The index is notified while the value is still retrievable; deleting
// an absent key is a no-op.
func (c *Collection[In, Ix]) DeleteByKey(key Key) (In, bool) {
	existing, ok := c.store.Get(key)
	if !ok {
		var zero In
		return zero, false
	}
	c.index.Remove(sealToken{}, Remove[In]{Key: key, Existing: &existing})
	c.store.Delete(key)

	c.logger.Debug("delete", "key", key.Uint64())
	return existing, true
}

// DeleteWhere deletes every record whose key the query yields and
// returns the number of records removed.
func (c *Collection[In, Ix]) DeleteWhere(f func(ix Ix) Distinct) int {
	res := f(c.index)
	affected := 0
	for _, key := range res.Keys() {
		if _, ok := c.DeleteByKey(key); ok {
			affected++
		}
	}
	return affected
}

// UpdateWhere applies g to every record whose key the query yields and
// returns the number of records updated. The Distinct requirement
// guarantees each affected record is processed exactly once.
func (c *Collection[In, Ix]) UpdateWhere(f func(ix Ix) Distinct, g func(In) In) int {
	res := f(c.index)
	affected := 0
	for _, key := range res.Keys() {
		existing, ok := c.store.Get(key)
		if !ok {
			continue
		}
		value := g(existing)
		c.index.Update(sealToken{}, Update[In]{Key: key, New: &value, Existing: &existing})
		c.store.Set(key, value)
		affected++
	}
	return affected
}

// TakeWhere deletes every record whose key the query yields and returns
// the removed records.
func (c *Collection[In, Ix]) TakeWhere(f func(ix Ix) Distinct) []In {
	res := f(c.index)
	out := make([]In, 0, res.Len())
	for _, key := range res.Keys() {
		if v, ok := c.DeleteByKey(key); ok {
			out = append(out, v)
		}
	}
	return out
}

// Len returns the number of items in the collection.
func (c *Collection[In, Ix]) Len() int { return c.store.Len() }

// IsEmpty reports whether the collection holds no items.
func (c *Collection[In, Ix]) IsEmpty() bool { return c.store.Len() == 0 }

// All iterates over all items. Order is unspecified.
func (c *Collection[In, Ix]) All() iter.Seq2[Key, In] {
	return c.store.All()
}

func (c *Collection[In, Ix]) mkKey() Key {
	k := Key{id: c.nextKeyID}
	c.nextKeyID++
	return k
}

// Query runs f against the collection's index. The closure answers in
// Keys (or values derived from them) and resolves keys to records
// through env; the result shape is whatever the closure builds, which
// keeps resolution uniform regardless of index composition depth.
func Query[In any, Ix Index[In], R any](c *Collection[In, Ix], f func(ix Ix, env Env[In]) R) R {
	return f(c.index, Env[In]{store: c.store})
}

// QueryOne resolves a single-key query to its record.
func QueryOne[In any, Ix Index[In]](c *Collection[In, Ix], f func(ix Ix) (Key, bool)) (In, bool) {
	key, ok := f(c.index)
	if !ok {
		var zero In
		return zero, false
	}
	return Env[In]{store: c.store}.MustGet(key), true
}

// QueryAll resolves a key-set query to its records.
func QueryAll[In any, Ix Index[In]](c *Collection[In, Ix], f func(ix Ix) Distinct) []In {
	return Env[In]{store: c.store}.ResolveAll(f(c.index))
}

// QueryKeys runs f against the index and returns raw keys, without
// touching the store.
func QueryKeys[In any, Ix Index[In]](c *Collection[In, Ix], f func(ix Ix) Distinct) []Key {
	return f(c.index).Keys()
}
