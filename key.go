package indexed

// Key is the unique identifier of an item in a Collection.
//
// Keys are allocated by Collection.Insert from a strictly increasing
// counter and are never reused, even after the item is deleted. They are
// comparable, ordered and cheap to copy; indexes retain Keys (never
// records) in their derived structures.
type Key struct {
	id uint64
}

// KeyFromUint64 builds a Key from a raw identifier.
//
// Only useful for tests and external stores; keys used against a
// Collection must come from that Collection's Insert.
func KeyFromUint64(id uint64) Key {
	return Key{id: id}
}

// Uint64 returns the raw identifier.
func (k Key) Uint64() uint64 { return k.id }

// Less reports whether k was allocated before other.
func (k Key) Less(other Key) bool { return k.id < other.id }
