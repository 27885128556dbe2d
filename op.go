package indexed

// Seal restricts who may call the mutation methods of an Index.
//
// Only a Collection can mint a Seal; indexes and combinators forward the
// one they were handed. This keeps application code from mutating an
// index out-of-band and desynchronizing it from the record store.
//
// Composite indexes implemented outside this module receive a Seal as an
// opaque value and pass it through to their inner indexes.
type Seal interface {
	seal()
}

type sealToken struct{}

func (sealToken) seal() {}

// UnsafeSeal mints a Seal outside of a Collection.
//
// Intended for testing custom Index implementations by driving them
// directly. Using it to mutate an index attached to a live Collection
// breaks the consistency guarantees.
func UnsafeSeal() Seal { return sealToken{} }

// Insert describes a record that did not exist before and now exists.
//
// New points into the mutation call frame; it is valid only for the
// duration of the Insert call and must not be retained.
type Insert[In any] struct {
	Key Key
	New *In
}

// Update describes a record changing value. Existing is the pre-image,
// still present in the store at call time.
type Update[In any] struct {
	Key      Key
	New      *In
	Existing *In
}

// Remove describes a record about to be deleted; Existing is still valid
// during the call.
type Remove[In any] struct {
	Key      Key
	Existing *In
}

// Index is the contract every index implements, leaf or composite.
//
// An index's state must be a pure function of the sequence of operations
// applied to it. Indexes hold derived lookup structures keyed by Key;
// they never own record data beyond the duration of a single call.
type Index[In any] interface {
	Insert(s Seal, op Insert[In])
	Update(s Seal, op Update[In])
	Remove(s Seal, op Remove[In])
}

// UpdateAsRemoveInsert forwards an update as a remove of the old value
// followed by an insert of the new one.
//
// This is the default decomposition: an index that has no cheaper update
// path calls it from its Update method and only needs correct Insert and
// Remove implementations.
func UpdateAsRemoveInsert[In any](ix Index[In], s Seal, op Update[In]) {
	ix.Remove(s, Remove[In]{Key: op.Key, Existing: op.Existing})
	ix.Insert(s, Insert[In]{Key: op.Key, New: op.New})
}
