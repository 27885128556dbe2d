package testutil

import (
	"github.com/hupe1980/indexed"
)

// OpKind identifies the kind of operation a Recorder received.
type OpKind int

const (
	OpInsert OpKind = iota
	OpUpdate
	OpRemove
)

// Op is one recorded index operation. Values are copied out of the
// operation payload, since the pointers handed to an index are only
// valid for the duration of the call.
type Op[In any] struct {
	Kind     OpKind
	Key      indexed.Key
	New      In
	Existing In
}

// Recorder is an index that records every operation it receives, in
// order. It is used to verify the operation protocol a collection drives
// its index through.
type Recorder[In any] struct {
	ops []Op[In]
}

var _ indexed.Index[int] = (*Recorder[int])(nil)

// NewRecorder returns an empty Recorder.
func NewRecorder[In any]() *Recorder[In] {
	return &Recorder[In]{}
}

func (r *Recorder[In]) Insert(_ indexed.Seal, op indexed.Insert[In]) {
	r.ops = append(r.ops, Op[In]{Kind: OpInsert, Key: op.Key, New: *op.New})
}

func (r *Recorder[In]) Update(_ indexed.Seal, op indexed.Update[In]) {
	r.ops = append(r.ops, Op[In]{Kind: OpUpdate, Key: op.Key, New: *op.New, Existing: *op.Existing})
}

func (r *Recorder[In]) Remove(_ indexed.Seal, op indexed.Remove[In]) {
	r.ops = append(r.ops, Op[In]{Kind: OpRemove, Key: op.Key, Existing: *op.Existing})
}

// Ops returns the recorded operations in the order they were received.
func (r *Recorder[In]) Ops() []Op[In] {
	return r.ops
}

// Reset discards all recorded operations.
func (r *Recorder[In]) Reset() {
	r.ops = nil
}

func (r *Recorder[In]) ShallowClone() *Recorder[In] {
	ops := make([]Op[In], len(r.ops))
	copy(ops, r.ops)
	return &Recorder[In]{ops: ops}
}
