package fmtxx

import (
	"math"
)

// Thunk bridges a type-erased Arg to the renderer for its kind. It
// reinterprets the inline payload as the concrete type and renders it.
type Thunk func(w Writer, a Arg, spec Spec)

// Registry maps every Kind to its Thunk. It is immutable once built and safe
// for concurrent use.
type Registry struct {
	thunks [KindCount]Thunk
}

// NewRegistry creates a registry holding the default renderers.
func NewRegistry() *Registry {
	return &Registry{thunks: defaultThunks}
}

var defaultThunks = [KindCount]Thunk{
	KindInvalid:   thunkInvalid,
	KindInt:       thunkInt,
	KindUint:      thunkUint,
	KindFloat32:   thunkFloat32,
	KindFloat64:   thunkFloat64,
	KindBool:      thunkBool,
	KindChar:      thunkChar,
	KindString:    thunkString,
	KindPointer:   thunkPointer,
	KindFormatter: thunkFormatter,
}

// Thunk returns the thunk registered for kind.
func (r *Registry) Thunk(kind Kind) Thunk {
	if kind >= KindCount {
		return thunkInvalid
	}
	return r.thunks[kind]
}

// Invoke renders a through the thunk registered for its kind.
func (r *Registry) Invoke(w Writer, a Arg, spec Spec) {
	r.Thunk(a.kind)(w, a, spec)
}

// withThunk returns a copy of r with kind mapped to thunk. The invalid and
// formatter kinds are fixed.
func (r *Registry) withThunk(kind Kind, thunk Thunk) (*Registry, error) {
	if thunk == nil {
		return nil, NewRegistryError(ErrMsgNilThunk, kind)
	}
	if kind == KindInvalid || kind == KindFormatter || kind >= KindCount {
		return nil, NewRegistryError(ErrMsgKindNotOverridden, kind)
	}
	next := &Registry{thunks: r.thunks}
	next.thunks[kind] = thunk
	return next, nil
}

func thunkInvalid(Writer, Arg, Spec) {}

func thunkInt(w Writer, a Arg, spec Spec) {
	FormatInt(w, a.Int64(), spec)
}

func thunkUint(w Writer, a Arg, spec Spec) {
	FormatUint(w, a.Uint64(), spec)
}

func thunkFloat32(w Writer, a Arg, spec Spec) {
	FormatFloat32(w, math.Float32frombits(uint32(a.num)), spec)
}

func thunkFloat64(w Writer, a Arg, spec Spec) {
	FormatFloat64(w, a.Float64(), spec)
}

func thunkBool(w Writer, a Arg, spec Spec) {
	FormatBool(w, a.Bool(), spec)
}

func thunkChar(w Writer, a Arg, spec Spec) {
	FormatChar(w, a.Rune(), spec)
}

func thunkString(w Writer, a Arg, spec Spec) {
	FormatString(w, a.Text(), spec)
}

func thunkPointer(w Writer, a Arg, spec Spec) {
	FormatPointer(w, a.Addr(), spec)
}

func thunkFormatter(w Writer, a Arg, spec Spec) {
	a.fmtr.FormatTo(w, spec)
}
