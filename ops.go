package regular

import (
	"fmt"
	"reflect"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Ops is the set of value operations the checker exercises for a type T.
//
// Go has no user-defined constructors or assignment operators, so a type
// that manages its own storage (shared buffers, owned pointers, handles)
// describes how it is copied, moved and compared here. Every field is
// optional; a nil field falls back to Go's own value semantics:
//
//	Equal       cmp.Equal, honouring an Equal(T) bool method
//	NotEqual    !Equal(a, b)
//	New         the zero value of T
//	Copy        src.Clone() when T implements Cloner[T], else *src
//	Move        Copy(src)
//	CopyAssign  *dst = Copy(src)
//	MoveAssign  *dst = Move(src)
//	Format      String() when T is a fmt.Stringer, else a spew rendering
//
// Operations receive pointers so that an implementation may alias or
// modify its source. Detecting that is the point of the exercise.
type Ops[T any] struct {
	Equal    func(a, b T) bool
	NotEqual func(a, b T) bool

	// New produces a value-initialized T.
	New func() T

	// Copy returns a new value constructed from *src. It must not modify *src.
	Copy func(src *T) T

	// Move returns a new value constructed by taking over *src. *src may be
	// left in any state that is still valid to assign to and compare.
	Move func(src *T) T

	CopyAssign func(dst, src *T)
	MoveAssign func(dst, src *T)

	Format func(v T) string
}

// Cloner is implemented by types whose copies must not share storage.
type Cloner[T any] interface {
	Clone() T
}

var spewConfig = spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// withDefaults returns a copy of o with every nil operation replaced by
// its default.
func (o Ops[T]) withDefaults() Ops[T] {
	r := o

	if r.Equal == nil {
		r.Equal = defaultEqual[T]
	}
	if r.NotEqual == nil {
		equal := r.Equal
		r.NotEqual = func(a, b T) bool { return !equal(a, b) }
	}
	if r.New == nil {
		r.New = func() T {
			var zero T
			return zero
		}
	}
	if r.Copy == nil {
		r.Copy = defaultCopy[T]
	}
	if r.Move == nil {
		r.Move = r.Copy
	}
	if r.CopyAssign == nil {
		cp := r.Copy
		r.CopyAssign = func(dst, src *T) { *dst = cp(src) }
	}
	if r.MoveAssign == nil {
		mv := r.Move
		r.MoveAssign = func(dst, src *T) { *dst = mv(src) }
	}
	if r.Format == nil {
		r.Format = defaultFormat[T]
	}

	return r
}

func defaultEqual[T any](a, b T) bool {
	return cmp.Equal(a, b,
		cmp.Exporter(func(reflect.Type) bool { return true }),
		cmpopts.EquateEmpty(),
	)
}

func defaultCopy[T any](src *T) T {
	if c, ok := any(*src).(Cloner[T]); ok && !isNilPointer(*src) {
		return c.Clone()
	}
	return *src
}

func defaultFormat[T any](v T) string {
	if s, ok := any(v).(fmt.Stringer); ok && !isNilPointer(v) {
		return s.String()
	}
	return spewConfig.Sprintf("%v", v)
}
