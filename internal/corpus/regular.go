package corpus

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/alexshd/regular"
)

// List is a slice wrapper whose copies never share elements.
type List struct {
	items []int
}

func NewList(items ...int) List { return List{items: slices.Clone(items)} }

func (l List) Clone() List          { return NewList(l.items...) }
func (l List) Equal(other List) bool { return slices.Equal(l.items, other.items) }
func (l List) String() string        { return fmt.Sprint(l.items) }

// Point has only unexported fields.
type Point struct {
	x, y int
}

// OwnedList owns its elements through a pointer, like a heap-allocated
// buffer that is freed and reallocated by hand. A nil buffer is the
// value-initialized state and the state left behind by a move.
type OwnedList struct {
	data *[]int
}

func NewOwnedList(items ...int) OwnedList {
	c := slices.Clone(items)
	return OwnedList{data: &c}
}

func (l OwnedList) String() string {
	if l.data == nil {
		return "<nil>"
	}
	return fmt.Sprint(*l.data)
}

func ownedEqual(a, b OwnedList) bool {
	return a.data == b.data ||
		(a.data != nil && b.data != nil && slices.Equal(*a.data, *b.data))
}

func ownedClone(src *OwnedList) OwnedList {
	if src.data == nil {
		return OwnedList{}
	}
	return NewOwnedList(*src.data...)
}

func ownedMove(src *OwnedList) OwnedList {
	v := *src
	src.data = nil
	return v
}

func ownedMoveAssign(dst, src *OwnedList) {
	data := src.data
	src.data = nil
	dst.data = data
}

// ownedOps copies before releasing the old buffer, so self-assignment is
// safe.
func ownedOps() regular.Ops[OwnedList] {
	return regular.Ops[OwnedList]{
		Equal: ownedEqual,
		Copy:  ownedClone,
		Move:  ownedMove,
		CopyAssign: func(dst, src *OwnedList) {
			*dst = ownedClone(src)
		},
		MoveAssign: ownedMoveAssign,
	}
}

func regularEntries() []Entry {
	return []Entry{
		newEntry("ExpectIntIsRegular", regular.PropertyNone, "1", "math.MaxInt",
			func() (int, int, regular.Ops[int]) {
				return 1, math.MaxInt, regular.Ops[int]{}
			}),
		newEntry("ExpectIntSliceIsRegular", regular.PropertyNone, "make([]int, 1)", "[]int{1, 2, 3}",
			func() ([]int, []int, regular.Ops[[]int]) {
				return make([]int, 1), []int{1, 2, 3}, regular.Ops[[]int]{}
			}),
		newEntry("ExpectStringIsRegular", regular.PropertyNone, `"0123456789"`, `"ABCDEFGHIJKLMNOPQRSTUVXWYZ"`,
			func() (string, string, regular.Ops[string]) {
				return "0123456789", "ABCDEFGHIJKLMNOPQRSTUVXWYZ", regular.Ops[string]{}
			}),
		newEntry("ExpectUnexportedFieldsAreRegular", regular.PropertyNone, "Point{1, 2}", "Point{3, 4}",
			func() (Point, Point, regular.Ops[Point]) {
				return Point{1, 2}, Point{3, 4}, regular.Ops[Point]{}
			}),
		newEntry("ExpectClonerIsRegular", regular.PropertyNone, "NewList(0)", "NewList(1, 2, 3)",
			func() (List, List, regular.Ops[List]) {
				return NewList(0), NewList(1, 2, 3), regular.Ops[List]{}
			}),
		newEntry("ExpectTimeIsRegular", regular.PropertyNone, "time.Unix(0, 0)", "time.Unix(1700000000, 0)",
			func() (time.Time, time.Time, regular.Ops[time.Time]) {
				return time.Unix(0, 0).UTC(), time.Unix(1700000000, 0).UTC(), regular.Ops[time.Time]{}
			}),
		newEntry("ExpectOwnedListIsRegular", regular.PropertyNone, "NewOwnedList(1)", "NewOwnedList(0, 1, 2)",
			func() (OwnedList, OwnedList, regular.Ops[OwnedList]) {
				return NewOwnedList(1), NewOwnedList(0, 1, 2), ownedOps()
			}),
	}
}
