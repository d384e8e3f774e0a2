package corpus

import (
	"fmt"
	"math"
	"slices"

	"github.com/alexshd/regular"
)

// Each type below carries one deliberate defect, described next to the
// operation that has it.

// Pair compares on First with == but on Second with !=.
type Pair struct {
	First, Second int
}

// Number is a plain int with custom operations.
type Number struct {
	N int
}

// Counted is seeded from a counter on value-initialization.
type Counted struct {
	N uint
}

// Vector holds its elements directly.
type Vector struct {
	Items []int
}

func (v Vector) String() string { return fmt.Sprint(v.Items) }

func vectorEqual(a, b Vector) bool { return slices.Equal(a.Items, b.Items) }

func vectorClone(src *Vector) Vector { return Vector{Items: slices.Clone(src.Items)} }

// SharedList refers to its elements through a pointer that copies may
// share.
type SharedList struct {
	data *[]int
}

func NewSharedList(items ...int) SharedList {
	c := slices.Clone(items)
	return SharedList{data: &c}
}

func (l SharedList) items() []int {
	if l.data == nil {
		return nil
	}
	return *l.data
}

func (l SharedList) String() string { return fmt.Sprint(l.items()) }

func sharedEqual(a, b SharedList) bool { return slices.Equal(a.items(), b.items()) }

func sharedNew() SharedList { return NewSharedList() }

func sharedClone(src *SharedList) SharedList { return NewSharedList(src.items()...) }

// sharedMove hands the pointer over, leaving the source without storage.
func sharedMove(src *SharedList) SharedList {
	v := *src
	src.data = nil
	return v
}

// Measurement compares with <= and >=, so NaN is never equal to itself.
type Measurement struct {
	V float64
}

func measurementEqual(a, b Measurement) bool {
	return a.V <= b.V && a.V >= b.V
}

// PatchedList assigns by applying a patch of the elements that differ.
type PatchedList struct {
	Items []int
}

func (l PatchedList) String() string { return fmt.Sprint(l.Items) }

func patchedEqual(a, b PatchedList) bool { return slices.Equal(a.Items, b.Items) }

func patchedClone(src *PatchedList) PatchedList {
	return PatchedList{Items: slices.Clone(src.Items)}
}

// patchSize counts the positions at which dst and src differ.
func patchSize(dst, src []int) int {
	n := 0
	for i := 0; i < max(len(dst), len(src)); i++ {
		if i >= len(dst) || i >= len(src) || dst[i] != src[i] {
			n++
		}
	}
	return n
}

// applyPatch rewrites dst to hold src.
//
// Defect: an empty patch is taken to mean "clear", so assigning an equal
// value wipes the target.
func applyPatch(dst *PatchedList, src []int) {
	if patchSize(dst.Items, src) == 0 {
		dst.Items = nil
		return
	}
	dst.Items = slices.Clone(src)
}

func irregularEntries() []Entry {
	return []Entry{
		newEntry("IrregularNaN", regular.EqualToSelf, "math.NaN()", "1.0",
			func() (float64, float64, regular.Ops[float64]) {
				return math.NaN(), 1.0, regular.Ops[float64]{}
			}),

		newEntry("IrregularUnequal", regular.NotUnequalToSelf, "Number{1}", "Number{2}",
			func() (Number, Number, regular.Ops[Number]) {
				equal := func(a, b Number) bool { return a.N == b.N }
				return Number{1}, Number{2}, regular.Ops[Number]{
					Equal: equal,
					// Defect: != returns the result of ==.
					NotEqual: equal,
				}
			}),

		newEntry("IrregularEqual", regular.ExamplesNotUnequal, "Pair{0, 1}", "Pair{1, 1}",
			func() (Pair, Pair, regular.Ops[Pair]) {
				return Pair{0, 1}, Pair{1, 1}, regular.Ops[Pair]{
					// Defect: == and != look at different fields.
					Equal:    func(a, b Pair) bool { return a.First == b.First },
					NotEqual: func(a, b Pair) bool { return a.Second != b.Second },
				}
			}),

		newEntry("IrregularIdenticalExamples", regular.ExamplesCompareEqual, "1", "1",
			func() (int, int, regular.Ops[int]) {
				// The type is fine; the caller broke the precondition.
				return 1, 1, regular.Ops[int]{}
			}),

		newEntry("IrregularValueInitialization", regular.ValueInitialization, "Counted{0}", "Counted{math.MaxUint}",
			func() (Counted, Counted, regular.Ops[Counted]) {
				var next uint
				return Counted{0}, Counted{math.MaxUint}, regular.Ops[Counted]{
					// Defect: every new value takes the next number.
					New: func() Counted {
						next++
						return Counted{next}
					},
				}
			}),

		newEntry("IrregularCopyConstruction", regular.CopyConstruction, "Number{1}", "Number{2}",
			func() (Number, Number, regular.Ops[Number]) {
				return Number{1}, Number{2}, regular.Ops[Number]{
					// Defect: the copy does not take any data from its source.
					Copy:       func(*Number) Number { return Number{} },
					Move:       func(src *Number) Number { return *src },
					CopyAssign: func(dst, src *Number) { *dst = *src },
					MoveAssign: func(dst, src *Number) { *dst = *src },
				}
			}),

		newEntry("IrregularMoveConstruction", regular.MoveConstruction, "Vector{1}", "Vector{0, 1, 2}",
			func() (Vector, Vector, regular.Ops[Vector]) {
				return Vector{[]int{1}}, Vector{[]int{0, 1, 2}}, regular.Ops[Vector]{
					Equal: vectorEqual,
					Copy:  vectorClone,
					// Defect: the move does not take any data from its source.
					Move:       func(*Vector) Vector { return Vector{} },
					CopyAssign: func(dst, src *Vector) { *dst = vectorClone(src) },
					MoveAssign: func(dst, src *Vector) { *dst = *src },
				}
			}),

		newEntry("IrregularIncompleteCopyAssignment", regular.CopyAssignment, "Number{1}", "Number{2}",
			func() (Number, Number, regular.Ops[Number]) {
				return Number{1}, Number{2}, regular.Ops[Number]{
					// Defect: copy-assignment leaves the target as it was.
					CopyAssign: func(dst, src *Number) {},
				}
			}),

		newEntry("IrregularSourceModifyingAssignment", regular.CopyAssignmentSourcePreserved, "Number{1}", "Number{2}",
			func() (Number, Number, regular.Ops[Number]) {
				return Number{1}, Number{2}, regular.Ops[Number]{
					// Defect: copy-assignment resets its source.
					CopyAssign: func(dst, src *Number) {
						dst.N = src.N
						src.N = 0
					},
				}
			}),

		newEntry("IrregularMoveAssignment", regular.MoveAssignment, "Vector{1}", "Vector{0, 1, 2}",
			func() (Vector, Vector, regular.Ops[Vector]) {
				return Vector{[]int{1}}, Vector{[]int{0, 1, 2}}, regular.Ops[Vector]{
					Equal: vectorEqual,
					Copy:  vectorClone,
					// Defect: move-assignment leaves the target as it was.
					MoveAssign: func(dst, src *Vector) {},
				}
			}),

		newEntry("IrregularShallowCopyConstruction", regular.CopyConstructionIndependence, "NewSharedList(1)", "NewSharedList(0, 1, 2)",
			func() (SharedList, SharedList, regular.Ops[SharedList]) {
				return NewSharedList(1), NewSharedList(0, 1, 2), regular.Ops[SharedList]{
					Equal: sharedEqual,
					New:   sharedNew,
					// Defect: the copy shares storage while both assignments
					// write into the target's storage.
					Copy: func(src *SharedList) SharedList { return *src },
					Move: sharedMove,
					CopyAssign: func(dst, src *SharedList) {
						if dst.data == nil || src.data == nil {
							dst.data = src.data
							return
						}
						*dst.data = slices.Clone(*src.data)
					},
					MoveAssign: func(dst, src *SharedList) {
						if dst.data == nil || src.data == nil {
							dst.data = src.data
							return
						}
						*dst.data = slices.Clone(*src.data)
					},
				}
			}),

		newEntry("IrregularShallowCopyAssignment", regular.CopyAssignmentIndependence, "NewSharedList(1)", "NewSharedList(0, 1, 2)",
			func() (SharedList, SharedList, regular.Ops[SharedList]) {
				return NewSharedList(1), NewSharedList(0, 1, 2), regular.Ops[SharedList]{
					Equal: sharedEqual,
					New:   sharedNew,
					Copy:  sharedClone,
					Move:  sharedMove,
					// Defect: copy-assignment shares storage while
					// move-assignment writes into the target's storage.
					CopyAssign: func(dst, src *SharedList) { dst.data = src.data },
					MoveAssign: func(dst, src *SharedList) {
						if dst.data == nil || src.data == nil {
							dst.data = src.data
							return
						}
						*dst.data = *src.data
						*src.data = nil
					},
				}
			}),

		newEntry("IrregularSharedCopyAndDeepMove", regular.MoveConstruction, "NewSharedList(1)", "NewSharedList(0, 1, 2)",
			func() (SharedList, SharedList, regular.Ops[SharedList]) {
				return NewSharedList(1), NewSharedList(0, 1, 2), regular.Ops[SharedList]{
					Equal: sharedEqual,
					New:   sharedNew,
					// Defect: copies share storage, but a move empties the
					// storage it moves from, which every copy still sees.
					Copy:       func(src *SharedList) SharedList { return *src },
					CopyAssign: func(dst, src *SharedList) { dst.data = src.data },
					Move: func(src *SharedList) SharedList {
						moved := src.items()
						if src.data != nil {
							*src.data = nil
						}
						return SharedList{data: &moved}
					},
					MoveAssign: func(dst, src *SharedList) {
						moved := src.items()
						if src.data != nil {
							*src.data = nil
						}
						dst.data = &moved
					},
				}
			}),

		newEntry("IrregularSelfAssignment", regular.SelfAssignment, "NewOwnedList(1)", "NewOwnedList(0, 1, 2)",
			func() (OwnedList, OwnedList, regular.Ops[OwnedList]) {
				ops := ownedOps()
				// Defect: the target is released before reading the source,
				// which is the same object on self-assignment.
				ops.CopyAssign = func(dst, src *OwnedList) {
					dst.data = nil
					if src.data != nil {
						*dst = ownedClone(src)
					}
				}
				return NewOwnedList(1), NewOwnedList(0, 1, 2), ops
			}),

		newEntry("IrregularSelfMoveAssignment", regular.SelfMoveAssignment, "Measurement{1.0}", "Measurement{2.0}",
			func() (Measurement, Measurement, regular.Ops[Measurement]) {
				return Measurement{1.0}, Measurement{2.0}, regular.Ops[Measurement]{
					Equal: measurementEqual,
					// Defect: the target is invalidated before the source is
					// read, so self-move-assignment leaves NaN behind.
					MoveAssign: func(dst, src *Measurement) {
						dst.V = math.NaN()
						dst.V = src.V
					},
				}
			}),

		newEntry("IrregularPatchedCopyAssignment", regular.CopyAssignSameValue, "PatchedList{1}", "PatchedList{0, 1, 2}",
			func() (PatchedList, PatchedList, regular.Ops[PatchedList]) {
				return PatchedList{[]int{1}}, PatchedList{[]int{0, 1, 2}}, regular.Ops[PatchedList]{
					Equal: patchedEqual,
					Copy:  patchedClone,
					CopyAssign: func(dst, src *PatchedList) {
						if dst == src {
							return
						}
						applyPatch(dst, src.Items)
					},
				}
			}),

		newEntry("IrregularPatchedMoveAssignment", regular.MoveAssignSameValue, "PatchedList{1}", "PatchedList{0, 1, 2}",
			func() (PatchedList, PatchedList, regular.Ops[PatchedList]) {
				return PatchedList{[]int{1}}, PatchedList{[]int{0, 1, 2}}, regular.Ops[PatchedList]{
					Equal: patchedEqual,
					Copy:  patchedClone,
					MoveAssign: func(dst, src *PatchedList) {
						if dst == src {
							return
						}
						applyPatch(dst, src.Items)
						src.Items = nil
					},
				}
			}),
	}
}
