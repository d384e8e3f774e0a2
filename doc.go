// Package regular checks that a Go type has value semantics.
//
// # Overview
//
// A type is regular when it behaves like int: a copy equals its source
// and is independent of it, assignment replaces the target's value and
// leaves the source alone, value-initialization always produces the same
// value, and == and != agree. Types that manage their own storage (shared
// buffers, owned pointers, handles, copy-on-write) break these rules in
// subtle ways, usually by aliasing.
//
// regular demonstrates the property with two example values that compare
// unequal, and runs a fixed battery of checks over them, stopping at the
// first violation.
//
// # Quick Start
//
// Within a test:
//
//	func TestPointIsRegular(t *testing.T) {
//	    regular.Expect(t, Point{1, 2}, Point{3, 4})
//	}
//
// Expect records a non-fatal failure; Assert stops the test. Both report
// the type name, the violated property, the examples and the call site:
//
//	Type expected to be regular: 'shape.Polygon'
//	  A copy-constructed object must have a value equal to the original.
//	    Failed for: example1
//	    Which is: [{0 0} {1 0} {0 1}]
//	  Location: shape/polygon_test.go:12
//
// Use Check to evaluate without reporting:
//
//	r := regular.Check(v1, v2)
//	if !r.Passed {
//	    fmt.Println(r.Violation, r.Message)
//	}
//
// # Operations
//
// Go has no copy constructors or assignment operators, so the operations
// under test are described by an Ops value. Every field defaults to plain
// Go semantics (assignment, the zero value, cmp.Equal), with two hooks
// picked up automatically:
//
//   - an Equal(T) bool method is used for ==
//   - a Clone() T method (Cloner) is used for copies
//
// A type with explicit ownership describes it:
//
//	regular.Expect(t, a, b, regular.WithOps(regular.Ops[Buffer]{
//	    Copy:       func(src *Buffer) Buffer { return src.Clone() },
//	    Move:       func(src *Buffer) Buffer { return src.Take() },
//	    CopyAssign: func(dst, src *Buffer) { dst.CopyFrom(src) },
//	    MoveAssign: func(dst, src *Buffer) { dst.Swap(src) },
//	}))
//
// # Checks
//
// In order, for each example where it applies:
//
//   - Equal to self: v == v, and not v != v
//   - Unequal pair: the two examples compare unequal both ways
//   - Value-initialization: two new values are equal
//   - Copy and move construction reproduce the example
//   - Copy and move assignment over the other example reproduce the
//     example; copy assignment keeps its source
//   - Copy independence: overwriting a copy leaves the source alone
//   - Self-assignment keeps the value; self-move keeps v == v
//   - Assigning an equal value keeps the value
//
// The copy independence check only notices a source that turned into the
// value-initialized T, and is skipped for an example equal to that value.
//
// # Suites
//
// Suite and Recorder run assertions outside of go test and inspect the
// results. Cases named with a failure prefix ("Irregular" by default) are
// expected to fail; see examples/regularcheck.
package regular
