// Package corpus holds example types for exercising the regularity
// checker: types that are regular, and types that each break one rule.
//
// Entries whose name starts with "Irregular" are expected to fail and
// record which property they violate.
package corpus

import (
	"github.com/alexshd/regular"
)

// Entry is one example type with a pair of distinct sample values.
type Entry struct {
	Name string

	// Want is the property the check must report, or regular.PropertyNone
	// for a regular type.
	Want regular.Property

	Check  func(opts ...regular.Option) regular.Result
	Expect func(t regular.TestingT, opts ...regular.Option) bool
	Assert func(t regular.TestingT, opts ...regular.Option)
}

// newEntry describes a type through build, which returns fresh example
// values and the operations of their type. build is called once per
// check, so a broken type cannot leak corrupted values from one run into
// the next.
func newEntry[T any](name string, want regular.Property, label1, label2 string, build func() (T, T, regular.Ops[T])) Entry {
	options := func(ops regular.Ops[T], extra []regular.Option) []regular.Option {
		return append([]regular.Option{
			regular.WithLabels(label1, label2),
			regular.WithOps(ops),
		}, extra...)
	}

	return Entry{
		Name: name,
		Want: want,
		Check: func(opts ...regular.Option) regular.Result {
			v1, v2, ops := build()
			return regular.Check(v1, v2, options(ops, opts)...)
		},
		Expect: func(t regular.TestingT, opts ...regular.Option) bool {
			v1, v2, ops := build()
			return regular.Expect(t, v1, v2, options(ops, opts)...)
		},
		Assert: func(t regular.TestingT, opts ...regular.Option) {
			v1, v2, ops := build()
			regular.Assert(t, v1, v2, options(ops, opts)...)
		},
	}
}

// Entries returns the regular types followed by the irregular ones.
func Entries() []Entry {
	return append(regularEntries(), irregularEntries()...)
}

// Lookup returns the entry with the given name.
func Lookup(name string) (Entry, bool) {
	for _, e := range Entries() {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Cases adapts every entry to a suite case that calls Expect with opts.
func Cases(opts ...regular.Option) []regular.Case {
	entries := Entries()
	cases := make([]regular.Case, 0, len(entries))
	for _, e := range entries {
		e := e
		cases = append(cases, regular.Case{
			Name: e.Name,
			Run:  func(t regular.TestingT) { e.Expect(t, opts...) },
		})
	}
	return cases
}
