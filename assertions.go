package regular

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestingT is the part of *testing.T the assertions need. It is the same
// interface testify's require package accepts.
type TestingT interface {
	Errorf(format string, args ...any)
	FailNow()
}

type tHelper interface {
	Helper()
}

type tLogger interface {
	Logf(format string, args ...any)
}

// Check evaluates whether T is regular, using v1 and v2 as two examples
// that must compare unequal. It reports nothing; see Expect and Assert.
func Check[T any](v1, v2 T, opts ...Option) Result {
	return NewChecker(v1, v2, opts...).Check()
}

// Expect verifies that T is regular and records a non-fatal failure on t
// otherwise. The test keeps running. Returns whether the check passed.
//
// Example:
//
//	func TestPointIsRegular(t *testing.T) {
//	    regular.Expect(t, Point{1, 2}, Point{3, 4})
//	}
func Expect[T any](t TestingT, v1, v2 T, opts ...Option) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	opts = append([]Option{withLocation(callerLocation(1))}, opts...)
	return report(t, Check(v1, v2, opts...), false)
}

// Assert is like Expect, but stops the test with t.FailNow on failure.
func Assert[T any](t TestingT, v1, v2 T, opts ...Option) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	opts = append([]Option{withLocation(callerLocation(1))}, opts...)
	report(t, Check(v1, v2, opts...), true)
}

func withLocation(loc Location) Option {
	return func(s *settings) {
		s.location = loc
	}
}

func report(t TestingT, r Result, fatal bool) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}

	if r.Passed {
		if l, ok := t.(tLogger); ok {
			l.Logf("✓ %s is regular", r.TypeName)
		}
		return true
	}

	if fatal {
		require.Fail(t, r.Report())
		return false
	}
	return assert.Fail(t, r.Report())
}
