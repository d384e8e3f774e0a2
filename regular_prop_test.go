package regular

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestProperties_DistinctValuesOfRegularTypesPass(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	properties := gopter.NewProperties(params)

	properties.Property("int", prop.ForAll(
		func(a, b int) bool {
			return a == b || Check(a, b).Passed
		},
		gen.Int(), gen.Int(),
	))

	properties.Property("string", prop.ForAll(
		func(a, b string) bool {
			return a == b || Check(a, b).Passed
		},
		gen.AlphaString(), gen.AlphaString(),
	))

	properties.Property("[]int", prop.ForAll(
		func(a, b []int) bool {
			return slices.Equal(a, b) || Check(a, b).Passed
		},
		gen.SliceOf(gen.Int()), gen.SliceOf(gen.Int()),
	))

	properties.TestingRun(t)
}

func TestProperties_CheckIsIdempotent(t *testing.T) {
	properties := gopter.NewProperties(gopter.DefaultTestParameters())

	// A shallow type fails for most pairs; each run must say the same thing.
	properties.Property("shallow box", prop.ForAll(
		func(a, b int) bool {
			first := Check(box{intPtr(a)}, box{intPtr(b)}, WithOps(shallowBoxOps()))
			second := Check(box{intPtr(a)}, box{intPtr(b)}, WithOps(shallowBoxOps()))
			return first == second
		},
		gen.IntRange(-100, 100), gen.IntRange(-100, 100),
	))

	properties.Property("equal examples never pass", prop.ForAll(
		func(a int) bool {
			r := Check(a, a)
			return !r.Passed && r.Violation == ExamplesCompareEqual
		},
		gen.Int(),
	))

	properties.TestingRun(t)
}
