package regular

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpect_Passes(t *testing.T) {
	assert.True(t, Expect(t, "0123456789", "ABCDEFGHIJKLMNOPQRSTUVXWYZ"))
}

func TestExpect_LogsSuccess(t *testing.T) {
	rec := NewRecorder("TestStringIsRegular")

	ok := rec.Run(func(t TestingT) {
		Expect(t, "a", "b")
	})

	assert.True(t, ok)
	assert.Equal(t, []string{"✓ string is regular"}, rec.Logs())
}

func TestExpect_FailureIsNotFatal(t *testing.T) {
	rec := NewRecorder("TestIdentical")
	reached := false

	ok := rec.Run(func(t TestingT) {
		Expect(t, 1, 1)
		reached = true
	})

	assert.False(t, ok)
	assert.True(t, reached, "Expect must let the test continue")
	assert.False(t, rec.Stopped())

	errs := rec.Errors()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "Type expected to be regular: 'int'")
	assert.Contains(t, errs[0], "The two examples should not compare equal!")
	assert.Contains(t, errs[0], "Location: ")
	assert.Contains(t, errs[0], "assertions_test.go:")
}

func TestAssert_FailureIsFatal(t *testing.T) {
	rec := NewRecorder("TestIdentical")
	reached := false

	ok := rec.Run(func(t TestingT) {
		Assert(t, "x", "x", WithLabels(`"x"`, `"y"`))
		reached = true
	})

	assert.False(t, ok)
	assert.False(t, reached, "Assert must stop the test")
	assert.True(t, rec.Stopped())

	errs := rec.Errors()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "Type expected to be regular: 'string'")
	assert.Contains(t, errs[0], `Left operand: "x"`)
}

func TestAssert_Passes(t *testing.T) {
	rec := NewRecorder("TestIntIsRegular")
	reached := false

	ok := rec.Run(func(t TestingT) {
		Assert(t, 1, 2)
		reached = true
	})

	assert.True(t, ok)
	assert.True(t, reached)
}

func TestExpect_LocationCanBeOverridden(t *testing.T) {
	rec := NewRecorder("TestLocation")

	rec.Run(func(t TestingT) {
		Expect(t, 1, 1, WithLocation("point_test.go", 7))
	})

	errs := rec.Errors()
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "Location: point_test.go:7")
}
