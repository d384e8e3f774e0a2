package regular

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecorder_Errorf(t *testing.T) {
	rec := NewRecorder("TestErrorf")

	ok := rec.Run(func(t TestingT) {
		t.Errorf("first %d", 1)
		t.Errorf("second")
	})

	assert.False(t, ok)
	assert.True(t, rec.Failed())
	assert.False(t, rec.Stopped())
	assert.Equal(t, []string{"first 1", "second"}, rec.Errors())
	assert.Equal(t, "TestErrorf", rec.Name())
}

func TestRecorder_FailNowStopsBody(t *testing.T) {
	rec := NewRecorder("TestFailNow")
	steps := 0

	ok := rec.Run(func(t TestingT) {
		steps++
		t.FailNow()
		steps++
	})

	assert.False(t, ok)
	assert.Equal(t, 1, steps)
	assert.True(t, rec.Stopped())
	assert.Empty(t, rec.Errors())
}

func TestRecorder_PanicIsFatalFailure(t *testing.T) {
	rec := NewRecorder("TestPanic")

	ok := rec.Run(func(TestingT) {
		panic("boom")
	})

	assert.False(t, ok)
	assert.True(t, rec.Stopped())
	assert.Equal(t, []string{"panic: boom"}, rec.Errors())
}

func TestRecorder_CleanRun(t *testing.T) {
	rec := NewRecorder("TestClean")

	assert.True(t, rec.Run(func(TestingT) {}))
	assert.False(t, rec.Failed())
	assert.Empty(t, rec.Logs())
}
