package corpus_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexshd/regular"
	"github.com/alexshd/regular/internal/corpus"
)

func TestEntries_ReportTheirProperty(t *testing.T) {
	for _, e := range corpus.Entries() {
		e := e
		t.Run(e.Name, func(t *testing.T) {
			r := e.Check()

			assert.Equal(t, e.Want == regular.PropertyNone, r.Passed, r.Message)
			assert.Equal(t, e.Want, r.Violation, r.Message)

			if r.Passed {
				assert.Empty(t, r.Message)
			} else {
				assert.True(t, strings.HasPrefix(r.Message, e.Want.Description()))
			}
		})
	}
}

func TestEntries_NamesMatchPolarity(t *testing.T) {
	for _, e := range corpus.Entries() {
		irregular := strings.HasPrefix(e.Name, "Irregular")
		assert.Equal(t, irregular, e.Want != regular.PropertyNone, e.Name)
	}
}

// Every property has an example type that breaks it and nothing checked
// before it.
func TestEntries_CoverEveryProperty(t *testing.T) {
	covered := make(map[regular.Property][]string)
	for _, e := range corpus.Entries() {
		if e.Want != regular.PropertyNone {
			covered[e.Want] = append(covered[e.Want], e.Name)
		}
	}

	for _, p := range regular.Properties() {
		assert.NotEmpty(t, covered[p], "no example type violates %s", p)
	}
}

func TestEntries_Idempotent(t *testing.T) {
	for _, e := range corpus.Entries() {
		assert.Equal(t, e.Check(), e.Check(), e.Name)
	}
}

func TestScenario_Int(t *testing.T) {
	e, ok := corpus.Lookup("ExpectIntIsRegular")
	require.True(t, ok)
	e.Expect(t)
}

func TestScenario_IntSlice(t *testing.T) {
	e, ok := corpus.Lookup("ExpectIntSliceIsRegular")
	require.True(t, ok)
	e.Assert(t)
}

func TestScenario_NoOpCopyConstructor(t *testing.T) {
	e, ok := corpus.Lookup("IrregularCopyConstruction")
	require.True(t, ok)

	r := e.Check()
	require.False(t, r.Passed)
	assert.Equal(t, regular.CopyConstruction, r.Violation)
	assert.Equal(t, "corpus.Number", r.TypeName)
	assert.Contains(t, r.Message, "Failed for: Number{1}")
}

func TestScenario_SharedStorageCopy(t *testing.T) {
	e, ok := corpus.Lookup("IrregularShallowCopyConstruction")
	require.True(t, ok)

	r := e.Check()
	require.False(t, r.Passed)
	assert.Equal(t, regular.CopyConstructionIndependence, r.Violation)
	assert.Equal(t,
		"Assigning a new value to a copy-constructed object should not affect the source of the copy-construction.\n"+
			"    Failed for: NewSharedList(1)\n"+
			"    Which is: [1]",
		r.Message)
}

func TestCases_RunAsSuite(t *testing.T) {
	outcomes, err := regular.NewSuite(regular.DefaultSuiteConfig(), corpus.Cases()...).Run()
	require.NoError(t, err)
	require.Len(t, outcomes, len(corpus.Entries()))

	assert.NoError(t, regular.Verify(outcomes))

	for _, o := range outcomes {
		if o.Failed {
			require.NotEmpty(t, o.Errors, o.Name)
			assert.Contains(t, o.Errors[0], "Type expected to be regular: '", o.Name)
		}
	}
}

func TestEntries_AssertStopsOnFailure(t *testing.T) {
	e, ok := corpus.Lookup("IrregularSelfAssignment")
	require.True(t, ok)

	rec := regular.NewRecorder(e.Name)
	rec.Run(func(t regular.TestingT) { e.Assert(t) })

	assert.True(t, rec.Stopped())
	require.Len(t, rec.Errors(), 1)
	assert.Contains(t, rec.Errors()[0], "A self-assigned object must have the same value as before.")
}

func TestLookup_Unknown(t *testing.T) {
	_, ok := corpus.Lookup("NoSuchType")
	assert.False(t, ok)
}
