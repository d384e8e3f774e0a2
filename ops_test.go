package regular

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type cloned struct {
	items  []int
	clones *int
}

func (c cloned) Clone() cloned {
	*c.clones++
	return cloned{items: slices.Clone(c.items), clones: c.clones}
}

type version struct {
	major, minor int
}

// Equal ignores the minor version.
func (v version) Equal(o version) bool { return v.major == o.major }

func TestDefaultOps_EqualUsesEqualMethod(t *testing.T) {
	ops := Ops[version]{}.withDefaults()

	assert.True(t, ops.Equal(version{1, 2}, version{1, 3}))
	assert.False(t, ops.NotEqual(version{1, 2}, version{1, 3}))
	assert.True(t, ops.NotEqual(version{1, 2}, version{2, 2}))
}

func TestDefaultOps_EqualTreatsNilAsEmpty(t *testing.T) {
	ops := Ops[[]int]{}.withDefaults()

	assert.True(t, ops.Equal(nil, []int{}))
	assert.False(t, ops.Equal(nil, []int{0}))
}

func TestDefaultOps_CopyUsesClone(t *testing.T) {
	ops := Ops[cloned]{}.withDefaults()
	src := cloned{items: []int{1, 2}, clones: new(int)}

	c := ops.Copy(&src)
	c.items[0] = 9

	assert.Equal(t, []int{1, 2}, src.items)
	assert.Equal(t, 1, *src.clones)

	var dst cloned
	ops.CopyAssign(&dst, &src)
	assert.Equal(t, 2, *src.clones)

	ops.MoveAssign(&dst, &src)
	assert.Equal(t, 3, *src.clones, "move falls back to copy")
}

func TestDefaultOps_NewIsZeroValue(t *testing.T) {
	assert.Equal(t, version{}, Ops[version]{}.withDefaults().New())
	assert.Nil(t, Ops[*version]{}.withDefaults().New())
}

func TestDefaultOps_Format(t *testing.T) {
	assert.Equal(t, "1.5s", Ops[time.Duration]{}.withDefaults().Format(1500*time.Millisecond))
	assert.Equal(t, "[1 2 3]", Ops[[]int]{}.withDefaults().Format([]int{1, 2, 3}))
	assert.Equal(t, "<nil>", Ops[*time.Location]{}.withDefaults().Format(nil))
}

func TestWithDefaults_KeepsProvidedOperations(t *testing.T) {
	calls := 0
	ops := Ops[int]{
		Equal: func(a, b int) bool {
			calls++
			return a == b
		},
	}.withDefaults()

	assert.True(t, ops.NotEqual(1, 2), "NotEqual derives from the given Equal")
	assert.Equal(t, 1, calls)

	v := 7
	assert.Equal(t, 7, ops.Move(&v))
}
