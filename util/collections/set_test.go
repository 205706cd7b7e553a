package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	set := NewSet(1, 2, 3)
	assert.True(t, set.Contains(2))

	set.Remove(2)
	assert.False(t, set.Contains(2))
	set.Remove(42)
	assert.Len(t, set, 2)

	intersection := set.Intersection(NewSet(3, 4))
	assert.Equal(t, NewSet(3), intersection)
}
