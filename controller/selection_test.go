package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectionToggle(t *testing.T) {
	s := NewSelection()

	s = s.Toggle(3)
	assert.True(t, s.Has(3))
	assert.Equal(t, 1, s.Len())

	s = s.Toggle(3)
	assert.False(t, s.Has(3))
	assert.Equal(t, 0, s.Len())
}

func TestSelectionIsImmutable(t *testing.T) {
	base := NewSelection().Toggle(1).Toggle(2)

	added := base.SelectAll([]uint{5, 6})
	cleared := base.Clear()

	assert.Equal(t, 2, base.Len())
	assert.False(t, base.Has(5))
	assert.Equal(t, 4, added.Len())
	assert.Equal(t, 0, cleared.Len())
}

func TestSelectionSelectAllIsAdditive(t *testing.T) {
	s := NewSelection().Toggle(10)
	s = s.SelectAll([]uint{1, 2, 10})

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Has(10))
}

func TestSelectionIDsAreSorted(t *testing.T) {
	s := NewSelection().SelectAll([]uint{9, 2, 7, 1})
	assert.Equal(t, []uint{1, 2, 7, 9}, s.IDs())
}

func TestSelectionZeroValueIsUsable(t *testing.T) {
	var s Selection
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.IDs())
	assert.False(t, s.Has(1))

	s = s.Toggle(4)
	assert.True(t, s.Has(4))
}
