package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListReturnsFullTaxonomy(t *testing.T) {
	list := List()

	assert.Len(t, list, 12)
	assert.Equal(t, "tech", list[0].ID)
	assert.Equal(t, "politics", list[len(list)-1].ID)
}

func TestListReturnsCopy(t *testing.T) {
	list := List()
	list[0].Label = "mutated"

	assert.Equal(t, "Technology", List()[0].Label)
}

func TestByID(t *testing.T) {
	c, ok := ByID("gaming")
	assert.True(t, ok)
	assert.Equal(t, "Gaming", c.Label)

	_, ok = ByID("unknown")
	assert.False(t, ok)
}

func TestIsValid(t *testing.T) {
	for _, id := range IDs() {
		assert.True(t, IsValid(id))
	}
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Tech"), "lookup is case sensitive")
}
