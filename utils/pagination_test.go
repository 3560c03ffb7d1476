package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampPage(t *testing.T) {
	page, size := ClampPage(0, 0)
	assert.Equal(t, 1, page)
	assert.Equal(t, defaultPageSize, size)

	page, size = ClampPage(-3, 1000)
	assert.Equal(t, 1, page)
	assert.Equal(t, maxPageSize, size)

	page, size = ClampPage(4, 25)
	assert.Equal(t, 4, page)
	assert.Equal(t, 25, size)
}

func TestNewPage(t *testing.T) {
	p := NewPage([]int{1, 2}, 1, 2, 5)
	assert.True(t, p.HasNext)
	assert.False(t, p.HasPrev)
	assert.EqualValues(t, 5, p.Total)

	p = NewPage([]int{5}, 3, 2, 5)
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)

	p = NewPage[int](nil, 1, 2, 0)
	assert.NotNil(t, p.Items, "items serializes as [] rather than null")
	assert.Empty(t, p.Items)
}
