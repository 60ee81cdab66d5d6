package chain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendAndHead(t *testing.T) {
	c := New[int]()
	assert.Equal(t, 0, c.Len())
	_, ok := c.Head()
	assert.False(t, ok)

	c.Append(1)
	c.Append(2)
	c.Append(3)

	assert.Equal(t, 3, c.Len())
	head, ok := c.Head()
	assert.True(t, ok)
	assert.Equal(t, 3, *head)
}

func TestIterNewestToOldest(t *testing.T) {
	c := New[string]()
	c.Append("a")
	c.Append("b")
	c.Append("c")

	var seen []string
	it := c.Iterator()
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		seen = append(seen, *v)
	}

	assert.Equal(t, []string{"c", "b", "a"}, seen)
}

func TestIterMutationAliasesLiveStorage(t *testing.T) {
	type item struct{ n int }

	c := New[item]()
	c.Append(item{n: 1})
	c.Append(item{n: 2})

	it := c.Iterator()
	v, ok := it.Next()
	assert.True(t, ok)
	v.n = 99

	head, ok := c.Head()
	assert.True(t, ok)
	assert.Equal(t, 99, head.n)
}

func TestEmptyIterator(t *testing.T) {
	c := New[int]()
	_, ok := c.Iterator().Next()
	assert.False(t, ok)
}
