// Package chain implements the append-only backward-linked sequence that
// the blockchain core is built on top of: O(1) append, O(1) head access,
// and newest-to-oldest iteration. It owns its elements exclusively.
package chain

// node is one link in the chain. Each node owns its data and points at its
// predecessor; there is no forward pointer, so the structure can never form
// a cycle.
type node[T any] struct {
	data T
	prev *node[T]
}

// Chain is a generic, append-only, backward-linked sequence. The zero value
// is an empty, ready-to-use chain.
type Chain[T any] struct {
	head *node[T]
	len  int
}

// New returns an empty Chain.
func New[T any]() *Chain[T] {
	return &Chain[T]{}
}

// Append adds item as the new head in O(1).
func (c *Chain[T]) Append(item T) {
	c.head = &node[T]{data: item, prev: c.head}
	c.len++
}

// Len reports the number of elements in the chain.
func (c *Chain[T]) Len() int {
	return c.len
}

// Head returns a pointer to the most recently appended element and true, or
// nil and false if the chain is empty. The pointer aliases the chain's
// storage, so mutating through it mutates the chain itself.
func (c *Chain[T]) Head() (*T, bool) {
	if c.head == nil {
		return nil, false
	}
	return &c.head.data, true
}

// Iterator returns a ChainIter that walks the chain from newest to oldest.
func (c *Chain[T]) Iterator() *ChainIter[T] {
	return &ChainIter[T]{next: c.head}
}

// ChainIter walks a Chain from newest to oldest. Next returns a pointer into
// the live chain storage (not a copy), so validator tests can tamper with
// already-appended elements in place.
type ChainIter[T any] struct {
	next *node[T]
}

// Next returns the next element (newest-to-oldest) and true, or the zero
// value and false once iteration is exhausted.
func (it *ChainIter[T]) Next() (*T, bool) {
	if it.next == nil {
		return nil, false
	}
	n := it.next
	it.next = n.prev
	return &n.data, true
}
