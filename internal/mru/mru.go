// Package mru provides an ordered index that biases iteration toward
// recently used items. Promotion is explicit: after consuming an item
// successfully, the caller promotes it and subsequent iterations yield it
// first.
//
// An Index is owned by exactly one goroutine. It is not safe for concurrent
// use and must not be shared without external locking.
package mru

// Index holds items in most-recently-promoted-first order.
type Index[T any] struct {
	items []T
}

// New returns an Index over a copy of items, preserving their order.
func New[T any](items []T) *Index[T] {
	cp := make([]T, len(items))
	copy(cp, items)
	return &Index[T]{items: cp}
}

// Items returns the items in current order. The returned slice is owned by
// the index; callers iterate it but must not modify or retain it across a
// Promote.
func (x *Index[T]) Items() []T {
	return x.items
}

// Len returns the number of items.
func (x *Index[T]) Len() int {
	return len(x.items)
}

// Promote moves the item at position i to the front, shifting the items
// before it back by one. Positions refer to the order last returned by Items.
func (x *Index[T]) Promote(i int) {
	if i <= 0 || i >= len(x.items) {
		return
	}
	hit := x.items[i]
	copy(x.items[1:i+1], x.items[0:i])
	x.items[0] = hit
}
