// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: original_source/src/lz/item.rs (Item<T> Raw/Ref sum type)

package lzslide

// Item is either a Raw literal run or a Ref back-reference. It is a closed
// sum type: the only implementations are Raw[T] and Ref, both in this package.
type Item[T any] interface {
	// Len returns the number of symbols this item contributes to the
	// reconstructed stream.
	Len() int

	// Start returns the item's position, start() in item.rs: 0 for a Raw,
	// and the Ref's Back distance for a Ref (our wire encoding stores a
	// back-distance rather than item.rs's absolute stream range, so this
	// is the closest Go analogue — see DESIGN.md's Open Question
	// resolution for the Back-vs-range tradeoff).
	Start() int

	isItem()
}

// Raw is a literal run of symbols. Len() is always >= 1 for an item actually
// emitted by a Factorizer, though the zero value (nil Symbols) is a valid,
// empty Item for callers constructing one by hand.
type Raw[T any] struct {
	Symbols []T
}

func (Raw[T]) isItem() {}

// Len implements Item.
func (r Raw[T]) Len() int { return len(r.Symbols) }

// Start implements Item.
func (Raw[T]) Start() int { return 0 }

// AsRaw reports whether item is a Raw[T], returning its Symbols if so.
// item.rs's as_raw() is a literal method on its Item<T>; Go has no generic
// methods, so Ref (shared, non-generically, across every Item[T]
// instantiation) cannot implement a method whose signature mentions T. This
// free function is the idiomatic Go shape for the same convenience.
func AsRaw[T any](item Item[T]) ([]T, bool) {
	r, ok := item.(Raw[T])
	if !ok {
		return nil, false
	}
	return r.Symbols, true
}

// Ref is a back-reference: copy Length symbols starting Back positions
// before the current reconstructor position. Back == 0 is reserved to tag
// Raw on the wire and is never valid on a Ref (see ErrZeroBack).
type Ref struct {
	Back   int
	Length int
}

func (Ref) isItem() {}

// Len implements Item.
func (r Ref) Len() int { return r.Length }

// Start implements Item.
func (r Ref) Start() int { return r.Back }

