// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo (buffer-growth/doubling-copy idiom,
// adapted from copy.go's copyBackRef); container shape cross-checked
// against the generic deque in other_examples' creachadair-mds queue.

package lzslide

import "fmt"

// Slide is an owning, contiguous sequence with amortized O(1) push-tail and
// pop-front. The zero value is an empty, ready-to-use Slide.
//
// Slide never reuses a logical position: once popped or drained, an index
// is gone for good, which is what lets SearchBuffer layer an absolute
// addressing scheme on top of it (see searchbuffer.go).
type Slide[T any] struct {
	data       []T
	start, end int
}

// Len reports the number of live elements.
func (s *Slide[T]) Len() int { return s.end - s.start }

// IsEmpty reports whether the Slide holds no elements.
func (s *Slide[T]) IsEmpty() bool { return s.start == s.end }

// Cap reports the total backing storage, live and spare.
func (s *Slide[T]) Cap() int { return len(s.data) }

func (s *Slide[T]) tailCapacity() int { return len(s.data) - s.end }

// Values returns the live region as a slice. The slice is a view into the
// Slide's backing array and is invalidated by any mutating call.
func (s *Slide[T]) Values() []T { return s.data[s.start:s.end] }

// At returns the element at logical index i.
func (s *Slide[T]) At(i int) T { return s.data[s.start+i] }

// Slice returns the live sub-range [l, r) as a view, following the same
// invalidation rules as Values.
func (s *Slide[T]) Slice(l, r int) []T { return s.data[s.start+l : s.start+r] }

// Push appends v to the tail, growing storage if needed.
func (s *Slide[T]) Push(v T) {
	if s.tailCapacity() == 0 {
		s.ensureCapacity(s.Len() + 1)
	}
	s.data[s.end] = v
	s.end++
}

// Pop removes and returns the head element, or the zero value and false if empty.
func (s *Slide[T]) Pop() (T, bool) {
	if s.IsEmpty() {
		var zero T
		return zero, false
	}
	idx := s.start
	s.start++
	v := s.data[idx]
	var zero T
	s.data[idx] = zero
	if s.IsEmpty() {
		s.start, s.end = 0, 0
	}
	return v, true
}

// Step pops the head and pushes v, returning the popped value. On an empty
// Slide it does nothing and returns v unchanged.
func (s *Slide[T]) Step(v T) T {
	if old, ok := s.Pop(); ok {
		s.Push(v)
		return old
	}
	return v
}

// Extend appends vals to the tail.
func (s *Slide[T]) Extend(vals []T) {
	if len(vals) == 0 {
		return
	}
	s.ensureCapacity(s.Len() + len(vals))
	copy(s.data[s.end:s.end+len(vals)], vals)
	s.end += len(vals)
}

// Drain removes the live sub-range [l, r) and returns its elements in
// original order. It panics if l > r or r > Len().
//
// To minimize data movement it rotates whichever side of the removed range
// is shorter: the prefix before l if it is the shorter side, otherwise the
// suffix after r.
func (s *Slide[T]) Drain(l, r int) []T {
	length := s.Len()
	if l > r || r > length {
		panic(fmt.Sprintf("lzslide: Slide.Drain(%d, %d) out of bounds of Slide(0, %d)", l, r, length))
	}
	n := r - l
	out := make([]T, n)
	if n == 0 {
		return out
	}
	if l < length-r {
		if l > 0 {
			rotateRight(s.data[s.start:s.start+r], n)
		}
		copy(out, s.data[s.start:s.start+n])
		var zero T
		for i := s.start; i < s.start+n; i++ {
			s.data[i] = zero
		}
		s.start += n
	} else {
		if l < length {
			rotateLeft(s.data[s.start+l:s.end], n)
		}
		newEnd := s.end - n
		copy(out, s.data[newEnd:s.end])
		var zero T
		for i := newEnd; i < s.end; i++ {
			s.data[i] = zero
		}
		s.end = newEnd
	}
	if s.IsEmpty() {
		s.start, s.end = 0, 0
	}
	return out
}

// ExtendFromWithin appends a copy of the live sub-range [a, b). b may extend
// past the current end, in which case newly appended elements themselves
// become sources for the remainder of the copy — this is what makes
// run-length self-copy ("aaaaa...") well-defined for a single call.
//
// It panics if a is not in [0, Len()).
//
// The copy is seeded with one chunk up to the original end, then grown
// exponentially (each pass at least doubles the copied region) rather than
// performed as a single pass — a straight single memcpy would read past
// data it hasn't written yet whenever b > Len() at entry.
func (s *Slide[T]) ExtendFromWithin(a, b int) {
	length := s.Len()
	if b <= a {
		return
	}
	if a < 0 || a >= length {
		panic(fmt.Sprintf("lzslide: Slide.ExtendFromWithin start %d out of bounds of Slide(0, %d)", a, length))
	}
	want := b - a
	s.ensureCapacity(length + want)

	srcStart := s.start + a
	firstChunkLen := b - a
	if length-a < firstChunkLen {
		firstChunkLen = length - a
	}
	copy(s.data[s.end:s.end+firstChunkLen], s.data[srcStart:srcStart+firstChunkLen])
	s.end += firstChunkLen
	copied := firstChunkLen
	remaining := want - firstChunkLen

	for remaining > 0 {
		n := copied
		if n > remaining {
			n = remaining
		}
		copy(s.data[s.end:s.end+n], s.data[s.end-copied:s.end-copied+n])
		s.end += n
		copied += n
		remaining -= n
	}
}

// Reset empties the Slide while retaining its backing storage, so a pooled
// Slide can be reused without reallocating.
func (s *Slide[T]) Reset() {
	var zero T
	for i := s.start; i < s.end; i++ {
		s.data[i] = zero
	}
	s.start, s.end = 0, 0
}

func (s *Slide[T]) ensureCapacity(newCapacity int) {
	length := s.Len()
	if newCapacity < length {
		newCapacity = length
	}
	if newCapacity > s.tailCapacity()+length {
		grown := nextPow2(newCapacity + newCapacity/2)
		if grown != len(s.data) {
			newData := make([]T, grown)
			copy(newData, s.data[s.start:s.end])
			s.data = newData
		} else {
			copy(s.data, s.data[s.start:s.end])
			var zero T
			for i := length; i < len(s.data); i++ {
				s.data[i] = zero
			}
		}
		s.start = 0
		s.end = length
	}
}

func nextPow2(n int) int {
	if n <= 0 {
		return 0
	}
	k := 1
	for k < n {
		k <<= 1
	}
	return k
}

func reverseSlice[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// rotateLeft rotates s left by k positions (0 <= k, reduced mod len(s)).
func rotateLeft[T any](s []T, k int) {
	if len(s) == 0 {
		return
	}
	k %= len(s)
	if k < 0 {
		k += len(s)
	}
	if k == 0 {
		return
	}
	reverseSlice(s[:k])
	reverseSlice(s[k:])
	reverseSlice(s)
}

// rotateRight rotates s right by k positions.
func rotateRight[T any](s []T, k int) {
	if len(s) == 0 {
		return
	}
	k %= len(s)
	rotateLeft(s, len(s)-k)
}
