// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: original_source/src/search_buffer.rs (SearchBuffer<T, const N,
// S> and its get_match/find_longest_match_by); chain-walk shape and
// head/offset bookkeeping cross-grounded on github.com/woozymasta/lzo's
// sliding_window.go (head2/head3 tables, searchBestMatch's chain walk).

package lzslide

import "fmt"

// MatchSpan is a half-open absolute index range [Start, End) into the
// logical stream a SearchBuffer or Factorizer is working over.
type MatchSpan struct {
	Start, End int
}

// Len reports the number of symbols the span covers.
func (m MatchSpan) Len() int { return m.End - m.Start }

// SearchBuffer is a sliding window over T indexed by its own N-grams, so
// that the longest prior occurrence of an arbitrary probe sequence can be
// found without rescanning the whole window.
//
// Go has no const-generic array type parameters, so unlike the original's
// HashMap<[T; N], usize> this indexes N-grams by a caller-supplied Hasher
// bucket rather than an exact key. A bucket collision would silently
// corrupt the Rust original's "skip the first N, they're already equal"
// shortcut; SearchBuffer instead always verifies full equality of a
// candidate from scratch (see getMatch), so a collision only costs a
// wasted comparison, never a wrong answer.
type SearchBuffer[T comparable] struct {
	values  Slide[T]
	offsets Slide[int]
	heads   map[uint64]int
	offset  int
	n       int
	hasher  Hasher[T]
}

// NewSearchBuffer returns an empty SearchBuffer indexing n-grams of length
// n using hasher. It panics if n <= 0.
func NewSearchBuffer[T comparable](n int, hasher Hasher[T]) *SearchBuffer[T] {
	if n <= 0 {
		panic("lzslide: SearchBuffer n must be > 0")
	}
	return &SearchBuffer[T]{
		heads:  make(map[uint64]int),
		offset: 1,
		n:      n,
		hasher: hasher,
	}
}

// Reset empties the SearchBuffer while retaining its backing storage (the
// Slides' arrays and the heads map), so a pooled SearchBuffer can be reused
// across calls without reallocating.
func (sb *SearchBuffer[T]) Reset(n int, hasher Hasher[T]) {
	sb.values.Reset()
	sb.offsets.Reset()
	clear(sb.heads)
	sb.offset = 1
	sb.n = n
	sb.hasher = hasher
}

// Len reports the number of live elements.
func (sb *SearchBuffer[T]) Len() int { return sb.values.Len() }

// IsEmpty reports whether the buffer holds no elements.
func (sb *SearchBuffer[T]) IsEmpty() bool { return sb.values.IsEmpty() }

// Start returns the absolute index of the oldest live element.
func (sb *SearchBuffer[T]) Start() int { return sb.offset - 1 }

// End returns one past the absolute index of the newest live element.
func (sb *SearchBuffer[T]) End() int { return sb.Start() + sb.Len() }

// At returns the element at absolute index i.
func (sb *SearchBuffer[T]) At(i int) T { return sb.values.At(i - sb.Start()) }

// Slice returns the live sub-range [a, b) addressed by absolute index, as a
// view following Slide.Slice's invalidation rules.
func (sb *SearchBuffer[T]) Slice(a, b int) []T {
	return sb.values.Slice(a-sb.Start(), b-sb.Start())
}

// Values returns every live element in order.
func (sb *SearchBuffer[T]) Values() []T { return sb.values.Values() }

// extendOffsets indexes every n-gram newly completed by the last Push or
// Extend: each base b in [offsets.Len(), values.Len()-n] gets an offsets
// entry pointing at the previous occurrence of the same bucket (or 0 for
// "none yet"), and heads is updated to point at b.
func (sb *SearchBuffer[T]) extendOffsets() {
	base := sb.offsets.Len()
	for base+sb.n <= sb.values.Len() {
		ngram := sb.values.Slice(base, base+sb.n)
		h := sb.hasher.Hash(ngram)
		prev := sb.heads[h]
		sb.heads[h] = base + sb.offset
		sb.offsets.Push(prev)
		base++
	}
}

// Push appends v.
func (sb *SearchBuffer[T]) Push(v T) {
	sb.values.Push(v)
	sb.extendOffsets()
}

// Pop removes and returns the oldest live element, or the zero value and
// false if empty.
func (sb *SearchBuffer[T]) Pop() (T, bool) {
	v, ok := sb.values.Pop()
	if !ok {
		return v, false
	}
	sb.offsets.Pop()
	sb.offset++
	return v, true
}

// Step pops the oldest element and pushes v, returning the popped value (or
// v unchanged if the buffer was empty).
func (sb *SearchBuffer[T]) Step(v T) T {
	if old, ok := sb.Pop(); ok {
		sb.Push(v)
		return old
	}
	return v
}

// Drain removes and returns the first n live elements in order. It panics
// if n > Len().
func (sb *SearchBuffer[T]) Drain(n int) []T {
	out := sb.values.Drain(0, n)
	m := n
	if sb.offsets.Len() < m {
		m = sb.offsets.Len()
	}
	sb.offsets.Drain(0, m)
	sb.offset += len(out)
	return out
}

// PushStep pushes v if Len() < maxLen, otherwise steps it in. It reports
// whether a step (rather than a plain push) occurred, and the popped value
// when it did.
func (sb *SearchBuffer[T]) PushStep(v T, maxLen int) (popped T, stepped bool) {
	if sb.Len() < maxLen {
		sb.Push(v)
		return popped, false
	}
	return sb.Step(v), true
}

// Extend appends every element of vals in order.
func (sb *SearchBuffer[T]) Extend(vals []T) {
	sb.values.Extend(vals)
	sb.extendOffsets()
}

// ExtendSlide extends by vals, stepping out (and collecting, in order) as
// many oldest elements as needed to keep Len() <= maxLen.
func (sb *SearchBuffer[T]) ExtendSlide(vals []T, maxLen int) []T {
	i := 0
	if sb.Len() < maxLen {
		room := maxLen - sb.Len()
		if room > len(vals) {
			room = len(vals)
		}
		sb.Extend(vals[:room])
		i = room
	}
	if i >= len(vals) {
		return nil
	}
	popped := make([]T, 0, len(vals)-i)
	for ; i < len(vals); i++ {
		popped = append(popped, sb.Step(vals[i]))
	}
	return popped
}

// ExtendFromWithin appends a copy of the live absolute sub-range [a, b);
// b may extend past End(), in which case the appended elements feed the
// remainder of their own copy, exactly as Slide.ExtendFromWithin. Unlike
// Slide, this works one extend() at a time so the N-gram index stays
// consistent as the copy grows. It panics if a is not in [Start(), End())
// while b > a.
func (sb *SearchBuffer[T]) ExtendFromWithin(a, b int) {
	if b <= a {
		return
	}
	if a < sb.Start() || a >= sb.End() {
		panic(fmt.Sprintf("lzslide: SearchBuffer.ExtendFromWithin start %d out of bounds of SearchBuffer(%d, %d)", a, sb.Start(), sb.End()))
	}
	for b > a {
		chunkEnd := b
		if chunkEnd > sb.End() {
			chunkEnd = sb.End()
		}
		chunk := append([]T(nil), sb.Slice(a, chunkEnd)...)
		sb.Extend(chunk)
		a = chunkEnd
	}
}

// at reads the symbol at local index relative to values, treating indices
// beyond values as reaching into probe (so a match can run off the live
// window into the not-yet-committed lookahead, which is what lets a
// back-reference describe a run that overlaps its own source).
func (sb *SearchBuffer[T]) at(length int, index int, probe []T) (T, bool) {
	if index < length {
		return sb.values.At(index), true
	}
	pi := index - length
	if pi < 0 || pi >= len(probe) {
		var zero T
		return zero, false
	}
	return probe[pi], true
}

// getMatch measures the equality run starting at local index base against
// probe (which continues the window past its live end), returning the
// resulting absolute MatchSpan if its length exceeds minLen, else false.
//
// It checks position minLen first as a cheap rejection before running the
// full count: a true final length can only exceed minLen if the symbol at
// that position already matches.
func (sb *SearchBuffer[T]) getMatch(base int, probe []T, minLen int) (MatchSpan, bool) {
	length := sb.values.Len()
	if minLen >= len(probe) || sb.n >= len(probe) {
		return MatchSpan{}, false
	}
	check := func(index, probeIdx int) bool {
		if probeIdx < 0 || probeIdx >= len(probe) {
			return false
		}
		v, ok := sb.at(length, index, probe)
		if !ok {
			return false
		}
		return v == probe[probeIdx]
	}
	if !check(base+minLen, minLen) {
		return MatchSpan{}, false
	}
	count := 0
	for check(base+count, count) {
		count++
	}
	if count <= minLen {
		return MatchSpan{}, false
	}
	start := base + sb.Start()
	return MatchSpan{Start: start, End: start + count}, true
}

// FindLongestMatch returns the longest prior occurrence of probe's leading
// N symbols, extended as far as it matches probe, with length >= N. It
// returns false if probe is no longer than N or no occurrence is found.
func (sb *SearchBuffer[T]) FindLongestMatch(probe []T) (MatchSpan, bool) {
	return sb.FindLongestMatchBy(probe, func(*MatchSpan, MatchSpan) (bool, bool) {
		return true, false
	})
}

// FindLongestMatchBy is FindLongestMatch generalized with a predicate
// invoked on every chain-walk candidate that beats the running best found
// so far: predicate(currentBest, candidate) reports whether to accept the
// candidate as the new best, and whether to stop walking the chain
// immediately afterward. currentBest is nil until a match has been
// accepted. The default predicate used by FindLongestMatch always accepts
// and never stops early.
//
// Two independent sources of candidates are consulted: a seed scan of the
// last N positions (whose own N-gram cannot yet be indexed, since indexing
// a base requires N more symbols after it) requiring a match strictly
// longer than N, and a walk of the hash chain for probe's leading N-gram,
// requiring each candidate to strictly improve on the current best (which
// starts at 0, so a chain candidate of exactly length N can still win if
// the seed scan found nothing).
func (sb *SearchBuffer[T]) FindLongestMatchBy(probe []T, predicate func(best *MatchSpan, candidate MatchSpan) (accept, done bool)) (MatchSpan, bool) {
	if sb.n >= len(probe) {
		return MatchSpan{}, false
	}
	length := sb.values.Len()

	var best MatchSpan
	haveBest := false

	seedStart := length - sb.n
	if seedStart < 0 {
		seedStart = 0
	}
	for base := seedStart; base < length; base++ {
		if m, ok := sb.getMatch(base, probe, sb.n); ok {
			if !haveBest || m.Len() > best.Len() {
				best, haveBest = m, true
			}
		}
	}

	headAbs, ok := sb.heads[sb.hasher.Hash(probe[:sb.n])]
	if ok {
		next := headAbs - sb.offset
		for next >= 0 {
			// A Hasher only guarantees a bucket, not an exact N-gram match
			// (see SearchBuffer's doc comment), so floor minLen at n-1: that
			// forces getMatch to verify all N symbols before accepting,
			// restoring the length >= N guarantee the original's exact-keyed
			// map got for free from its hash table alone.
			minLen := sb.n - 1
			if haveBest && best.Len() > minLen {
				minLen = best.Len()
			}
			if m, ok := sb.getMatch(next, probe, minLen); ok {
				var bestPtr *MatchSpan
				if haveBest {
					bestPtr = &best
				}
				accept, done := predicate(bestPtr, m)
				if accept {
					best, haveBest = m, true
				}
				if done {
					break
				}
			}
			if next >= sb.offsets.Len() {
				break
			}
			nxt := sb.offsets.At(next) - sb.offset
			if nxt < 0 {
				break
			}
			next = nxt
		}
	}

	return best, haveBest
}
