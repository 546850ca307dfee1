// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: original_source/src/lz/mod.rs (to_items); pull-based generator
// shape per spec's own design notes, realized with the standard library's
// iter.Seq/iter.Pull; chain-walk/commit loop cross-grounded on
// github.com/woozymasta/lzo's match.go (advanceMatchFinder's
// emit-then-advance-window shape).

package lzslide

import "iter"

// Factorizer pulls symbols from an input sequence and emits a lossless
// factorization into Raw literal runs and Ref back-references. It consumes
// a bounded sliding window (at most cfg.MaxBufferLen history symbols plus
// cfg.MatchLenMax-1 lookahead symbols) regardless of total input length.
// The literal run of the Raw item being built is held separately and is not
// bounded by either limit: it grows until a match or the end of input ends it.
//
// A Factorizer is not safe for concurrent use; each call to Next or a range
// over Items must complete before the next begins.
type Factorizer[T comparable] struct {
	cfg       Config
	history   *SearchBuffer[T]
	lookahead Slide[T]
	pull      func() (T, bool)
	stop      func()
	pending   Item[T]
}

// NewFactorizer returns a Factorizer reading from input, configured by cfg
// and indexing its search window with hasher. It returns ErrInvalidConfig
// if cfg fails Validate.
func NewFactorizer[T comparable](cfg Config, hasher Hasher[T], input iter.Seq[T]) (*Factorizer[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	next, stop := iter.Pull(input)
	return &Factorizer[T]{
		cfg:     cfg,
		history: NewSearchBuffer[T](cfg.N, hasher),
		pull:    next,
		stop:    stop,
	}, nil
}

// Close releases resources backing the input sequence. It is safe to call
// more than once, and unnecessary after Next or Items has reported
// exhaustion (which closes automatically).
func (f *Factorizer[T]) Close() {
	if f.stop != nil {
		f.stop()
		f.stop = nil
	}
}

// reset reinitializes f for reuse from a pool: cfg has already been
// validated by the caller.
func (f *Factorizer[T]) reset(cfg Config, hasher Hasher[T], input iter.Seq[T]) {
	if f.history == nil {
		f.history = NewSearchBuffer[T](cfg.N, hasher)
	} else {
		f.history.Reset(cfg.N, hasher)
	}
	f.lookahead.Reset()
	f.cfg = cfg
	f.pull, f.stop = iter.Pull(input)
	f.pending = nil
}

func (f *Factorizer[T]) refill() {
	lookaheadCap := f.cfg.lookaheadCap()
	for f.lookahead.Len() < lookaheadCap {
		v, ok := f.pull()
		if !ok {
			return
		}
		f.lookahead.Push(v)
	}
}

// pushHistory commits sym into the search window, evicting the oldest
// element first once cfg.MaxBufferLen is reached.
func (f *Factorizer[T]) pushHistory(sym T) {
	if f.history.Len() >= f.cfg.MaxBufferLen {
		f.history.Step(sym)
	} else {
		f.history.Push(sym)
	}
}

// commit moves the leading n symbols of the lookahead into history, in
// order, advancing the current position past an accepted match.
func (f *Factorizer[T]) commit(n int) {
	for i := 0; i < n; i++ {
		sym, _ := f.lookahead.Pop()
		f.pushHistory(sym)
	}
}

// findMatch looks up the longest occurrence of probe in history, applying
// cfg.Level's chain-walk budget when it is not LevelExact.
func (f *Factorizer[T]) findMatch(probe []T) (MatchSpan, bool) {
	if f.cfg.Level == LevelExact {
		return f.history.FindLongestMatch(probe)
	}
	return f.history.FindLongestMatchBy(probe, boundedPredicate(paramsForLevel(f.cfg.Level)))
}

// Next produces the next item, or reports false once the input is
// exhausted and every symbol has been committed. Consecutive unmatched
// symbols are coalesced into a single Raw item rather than emitted one at a
// time; a Ref found partway through such a run flushes the accumulated Raw
// first and is returned on the following call.
func (f *Factorizer[T]) Next() (Item[T], bool) {
	if f.pending != nil {
		item := f.pending
		f.pending = nil
		return item, true
	}

	var raw []T
	for {
		f.refill()
		if f.lookahead.IsEmpty() {
			f.Close()
			if len(raw) > 0 {
				return Raw[T]{Symbols: raw}, true
			}
			return nil, false
		}

		probe := f.lookahead.Values()
		m, ok := f.findMatch(probe)
		if ok &&
			m.Len() >= f.cfg.MatchLenMin && m.Len() < f.cfg.MatchLenMax {
			back := f.history.End() - m.Start
			length := m.Len()
			f.commit(length)
			ref := Ref{Back: back, Length: length}
			if len(raw) > 0 {
				f.pending = ref
				return Raw[T]{Symbols: raw}, true
			}
			return ref, true
		}

		sym, _ := f.lookahead.Pop()
		f.pushHistory(sym)
		raw = append(raw, sym)
	}
}

// Items returns a lazy sequence of every item Next would produce, stopping
// at exhaustion. Breaking out of a range over it early leaves the
// Factorizer usable for further manual Next calls, but the caller should
// then call Close once done.
func (f *Factorizer[T]) Items() iter.Seq[Item[T]] {
	return func(yield func(Item[T]) bool) {
		for {
			item, ok := f.Next()
			if !ok {
				return
			}
			if !yield(item) {
				return
			}
		}
	}
}

// FactorizeSeq collects every item from input (consuming it) into a slice. It
// is the eager counterpart to NewFactorizer for callers who do not need
// streaming.
func FactorizeSeq[T comparable](cfg Config, hasher Hasher[T], input iter.Seq[T]) ([]Item[T], error) {
	f, err := NewFactorizer(cfg, hasher, input)
	if err != nil {
		return nil, err
	}
	var items []Item[T]
	for item := range f.Items() {
		items = append(items, item)
	}
	return items, nil
}
