// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: original_source/src/lz/mod.rs (from_items): extend the buffer by
// the item's contribution, then drain any excess from the front in one
// shot. This is the room-first growth model Factorizer's own history
// (search_buffer.push_step/extend_slide in to_items) also uses, so the two
// sides of a Factorize/Reconstruct pair always agree on Start()/End()
// addressing for a given Back distance. lz.rs's alternate from_back_refs
// (search_buffer.rs's extend_slide_from_within, always-step for a Ref
// regardless of spare room) is a different algorithm paired with a different
// factorizer and is not mixed in here — see DESIGN.md.

package lzslide

import "iter"

// nopHasher is a Hasher that puts every N-gram in the same bucket:
// Reconstructor only needs SearchBuffer's bounded, absolutely-addressed
// storage and self-copy. SearchBuffer still calls Hash as it indexes each
// appended symbol, but Reconstructor never searches that index.
type nopHasher[T any] struct{}

func (nopHasher[T]) Hash([]T) uint64 { return 0 }

// Reconstructor rebuilds the original symbol sequence from a stream of
// Item[T], applying each Raw run or Ref back-reference in order against a
// buffer bounded to cfg.MaxBufferLen symbols.
//
// A Reconstructor is not safe for concurrent use.
type Reconstructor[T comparable] struct {
	cfg Config
	buf *SearchBuffer[T]
}

// NewReconstructor returns an empty Reconstructor configured by cfg. It
// returns ErrInvalidConfig if cfg fails Validate.
func NewReconstructor[T comparable](cfg Config) (*Reconstructor[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Reconstructor[T]{
		cfg: cfg,
		buf: NewSearchBuffer[T](1, nopHasher[T]{}),
	}, nil
}

// reset reinitializes r for reuse from a pool: cfg has already been
// validated by the caller.
func (r *Reconstructor[T]) reset(cfg Config) {
	if r.buf == nil {
		r.buf = NewSearchBuffer[T](1, nopHasher[T]{})
	} else {
		r.buf.Reset(1, nopHasher[T]{})
	}
	r.cfg = cfg
}

// Apply advances the reconstruction by one item and returns the symbols it
// contributes to the output, in order. For a Ref it validates:
//
//   - Back must be positive (ErrZeroBack), since 0 is reserved on the wire
//     for Raw.
//   - Length must fall within [cfg.MatchLenMin, cfg.MatchLenMax) (ErrMatchLenOutOfRange).
//   - Back must not reach further than the buffer's current length
//     (ErrBackTooFar).
func (r *Reconstructor[T]) Apply(item Item[T]) ([]T, error) {
	switch v := item.(type) {
	case Raw[T]:
		r.buf.Extend(v.Symbols)
		out := append([]T(nil), r.buf.Slice(r.buf.End()-len(v.Symbols), r.buf.End())...)
		r.evictExcess()
		return out, nil

	case Ref:
		if v.Back <= 0 {
			return nil, ErrZeroBack
		}
		if v.Length < r.cfg.MatchLenMin || v.Length >= r.cfg.MatchLenMax {
			return nil, ErrMatchLenOutOfRange
		}
		start := r.buf.End() - v.Back
		if start < r.buf.Start() {
			return nil, ErrBackTooFar
		}

		r.buf.ExtendFromWithin(start, start+v.Length)
		out := append([]T(nil), r.buf.Slice(r.buf.End()-v.Length, r.buf.End())...)
		r.evictExcess()
		return out, nil

	default:
		panic("lzslide: unknown Item implementation")
	}
}

// evictExcess drains symbols from the front of the buffer until it no
// longer exceeds cfg.MaxBufferLen, mirroring from_items's
// "extend, then drain over-length in one shot" pattern rather than
// bounding growth per-step the way ExtendSlide does.
func (r *Reconstructor[T]) evictExcess() {
	if over := r.buf.Len() - r.cfg.MaxBufferLen; over > 0 {
		r.buf.Drain(over)
	}
}

// Symbols applies every item from items in order, yielding the symbols each
// one contributes. It stops and yields a single (nil, err) pair on the
// first error, without consuming further items.
func (r *Reconstructor[T]) Symbols(items iter.Seq[Item[T]]) iter.Seq2[[]T, error] {
	return func(yield func([]T, error) bool) {
		for item := range items {
			out, err := r.Apply(item)
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(out, nil) {
				return
			}
		}
	}
}

// ReconstructSeq applies every item of items in order against a fresh
// Reconstructor and returns the concatenated output.
func ReconstructSeq[T comparable](cfg Config, items iter.Seq[Item[T]]) ([]T, error) {
	r, err := NewReconstructor[T](cfg)
	if err != nil {
		return nil, err
	}
	var out []T
	for chunk, err := range r.Symbols(items) {
		if err != nil {
			return nil, err
		}
		out = append(out, chunk...)
	}
	return out, nil
}
