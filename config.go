// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lzslide

import "math"

// Config configures the search window, the accepted match-length range, and
// the N-gram size used to index it. The zero value is not valid; use
// DefaultConfig and override fields, or construct one and call Validate.
type Config struct {
	// MaxBufferLen bounds both SearchBuffer and the reconstructor's output
	// window. Must be > 0. Default: 1<<24.
	MaxBufferLen int
	// MatchLenMin is the minimum accepted back-reference length (inclusive). Must be > 0.
	MatchLenMin int
	// MatchLenMax is one past the maximum accepted back-reference length
	// (exclusive); it also bounds the factorizer's lookahead window. Must be > MatchLenMin.
	MatchLenMax int
	// N is the fixed N-gram size used to index the search buffer. Must be > 0.
	// A practical choice equals MatchLenMin (or less), so every acceptable
	// match has a usable N-gram head.
	N int
	// Level bounds the chain-walk effort a Factorizer spends per position.
	// The zero value, LevelExact, performs the unbounded search Factorizer's
	// contract describes; a higher level trades thoroughness (it may settle
	// for a shorter match than the true longest one) for speed on inputs
	// with very long match chains.
	Level Level
	// Hasher buckets the N-grams Factorize indexes its search window with.
	// The zero value selects XORHasher. FarmHasher is provided as a
	// higher-quality alternative for N-grams whose bytes aren't already
	// close to uniformly distributed.
	Hasher Hasher[byte]
}

// DefaultConfig returns the default configuration: MaxBufferLen = 2^24,
// MatchLenMin = 1, MatchLenMax = math.MaxInt, N = 1.
func DefaultConfig() Config {
	return Config{
		MaxBufferLen: 1 << 24,
		MatchLenMin:  1,
		MatchLenMax:  math.MaxInt,
		N:            1,
	}
}

// Validate reports ErrInvalidConfig if MaxBufferLen or N is zero, or if the
// match-length range is empty or inverted.
func (c Config) Validate() error {
	if c.MaxBufferLen <= 0 {
		return ErrInvalidConfig
	}
	if c.N <= 0 {
		return ErrInvalidConfig
	}
	if c.MatchLenMin <= 0 || c.MatchLenMax <= 0 {
		return ErrInvalidConfig
	}
	if c.MatchLenMin >= c.MatchLenMax {
		return ErrInvalidConfig
	}
	return nil
}

// lookaheadCap is the maximum number of symbols the factorizer keeps buffered
// for lookahead: the largest acceptable match length, MatchLenMax-1.
func (c Config) lookaheadCap() int {
	if c.MatchLenMax == math.MaxInt {
		return math.MaxInt
	}
	return c.MatchLenMax - 1
}
