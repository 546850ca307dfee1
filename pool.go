// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo (sliding_window_pool.go's
// sync.Pool acquire/release pattern, adapted from a single compressor
// shape to the Factorizer/Reconstructor pair)

package lzslide

import (
	"iter"
	"sync"
)

var factorizerPool = sync.Pool{
	New: func() any { return new(Factorizer[byte]) },
}

var reconstructorPool = sync.Pool{
	New: func() any { return new(Reconstructor[byte]) },
}

// acquireFactorizer borrows a pooled *Factorizer[byte], reinitializing it
// for input. Release it with releaseFactorizer when done.
func acquireFactorizer(cfg Config, hasher Hasher[byte], input iter.Seq[byte]) *Factorizer[byte] {
	f := factorizerPool.Get().(*Factorizer[byte])
	f.reset(cfg, hasher, input)
	return f
}

func releaseFactorizer(f *Factorizer[byte]) {
	f.Close()
	factorizerPool.Put(f)
}

func acquireReconstructor(cfg Config) *Reconstructor[byte] {
	r := reconstructorPool.Get().(*Reconstructor[byte])
	r.reset(cfg)
	return r
}

func releaseReconstructor(r *Reconstructor[byte]) {
	reconstructorPool.Put(r)
}
