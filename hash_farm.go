// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: grailbio-bio/fusion/kmer_index.go (farm.Hash64WithSeed over a
// fixed-width k-mer, sharding a kmer->genelist map by the resulting hash) —
// an N-gram is the same shape of fixed-width key this package indexes by.

package lzslide

import farm "github.com/dgryski/go-farm"

// FarmHasher is a Hasher[byte] backed by Google's FarmHash (via
// github.com/dgryski/go-farm), the same hash grailbio-bio's fusion package
// uses to bucket fixed-width genomic k-mers. It trades XORHasher's
// near-zero cost for markedly better bucket distribution on N-grams whose
// bytes are not already close to uniformly distributed, which shortens
// SearchBuffer's hash chains (see FindLongestMatchBy) on such inputs.
type FarmHasher struct{}

// Hash implements Hasher[byte].
func (FarmHasher) Hash(ngram []byte) uint64 {
	return farm.Hash64(ngram)
}
