// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo (compress.go/decompress.go's top-level
// Compress/Decompress convenience wrappers over the streaming engine)

package lzslide

import "slices"

// Factorize factorizes data in one call, using cfg and cfg.Hasher
// (XORHasher when cfg.Hasher is nil). It is the
// byte-oriented, non-streaming counterpart to NewFactorizer.
func Factorize(data []byte, cfg Config) ([]Item[byte], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	hasher := cfg.Hasher
	if hasher == nil {
		hasher = XORHasher{}
	}
	f := acquireFactorizer(cfg, hasher, slices.Values(data))
	defer releaseFactorizer(f)

	var items []Item[byte]
	for item := range f.Items() {
		items = append(items, item)
	}
	return items, nil
}

// Reconstruct reconstructs the original byte sequence from items, using
// cfg. It is the byte-oriented, non-streaming counterpart to
// NewReconstructor.
func Reconstruct(items []Item[byte], cfg Config) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	r := acquireReconstructor(cfg)
	defer releaseReconstructor(r)

	var out []byte
	for _, item := range items {
		chunk, err := r.Apply(item)
		if err != nil {
			return nil, err
		}
		out = append(out, chunk...)
	}
	return out, nil
}
