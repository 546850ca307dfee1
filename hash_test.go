// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta

package lzslide

import "testing"

func TestXORHasherDeterministicAndSensitiveToOrder(t *testing.T) {
	h := XORHasher{}
	a := h.Hash([]byte("ab"))
	b := h.Hash([]byte("ab"))
	if a != b {
		t.Fatalf("Hash not deterministic: %d != %d", a, b)
	}
	if h.Hash([]byte("ab")) == h.Hash([]byte("ba")) {
		t.Fatalf("Hash(\"ab\") == Hash(\"ba\"), want distinct buckets for distinct order")
	}
}

func TestXORHasherLongNgram(t *testing.T) {
	h := XORHasher{}
	// Exercise the multi-chunk path (>8 bytes).
	if h.Hash([]byte("abcdefghij")) == h.Hash([]byte("jihgfedcba")) {
		t.Fatalf("10-byte ngrams collided unexpectedly for reversed content")
	}
}

func TestFarmHasherDeterministicAndSensitiveToOrder(t *testing.T) {
	h := FarmHasher{}
	a := h.Hash([]byte("ab"))
	b := h.Hash([]byte("ab"))
	if a != b {
		t.Fatalf("Hash not deterministic: %d != %d", a, b)
	}
	if h.Hash([]byte("ab")) == h.Hash([]byte("ba")) {
		t.Fatalf("Hash(\"ab\") == Hash(\"ba\"), want distinct buckets for distinct order")
	}
}
