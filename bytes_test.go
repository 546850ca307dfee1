// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo's compress_test.go (round-trip and
// corpus-style table-driven tests)

package lzslide

import (
	"bytes"
	"testing"
)

func TestFactorizeReconstructRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		cfg  Config
	}{
		{"empty", nil, DefaultConfig()},
		{"single byte", []byte("x"), DefaultConfig()},
		{"scenario fixture", []byte("vwabcdeabcabcabcxvw"), scenarioConfig()},
		{"highly repetitive", bytes.Repeat([]byte("ab"), 200), Config{MaxBufferLen: 32, MatchLenMin: 1, MatchLenMax: 64, N: 2}},
		{"no repetition", []byte("the quick brown fox jumps over a lazy dog"), DefaultConfig()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			items, err := Factorize(tc.data, tc.cfg)
			if err != nil {
				t.Fatalf("Factorize: %v", err)
			}
			out, err := Reconstruct(items, tc.cfg)
			if err != nil {
				t.Fatalf("Reconstruct: %v", err)
			}
			if !bytes.Equal(out, tc.data) {
				t.Fatalf("round trip mismatch:\n got  %q\n want %q", out, tc.data)
			}
		})
	}
}

func TestFactorizeReconstructRoundTripWithFarmHasher(t *testing.T) {
	cfg := scenarioConfig()
	cfg.Hasher = FarmHasher{}
	data := []byte("vwabcdeabcabcabcxvw")

	items, err := Factorize(data, cfg)
	if err != nil {
		t.Fatalf("Factorize: %v", err)
	}
	out, err := Reconstruct(items, cfg)
	if err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatalf("round trip mismatch under FarmHasher:\n got  %q\n want %q", out, data)
	}
}

func TestFactorizeReconstructPooledReuse(t *testing.T) {
	data := []byte("abcabcabcabcabcabc")
	cfg := scenarioConfig()
	for i := 0; i < 4; i++ {
		items, err := Factorize(data, cfg)
		if err != nil {
			t.Fatalf("Factorize iteration %d: %v", i, err)
		}
		out, err := Reconstruct(items, cfg)
		if err != nil {
			t.Fatalf("Reconstruct iteration %d: %v", i, err)
		}
		if !bytes.Equal(out, data) {
			t.Fatalf("iteration %d round trip mismatch: got %q", i, out)
		}
	}
}
