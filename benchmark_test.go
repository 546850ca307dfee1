// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo's benchmark_test.go (per-input-set,
// per-level matrix, b.ReportAllocs/b.SetBytes/b.ResetTimer shape)

package lzslide

import (
	"bytes"
	"fmt"
	"testing"
)

func benchmarkInputSets() map[string][]byte {
	return map[string][]byte{
		"small-text-4k":    bytes.Repeat([]byte("lzslide benchmark text payload "), 130),
		"pattern-128k":     bytes.Repeat([]byte("ABCDEF0123456789"), 8192),
		"byte-cycle-256k":  bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 26214),
		"repeated-line-4k": bytes.Repeat([]byte("the quick brown fox jumps over a lazy dog "), 95),
	}
}

func benchmarkConfigForLevel(level Level) Config {
	cfg := DefaultConfig()
	cfg.MatchLenMin = 4
	cfg.N = 4
	cfg.Level = level
	return cfg
}

func BenchmarkFactorize(b *testing.B) {
	levels := []Level{LevelFast, LevelNormal, LevelBest, LevelExact}
	for inputName, inputData := range benchmarkInputSets() {
		for _, level := range levels {
			name := fmt.Sprintf("%s/level-%d", inputName, level)
			b.Run(name, func(b *testing.B) {
				cfg := benchmarkConfigForLevel(level)
				b.ReportAllocs()
				b.SetBytes(int64(len(inputData)))
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					if _, err := Factorize(inputData, cfg); err != nil {
						b.Fatalf("Factorize failed: %v", err)
					}
				}
			})
		}
	}
}

func BenchmarkReconstruct(b *testing.B) {
	levels := []Level{LevelFast, LevelNormal, LevelBest, LevelExact}
	for inputName, inputData := range benchmarkInputSets() {
		for _, level := range levels {
			cfg := benchmarkConfigForLevel(level)
			items, err := Factorize(inputData, cfg)
			if err != nil {
				b.Fatalf("setup Factorize failed for %s level %d: %v", inputName, level, err)
			}

			name := fmt.Sprintf("%s/from-level-%d", inputName, level)
			b.Run(name, func(b *testing.B) {
				b.ReportAllocs()
				b.SetBytes(int64(len(inputData)))
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					if _, err := Reconstruct(items, cfg); err != nil {
						b.Fatalf("Reconstruct failed: %v", err)
					}
				}
			})
		}
	}
}

func BenchmarkRoundTrip(b *testing.B) {
	inputData := bytes.Repeat([]byte("RoundTripData"), 16384)
	cfg := benchmarkConfigForLevel(LevelNormal)
	b.ReportAllocs()
	b.SetBytes(int64(len(inputData)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		items, err := Factorize(inputData, cfg)
		if err != nil {
			b.Fatalf("Factorize failed: %v", err)
		}
		if _, err := Reconstruct(items, cfg); err != nil {
			b.Fatalf("Reconstruct failed: %v", err)
		}
	}
}
