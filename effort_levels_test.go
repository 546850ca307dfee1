// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo's level_params.go (per-level tuning tests)

package lzslide

import (
	"bytes"
	"testing"
)

func TestFactorizeWithBoundedLevelStillRoundTrips(t *testing.T) {
	cfg := scenarioConfig()
	cfg.Level = LevelFast
	data := bytes.Repeat([]byte("abc"), 100)

	items, err := Factorize(data, cfg)
	if err != nil {
		t.Fatalf("Factorize: %v", err)
	}
	out, err := Reconstruct(items, cfg)
	if err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatalf("round trip mismatch under LevelFast")
	}
}

func TestParamsForLevelUnknownIsUnbounded(t *testing.T) {
	p := paramsForLevel(Level(42))
	if p.MaxChainLen != 0 || p.NiceLen != 0 {
		t.Fatalf("paramsForLevel(unknown) = %+v, want zero value", p)
	}
}
