// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: original_source/src/lz/item.rs (Serialize/Deserialize fuzz tests),
// adapted to this package's back-distance wire tag (see DESIGN.md)

package lzslide

import (
	"bufio"
	"bytes"
	"reflect"
	"testing"
)

// TestEncodeItemsScenario pins the wire encoding of the reference
// factorization fixture: tag 0 introduces a Raw (followed by a length and
// that many literal bytes), any other tag is a Ref's back-distance
// (followed by its length).
func TestEncodeItemsScenario(t *testing.T) {
	items := []Item[byte]{
		Raw[byte]{Symbols: []byte("vwabcde")},
		Ref{Back: 5, Length: 3},
		Ref{Back: 3, Length: 6},
		Raw[byte]{Symbols: []byte("xvw")},
	}

	var buf bytes.Buffer
	if err := EncodeItems(&buf, items, ByteSymbolCodec{}); err != nil {
		t.Fatalf("EncodeItems: %v", err)
	}

	want := []byte{0, 7, 'v', 'w', 'a', 'b', 'c', 'd', 'e', 5, 3, 3, 6, 0, 3, 'x', 'v', 'w'}
	if got := buf.Bytes(); !bytes.Equal(got, want) {
		t.Fatalf("EncodeItems wire bytes = %v, want %v", got, want)
	}

	decoded, err := DecodeItems(&buf, ByteSymbolCodec{})
	if err != nil {
		t.Fatalf("DecodeItems: %v", err)
	}
	if !reflect.DeepEqual(decoded, items) {
		t.Fatalf("DecodeItems = %#v, want %#v", decoded, items)
	}
}

func TestDecodeItemTruncated(t *testing.T) {
	r := bufio.NewReader(bytes.NewReader([]byte{0, 5, 'a', 'b'}))
	if _, err := DecodeItem[byte](r, ByteSymbolCodec{}); err != ErrTruncatedItem {
		t.Fatalf("err = %v, want ErrTruncatedItem", err)
	}
}

func TestDecodeItemExact(t *testing.T) {
	item := Raw[byte]{Symbols: []byte("xvw")}
	var buf bytes.Buffer
	if err := EncodeItems(&buf, []Item[byte]{item}, ByteSymbolCodec{}); err != nil {
		t.Fatalf("EncodeItems: %v", err)
	}

	got, err := DecodeItemExact(buf.Bytes(), ByteSymbolCodec{})
	if err != nil {
		t.Fatalf("DecodeItemExact: %v", err)
	}
	if !reflect.DeepEqual(got, Item[byte](item)) {
		t.Fatalf("DecodeItemExact = %#v, want %#v", got, item)
	}
}

func TestDecodeItemExactTrailingGarbage(t *testing.T) {
	item := Raw[byte]{Symbols: []byte("xvw")}
	var buf bytes.Buffer
	if err := EncodeItems(&buf, []Item[byte]{item}, ByteSymbolCodec{}); err != nil {
		t.Fatalf("EncodeItems: %v", err)
	}
	data := append(buf.Bytes(), 0xFF)

	if _, err := DecodeItemExact(data, ByteSymbolCodec{}); err != ErrTrailingGarbage {
		t.Fatalf("err = %v, want ErrTrailingGarbage", err)
	}
}

func TestDecodeItemsEmptyStreamIsEmptySlice(t *testing.T) {
	items, err := DecodeItems[byte](bytes.NewReader(nil), ByteSymbolCodec{})
	if err != nil {
		t.Fatalf("DecodeItems: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("DecodeItems(empty) = %#v, want empty", items)
	}
}
