// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: grailbio-bio/encoding/pam/fieldio/bytebuffer.go (wrapping
// encoding/binary's varint functions for a self-sizing wire encoding);
// framing scheme adapted from original_source/src/lz/item.rs's Serialize/
// Deserialize (tag 0 => Raw, tag != 0 => Ref), with the tag itself carrying
// Back directly rather than an absolute stream position (see DESIGN.md).

package lzslide

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
)

// SymbolCodec serializes and deserializes individual symbols for the Raw
// literal payload of an Item. ByteSymbolCodec is the concrete instance for
// T = byte; callers with a richer symbol type supply their own.
type SymbolCodec[T any] interface {
	Encode(w *bufio.Writer, sym T) error
	Decode(r *bufio.Reader) (T, error)
}

// ByteSymbolCodec encodes each symbol as a single raw byte.
type ByteSymbolCodec struct{}

// Encode implements SymbolCodec[byte].
func (ByteSymbolCodec) Encode(w *bufio.Writer, sym byte) error {
	return w.WriteByte(sym)
}

// Decode implements SymbolCodec[byte].
func (ByteSymbolCodec) Decode(r *bufio.Reader) (byte, error) {
	return r.ReadByte()
}

// EncodeItem writes item's self-describing encoding to w: a tag (0 for Raw,
// Back for Ref), a length, and — for Raw only — the literal symbols in
// order, each via codec. No separate framing surrounds the item; callers
// concatenating items rely on DecodeItem consuming exactly one.
func EncodeItem[T any](w *bufio.Writer, item Item[T], codec SymbolCodec[T]) error {
	var buf [binary.MaxVarintLen64]byte

	switch v := item.(type) {
	case Raw[T]:
		n := binary.PutUvarint(buf[:], 0)
		if _, err := w.Write(buf[:n]); err != nil {
			return err
		}
		n = binary.PutUvarint(buf[:], uint64(len(v.Symbols)))
		if _, err := w.Write(buf[:n]); err != nil {
			return err
		}
		for _, sym := range v.Symbols {
			if err := codec.Encode(w, sym); err != nil {
				return err
			}
		}
		return nil
	case Ref:
		n := binary.PutUvarint(buf[:], uint64(v.Back))
		if _, err := w.Write(buf[:n]); err != nil {
			return err
		}
		n = binary.PutUvarint(buf[:], uint64(v.Length))
		if _, err := w.Write(buf[:n]); err != nil {
			return err
		}
		return nil
	default:
		panic("lzslide: unknown Item implementation")
	}
}

// DecodeItem reads one item's encoding from r. It returns ErrTruncatedItem
// itself (not wrapped) if r runs out of bytes mid-item; other read errors
// are returned unchanged.
func DecodeItem[T any](r *bufio.Reader, codec SymbolCodec[T]) (Item[T], error) {
	tag, err := binary.ReadUvarint(r)
	if err != nil {
		return nil, truncatedErr(err)
	}
	length, err := binary.ReadUvarint(r)
	if err != nil {
		return nil, truncatedErr(err)
	}

	if tag == 0 {
		symbols := make([]T, length)
		for i := range symbols {
			sym, err := codec.Decode(r)
			if err != nil {
				return nil, truncatedErr(err)
			}
			symbols[i] = sym
		}
		return Raw[T]{Symbols: symbols}, nil
	}

	return Ref{Back: int(tag), Length: int(length)}, nil
}

func truncatedErr(cause error) error {
	if cause == io.EOF || cause == io.ErrUnexpectedEOF {
		return ErrTruncatedItem
	}
	return cause
}

// EncodeItems writes every item in items to w in order, then flushes w.
func EncodeItems[T any](w io.Writer, items []Item[T], codec SymbolCodec[T]) error {
	bw := bufio.NewWriter(w)
	for _, item := range items {
		if err := EncodeItem(bw, item, codec); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// DecodeItemExact decodes exactly one item from data, which is expected to
// hold that item's encoding and nothing else — the shape of a single
// length-prefixed record pulled out of an outer framing layer. It returns
// ErrTrailingGarbage if bytes remain in data once the claimed item has been
// fully consumed.
func DecodeItemExact[T any](data []byte, codec SymbolCodec[T]) (Item[T], error) {
	br := bufio.NewReader(bytes.NewReader(data))
	item, err := DecodeItem(br, codec)
	if err != nil {
		return nil, err
	}
	if _, err := br.Peek(1); err != io.EOF {
		return nil, ErrTrailingGarbage
	}
	return item, nil
}

// DecodeItems reads items from r until EOF, returning ErrTrailingGarbage
// never: a clean EOF exactly at an item boundary ends the stream
// successfully, which is the only valid termination for a concatenated
// Item stream with no outer framing. ErrTrailingGarbage is reserved for
// DecodeItemExact, which does have an outer boundary (the end of data) to
// detect garbage against.
func DecodeItems[T any](r io.Reader, codec SymbolCodec[T]) ([]Item[T], error) {
	br := bufio.NewReader(r)
	var items []Item[T]
	for {
		if _, err := br.Peek(1); err == io.EOF {
			return items, nil
		} else if err != nil {
			return items, err
		}
		item, err := DecodeItem(br, codec)
		if err != nil {
			return items, err
		}
		items = append(items, item)
	}
}
