// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package lzslide

import "errors"

// Sentinel errors for configuration, decoding and the wire codec.
var (
	// ErrInvalidConfig is returned when a Config fails Validate: a zero or
	// inverted match-length range, a zero N, or a zero MaxBufferLen.
	ErrInvalidConfig = errors.New("lzslide: invalid configuration")

	// ErrBackTooFar is returned when a Ref's Back exceeds the reconstructor's
	// current buffer length.
	ErrBackTooFar = errors.New("lzslide: ref back exceeds buffer length")
	// ErrZeroBack is returned when a Ref's Back is zero (reserved to tag Raw on the wire).
	ErrZeroBack = errors.New("lzslide: ref back must be positive")
	// ErrMatchLenOutOfRange is returned when a Ref's Len falls outside the configured match-length range.
	ErrMatchLenOutOfRange = errors.New("lzslide: ref length outside match-length range")

	// ErrTruncatedItem is returned when the codec runs out of bytes mid-item (missing tag, length, or literal symbols).
	ErrTruncatedItem = errors.New("lzslide: truncated item")
	// ErrTrailingGarbage is returned when bytes remain after decoding a claimed item boundary but the caller expected none.
	ErrTrailingGarbage = errors.New("lzslide: trailing garbage after item")
)
