// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

/*
Package lzslide implements a generic streaming LZ77-style factorizer and
reconstructor: given a sequence of symbols it emits a lossless factorization
into literal runs (Raw) and back-references into previously seen data (Ref),
and given such a factorization it reconstructs the original sequence.

The sliding-window search engine (SearchBuffer) and the matching/emission
state machine (Factorizer/Reconstructor) are the core value; no particular
file format is implied. Entropy coding, optimal parsing and compatibility
with external LZ formats (gzip, zstd, LZO, ...) are out of scope.

# Factorize

	cfg := lzslide.DefaultConfig()
	items, err := lzslide.Factorize([]byte("abcabcabc"), cfg)

# Reconstruct

	out, err := lzslide.Reconstruct(items, cfg)

# Streaming

For input that does not fit in memory, use NewFactorizer/NewReconstructor
directly with an iter.Seq[T] or a manual Next() pull loop; both keep a
sliding window bounded by cfg.MaxBufferLen. The Factorizer also buffers up to
cfg.MatchLenMax-1 lookahead symbols and the literal run of the Raw item it is
building, which is not bounded.

# Wire codec

Item[T] round-trips through EncodeItem/DecodeItem as a self-describing
variable-length encoding (tag, then length, then literal symbols for a Raw;
just tag and length for a Ref). Symbol serialization is pluggable via
SymbolCodec[T]; ByteSymbolCodec is provided for T = byte.
*/
package lzslide
