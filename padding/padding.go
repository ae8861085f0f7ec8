//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package padding implements Merkle-Damgard message padding.
package padding

import (
	"fmt"

	"github.com/markkurossi/mdhash/codec"
)

const (
	// Marker is the first padding byte: a single 1 bit followed by
	// zero bits.
	Marker = 0x80

	// LengthSize specifies the size of the message length field in
	// bytes.
	LengthSize = 8

	// MinBlockSize is the smallest block size that can hold the
	// marker and the length field.
	MinBlockSize = 1 + LengthSize
)

// Len returns the number of padding bytes needed after buffered bytes
// of a partial block so that the padded data fills one or two whole
// blocks of blockSize bytes. The buffered must be in the range
// [0...blockSize).
//
// The padding P shall be formatted as:
//
//	P = 80 || 00* || L
//
// where L is the LengthSize byte message length in bits.
func Len(buffered, blockSize int) int {
	if blockSize < MinBlockSize {
		panic(fmt.Sprintf("padding: invalid block size %d", blockSize))
	}
	if buffered < 0 || buffered >= blockSize {
		panic(fmt.Sprintf("padding: invalid buffered length %d for block %d",
			buffered, blockSize))
	}
	n := blockSize - buffered
	if n < MinBlockSize {
		// No room for the length field, spill into the next block.
		n += blockSize
	}
	return n
}

// Append appends the padding for a message of bits length to dst and
// returns the extended buffer. The buffered specifies the number of
// message bytes in the final partial block, and order the byte order
// of the length field.
func Append(dst []byte, buffered int, bits uint64, blockSize int,
	order codec.Order) []byte {

	n := Len(buffered, blockSize)

	start := len(dst)
	for i := 0; i < n; i++ {
		dst = append(dst, 0)
	}
	pad := dst[start:]
	pad[0] = Marker
	order.PutUint64(pad[n-LengthSize:], bits)

	if (buffered+len(pad))%blockSize != 0 {
		panic(fmt.Sprintf("padding: misaligned padding: %d+%d", buffered, n))
	}
	return dst
}
