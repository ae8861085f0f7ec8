//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package codec converts between byte sequences and fixed-width
// unsigned integers in big-endian or little-endian byte order.
package codec

import (
	"fmt"
)

// Order specifies the byte order of the encoded words.
type Order int

// Byte orders.
const (
	BigEndian Order = iota
	LittleEndian
)

var orders = map[Order]string{
	BigEndian:    "big-endian",
	LittleEndian: "little-endian",
}

func (o Order) String() string {
	name, ok := orders[o]
	if ok {
		return name
	}
	return fmt.Sprintf("{Order %d}", o)
}

// Uint32 decodes a 32-bit word from the first four bytes of b.
func (o Order) Uint32(b []byte) uint32 {
	_ = b[3]
	if o == LittleEndian {
		return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 |
			uint32(b[3])<<24
	}
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 |
		uint32(b[3])
}

// PutUint32 encodes v into the first four bytes of b.
func (o Order) PutUint32(b []byte, v uint32) {
	_ = b[3]
	if o == LittleEndian {
		b[0] = byte(v)
		b[1] = byte(v >> 8)
		b[2] = byte(v >> 16)
		b[3] = byte(v >> 24)
	} else {
		b[0] = byte(v >> 24)
		b[1] = byte(v >> 16)
		b[2] = byte(v >> 8)
		b[3] = byte(v)
	}
}

// Uint64 decodes a 64-bit word from the first eight bytes of b.
func (o Order) Uint64(b []byte) uint64 {
	_ = b[7]
	hi := uint64(o.Uint32(b[0:]))
	lo := uint64(o.Uint32(b[4:]))
	if o == LittleEndian {
		hi, lo = lo, hi
	}
	return hi<<32 | lo
}

// PutUint64 encodes v into the first eight bytes of b.
func (o Order) PutUint64(b []byte, v uint64) {
	_ = b[7]
	hi := uint32(v >> 32)
	lo := uint32(v)
	if o == LittleEndian {
		hi, lo = lo, hi
	}
	o.PutUint32(b[0:], hi)
	o.PutUint32(b[4:], lo)
}

// Words decodes len(dst) 32-bit words from src. The src must contain
// at least 4*len(dst) bytes.
func (o Order) Words(dst []uint32, src []byte) {
	if len(src) < len(dst)*4 {
		panic(fmt.Sprintf("codec: short input: %d < %d", len(src), len(dst)*4))
	}
	for i := range dst {
		dst[i] = o.Uint32(src[i*4:])
	}
}

// PutWords encodes the words of src into dst. The dst must have room
// for 4*len(src) bytes.
func (o Order) PutWords(dst []byte, src []uint32) {
	if len(dst) < len(src)*4 {
		panic(fmt.Sprintf("codec: short output: %d < %d", len(dst), len(src)*4))
	}
	for i, w := range src {
		o.PutUint32(dst[i*4:], w)
	}
}

// AppendWords appends the encoded words of src to dst and returns the
// extended buffer.
func (o Order) AppendWords(dst []byte, src []uint32) []byte {
	var buf [4]byte
	for _, w := range src {
		o.PutUint32(buf[:], w)
		dst = append(dst, buf[:]...)
	}
	return dst
}
