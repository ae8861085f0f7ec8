//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package md5 implements the MD5 hash algorithm as defined in RFC
// 1321 on top of the generic hash engine.
//
// MD5 is cryptographically broken and should not be used for secure
// applications.
package md5

import (
	"math/bits"

	"github.com/markkurossi/mdhash/codec"
	"github.com/markkurossi/mdhash/engine"
)

// The size of an MD5 checksum in bytes.
const Size = 16

// The blocksize of MD5 in bytes.
const BlockSize = 64

const (
	init0 = 0x67452301
	init1 = 0xEFCDAB89
	init2 = 0x98BADCFE
	init3 = 0x10325476
)

// table holds the per-step constants floor(abs(sin(i+1)) * 2^32).
var table = [64]uint32{
	// Round 1
	0xd76aa478, 0xe8c7b756, 0x242070db, 0xc1bdceee,
	0xf57c0faf, 0x4787c62a, 0xa8304613, 0xfd469501,
	0x698098d8, 0x8b44f7af, 0xffff5bb1, 0x895cd7be,
	0x6b901122, 0xfd987193, 0xa679438e, 0x49b40821,
	// Round 2
	0xf61e2562, 0xc040b340, 0x265e5a51, 0xe9b6c7aa,
	0xd62f105d, 0x02441453, 0xd8a1e681, 0xe7d3fbc8,
	0x21e1cde6, 0xc33707d6, 0xf4d50d87, 0x455a14ed,
	0xa9e3e905, 0xfcefa3f8, 0x676f02d9, 0x8d2a4c8a,
	// Round 3
	0xfffa3942, 0x8771f681, 0x6d9d6122, 0xfde5380c,
	0xa4beea44, 0x4bdecfa9, 0xf6bb4b60, 0xbebfbc70,
	0x289b7ec6, 0xeaa127fa, 0xd4ef3085, 0x04881d05,
	0xd9d4d039, 0xe6db99e5, 0x1fa27cf8, 0xc4ac5665,
	// Round 4
	0xf4292244, 0x432aff97, 0xab9423a7, 0xfc93a039,
	0x655b59c3, 0x8f0ccc92, 0xffeff47d, 0x85845dd1,
	0x6fa87e4f, 0xfe2ce6e0, 0xa3014314, 0x4e0811a1,
	0xf7537e82, 0xbd3af235, 0x2ad7d2bb, 0xeb86d391,
}

// shifts holds the left rotation amounts for each round.
var shifts = [4][4]int{
	{7, 12, 17, 22},
	{5, 9, 14, 20},
	{4, 11, 16, 23},
	{6, 10, 15, 21},
}

// Algorithm implements engine.Algorithm for MD5.
type Algorithm struct{}

var _ engine.Algorithm = Algorithm{}

// Name implements engine.Algorithm.Name.
func (alg Algorithm) Name() string {
	return "md5"
}

// BlockSize implements engine.Algorithm.BlockSize.
func (alg Algorithm) BlockSize() int {
	return BlockSize
}

// Size implements engine.Algorithm.Size.
func (alg Algorithm) Size() int {
	return Size
}

// InitialState implements engine.Algorithm.InitialState.
func (alg Algorithm) InitialState() []uint32 {
	return []uint32{init0, init1, init2, init3}
}

// Order implements engine.Algorithm.Order. Unlike SHA-1, MD5 is
// little-endian.
func (alg Algorithm) Order() codec.Order {
	return codec.LittleEndian
}

// Compress implements engine.Algorithm.Compress.
func (alg Algorithm) Compress(h []uint32, block []byte) {
	Block(h, block)
}

// New returns a new MD5 engine.
func New() *engine.Engine {
	return engine.New(Algorithm{})
}

// Sum returns the MD5 checksum of the data.
func Sum(data []byte) [Size]byte {
	var digest [Size]byte
	copy(digest[:], engine.Sum(Algorithm{}, data))
	return digest
}

// Block folds one 64-byte block into the 4-word chaining state h.
func Block(h []uint32, p []byte) {
	_ = h[3]
	_ = p[BlockSize-1]

	var x [16]uint32
	codec.LittleEndian.Words(x[:], p)

	a, b, c, d := h[0], h[1], h[2], h[3]

	for i := 0; i < 64; i++ {
		var f uint32
		var g int

		switch i >> 4 {
		case 0:
			f = (b & c) | (^b & d)
			g = i
		case 1:
			f = (b & d) | (c &^ d)
			g = (5*i + 1) & 0xf
		case 2:
			f = b ^ c ^ d
			g = (3*i + 5) & 0xf
		default:
			f = c ^ (b | ^d)
			g = (7 * i) & 0xf
		}
		f += a + table[i] + x[g]
		a, d, c = d, c, b
		b += bits.RotateLeft32(f, shifts[i>>4][i&3])
	}

	h[0] += a
	h[1] += b
	h[2] += c
	h[3] += d
}
