//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package sha1 implements the SHA-1 hash algorithm as defined in RFC
// 3174 on top of the generic hash engine.
//
// SHA-1 is cryptographically broken and should not be used for secure
// applications.
package sha1

import (
	"math/bits"

	"github.com/markkurossi/mdhash/codec"
	"github.com/markkurossi/mdhash/engine"
)

// The size of a SHA-1 checksum in bytes.
const Size = 20

// The blocksize of SHA-1 in bytes.
const BlockSize = 64

const (
	init0 = 0x67452301
	init1 = 0xEFCDAB89
	init2 = 0x98BADCFE
	init3 = 0x10325476
	init4 = 0xC3D2E1F0
)

const (
	_K0 = 0x5A827999
	_K1 = 0x6ED9EBA1
	_K2 = 0x8F1BBCDC
	_K3 = 0xCA62C1D6
)

// Algorithm implements engine.Algorithm for SHA-1.
type Algorithm struct{}

var _ engine.Algorithm = Algorithm{}

// Name implements engine.Algorithm.Name.
func (alg Algorithm) Name() string {
	return "sha1"
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
	return []uint32{init0, init1, init2, init3, init4}
}

// Order implements engine.Algorithm.Order. SHA-1 encodes the message
// length and the digest in big-endian byte order.
func (alg Algorithm) Order() codec.Order {
	return codec.BigEndian
}

// Compress implements engine.Algorithm.Compress.
func (alg Algorithm) Compress(h []uint32, block []byte) {
	Block(h, block)
}

// New returns a new SHA-1 engine.
func New() *engine.Engine {
	return engine.New(Algorithm{})
}

// Sum returns the SHA-1 checksum of the data.
func Sum(data []byte) [Size]byte {
	var digest [Size]byte
	copy(digest[:], engine.Sum(Algorithm{}, data))
	return digest
}

// Block folds one 64-byte block into the 5-word chaining state h.
func Block(h []uint32, p []byte) {
	_ = h[4]
	_ = p[BlockSize-1]

	// Message schedule: sixteen big-endian words extended to eighty.
	var w [80]uint32
	codec.BigEndian.Words(w[:16], p)
	for i := 16; i < 80; i++ {
		w[i] = bits.RotateLeft32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
	}

	a, b, c, d, e := h[0], h[1], h[2], h[3], h[4]

	// Each of the four 20-iteration rounds differs only in the
	// computation of f and the choice of K.
	i := 0
	for ; i < 20; i++ {
		f := b&c | (^b)&d
		t := bits.RotateLeft32(a, 5) + f + e + w[i] + _K0
		a, b, c, d, e = t, a, bits.RotateLeft32(b, 30), c, d
	}
	for ; i < 40; i++ {
		f := b ^ c ^ d
		t := bits.RotateLeft32(a, 5) + f + e + w[i] + _K1
		a, b, c, d, e = t, a, bits.RotateLeft32(b, 30), c, d
	}
	for ; i < 60; i++ {
		f := (b & c) | (b & d) | (c & d)
		t := bits.RotateLeft32(a, 5) + f + e + w[i] + _K2
		a, b, c, d, e = t, a, bits.RotateLeft32(b, 30), c, d
	}
	for ; i < 80; i++ {
		f := b ^ c ^ d
		t := bits.RotateLeft32(a, 5) + f + e + w[i] + _K3
		a, b, c, d, e = t, a, bits.RotateLeft32(b, 30), c, d
	}

	h[0] += a
	h[1] += b
	h[2] += c
	h[3] += d
	h[4] += e
}
