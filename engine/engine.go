//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package engine implements an incremental Merkle-Damgard hash
// engine. The engine is generic over the compression function: any
// Algorithm defining its block size, chaining state, and compression
// step can be plugged into it.
//
// An engine is used as follows:
//
//	e := engine.New(sha1.Algorithm{})
//	e.Update([]byte("The quick brown fox "))
//	e.Update([]byte("jumps over the lazy dog"))
//	digest := e.Finish()
//
// The Finish method is single-use. The engine must be Reset before it
// can compute another digest.
package engine

import (
	"errors"
	"fmt"
	"io"

	"github.com/markkurossi/mdhash/codec"
	"github.com/markkurossi/mdhash/padding"
)

var (
	// ErrNotReset is the panic value when an engine is used before
	// it is reset.
	ErrNotReset = errors.New("engine: hash not reset")

	// ErrFinished is the panic value when an engine is updated or
	// finished after computing its digest.
	ErrFinished = errors.New("engine: hash already finished")
)

// Hash defines the streaming interface of hash engines. It is
// implemented by the from-scratch Engine, the Native adapter, and by
// keyed constructions built on top of them.
type Hash interface {
	io.Writer

	// Name returns the canonical name of the algorithm.
	Name() string

	// BlockSize returns the block size of the algorithm in bytes.
	BlockSize() int

	// Size returns the digest size of the algorithm in bytes.
	Size() int

	// Reset restores the initial state. It is idempotent and it can
	// be called at any time.
	Reset()

	// Update adds the argument data to the hash computation.
	Update(data []byte)

	// Finish completes the hash computation and returns the digest.
	Finish() Digest
}

// Algorithm defines a Merkle-Damgard compression function.
type Algorithm interface {
	// Name returns the canonical name of the algorithm.
	Name() string

	// BlockSize returns the compression function's block size in
	// bytes.
	BlockSize() int

	// Size returns the digest size in bytes. The digest is the
	// serialized chaining state so Size must be 4*len(InitialState()).
	Size() int

	// InitialState returns the initial chaining state.
	InitialState() []uint32

	// Compress folds one block into the chaining state h. The block
	// is always exactly BlockSize bytes long.
	Compress(h []uint32, block []byte)

	// Order returns the byte order of the message length field and
	// the digest serialization.
	Order() codec.Order
}

type state int

const (
	stCreated state = iota
	stReady
	stFinished
)

var states = map[state]string{
	stCreated:  "created",
	stReady:    "ready",
	stFinished: "finished",
}

func (s state) String() string {
	name, ok := states[s]
	if ok {
		return name
	}
	return fmt.Sprintf("{state %d}", s)
}

// Engine implements the Hash interface for an Algorithm. The zero
// value is not usable; engines are created with New.
type Engine struct {
	alg   Algorithm
	h     []uint32
	x     []byte
	nx    int
	bits  uint64
	pad   []byte
	state state
}

var _ Hash = (*Engine)(nil)

// New creates a new engine for the algorithm. The returned engine is
// reset and ready for updates.
func New(alg Algorithm) *Engine {
	iv := alg.InitialState()
	if alg.Size() != len(iv)*4 {
		panic(fmt.Sprintf("engine: %s: digest size %d does not match state %d",
			alg.Name(), alg.Size(), len(iv)))
	}
	bs := alg.BlockSize()
	e := &Engine{
		alg: alg,
		h:   make([]uint32, len(iv)),
		x:   make([]byte, bs),
		pad: make([]byte, 0, 2*bs),
	}
	e.Reset()
	return e
}

// Name implements Hash.Name.
func (e *Engine) Name() string {
	return e.alg.Name()
}

// BlockSize implements Hash.BlockSize.
func (e *Engine) BlockSize() int {
	return e.alg.BlockSize()
}

// Size implements Hash.Size.
func (e *Engine) Size() int {
	return e.alg.Size()
}

// Reset implements Hash.Reset.
func (e *Engine) Reset() {
	if e.alg == nil {
		panic(ErrNotReset)
	}
	copy(e.h, e.alg.InitialState())
	clear(e.x)
	e.nx = 0
	e.bits = 0
	e.state = stReady
}

// Update implements Hash.Update.
func (e *Engine) Update(data []byte) {
	e.checkReady()
	e.bits += uint64(len(data)) << 3
	e.write(data)
}

// Write implements io.Writer. It never returns an error.
func (e *Engine) Write(p []byte) (int, error) {
	e.Update(p)
	return len(p), nil
}

// Finish implements Hash.Finish.
func (e *Engine) Finish() Digest {
	e.checkReady()

	order := e.alg.Order()
	e.pad = padding.Append(e.pad[:0], e.nx, e.bits, len(e.x), order)
	e.write(e.pad)
	if e.nx != 0 {
		panic(fmt.Sprintf("engine: %s: %d bytes left after padding",
			e.alg.Name(), e.nx))
	}
	e.state = stFinished

	return Digest(order.AppendWords(make([]byte, 0, e.alg.Size()), e.h))
}

func (e *Engine) checkReady() {
	switch e.state {
	case stReady:
	case stFinished:
		panic(ErrFinished)
	default:
		panic(ErrNotReset)
	}
}

// write feeds data to the compression function one block at a
// time. Partial blocks are buffered in e.x.
func (e *Engine) write(data []byte) {
	bs := len(e.x)
	if e.nx > 0 {
		n := copy(e.x[e.nx:], data)
		e.nx += n
		if e.nx == bs {
			e.alg.Compress(e.h, e.x)
			e.nx = 0
		}
		data = data[n:]
	}
	for len(data) >= bs {
		e.alg.Compress(e.h, data[:bs])
		data = data[bs:]
	}
	if len(data) > 0 {
		e.nx = copy(e.x, data)
	}
	if e.nx >= bs {
		panic(fmt.Sprintf("engine: buffer overflow: %d >= %d", e.nx, bs))
	}
}

// Sum computes the digest of data with a fresh engine for the
// algorithm.
func Sum(alg Algorithm, data []byte) Digest {
	e := New(alg)
	e.Update(data)
	return e.Finish()
}

func (e *Engine) String() string {
	if e.alg == nil {
		return fmt.Sprintf("{Engine %s}", e.state)
	}
	return fmt.Sprintf("%s[%s]", e.alg.Name(), e.state)
}
