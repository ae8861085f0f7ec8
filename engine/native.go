//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package engine

import (
	"hash"
)

// Native implements the Hash interface on top of a hash.Hash
// implementation. This allows library-backed algorithms to be used
// interchangeably with the from-scratch Engine. Native enforces the
// same single-use Finish policy as Engine.
type Native struct {
	name     string
	h        hash.Hash
	finished bool
}

var _ Hash = (*Native)(nil)

// NewNative creates a new native hash with the algorithm name and
// hash implementation.
func NewNative(name string, h hash.Hash) *Native {
	if h == nil {
		panic("engine: nil native hash")
	}
	h.Reset()
	return &Native{
		name: name,
		h:    h,
	}
}

// Name implements Hash.Name.
func (n *Native) Name() string {
	return n.name
}

// BlockSize implements Hash.BlockSize.
func (n *Native) BlockSize() int {
	return n.h.BlockSize()
}

// Size implements Hash.Size.
func (n *Native) Size() int {
	return n.h.Size()
}

// Reset implements Hash.Reset.
func (n *Native) Reset() {
	if n.h == nil {
		panic(ErrNotReset)
	}
	n.h.Reset()
	n.finished = false
}

// Update implements Hash.Update.
func (n *Native) Update(data []byte) {
	n.checkReady()
	// hash.Hash.Write never returns an error.
	n.h.Write(data)
}

// Write implements io.Writer.
func (n *Native) Write(p []byte) (int, error) {
	n.Update(p)
	return len(p), nil
}

// Finish implements Hash.Finish.
func (n *Native) Finish() Digest {
	n.checkReady()
	n.finished = true
	return Digest(n.h.Sum(nil))
}

func (n *Native) checkReady() {
	if n.h == nil {
		panic(ErrNotReset)
	}
	if n.finished {
		panic(ErrFinished)
	}
}
