//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package hmac implements the keyed-hash message authentication code
// (HMAC) as defined in RFC 2104. The construction is generic over any
// engine.Hash.
package hmac

import (
	"fmt"

	"github.com/markkurossi/mdhash/engine"
)

const (
	ipad = 0x36
	opad = 0x5c
)

// MAC implements HMAC over an engine.Hash. MAC itself implements
// engine.Hash and follows the same single-use Finish policy.
type MAC struct {
	inner engine.Hash
	outer engine.Hash
	ipad  []byte
	opad  []byte
}

var _ engine.Hash = (*MAC)(nil)

// New creates a new HMAC with the hash constructor and key. The
// constructor must return a fresh hash instance on each call. The
// instances are compared for identity so they must be pointers or
// other comparable values.
func New(newHash func() engine.Hash, key []byte) *MAC {
	inner := newHash()
	outer := newHash()
	if inner == outer {
		panic("hmac: hash constructor returned the same instance twice")
	}
	bs := inner.BlockSize()

	k := make([]byte, bs)
	if len(key) > bs {
		kh := newHash()
		kh.Update(key)
		key = kh.Finish()
		if len(key) > bs {
			panic(fmt.Sprintf("hmac: %s: digest size %d exceeds block %d",
				inner.Name(), len(key), bs))
		}
	}
	copy(k, key)

	mac := &MAC{
		inner: inner,
		outer: outer,
		ipad:  make([]byte, bs),
		opad:  make([]byte, bs),
	}
	for i, b := range k {
		mac.ipad[i] = b ^ ipad
		mac.opad[i] = b ^ opad
	}
	mac.Reset()

	return mac
}

// Name implements engine.Hash.Name.
func (mac *MAC) Name() string {
	return "hmac-" + mac.inner.Name()
}

// BlockSize implements engine.Hash.BlockSize.
func (mac *MAC) BlockSize() int {
	return mac.inner.BlockSize()
}

// Size implements engine.Hash.Size.
func (mac *MAC) Size() int {
	return mac.outer.Size()
}

// Reset implements engine.Hash.Reset. The key is retained.
func (mac *MAC) Reset() {
	mac.inner.Reset()
	mac.inner.Update(mac.ipad)
	mac.outer.Reset()
}

// Update implements engine.Hash.Update.
func (mac *MAC) Update(data []byte) {
	mac.inner.Update(data)
}

// Write implements io.Writer.
func (mac *MAC) Write(p []byte) (int, error) {
	mac.Update(p)
	return len(p), nil
}

// Finish implements engine.Hash.Finish.
func (mac *MAC) Finish() engine.Digest {
	sum := mac.inner.Finish()
	mac.outer.Update(mac.opad)
	mac.outer.Update(sum)
	return mac.outer.Finish()
}

// Sum computes the HMAC of the message with the hash constructor and
// key.
func Sum(newHash func() engine.Hash, key, message []byte) engine.Digest {
	mac := New(newHash, key)
	mac.Update(message)
	return mac.Finish()
}
