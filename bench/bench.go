//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package bench implements throughput benchmarks for the registered
// hash algorithms and their HMAC constructions.
package bench

import (
	"fmt"
	"time"

	"golang.org/x/crypto/chacha20"

	"github.com/markkurossi/mdhash/algorithm"
	"github.com/markkurossi/mdhash/hmac"
)

// FileSize specifies a data size in bytes.
type FileSize uint64

func (s FileSize) String() string {
	if s > 1000*1000*1000*1000 {
		return fmt.Sprintf("%dTB", s/(1000*1000*1000*1000))
	} else if s > 1000*1000*1000 {
		return fmt.Sprintf("%dGB", s/(1000*1000*1000))
	} else if s > 1000*1000 {
		return fmt.Sprintf("%dMB", s/(1000*1000))
	} else if s > 1000 {
		return fmt.Sprintf("%dkB", s/1000)
	} else {
		return fmt.Sprintf("%dB", s)
	}
}

// Params define benchmark parameters.
type Params struct {
	Size   int
	Rounds int
	Seed   []byte
	HMAC   bool
}

// Input creates size bytes of deterministic pseudorandom benchmark
// input from the seed.
func Input(seed []byte, size int) []byte {
	key := make([]byte, chacha20.KeySize)
	for i := 0; len(seed) > 0 && i < len(key); i++ {
		key[i] = seed[i%len(seed)]
	}
	nonce := make([]byte, chacha20.NonceSize)
	c, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		panic(err)
	}
	out := make([]byte, size)
	c.XORKeyStream(out, out)
	return out
}

// Run benchmarks the named algorithms.
func Run(names []string, params Params) (*Timing, error) {
	if params.Size <= 0 || params.Rounds <= 0 {
		return nil, fmt.Errorf("invalid benchmark size %d or rounds %d",
			params.Size, params.Rounds)
	}
	input := Input(params.Seed, params.Size)
	bytes := FileSize(params.Size * params.Rounds)

	// Resolve algorithms before timing.
	var factories []algorithm.Factory
	for _, name := range names {
		factory, err := algorithm.Lookup(name)
		if err != nil {
			return nil, err
		}
		factories = append(factories, factory)
	}

	timing := NewTiming("Digest", "Block")
	for idx, factory := range factories {
		h := factory()
		cols := []string{
			FileSize(h.Size()).String(),
			FileSize(h.BlockSize()).String(),
		}
		for i := 0; i < params.Rounds; i++ {
			h.Reset()
			h.Update(input)
			h.Finish()
		}
		digestEnd := time.Now()

		if !params.HMAC {
			timing.Sample(names[idx], bytes, cols)
			continue
		}
		keyStart := time.Now()
		mac := hmac.New(factory, input[:min(len(input), h.BlockSize())])
		keySetup := time.Since(keyStart)
		for i := 0; i < params.Rounds; i++ {
			mac.Reset()
			mac.Update(input)
			mac.Finish()
		}
		sample := timing.Sample(names[idx], 2*bytes, cols)
		sample.SubSample("digest", bytes, digestEnd)
		sample.SubSample("hmac", bytes, sample.End)
		sample.AbsSubSample("key setup", 0, keySetup)
	}
	return timing, nil
}
