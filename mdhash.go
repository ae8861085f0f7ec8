//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package mdhash implements streaming message digests and message
// authentication codes over the algorithms of the algorithm registry.
//
// The from-scratch Merkle-Damgard engine lives in the engine package,
// the concrete compression functions in the sha1 and md5 packages, and
// the generic HMAC construction in the hmac package.
package mdhash

import (
	"errors"
	"io"

	"github.com/markkurossi/mdhash/algorithm"
	"github.com/markkurossi/mdhash/engine"
	"github.com/markkurossi/mdhash/env"
	"github.com/markkurossi/mdhash/hmac"
)

// New creates a new hash for the configured algorithm.
func New(config *env.Config) (engine.Hash, error) {
	return algorithm.Named(config.GetAlgorithm())
}

// NewHMAC creates a new HMAC for the configured algorithm and key.
func NewHMAC(config *env.Config, key []byte) (engine.Hash, error) {
	factory, err := algorithm.Lookup(config.GetAlgorithm())
	if err != nil {
		return nil, err
	}
	return hmac.New(factory, key), nil
}

// SumReader resets the hash h, feeds it all data from in, and returns
// the resulting digest.
func SumReader(config *env.Config, h engine.Hash, in io.Reader) (
	engine.Digest, error) {

	h.Reset()
	buf := make([]byte, config.GetBufferSize())
	for {
		n, err := in.Read(buf)
		if n > 0 {
			h.Update(buf[:n])
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
	}
	return h.Finish(), nil
}

// HMACReader computes the HMAC of all data from in with the configured
// algorithm and key.
func HMACReader(config *env.Config, key []byte, in io.Reader) (
	engine.Digest, error) {

	h, err := NewHMAC(config, key)
	if err != nil {
		return nil, err
	}
	return SumReader(config, h, in)
}
