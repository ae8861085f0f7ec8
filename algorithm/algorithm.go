//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package algorithm implements a registry of named hash algorithms.
// The registry holds the from-scratch engines of this module and
// native engines backed by the Go standard library and
// golang.org/x/crypto. Names are case-insensitive.
//
//	h, err := algorithm.Named("sha256")
package algorithm

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"
	"sort"
	"strings"
	"sync"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/md4"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"

	mdmd5 "github.com/markkurossi/mdhash/md5"
	mdsha1 "github.com/markkurossi/mdhash/sha1"

	"github.com/markkurossi/mdhash/engine"
)

// Factory creates a new hash instance.
type Factory func() engine.Hash

var (
	// ErrUnknownAlgorithm is returned when the algorithm name is not
	// registered.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	mu       sync.RWMutex
	registry = make(map[string]Factory)
)

func init() {
	MustRegister("sha1", func() engine.Hash {
		return mdsha1.New()
	})
	MustRegister("md5", func() engine.Hash {
		return mdmd5.New()
	})

	registerNative("sha1-go", sha1.New)
	registerNative("md5-go", md5.New)
	registerNative("md4", md4.New)
	registerNative("ripemd160", ripemd160.New)
	registerNative("sha224", sha256.New224)
	registerNative("sha256", sha256.New)
	registerNative("sha384", sha512.New384)
	registerNative("sha512", sha512.New)
	registerNative("sha512-256", sha512.New512_256)
	registerNative("sha3-256", sha3.New256)
	registerNative("sha3-512", sha3.New512)
	registerNative("blake2b-256", func() hash.Hash {
		return mustHash(blake2b.New256(nil))
	})
	registerNative("blake2b-512", func() hash.Hash {
		return mustHash(blake2b.New512(nil))
	})
	registerNative("blake2s-256", func() hash.Hash {
		return mustHash(blake2s.New256(nil))
	})
}

func registerNative(name string, f func() hash.Hash) {
	MustRegister(name, func() engine.Hash {
		return engine.NewNative(name, f())
	})
}

func mustHash(h hash.Hash, err error) hash.Hash {
	if err != nil {
		panic(err)
	}
	return h
}

// Register registers the hash factory with the algorithm name. It
// returns an error if the name is empty or already registered.
func Register(name string, factory Factory) error {
	name = canonical(name)
	if len(name) == 0 {
		return errors.New("algorithm name cannot be empty")
	}
	if factory == nil {
		return errors.New("factory cannot be nil")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, ok := registry[name]; ok {
		return fmt.Errorf("algorithm %q already registered", name)
	}
	registry[name] = factory
	return nil
}

// MustRegister registers the hash factory or panics on error.
func MustRegister(name string, factory Factory) {
	if err := Register(name, factory); err != nil {
		panic(err)
	}
}

// Unregister removes the algorithm from the registry.
func Unregister(name string) error {
	name = canonical(name)

	mu.Lock()
	defer mu.Unlock()

	if _, ok := registry[name]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAlgorithm, name)
	}
	delete(registry, name)
	return nil
}

// Lookup returns the hash factory for the algorithm name.
func Lookup(name string) (Factory, error) {
	mu.RLock()
	factory, ok := registry[canonical(name)]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s (supported: %s)", ErrUnknownAlgorithm,
			name, strings.Join(Names(), ", "))
	}
	return factory, nil
}

// Named creates a new hash instance for the algorithm name.
func Named(name string) (engine.Hash, error) {
	factory, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return factory(), nil
}

// IsSupported tests if the algorithm name is registered.
func IsSupported(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := registry[canonical(name)]
	return ok
}

// Names returns the sorted names of the registered algorithms.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	var names []string
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func canonical(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
