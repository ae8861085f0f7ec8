//
// main_test.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/markkurossi/mdhash"
	"github.com/markkurossi/mdhash/algorithm"
	"github.com/markkurossi/mdhash/env"
)

func TestVerify(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report")
	ok, err := verify("../../testdata", true, out, false)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !ok {
		t.Errorf("verification failed")
	}
	data, err := os.ReadFile(out + ".html")
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	if !strings.Contains(string(data), "sha1.toml") {
		t.Errorf("report does not list sha1.toml")
	}

	if _, err := verify("../../testdata/missing.toml", true, "", false); err == nil {
		t.Errorf("verify accepted missing file")
	}
}

func TestSumFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(file, []byte("abc"), 0644); err != nil {
		t.Fatal(err)
	}
	config := &env.Config{
		Algorithm: "md5",
	}
	h, err := algorithm.Named(config.GetAlgorithm())
	if err != nil {
		t.Fatal(err)
	}
	if err := sumFile(config, h, file); err != nil {
		t.Errorf("sumFile: %v", err)
	}
	if err := sumFile(config, h, file+".missing"); err == nil {
		t.Errorf("sumFile accepted missing file")
	}
}

func TestHMACKey(t *testing.T) {
	tests := []struct {
		set      map[string]bool
		key      string
		keyHex   string
		input    string
		useHMAC  bool
		expected string
	}{
		{
			expected: "da39a3ee5e6b4b0d3255bfef95601890afd80709",
		},
		{
			set:      map[string]bool{"k": true},
			useHMAC:  true,
			expected: "fbdb1d1b18aa6c08324b7d64b71fb76370690e1d",
		},
		{
			set:      map[string]bool{"kx": true},
			useHMAC:  true,
			expected: "fbdb1d1b18aa6c08324b7d64b71fb76370690e1d",
		},
		{
			set:      map[string]bool{"k": true},
			key:      "vapor",
			input:    "hello",
			useHMAC:  true,
			expected: "bb2a9aabb537902647f3f40bfecb679bf0d7d64b",
		},
		{
			set:      map[string]bool{"kx": true},
			keyHex:   "7661706f72",
			input:    "hello",
			useHMAC:  true,
			expected: "bb2a9aabb537902647f3f40bfecb679bf0d7d64b",
		},
	}
	for idx, test := range tests {
		key, useHMAC, err := hmacKey(test.set, test.key, test.keyHex)
		if err != nil {
			t.Fatalf("test-%d: hmacKey: %v", idx, err)
		}
		if useHMAC != test.useHMAC {
			t.Errorf("test-%d: useHMAC=%v, expected %v",
				idx, useHMAC, test.useHMAC)
		}
		h, err := newHash(nil, key, useHMAC)
		if err != nil {
			t.Fatalf("test-%d: newHash: %v", idx, err)
		}
		digest, err := mdhash.SumReader(nil, h, strings.NewReader(test.input))
		if err != nil {
			t.Fatalf("test-%d: SumReader: %v", idx, err)
		}
		if digest.String() != test.expected {
			t.Errorf("test-%d: got %s, expected %s", idx, digest, test.expected)
		}
	}

	_, _, err := hmacKey(map[string]bool{"kx": true}, "", "zz")
	if err == nil {
		t.Errorf("hmacKey accepted invalid hex key")
	}
}
