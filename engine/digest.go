//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package engine

import (
	"bytes"
	"encoding/base32"
	"encoding/hex"
	"fmt"
	"strings"
)

// Digest is the output of a hash computation.
type Digest []byte

// Hex returns the digest as lowercase hexadecimal string.
func (d Digest) Hex() string {
	return hex.EncodeToString(d)
}

// Base32 returns the digest encoded with the standard base32
// encoding.
func (d Digest) Base32() string {
	return base32.StdEncoding.EncodeToString(d)
}

// Equal tests if the digests are equal.
func (d Digest) Equal(o Digest) bool {
	return bytes.Equal(d, o)
}

func (d Digest) String() string {
	return d.Hex()
}

// ParseHex parses the hexadecimal digest string. The parsing is
// case-insensitive.
func ParseHex(s string) (Digest, error) {
	data, err := hex.DecodeString(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return nil, fmt.Errorf("invalid digest '%s': %w", s, err)
	}
	return Digest(data), nil
}

// ParseBase32 parses the base32 encoded digest string.
func ParseBase32(s string) (Digest, error) {
	data, err := base32.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("invalid digest '%s': %w", s, err)
	}
	return Digest(data), nil
}
