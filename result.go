//
// Copyright (c) 2019-2025 Markku Rossi
//
// All rights reserved.
//

package mdhash

import (
	"fmt"
	"io"

	"github.com/markkurossi/mdhash/engine"
	"github.com/markkurossi/mdhash/env"
)

// Format formats the digest with the configured encoding.
func Format(config *env.Config, digest engine.Digest) string {
	if config != nil && config.Base32 {
		return digest.Base32()
	}
	return digest.Hex()
}

// PrintResult prints the digest of the named input in the
// conventional checksum tool format.
func PrintResult(out io.Writer, config *env.Config, h engine.Hash,
	digest engine.Digest, name string) error {

	var err error
	if config != nil && config.Verbose {
		_, err = fmt.Fprintf(out, "%s (%s) = %s\n", h.Name(), name,
			Format(config, digest))
	} else {
		_, err = fmt.Fprintf(out, "%s  %s\n", Format(config, digest), name)
	}
	return err
}
