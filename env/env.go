//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package env implements global environment for the hashing tools.
package env

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

const (
	// DefaultAlgorithm specifies the default hash algorithm.
	DefaultAlgorithm = "sha1"

	// DefaultBufferSize specifies the default read buffer size for
	// hashing streams.
	DefaultBufferSize = 32 * 1024
)

// Config defines the global configuration for hashing operations.
// Config must not be modified after being passed to any module. It is
// safe for concurrent use by multiple modules as they do not modify
// it.
type Config struct {
	Algorithm  string `toml:"algorithm"`
	BufferSize int    `toml:"buffer_size"`
	Base32     bool   `toml:"base32"`
	Verbose    bool   `toml:"verbose"`
}

// GetAlgorithm returns the hash algorithm name.
func (config *Config) GetAlgorithm() string {
	if config != nil && len(config.Algorithm) > 0 {
		return config.Algorithm
	}
	return DefaultAlgorithm
}

// GetBufferSize returns the read buffer size for hashing streams.
func (config *Config) GetBufferSize() int {
	if config != nil && config.BufferSize > 0 {
		return config.BufferSize
	}
	return DefaultBufferSize
}

// Load loads the configuration from the TOML file.
func Load(path string) (*Config, error) {
	config := new(Config)
	md, err := toml.DecodeFile(path, config)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w",
			path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown config keys: %v", path, undecoded)
	}
	if config.BufferSize < 0 {
		return nil, fmt.Errorf("%s: invalid buffer_size %d",
			path, config.BufferSize)
	}
	return config, nil
}
