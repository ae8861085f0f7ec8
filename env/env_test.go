//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefaults(t *testing.T) {
	var config *Config
	if config.GetAlgorithm() != DefaultAlgorithm {
		t.Errorf("nil config: algorithm %s", config.GetAlgorithm())
	}
	config = &Config{}
	if config.GetBufferSize() != DefaultBufferSize {
		t.Errorf("zero config: buffer size %d", config.GetBufferSize())
	}
	config = &Config{
		Algorithm:  "md5",
		BufferSize: 100,
	}
	if config.GetAlgorithm() != "md5" || config.GetBufferSize() != 100 {
		t.Errorf("config values ignored: %v", config)
	}
}

func writeFile(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mdhash.toml")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
algorithm = "sha256"
buffer_size = 4096
verbose = true
`)
	config, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	expected := &Config{
		Algorithm:  "sha256",
		BufferSize: 4096,
		Verbose:    true,
	}
	if diff := cmp.Diff(expected, config); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadErrors(t *testing.T) {
	for _, data := range []string{
		`algorithm = `,
		`buffer_size = -1`,
		`hash = "sha1"`,
	} {
		if _, err := Load(writeFile(t, data)); err == nil {
			t.Errorf("Load(%q) succeeded", data)
		}
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Errorf("Load of missing file succeeded")
	}
}
