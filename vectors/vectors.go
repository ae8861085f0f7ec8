//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Package vectors implements known-answer test vectors for hash
// algorithms and HMAC. Vectors are stored in TOML files:
//
//	[[digest]]
//	algorithm = "sha1"
//	input = "abc"
//	expected = "a9993e364706816aba3e25717850c26c9cd0d89d"
//
//	[[hmac]]
//	algorithm = "sha1"
//	key = "vapor"
//	input = "hello"
//	expected = "bb2a9aabb537902647f3f40bfecb679bf0d7d64b"
//
// Inputs and keys can alternatively be given in hex with the input_hex
// and key_hex keys. The repeat key repeats the input, and the chunk key
// feeds the input to the hash in chunks of the given size.
package vectors

import (
	"encoding/hex"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/markkurossi/mdhash/algorithm"
	"github.com/markkurossi/mdhash/engine"
	"github.com/markkurossi/mdhash/hmac"
)

// Kind specifies the vector type.
type Kind int

// Vector types.
const (
	KindDigest Kind = iota
	KindHMAC
)

var kinds = map[Kind]string{
	KindDigest: "digest",
	KindHMAC:   "hmac",
}

func (k Kind) String() string {
	name, ok := kinds[k]
	if ok {
		return name
	}
	return fmt.Sprintf("{Kind %d}", k)
}

// Vector defines a known-answer test vector.
type Vector struct {
	Kind      Kind   `toml:"-"`
	Algorithm string `toml:"algorithm"`
	Comment   string `toml:"comment"`
	Key       string `toml:"key"`
	KeyHex    string `toml:"key_hex"`
	Input     string `toml:"input"`
	InputHex  string `toml:"input_hex"`
	Repeat    int    `toml:"repeat"`
	Chunk     int    `toml:"chunk"`
	Heavy     bool   `toml:"heavy"`
	Expected  string `toml:"expected"`
}

func (v *Vector) String() string {
	label := v.Comment
	if len(label) == 0 {
		label = v.Input
		if len(v.InputHex) > 0 {
			label = "0x" + v.InputHex
		}
		if len(label) > 32 {
			label = label[:29] + "..."
		}
		label = fmt.Sprintf("%q", label)
		if v.Repeat > 1 {
			label += fmt.Sprintf("*%d", v.Repeat)
		}
	}
	return fmt.Sprintf("%s-%s(%s)", v.Kind, v.Algorithm, label)
}

// File contains the vectors of a vector file.
type File struct {
	Name    string   `toml:"-"`
	Digests []Vector `toml:"digest"`
	HMACs   []Vector `toml:"hmac"`
}

// Vectors returns all vectors of the file.
func (f *File) Vectors() []*Vector {
	var result []*Vector
	for i := range f.Digests {
		result = append(result, &f.Digests[i])
	}
	for i := range f.HMACs {
		result = append(result, &f.HMACs[i])
	}
	return result
}

// Load loads the vector file.
func Load(path string) (*File, error) {
	file := &File{
		Name: path,
	}
	md, err := toml.DecodeFile(path, file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode vector file %s: %w",
			path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown keys: %v", path, undecoded)
	}
	for i := range file.Digests {
		file.Digests[i].Kind = KindDigest
	}
	for i := range file.HMACs {
		file.HMACs[i].Kind = KindHMAC
	}
	for _, v := range file.Vectors() {
		if len(v.Algorithm) == 0 {
			return nil, fmt.Errorf("%s: %s: no algorithm", path, v)
		}
		if len(v.Expected) == 0 {
			return nil, fmt.Errorf("%s: %s: no expected digest", path, v)
		}
		if _, err := engine.ParseHex(v.Expected); err != nil {
			return nil, fmt.Errorf("%s: %s: %w", path, v, err)
		}
		if len(v.Input) > 0 && len(v.InputHex) > 0 {
			return nil, fmt.Errorf("%s: %s: both input and input_hex",
				path, v)
		}
		if v.Repeat < 0 || v.Chunk < 0 {
			return nil, fmt.Errorf("%s: %s: negative repeat or chunk", path, v)
		}
	}
	return file, nil
}

// LoadDir loads all .toml vector files from the directory tree.
func LoadDir(dir string) ([]*File, error) {
	var files []*File
	err := filepath.WalkDir(dir,
		func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.HasSuffix(path, ".toml") {
				return nil
			}
			file, err := Load(path)
			if err != nil {
				return err
			}
			files = append(files, file)
			return nil
		})
	if err != nil {
		return nil, err
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].Name < files[j].Name
	})
	return files, nil
}

// LoadPath loads the vector file or all vector files from the
// directory.
func LoadPath(path string) ([]*File, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if fi.IsDir() {
		return LoadDir(path)
	}
	file, err := Load(path)
	if err != nil {
		return nil, err
	}
	return []*File{file}, nil
}

// Data returns the vector's input data.
func (v *Vector) Data() ([]byte, error) {
	data := []byte(v.Input)
	if len(v.InputHex) > 0 {
		var err error
		data, err = hex.DecodeString(v.InputHex)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid input_hex: %w", v, err)
		}
	}
	if v.Repeat > 1 {
		data = []byte(strings.Repeat(string(data), v.Repeat))
	}
	return data, nil
}

// KeyData returns the vector's HMAC key.
func (v *Vector) KeyData() ([]byte, error) {
	if len(v.KeyHex) > 0 {
		key, err := hex.DecodeString(v.KeyHex)
		if err != nil {
			return nil, fmt.Errorf("%s: invalid key_hex: %w", v, err)
		}
		return key, nil
	}
	return []byte(v.Key), nil
}

// Compute computes the vector's digest.
func (v *Vector) Compute() (engine.Digest, error) {
	factory, err := algorithm.Lookup(v.Algorithm)
	if err != nil {
		return nil, err
	}
	data, err := v.Data()
	if err != nil {
		return nil, err
	}

	var h engine.Hash
	switch v.Kind {
	case KindDigest:
		h = factory()
	case KindHMAC:
		key, err := v.KeyData()
		if err != nil {
			return nil, err
		}
		h = hmac.New(factory, key)
	default:
		return nil, fmt.Errorf("%s: invalid vector kind", v)
	}

	if v.Chunk > 0 {
		for len(data) > 0 {
			n := min(v.Chunk, len(data))
			h.Update(data[:n])
			data = data[n:]
		}
	} else {
		h.Update(data)
	}
	return h.Finish(), nil
}

// Result contains the result of a vector check.
type Result struct {
	Vector *Vector
	Got    engine.Digest
	Err    error
}

// OK tests if the vector check succeeded.
func (r *Result) OK() bool {
	if r.Err != nil {
		return false
	}
	expected, err := engine.ParseHex(r.Vector.Expected)
	if err != nil {
		return false
	}
	return r.Got.Equal(expected)
}

// Check checks the vector.
func (v *Vector) Check() *Result {
	got, err := v.Compute()
	return &Result{
		Vector: v,
		Got:    got,
		Err:    err,
	}
}

// Check checks all vectors of the file. If skipHeavy is true, the
// heavy vectors are skipped.
func (f *File) Check(skipHeavy bool) []*Result {
	var results []*Result
	for _, v := range f.Vectors() {
		if v.Heavy && skipHeavy {
			continue
		}
		results = append(results, v.Check())
	}
	return results
}
