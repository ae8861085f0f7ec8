//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package engine

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/markkurossi/mdhash/codec"
	"github.com/markkurossi/mdhash/padding"
)

// recorder is a test algorithm that records all compressed blocks and
// folds them into a 2-word state by word-wise addition.
type recorder struct {
	blockSize int
	order     codec.Order
	blocks    [][]byte
}

func (r *recorder) Name() string           { return "recorder" }
func (r *recorder) BlockSize() int         { return r.blockSize }
func (r *recorder) Size() int              { return 8 }
func (r *recorder) InitialState() []uint32 { return []uint32{1, 2} }
func (r *recorder) Order() codec.Order     { return r.order }

func (r *recorder) Compress(h []uint32, block []byte) {
	if len(block) != r.blockSize {
		panic("invalid block size")
	}
	r.blocks = append(r.blocks, append([]byte(nil), block...))
	for i := 0; i+4 <= len(block); i += 4 {
		h[(i/4)%2] += r.order.Uint32(block[i:])
	}
}

func (r *recorder) data() []byte {
	var result []byte
	for _, b := range r.blocks {
		result = append(result, b...)
	}
	return result
}

func message(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i*7 + 3)
	}
	return data
}

func TestBlocks(t *testing.T) {
	for _, n := range []int{0, 1, 55, 56, 63, 64, 65, 119, 120, 128, 1000} {
		alg := &recorder{
			blockSize: 64,
			order:     codec.BigEndian,
		}
		msg := message(n)
		e := New(alg)
		e.Update(msg)
		e.Finish()

		expected := padding.Append(append([]byte(nil), msg...), n%64,
			uint64(n)*8, 64, codec.BigEndian)
		if diff := cmp.Diff(expected, alg.data()); diff != "" {
			t.Errorf("message %d: compressed data mismatch (-want +got):\n%s",
				n, diff)
		}
	}
}

func TestChunking(t *testing.T) {
	msg := message(300)

	ref := &recorder{
		blockSize: 64,
		order:     codec.LittleEndian,
	}
	want := Sum(ref, msg)

	for _, chunk := range []int{1, 3, 17, 63, 64, 65, 128, 299} {
		alg := &recorder{
			blockSize: 64,
			order:     codec.LittleEndian,
		}
		e := New(alg)
		for i := 0; i < len(msg); i += chunk {
			end := i + chunk
			if end > len(msg) {
				end = len(msg)
			}
			e.Update(msg[i:end])
			e.Update(nil)
		}
		got := e.Finish()
		if !got.Equal(want) {
			t.Errorf("chunk %d: got %x, expected %x", chunk, got, want)
		}
		if !bytes.Equal(alg.data(), ref.data()) {
			t.Errorf("chunk %d: compressed blocks differ", chunk)
		}
	}
}

func TestResetDiscards(t *testing.T) {
	alg := &recorder{
		blockSize: 16,
		order:     codec.BigEndian,
	}
	empty := Sum(alg, nil)

	e := New(alg)
	e.Update(message(37))
	e.Reset()
	e.Reset()
	if got := e.Finish(); !got.Equal(empty) {
		t.Errorf("Reset did not discard state: got %x, expected %x",
			got, empty)
	}

	e.Reset()
	if got := e.Finish(); !got.Equal(empty) {
		t.Errorf("reuse after Reset: got %x, expected %x", got, empty)
	}
}

func expectPanic(t *testing.T, name string, target error, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("%s did not panic", name)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("%s: unexpected panic %v", name, r)
		}
	}()
	f()
}

func TestMisuse(t *testing.T) {
	alg := &recorder{
		blockSize: 64,
		order:     codec.BigEndian,
	}
	e := New(alg)
	e.Finish()

	expectPanic(t, "Finish after Finish", ErrFinished, func() {
		e.Finish()
	})
	expectPanic(t, "Update after Finish", ErrFinished, func() {
		e.Update([]byte{1})
	})

	var zero Engine
	expectPanic(t, "Update before Reset", ErrNotReset, func() {
		zero.Update([]byte{1})
	})
	expectPanic(t, "Finish before Reset", ErrNotReset, func() {
		zero.Finish()
	})
}

func TestString(t *testing.T) {
	e := New(&recorder{
		blockSize: 64,
	})
	if e.String() != "recorder[ready]" {
		t.Errorf("String: %s", e)
	}
	e.Finish()
	if e.String() != "recorder[finished]" {
		t.Errorf("String: %s", e)
	}
}

func TestDigest(t *testing.T) {
	d := Digest{0xda, 0x39, 0xa3, 0xee}
	if d.String() != "da39a3ee" {
		t.Errorf("String: %s", d)
	}
	parsed, err := ParseHex("DA39A3EE")
	if err != nil {
		t.Fatalf("ParseHex: %v", err)
	}
	if !parsed.Equal(d) {
		t.Errorf("ParseHex: got %x", parsed)
	}
	parsed, err = ParseBase32(d.Base32())
	if err != nil {
		t.Fatalf("ParseBase32: %v", err)
	}
	if !parsed.Equal(d) {
		t.Errorf("ParseBase32: got %x", parsed)
	}
	if _, err := ParseHex("xyz"); err == nil {
		t.Errorf("ParseHex accepted invalid input")
	}
}
