//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package hmac

import (
	gohmac "crypto/hmac"
	gosha1 "crypto/sha1"
	"crypto/sha256"
	"errors"
	"testing"

	"github.com/markkurossi/mdhash/engine"
	"github.com/markkurossi/mdhash/md5"
	"github.com/markkurossi/mdhash/sha1"
)

func newSHA1() engine.Hash {
	return sha1.New()
}

func newMD5() engine.Hash {
	return md5.New()
}

func newSHA256() engine.Hash {
	return engine.NewNative("sha256", sha256.New())
}

var hmacTests = []struct {
	newHash  func() engine.Hash
	key      string
	message  string
	expected string
}{
	{newSHA1, "vapor", "hello", "bb2a9aabb537902647f3f40bfecb679bf0d7d64b"},
	{newSHA1, "true", "2+2=4", "35836a9520eb061ad7e267ac37ab3ee1fafa6e4b"},
	{newSHA1, "", "", "fbdb1d1b18aa6c08324b7d64b71fb76370690e1d"},
	{newMD5, "vapor", "hello", "bbd98ab1dbed72cdf3e924ae7eaf7943"},
	{newMD5, "true", "2+2=4", "37bda9a2b521d4623883b3acb7d9c3f7"},
}

func TestVectors(t *testing.T) {
	for idx, test := range hmacTests {
		result := Sum(test.newHash, []byte(test.key), []byte(test.message))
		if result.String() != test.expected {
			t.Errorf("test %d: got %s, expected %s", idx, result,
				test.expected)
		}
	}
}

func TestLongKey(t *testing.T) {
	key := make([]byte, 200)
	for i := range key {
		key[i] = byte(i)
	}
	for _, klen := range []int{63, 64, 65, 200} {
		message := []byte("long key message")

		got := Sum(newSHA1, key[:klen], message)

		ref := gohmac.New(gosha1.New, key[:klen])
		ref.Write(message)
		want := ref.Sum(nil)

		if !got.Equal(want) {
			t.Errorf("key %d: got %x, expected %x", klen, got, want)
		}
	}
}

func TestNative(t *testing.T) {
	key := []byte("native key")
	message := []byte("The quick brown fox jumps over the lazy dog")

	got := Sum(newSHA256, key, message)

	ref := gohmac.New(sha256.New, key)
	ref.Write(message)
	want := ref.Sum(nil)

	if !got.Equal(want) {
		t.Errorf("got %x, expected %x", got, want)
	}
}

func TestStreaming(t *testing.T) {
	mac := New(newSHA1, []byte("vapor"))
	if mac.Name() != "hmac-sha1" || mac.Size() != sha1.Size {
		t.Fatalf("invalid MAC: %s/%d", mac.Name(), mac.Size())
	}
	mac.Update([]byte("he"))
	mac.Write([]byte("llo"))
	first := mac.Finish()
	if first.String() != hmacTests[0].expected {
		t.Errorf("streaming: got %s", first)
	}

	func() {
		defer func() {
			r := recover()
			err, ok := r.(error)
			if !ok || !errors.Is(err, engine.ErrFinished) {
				t.Errorf("second Finish: unexpected panic %v", r)
			}
		}()
		mac.Finish()
	}()

	mac.Reset()
	mac.Update([]byte("hello"))
	if second := mac.Finish(); !second.Equal(first) {
		t.Errorf("reuse after Reset: got %s, expected %s", second, first)
	}
}

func TestSameInstance(t *testing.T) {
	h := newSHA1()
	defer func() {
		if recover() == nil {
			t.Errorf("shared instance did not panic")
		}
	}()
	New(func() engine.Hash { return h }, nil)
}
