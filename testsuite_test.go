//
// Copyright (c) 2019-2025 Markku Rossi
//
// All rights reserved.
//

package mdhash

import (
	"fmt"
	"testing"

	"github.com/markkurossi/mdhash/vectors"
)

const (
	testsuite = "testdata"
)

func TestSuite(t *testing.T) {
	files, err := vectors.LoadDir(testsuite)
	if err != nil {
		t.Fatalf("failed to load test vectors: %s", err)
	}
	if len(files) == 0 {
		t.Fatalf("no test vectors in %s", testsuite)
	}
	for _, file := range files {
		testFile(t, file)
	}
}

func testFile(t *testing.T, file *vectors.File) {
	for _, v := range file.Vectors() {
		if v.Heavy && testing.Short() {
			fmt.Printf("Skipping heavy test %s: %s\n", file.Name, v)
			continue
		}
		result := v.Check()
		if result.Err != nil {
			t.Errorf("%s: %s: %s", file.Name, v, result.Err)
			continue
		}
		if !result.OK() {
			t.Errorf("%s: %s: got %s, expected %s",
				file.Name, v, result.Got, v.Expected)
		}
	}
}
