//
// main.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/markkurossi/mdhash"
	"github.com/markkurossi/mdhash/algorithm"
	"github.com/markkurossi/mdhash/bench"
	"github.com/markkurossi/mdhash/engine"
	"github.com/markkurossi/mdhash/env"
	"github.com/markkurossi/mdhash/report"
	"github.com/markkurossi/mdhash/vectors"
)

func main() {
	alg := flag.String("a", "", "hash algorithm")
	key := flag.String("k", "", "compute HMAC with `key`")
	keyHex := flag.String("kx", "", "compute HMAC with hex encoded `key`")
	configFile := flag.String("config", "", "load configuration from `file`")
	check := flag.String("check", "", "verify test vectors from `path`")
	heavy := flag.Bool("heavy", false, "run heavy test vectors")
	html := flag.String("html", "", "write HTML verification report to `file`")
	benchmark := flag.Bool("bench", false, "benchmark algorithms")
	size := flag.Int("size", 1024*1024, "benchmark input size")
	rounds := flag.Int("rounds", 16, "benchmark rounds")
	list := flag.Bool("list", false, "list supported algorithms")
	b32 := flag.Bool("b32", false, "print digests in base32")
	verbose := flag.Bool("v", false, "verbose output")
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to `file`")
	flag.Parse()

	log.SetFlags(0)

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	macKey, useHMAC, err := hmacKey(set, *key, *keyHex)
	if err != nil {
		log.Fatal(err)
	}

	config := new(env.Config)
	if len(*configFile) > 0 {
		config, err = env.Load(*configFile)
		if err != nil {
			log.Fatal(err)
		}
	}
	if len(*alg) > 0 {
		config.Algorithm = *alg
	}
	if *b32 {
		config.Base32 = true
	}
	if *verbose {
		config.Verbose = true
	}

	if len(*cpuprofile) > 0 {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	if *list {
		for _, name := range algorithm.Names() {
			if config.Verbose {
				h, err := algorithm.Named(name)
				if err != nil {
					log.Fatal(err)
				}
				fmt.Printf("%-12s\tsize=%d\tblock=%d\n",
					name, h.Size(), h.BlockSize())
			} else {
				fmt.Println(name)
			}
		}
		return
	}

	if len(*check) > 0 {
		ok, err := verify(*check, !*heavy, *html, config.Verbose)
		if err != nil {
			log.Fatal(err)
		}
		if !ok {
			os.Exit(1)
		}
		return
	}

	if *benchmark {
		names := flag.Args()
		if len(names) == 0 {
			names = []string{config.GetAlgorithm()}
		}
		timing, err := bench.Run(names, bench.Params{
			Size:   *size,
			Rounds: *rounds,
			Seed:   []byte("mdsum"),
			HMAC:   useHMAC,
		})
		if err != nil {
			log.Fatal(err)
		}
		timing.Print(os.Stdout)
		return
	}

	h, err := newHash(config, macKey, useHMAC)
	if err != nil {
		log.Fatal(err)
	}

	files := flag.Args()
	if len(files) == 0 {
		files = []string{"-"}
	}
	var failed bool
	for _, file := range files {
		if err := sumFile(config, h, file); err != nil {
			log.Print(err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

// hmacKey returns the HMAC key from the -k and -kx flags. The empty
// key is a valid HMAC key so the mode depends on the flags being set.
func hmacKey(set map[string]bool, key, keyHex string) ([]byte, bool, error) {
	switch {
	case set["kx"]:
		k, err := hex.DecodeString(keyHex)
		if err != nil {
			return nil, false, fmt.Errorf("invalid HMAC key: %w", err)
		}
		return k, true, nil
	case set["k"]:
		return []byte(key), true, nil
	default:
		return nil, false, nil
	}
}

func newHash(config *env.Config, key []byte, useHMAC bool) (
	engine.Hash, error) {

	if useHMAC {
		return mdhash.NewHMAC(config, key)
	}
	return mdhash.New(config)
}

func sumFile(config *env.Config, h engine.Hash, file string) error {
	in := os.Stdin
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	digest, err := mdhash.SumReader(config, h, in)
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	return mdhash.PrintResult(os.Stdout, config, h, digest, file)
}

func verify(path string, skipHeavy bool, html string, verbose bool) (
	bool, error) {

	files, err := vectors.LoadPath(path)
	if err != nil {
		return false, err
	}
	r := report.Run(files, skipHeavy)
	r.Print(os.Stdout, verbose)

	if len(html) > 0 {
		if !strings.HasSuffix(html, ".html") {
			html += ".html"
		}
		f, err := os.Create(html)
		if err != nil {
			return false, err
		}
		err = r.HTML(f)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(html)
			return false, err
		}
		if verbose {
			fmt.Printf("Wrote report to %s\n", html)
		}
	}
	return r.OK(), nil
}
