// epeegen: generates epee Object/Builder implementations for tagged structs
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

// epeegen is the code-generation counterpart to Rust's derive macro: Go has
// no compile-time macro facility, so the per-record NumberOfFields/
// WriteFields/Builder trio that a derive would synthesize is instead
// produced by a `go generate` tool, in the same spirit as the standard
// library's own stringer. Given a set of struct type names, it parses the
// package's source with go/parser, reads each struct's `epee` and
// `epeedefault` tags, and writes a "<file>_epee.go" companion with the
// generated methods.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

const usage = `epeegen - generate epee codec methods for tagged structs

USAGE:
    epeegen -type T1,T2,... [-output file.go] [package-directory]

Invoked via a //go:generate directive inside the package whose structs
carry "epee" struct tags, e.g.:

    //go:generate go run github.com/agilira/epee/cmd/epeegen -type BasicNodeData

If no directory is given, the current directory is used, matching
go:generate's working-directory convention.

OPTIONS:
`

func main() {
	var typeNames string
	var output string
	flag.StringVar(&typeNames, "type", "", "comma-separated list of struct type names to generate for (required)")
	flag.StringVar(&output, "output", "", "output file name; default srcdir/<source file base>_epee.go")
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if typeNames == "" {
		flag.Usage()
		os.Exit(2)
	}
	types := strings.Split(typeNames, ",")

	dir := "."
	if args := flag.Args(); len(args) == 1 {
		dir = args[0]
	} else if len(args) > 1 {
		log.Fatal("epeegen: at most one directory argument is accepted")
	}

	g, err := newGenerator(dir, types)
	if err != nil {
		log.Fatalf("epeegen: %v", err)
	}

	src, err := g.generate()
	if err != nil {
		log.Fatalf("epeegen: %v", err)
	}

	if output == "" {
		output = filepath.Join(dir, outputFileName(g.sourceFile))
	}
	if err := os.WriteFile(output, src, 0644); err != nil {
		log.Fatalf("epeegen: writing output: %v", err)
	}
}

// outputFileName derives "<name>_epee.go" from the source file the types
// were declared in, mirroring stringer's "<type>_string.go" convention.
func outputFileName(sourceFile string) string {
	base := filepath.Base(sourceFile)
	base = strings.TrimSuffix(base, ".go")
	base = strings.TrimSuffix(base, "_types")
	return base + "_epee.go"
}
