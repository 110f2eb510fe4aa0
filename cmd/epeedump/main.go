// epeedump: CLI tool for converting epee binary records to/from JSON
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const (
	version = "1.0.0"
	usage   = `epeedump - Convert epee binary records to/from JSON

USAGE:
    epeedump -type T [OPTIONS]

EXAMPLES:
    # Decode a single handshake record to stdout
    epeedump -type HandshakeResponse -i handshake.bin

    # Pretty-print, from stdin to stdout
    epeedump -type BasicNodeData -p < node_data.bin

    # Round-trip: re-encode a JSON document back to epee bytes
    epeedump -type OutKey -encode -i out.json -o out.bin

    # Batch-convert a directory of .epee files to JSON
    epeedump -type GetOutsResponse -i dump/ -o json/ -r

    # Decode a length-prefixed stream of records (see stream.go framing)
    epeedump -type BaseResponse -stream < responses.stream > responses.ndjson

OPTIONS:
`
)

// Config holds the parsed command-line options.
type Config struct {
	Type         string
	Input        string
	Output       string
	Recursive    bool
	Pretty       bool
	Verbose      bool
	Version      bool
	Encode       bool
	Stream       bool
	ValidateOnly bool
}

func main() {
	config := parseFlags()

	if config.Version {
		fmt.Printf("epeedump version %s\n", version)
		os.Exit(0)
	}

	if err := run(config); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags() *Config {
	config := &Config{}

	flag.StringVar(&config.Type, "type", "", "record type to (de)code; one of: "+strings.Join(recordTypeNames(), ", "))
	flag.StringVar(&config.Input, "i", "", "Input file or directory (use '-' or empty for stdin)")
	flag.StringVar(&config.Input, "input", "", "Input file or directory (use '-' or empty for stdin)")
	flag.StringVar(&config.Output, "o", "", "Output file or directory (use '-' or empty for stdout)")
	flag.StringVar(&config.Output, "output", "", "Output file or directory (use '-' or empty for stdout)")
	flag.BoolVar(&config.Recursive, "r", false, "Recursively process directories")
	flag.BoolVar(&config.Recursive, "recursive", false, "Recursively process directories")
	flag.BoolVar(&config.Pretty, "p", false, "Pretty-print JSON output")
	flag.BoolVar(&config.Pretty, "pretty", false, "Pretty-print JSON output")
	flag.BoolVar(&config.Verbose, "v", false, "Verbose output")
	flag.BoolVar(&config.Verbose, "verbose", false, "Verbose output")
	flag.BoolVar(&config.Encode, "encode", false, "Reverse direction: read JSON, write epee bytes")
	flag.BoolVar(&config.Stream, "stream", false, "Decode a length-prefixed stream of records (implies JSON output, one object per line)")
	flag.BoolVar(&config.ValidateOnly, "validate", false, "Only validate that input decodes/encodes; write nothing")
	flag.BoolVar(&config.Version, "version", false, "Show version information")

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}

	flag.Parse()

	return config
}

func run(config *Config) error {
	if config.Type == "" {
		return fmt.Errorf("-type is required; known types: %s", strings.Join(recordTypeNames(), ", "))
	}
	if _, err := lookupRecordType(config.Type); err != nil {
		return err
	}

	if config.Stream {
		in, closeIn, err := openInput(config.Input)
		if err != nil {
			return err
		}
		defer closeIn()
		out, closeOut, err := openOutput(config.Output)
		if err != nil {
			return err
		}
		defer closeOut()

		converter := NewConverter(config.Type, config.Pretty)
		return converter.ConvertStream(in, out)
	}

	if config.Input == "" || config.Input == "-" {
		if config.Verbose {
			fmt.Fprintf(os.Stderr, "Reading from stdin...\n")
		}
		return convertStream(os.Stdin, os.Stdout, config)
	}

	info, err := os.Stat(config.Input)
	if err != nil {
		return fmt.Errorf("input path not found: %v", err)
	}

	if info.IsDir() {
		if config.Output == "" || config.Output == "-" {
			return fmt.Errorf("directory input requires output directory")
		}
		batchProcessor, err := NewBatchProcessor(config)
		if err != nil {
			return fmt.Errorf("failed to create batch processor: %v", err)
		}
		return batchProcessor.ProcessDirectory(config.Input, config.Output)
	}

	if config.Output == "" || config.Output == "-" {
		input, err := os.Open(config.Input)
		if err != nil {
			return fmt.Errorf("failed to open input file: %v", err)
		}
		defer input.Close()

		if config.Verbose {
			fmt.Fprintf(os.Stderr, "Converting %s to stdout...\n", config.Input)
		}
		return convertStream(input, os.Stdout, config)
	}

	return convertFile(config.Input, config.Output, config)
}

func convertStream(input io.Reader, output io.Writer, config *Config) error {
	converter := NewConverterWithOptions(config.Type, config.Pretty, config.Encode, config.ValidateOnly)
	return converter.Convert(input, output)
}

func convertFile(inputPath, outputPath string, config *Config) error {
	input, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open input file: %v", err)
	}
	defer input.Close()

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %v", err)
		}
	}

	output, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %v", err)
	}
	defer output.Close()

	if config.Verbose {
		fmt.Fprintf(os.Stderr, "Converting %s -> %s\n", inputPath, outputPath)
	}

	return convertStream(input, output, config)
}

// openInput resolves the -i flag to a Reader, defaulting to stdin.
func openInput(path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input file: %v", err)
	}
	return f, func() { f.Close() }, nil
}

// openOutput resolves the -o flag to a Writer, defaulting to stdout.
func openOutput(path string) (io.Writer, func(), error) {
	if path == "" || path == "-" {
		return os.Stdout, func() {}, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, nil, fmt.Errorf("failed to create output directory: %v", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %v", err)
	}
	return f, func() { f.Close() }, nil
}
