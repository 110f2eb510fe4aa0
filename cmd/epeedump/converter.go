// converter.go: epee <-> JSON conversion logic
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"encoding/json"
	"fmt"
	"io"
)

// Converter turns an epee-encoded record into JSON, or a JSON document
// back into the epee wire format, for one fixed record type.
type Converter struct {
	recordType   string
	pretty       bool
	encodeToEpee bool // false: epee -> JSON (default); true: JSON -> epee
	validateOnly bool
}

// NewConverter returns a converter decoding epee to JSON for the given
// registered -type name.
func NewConverter(recordType string, pretty bool) *Converter {
	return &Converter{recordType: recordType, pretty: pretty}
}

// NewConverterWithOptions returns a converter with the full option set.
func NewConverterWithOptions(recordType string, pretty, encodeToEpee, validateOnly bool) *Converter {
	return &Converter{
		recordType:   recordType,
		pretty:       pretty,
		encodeToEpee: encodeToEpee,
		validateOnly: validateOnly,
	}
}

// Convert reads the entirety of input and writes the converted
// representation to output. Epee documents are not line-delimited, so
// unlike a log converter this always treats the whole input as one
// record.
func (c *Converter) Convert(input io.Reader, output io.Writer) error {
	rt, err := lookupRecordType(c.recordType)
	if err != nil {
		return err
	}

	data, err := io.ReadAll(input)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	if len(data) == 0 {
		return fmt.Errorf("empty input")
	}

	if c.encodeToEpee {
		out, err := rt.toEpee(data)
		if err != nil {
			return fmt.Errorf("encode %s: %w", c.recordType, err)
		}
		if c.validateOnly {
			return nil
		}
		_, err = output.Write(out)
		return err
	}

	rec, err := rt.fromEpee(data)
	if err != nil {
		return fmt.Errorf("decode %s: %w", c.recordType, err)
	}
	if c.validateOnly {
		return nil
	}

	encoder := json.NewEncoder(output)
	if c.pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(rec)
}
