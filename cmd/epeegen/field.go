// field.go: struct-tag parsing and field-kind classification
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"go/ast"
	"reflect"
	"strings"
)

// kind is the wire-shape family a field falls into. Every case here has a
// matching template branch in generator.go's emitFieldWrite/
// emitFieldRead.
type kind int

const (
	kindNumeric kind = iota
	kindBool
	kindString
	kindBytes
	kindFixedArray
	kindNumericSequence
	kindBoolSequence
	kindObject
	kindOptionScalar
	kindOptionObject
	kindObjectSequence
)

// field describes one struct field epeegen will emit code for.
type field struct {
	GoName    string // exported Go field name, e.g. "MyPort"
	GoType    string // the field's declared Go type as written in source
	WireName  string // the epee wire field name
	Flatten   bool   // epee:",flatten" — delegate instead of nesting
	Default   string // epeedefault tag value, "" if none
	Kind      kind
	Elem      string // scalar or element type name for numeric, sequence and optional kinds
	ArrayLen  int    // array length for fixed arrays
}

// numericTypes maps a Go numeric type name to its ReadXxx/WriteXxx
// primitive suffix.
var numericTypes = map[string]string{
	"int64": "Int64", "int32": "Int32", "int16": "Int16", "int8": "Int8",
	"uint64": "Uint64", "uint32": "Uint32", "uint16": "Uint16", "uint8": "Uint8",
	"float64": "Float64",
}

// markerSuffixes maps a Go numeric type name to its epee.MarkerXxx
// constant suffix, which is abbreviated (I64, U32, ...) unlike the
// ReadXxx/WriteXxx suffix above.
var markerSuffixes = map[string]string{
	"int64": "I64", "int32": "I32", "int16": "I16", "int8": "I8",
	"uint64": "U64", "uint32": "U32", "uint16": "U16", "uint8": "U8",
	"float64": "F64",
}

// scalarSuffix maps a scalar Go type name to its ReadXxx/WriteXxx codec
// suffix, covering the numerics plus bool and string.
func scalarSuffix(elem string) (string, bool) {
	if s, ok := numericTypes[elem]; ok {
		return s, true
	}
	switch elem {
	case "bool":
		return "Bool", true
	case "string":
		return "String", true
	}
	return "", false
}

// scalarMarkerSuffix is the epee.MarkerXxx counterpart of scalarSuffix.
func scalarMarkerSuffix(elem string) string {
	if s, ok := markerSuffixes[elem]; ok {
		return s
	}
	switch elem {
	case "bool":
		return "Bool"
	case "string":
		return "String"
	}
	return ""
}

// classifyField inspects a struct field's parsed type and tag, returning
// nil if the field carries no "epee" tag (meaning: not part of the wire
// representation, skipped entirely — e.g. unexported bookkeeping fields
// generated code itself might need would be added by hand, not derived).
func classifyField(f *ast.Field) (*field, error) {
	if len(f.Names) != 1 {
		return nil, fmt.Errorf("embedded or multi-name field declarations are not supported")
	}
	name := f.Names[0].Name
	if f.Tag == nil {
		return nil, nil
	}
	tag := reflect.StructTag(strings.Trim(f.Tag.Value, "`"))
	epeeTag, ok := tag.Lookup("epee")
	if !ok {
		return nil, nil
	}

	fld := &field{GoName: name, Default: tag.Get("epeedefault")}

	parts := strings.Split(epeeTag, ",")
	fld.WireName = parts[0]
	for _, opt := range parts[1:] {
		if opt == "flatten" {
			fld.Flatten = true
		}
	}
	if fld.Flatten {
		fld.WireName = ""
	}

	if fld.Flatten && (fld.Default != "" || parts[0] != "") {
		return nil, fmt.Errorf("field %s: epee_flatten cannot be combined with epeedefault or a renamed wire name", name)
	}
	if !fld.Flatten && fld.WireName == "" {
		fld.WireName = snakeCase(name)
	}

	typeStr, err := exprString(f.Type)
	if err != nil {
		return nil, fmt.Errorf("field %s: %w", name, err)
	}
	fld.GoType = typeStr

	if err := classifyType(fld, f.Type); err != nil {
		return nil, fmt.Errorf("field %s: %w", name, err)
	}
	if fld.Flatten && fld.Kind != kindObject {
		return nil, fmt.Errorf("field %s: epee_flatten requires a nested record type, got %s", name, typeStr)
	}
	return fld, nil
}

// classifyType fills in fld.Kind (and Elem/ArrayLen where relevant) from
// the field's AST type expression.
func classifyType(fld *field, expr ast.Expr) error {
	switch t := expr.(type) {
	case *ast.Ident:
		if t.Name == "bool" {
			fld.Kind = kindBool
			return nil
		}
		if t.Name == "string" {
			fld.Kind = kindString
			return nil
		}
		if _, ok := numericTypes[t.Name]; ok {
			fld.Kind = kindNumeric
			fld.Elem = t.Name
			return nil
		}
		// Any other named identifier is assumed to be a sibling struct
		// type implementing Object/Builder — i.e. a nested record.
		fld.Kind = kindObject
		return nil

	case *ast.ArrayType:
		if t.Len != nil {
			// Fixed-size array: only [N]byte is supported, matching the
			// wire's fixed-width byte-string fields (hashes, keys).
			n, err := arrayLen(t.Len)
			if err != nil {
				return err
			}
			elemStr, err := exprString(t.Elt)
			if err != nil {
				return err
			}
			if elemStr != "byte" && elemStr != "uint8" {
				return fmt.Errorf("fixed array element type %s is not supported (only byte)", elemStr)
			}
			fld.Kind = kindFixedArray
			fld.ArrayLen = n
			return nil
		}
		// Slice.
		elemStr, err := exprString(t.Elt)
		if err != nil {
			return err
		}
		if _, ok := numericTypes[elemStr]; ok && elemStr != "uint8" {
			fld.Kind = kindNumericSequence
			fld.Elem = elemStr
			return nil
		}
		if elemStr == "uint8" || elemStr == "byte" {
			fld.Kind = kindBytes
			return nil
		}
		if elemStr == "bool" {
			fld.Kind = kindBoolSequence
			return nil
		}
		fld.Kind = kindObjectSequence
		fld.Elem = elemStr
		return nil

	case *ast.StarExpr:
		// Optional field: nil means absent (never written, never
		// required on read). A pointer to a scalar reads/writes the
		// scalar codec; anything else is a nested record.
		elemStr, err := exprString(t.X)
		if err != nil {
			return err
		}
		if _, ok := scalarSuffix(elemStr); ok {
			fld.Kind = kindOptionScalar
			fld.Elem = elemStr
			return nil
		}
		fld.Kind = kindOptionObject
		fld.Elem = elemStr
		return nil

	default:
		return fmt.Errorf("unsupported field type %T", expr)
	}
}

// snakeCase converts an exported Go field name to the lower_snake_case
// wire name used when the epee tag names no override, e.g. MyPort ->
// my_port and NetworkID -> network_id (a run of capitals counts as one
// word).
func snakeCase(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if r >= 'A' && r <= 'Z' {
			prevLower := i > 0 && runes[i-1] >= 'a' && runes[i-1] <= 'z'
			nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
			if i > 0 && (prevLower || nextLower) {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func arrayLen(e ast.Expr) (int, error) {
	lit, ok := e.(*ast.BasicLit)
	if !ok {
		return 0, fmt.Errorf("array length must be an integer literal, got %T", e)
	}
	var n int
	if _, err := fmt.Sscanf(lit.Value, "%d", &n); err != nil {
		return 0, fmt.Errorf("parsing array length %q: %w", lit.Value, err)
	}
	return n, nil
}

// exprString renders a type expression back to source text. Only the
// small subset of Go type syntax epee records actually use needs
// handling; anything else is an error rather than a silent guess.
func exprString(e ast.Expr) (string, error) {
	switch t := e.(type) {
	case *ast.Ident:
		return t.Name, nil
	case *ast.ArrayType:
		inner, err := exprString(t.Elt)
		if err != nil {
			return "", err
		}
		if t.Len == nil {
			return "[]" + inner, nil
		}
		lit, ok := t.Len.(*ast.BasicLit)
		if !ok {
			return "", fmt.Errorf("unsupported array length expression")
		}
		return "[" + lit.Value + "]" + inner, nil
	case *ast.StarExpr:
		inner, err := exprString(t.X)
		if err != nil {
			return "", err
		}
		return "*" + inner, nil
	case *ast.SelectorExpr:
		pkg, err := exprString(t.X)
		if err != nil {
			return "", err
		}
		return pkg + "." + t.Sel.Name, nil
	default:
		return "", fmt.Errorf("unsupported type expression %T", e)
	}
}
