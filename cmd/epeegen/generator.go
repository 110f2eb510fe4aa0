// generator.go: AST walking and source emission
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package main

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"
)

// record is one struct type epeegen will generate NumberOfFields/
// WriteFields/Builder methods for.
type record struct {
	Name   string
	Fields []*field
}

// generator holds the parsed package state needed to emit one output
// file covering every requested type found in it.
type generator struct {
	pkgName    string
	sourceFile string
	records    []*record
	buf        bytes.Buffer
}

// newGenerator parses every non-test, non-generated .go file in dir and
// collects the struct declarations named in wantTypes, in the order they
// were requested.
func newGenerator(dir string, wantTypes []string) (*generator, error) {
	want := make(map[string]bool, len(wantTypes))
	for _, t := range wantTypes {
		want[strings.TrimSpace(t)] = true
	}

	matches, err := filepath.Glob(filepath.Join(dir, "*.go"))
	if err != nil {
		return nil, err
	}

	g := &generator{}
	fset := token.NewFileSet()
	found := make(map[string]*record)

	for _, path := range matches {
		if strings.HasSuffix(path, "_test.go") || strings.HasSuffix(path, "_epee.go") {
			continue
		}
		f, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		if g.pkgName == "" {
			g.pkgName = f.Name.Name
		}

		for _, decl := range f.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}
			for _, spec := range gd.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok || !want[ts.Name.Name] {
					continue
				}
				st, ok := ts.Type.(*ast.StructType)
				if !ok {
					return nil, fmt.Errorf("%s is not a struct type", ts.Name.Name)
				}
				rec := &record{Name: ts.Name.Name}
				for _, astField := range st.Fields.List {
					fld, err := classifyField(astField)
					if err != nil {
						return nil, fmt.Errorf("%s: %w", ts.Name.Name, err)
					}
					if fld == nil {
						continue
					}
					rec.Fields = append(rec.Fields, fld)
				}
				found[ts.Name.Name] = rec
				if g.sourceFile == "" {
					g.sourceFile = path
				}
			}
		}
	}

	var missing []string
	for _, t := range wantTypes {
		t = strings.TrimSpace(t)
		if found[t] == nil {
			missing = append(missing, t)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("type(s) not found as structs in %s: %s", dir, strings.Join(missing, ", "))
	}

	for _, t := range wantTypes {
		g.records = append(g.records, found[strings.TrimSpace(t)])
	}
	return g, nil
}

// generate renders and gofmt's the companion source file for every
// collected record.
func (g *generator) generate() ([]byte, error) {
	g.printf("// Code generated by epeegen. DO NOT EDIT.\n")
	g.printf("// source: %s\n\n", filepath.Base(g.sourceFile))
	g.printf("package %s\n\n", g.pkgName)
	g.printf("import \"github.com/agilira/epee\"\n")

	for _, rec := range g.records {
		if err := g.emitRecord(rec); err != nil {
			return nil, fmt.Errorf("%s: %w", rec.Name, err)
		}
	}

	formatted, err := format.Source(g.buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gofmt: %w\n--- generated source ---\n%s", err, g.buf.String())
	}
	return formatted, nil
}

func (g *generator) printf(format string, args ...interface{}) {
	fmt.Fprintf(&g.buf, format, args...)
}

func (g *generator) emitRecord(rec *record) error {
	g.printf("\n// --- %s ---\n\n", rec.Name)

	recv := strings.ToLower(rec.Name[:1])
	builderType := recv + rec.Name[1:] + "Builder"

	flattenField := flattenFieldOf(rec)

	g.emitNumberOfFields(rec, recv, flattenField)
	if err := g.emitWriteFields(rec, recv, flattenField); err != nil {
		return err
	}
	g.emitBuilderType(rec, builderType, flattenField)
	if err := g.emitAddField(rec, builderType, flattenField); err != nil {
		return err
	}
	g.emitFinish(rec, builderType, flattenField)
	return nil
}

func flattenFieldOf(rec *record) *field {
	for _, f := range rec.Fields {
		if f.Flatten {
			return f
		}
	}
	return nil
}

// markerConstOf returns the epee.MarkerXxx identifier for a scalar field.
func markerConstOf(f *field) string {
	switch f.Kind {
	case kindNumeric:
		return "epee.Marker" + markerSuffixes[f.Elem]
	case kindBool:
		return "epee.MarkerBool"
	case kindString, kindBytes, kindFixedArray:
		return "epee.MarkerString"
	case kindObject:
		return "epee.MarkerObject"
	default:
		return ""
	}
}

// writeExprOf returns the Go expression that writes a scalar field's raw
// value (no field-name/marker framing).
func writeExprOf(f *field, recv string) string {
	switch f.Kind {
	case kindNumeric:
		return fmt.Sprintf("epee.Write%s(w, %s.%s)", numericTypes[f.Elem], recv, f.GoName)
	case kindBool:
		return fmt.Sprintf("epee.WriteBool(w, %s.%s)", recv, f.GoName)
	case kindString:
		return fmt.Sprintf("epee.WriteString(w, %s.%s)", recv, f.GoName)
	case kindBytes:
		return fmt.Sprintf("epee.WriteBytes(w, %s.%s)", recv, f.GoName)
	case kindFixedArray:
		return fmt.Sprintf("epee.WriteFixedBytes(w, %s.%s[:])", recv, f.GoName)
	case kindObject:
		return fmt.Sprintf("epee.WriteObject(w, &%s.%s)", recv, f.GoName)
	default:
		return ""
	}
}

// ---- NumberOfFields ----

func (g *generator) emitNumberOfFields(rec *record, recv string, flattenField *field) {
	var fixed int
	var suppressed []string
	for _, f := range rec.Fields {
		if f.Flatten {
			continue
		}
		switch f.Kind {
		case kindOptionScalar, kindOptionObject:
			suppressed = append(suppressed, fmt.Sprintf("if %s.%s != nil {\n\t\tn++\n\t}", recv, f.GoName))
		case kindNumericSequence, kindBoolSequence, kindObjectSequence:
			suppressed = append(suppressed, fmt.Sprintf("if epee.ShouldWriteSequence(%s.%s) {\n\t\tn++\n\t}", recv, f.GoName))
		default:
			if f.Default != "" {
				suppressed = append(suppressed, fmt.Sprintf("if %s.%s != %s {\n\t\tn++\n\t}", recv, f.GoName, f.Default))
				continue
			}
			fixed++
		}
	}

	g.printf("\n")
	base := fmt.Sprintf("%d", fixed)
	if flattenField != nil {
		// The flatten delegation adds to the fixed count rather than
		// replacing it: the child's fields and the record's own plain
		// fields all land in the same wire object.
		base = fmt.Sprintf("%s.%s.NumberOfFields()", recv, flattenField.GoName)
		if fixed > 0 {
			base = fmt.Sprintf("%s + %d", base, fixed)
		}
	}

	if len(suppressed) == 0 && flattenField == nil {
		g.printf("func (%s *%s) NumberOfFields() uint64 { return %s }\n", recv, rec.Name, base)
		return
	}

	g.printf("func (%s *%s) NumberOfFields() uint64 {\n", recv, rec.Name)
	if flattenField != nil {
		g.printf("\tn := %s\n", base)
	} else {
		g.printf("\tn := uint64(%s)\n", base)
	}
	for _, s := range suppressed {
		g.printf("\t%s\n", s)
	}
	g.printf("\treturn n\n}\n")
}

// ---- WriteFields ----

// emitWriteFields emits every field as an unconditional err-checked
// statement (rather than threading a "is this the last field" special
// case through each kind) and closes with one final "return nil". A
// hand-written record returns its last field's write call directly
// instead; generated code trades that one-line saving for a single
// uniform shape across every kind, suppressed or not.
func (g *generator) emitWriteFields(rec *record, recv string, flattenField *field) error {
	g.printf("\nfunc (%s *%s) WriteFields(w epee.Writer) error {\n", recv, rec.Name)
	for _, f := range rec.Fields {
		if err := g.emitFieldWrite(f, recv); err != nil {
			return err
		}
	}
	g.printf("\treturn nil\n}\n")
	return nil
}

func (g *generator) emitFieldWrite(f *field, recv string) error {
	if f.Flatten {
		g.printf("\tif err := %s.%s.WriteFields(w); err != nil {\n\t\treturn err\n\t}\n", recv, f.GoName)
		return nil
	}

	switch f.Kind {
	case kindNumeric, kindBool, kindString, kindBytes, kindFixedArray, kindObject:
		marker := markerConstOf(f)
		writeExpr := writeExprOf(f, recv)
		if f.Default != "" {
			g.printf("\tif %s.%s != %s {\n\t", recv, f.GoName, f.Default)
			g.emitWriteFieldCall(f.WireName, marker, writeExpr)
			g.printf("\t}\n")
			return nil
		}
		g.emitWriteFieldCall(f.WireName, marker, writeExpr)

	case kindOptionScalar:
		g.printf("\tif %s.%s != nil {\n", recv, f.GoName)
		g.printf("\t\tif err := epee.WriteField(w, %q, epee.Marker{Inner: epee.Marker%s}, func(w epee.Writer) error {\n", f.WireName, scalarMarkerSuffix(f.Elem))
		suffix, _ := scalarSuffix(f.Elem)
		g.printf("\t\t\treturn epee.Write%s(w, *%s.%s)\n\t\t}); err != nil {\n\t\t\treturn err\n\t\t}\n\t}\n", suffix, recv, f.GoName)

	case kindOptionObject:
		g.printf("\tif %s.%s != nil {\n", recv, f.GoName)
		g.printf("\t\tif err := epee.WriteField(w, %q, epee.Marker{Inner: epee.MarkerObject}, func(w epee.Writer) error {\n", f.WireName)
		g.printf("\t\t\treturn epee.WriteObject(w, %s.%s)\n\t\t}); err != nil {\n\t\t\treturn err\n\t\t}\n\t}\n", recv, f.GoName)

	case kindNumericSequence:
		g.printf("\tif epee.ShouldWriteSequence(%s.%s) {\n", recv, f.GoName)
		g.printf("\t\tif err := epee.WriteFieldName(w, %q); err != nil {\n\t\t\treturn err\n\t\t}\n", f.WireName)
		g.printf("\t\tif err := epee.WriteNumericSequence(w, %s.%s); err != nil {\n\t\t\treturn err\n\t\t}\n\t}\n", recv, f.GoName)

	case kindBoolSequence:
		g.printf("\tif epee.ShouldWriteSequence(%s.%s) {\n", recv, f.GoName)
		g.printf("\t\tif err := epee.WriteFieldName(w, %q); err != nil {\n\t\t\treturn err\n\t\t}\n", f.WireName)
		g.printf("\t\tif err := epee.WriteBoolSequence(w, %s.%s); err != nil {\n\t\t\treturn err\n\t\t}\n\t}\n", recv, f.GoName)

	case kindObjectSequence:
		g.printf("\tif epee.ShouldWriteSequence(%s.%s) {\n", recv, f.GoName)
		g.printf("\t\tif err := epee.WriteFieldName(w, %q); err != nil {\n\t\t\treturn err\n\t\t}\n", f.WireName)
		g.printf("\t\tobjs := make([]epee.Object, len(%s.%s))\n", recv, f.GoName)
		g.printf("\t\tfor i := range %s.%s {\n\t\t\tobjs[i] = &%s.%s[i]\n\t\t}\n", recv, f.GoName, recv, f.GoName)
		g.printf("\t\tif err := epee.WriteObjectSequence(w, objs); err != nil {\n\t\t\treturn err\n\t\t}\n\t}\n")

	default:
		return fmt.Errorf("field %s: unhandled kind", f.GoName)
	}
	return nil
}

// emitWriteFieldCall writes the common "epee.WriteField(...)" call used by
// every scalar/object field kind.
func (g *generator) emitWriteFieldCall(wireName, marker, writeExpr string) {
	g.printf("\tif err := epee.WriteField(w, %q, epee.Marker{Inner: %s}, func(w epee.Writer) error {\n\t\treturn %s\n\t}); err != nil {\n\t\treturn err\n\t}\n", wireName, marker, writeExpr)
}

// ---- Builder type + AddField + Finish ----

func (g *generator) emitBuilderType(rec *record, builderType string, flattenField *field) {
	recLower := strings.ToLower(rec.Name[:1])
	g.printf("\ntype %s struct {\n", builderType)
	g.printf("\trec %s\n", rec.Name)
	if flattenField != nil {
		g.printf("\t%s %sBuilder\n", fieldFlagName(flattenField), strings.ToLower(flattenField.GoType[:1])+flattenField.GoType[1:])
	}
	for _, f := range rec.Fields {
		if f.Flatten || !needsSetFlag(f) {
			continue
		}
		g.printf("\t%sSet bool\n", fieldFlagName(f))
	}
	g.printf("}\n\n")

	g.printf("// New%sBuilder returns a builder for %s", rec.Name, rec.Name)
	if hasDefaults(rec) {
		g.printf(", preloaded with its declared field defaults")
	}
	g.printf(".\n")
	g.printf("func New%sBuilder() *%s {\n", rec.Name, builderType)
	if hasDefaults(rec) {
		g.printf("\treturn &%s{rec: %s{", builderType, rec.Name)
		first := true
		for _, f := range rec.Fields {
			if f.Default == "" {
				continue
			}
			if !first {
				g.printf(", ")
			}
			first = false
			g.printf("%s: %s", f.GoName, f.Default)
		}
		g.printf("}}\n")
	} else {
		g.printf("\treturn &%s{}\n", builderType)
	}
	g.printf("}\n")
	_ = recLower
}

func needsSetFlag(f *field) bool {
	switch f.Kind {
	case kindOptionScalar, kindOptionObject, kindNumericSequence, kindBoolSequence, kindObjectSequence:
		return false // zero value (nil slice/pointer) already means "absent"
	}
	if f.Default != "" {
		return false // preloaded default means Finish never blocks on it
	}
	return true
}

func fieldFlagName(f *field) string {
	return strings.ToLower(f.GoName[:1]) + f.GoName[1:]
}

func hasDefaults(rec *record) bool {
	for _, f := range rec.Fields {
		if f.Default != "" {
			return true
		}
	}
	return false
}

func (g *generator) emitAddField(rec *record, builderType string, flattenField *field) error {
	g.printf("\nfunc (b *%s) AddField(name string, r epee.Reader) (bool, error) {\n", builderType)
	g.printf("\tswitch name {\n")
	for _, f := range rec.Fields {
		if f.Flatten {
			continue
		}
		g.printf("\tcase %q:\n", f.WireName)
		if err := g.emitFieldRead(f); err != nil {
			return err
		}
	}
	g.printf("\tdefault:\n")
	if flattenField != nil {
		fb := fieldFlagName(flattenField)
		g.printf("\t\treturn b.%s.AddField(name, r)\n", fb)
	} else {
		g.printf("\t\treturn false, nil\n")
	}
	g.printf("\t}\n}\n")
	return nil
}

// emitScalarAssign writes the decoded value into b.rec and, only when the
// field actually has a Set flag declared (see needsSetFlag), marks it set.
// A field with a default never gets a flag, since its preloaded zero
// value already satisfies Finish's required-field check.
func (g *generator) emitScalarAssign(f *field) {
	name := f.GoName
	if needsSetFlag(f) {
		g.printf("\t\tb.rec.%s, b.%sSet = v, true\n\t\treturn true, nil\n", name, fieldFlagName(f))
		return
	}
	g.printf("\t\tb.rec.%s = v\n\t\treturn true, nil\n", name)
}

func (g *generator) emitFieldRead(f *field) error {
	name := f.GoName
	switch f.Kind {
	case kindNumeric:
		g.printf("\t\tm, err := epee.ReadMarker(r)\n\t\tif err != nil {\n\t\t\treturn false, err\n\t\t}\n")
		g.printf("\t\tv, err := epee.Read%s(r, m)\n\t\tif err != nil {\n\t\t\treturn false, err\n\t\t}\n", numericTypes[f.Elem])
		g.emitScalarAssign(f)
	case kindBool:
		g.printf("\t\tm, err := epee.ReadMarker(r)\n\t\tif err != nil {\n\t\t\treturn false, err\n\t\t}\n")
		g.printf("\t\tv, err := epee.ReadBool(r, m)\n\t\tif err != nil {\n\t\t\treturn false, err\n\t\t}\n")
		g.emitScalarAssign(f)
	case kindString:
		g.printf("\t\tm, err := epee.ReadMarker(r)\n\t\tif err != nil {\n\t\t\treturn false, err\n\t\t}\n")
		g.printf("\t\tv, err := epee.ReadString(r, m)\n\t\tif err != nil {\n\t\t\treturn false, err\n\t\t}\n")
		g.emitScalarAssign(f)
	case kindBytes:
		g.printf("\t\tm, err := epee.ReadMarker(r)\n\t\tif err != nil {\n\t\t\treturn false, err\n\t\t}\n")
		g.printf("\t\tv, err := epee.ReadBytes(r, m)\n\t\tif err != nil {\n\t\t\treturn false, err\n\t\t}\n")
		g.emitScalarAssign(f)
	case kindFixedArray:
		g.printf("\t\tm, err := epee.ReadMarker(r)\n\t\tif err != nil {\n\t\t\treturn false, err\n\t\t}\n")
		g.printf("\t\tif err := epee.ReadFixedBytes(r, m, b.rec.%s[:]); err != nil {\n\t\t\treturn false, err\n\t\t}\n", name)
		if needsSetFlag(f) {
			g.printf("\t\tb.%sSet = true\n\t\treturn true, nil\n", fieldFlagName(f))
		} else {
			g.printf("\t\treturn true, nil\n")
		}
	case kindObject:
		g.printf("\t\tm, err := epee.ReadMarker(r)\n\t\tif err != nil {\n\t\t\treturn false, err\n\t\t}\n")
		g.printf("\t\tv, err := epee.ReadObject(r, m, New%sBuilder)\n\t\tif err != nil {\n\t\t\treturn false, err\n\t\t}\n", f.GoType)
		g.emitScalarAssign(f)
	case kindOptionScalar:
		suffix, _ := scalarSuffix(f.Elem)
		g.printf("\t\tm, err := epee.ReadMarker(r)\n\t\tif err != nil {\n\t\t\treturn false, err\n\t\t}\n")
		g.printf("\t\tv, err := epee.Read%s(r, m)\n\t\tif err != nil {\n\t\t\treturn false, err\n\t\t}\n", suffix)
		g.printf("\t\tb.rec.%s = &v\n\t\treturn true, nil\n", name)
	case kindOptionObject:
		g.printf("\t\tm, err := epee.ReadMarker(r)\n\t\tif err != nil {\n\t\t\treturn false, err\n\t\t}\n")
		g.printf("\t\tv, err := epee.ReadObject(r, m, New%sBuilder)\n\t\tif err != nil {\n\t\t\treturn false, err\n\t\t}\n", f.Elem)
		g.printf("\t\tb.rec.%s = &v\n\t\treturn true, nil\n", name)
	case kindNumericSequence:
		g.printf("\t\tm, err := epee.ReadMarker(r)\n\t\tif err != nil {\n\t\t\treturn false, err\n\t\t}\n")
		g.printf("\t\tv, err := epee.ReadNumericSequence[%s](r, m)\n\t\tif err != nil {\n\t\t\treturn false, err\n\t\t}\n", f.Elem)
		g.printf("\t\tb.rec.%s = v\n\t\treturn true, nil\n", name)
	case kindBoolSequence:
		g.printf("\t\tm, err := epee.ReadMarker(r)\n\t\tif err != nil {\n\t\t\treturn false, err\n\t\t}\n")
		g.printf("\t\tv, err := epee.ReadBoolSequence(r, m)\n\t\tif err != nil {\n\t\t\treturn false, err\n\t\t}\n")
		g.printf("\t\tb.rec.%s = v\n\t\treturn true, nil\n", name)
	case kindObjectSequence:
		g.printf("\t\tm, err := epee.ReadMarker(r)\n\t\tif err != nil {\n\t\t\treturn false, err\n\t\t}\n")
		g.printf("\t\tv, err := epee.ReadObjectSequence(r, m, New%sBuilder)\n\t\tif err != nil {\n\t\t\treturn false, err\n\t\t}\n", f.Elem)
		g.printf("\t\tb.rec.%s = v\n\t\treturn true, nil\n", name)
	default:
		return fmt.Errorf("field %s: unhandled kind", f.GoName)
	}
	return nil
}

func (g *generator) emitFinish(rec *record, builderType string, flattenField *field) {
	g.printf("\nfunc (b *%s) Finish() (%s, error) {\n", builderType, rec.Name)

	var conds []string
	for _, f := range rec.Fields {
		if f.Flatten || !needsSetFlag(f) {
			continue
		}
		conds = append(conds, fmt.Sprintf("!b.%sSet", fieldFlagName(f)))
	}

	if flattenField == nil {
		if len(conds) > 0 {
			g.printf("\tif %s {\n\t\treturn %s{}, epee.RequiredFieldMissingError()\n\t}\n", strings.Join(conds, " || "), rec.Name)
		}
		g.printf("\treturn b.rec, nil\n}\n")
		return
	}

	fb := fieldFlagName(flattenField)
	g.printf("\t%s, err := b.%s.Finish()\n", fb, fb)
	g.printf("\tif err != nil {\n\t\treturn %s{}, err\n\t}\n", rec.Name)
	if len(conds) > 0 {
		g.printf("\tif %s {\n\t\treturn %s{}, epee.RequiredFieldMissingError()\n\t}\n", strings.Join(conds, " || "), rec.Name)
	}
	g.printf("\tb.rec.%s = %s\n", flattenField.GoName, fb)
	g.printf("\treturn b.rec, nil\n}\n")
}
