// object_flatten_test.go: Fixtures for S4 (alt-name) and S5 (flatten)
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package epee

// altNativeRecord declares its wire name natively: `{ val2: u8, d: u64 }`.
type altNativeRecord struct {
	Val2 uint8
	D    uint64
}

func (r *altNativeRecord) NumberOfFields() uint64 { return 2 }

func (r *altNativeRecord) WriteFields(w Writer) error {
	if err := WriteField(w, "val2", Marker{Inner: MarkerU8}, func(w Writer) error {
		return WriteUint8(w, r.Val2)
	}); err != nil {
		return err
	}
	return WriteField(w, "d", Marker{Inner: MarkerU64}, func(w Writer) error {
		return WriteUint64(w, r.D)
	})
}

// altRenamedRecord has a Go field `Val` wire-renamed to "val2" via
// `epee:"val2"`, matching epee_alt_name in the generator this mirrors.
type altRenamedRecord struct {
	Val uint8
	D   uint64
}

func (r *altRenamedRecord) NumberOfFields() uint64 { return 2 }

func (r *altRenamedRecord) WriteFields(w Writer) error {
	if err := WriteField(w, "val2", Marker{Inner: MarkerU8}, func(w Writer) error {
		return WriteUint8(w, r.Val)
	}); err != nil {
		return err
	}
	return WriteField(w, "d", Marker{Inner: MarkerU64}, func(w Writer) error {
		return WriteUint64(w, r.D)
	})
}

type altRenamedRecordBuilder struct {
	rec    altRenamedRecord
	valSet bool
	dSet   bool
}

func newAltRenamedRecordBuilder() *altRenamedRecordBuilder { return &altRenamedRecordBuilder{} }

func (b *altRenamedRecordBuilder) AddField(name string, r Reader) (bool, error) {
	switch name {
	case "val2":
		m, err := readMarker(r)
		if err != nil {
			return false, err
		}
		v, err := ReadUint8(r, m)
		if err != nil {
			return false, err
		}
		b.rec.Val, b.valSet = v, true
		return true, nil
	case "d":
		m, err := readMarker(r)
		if err != nil {
			return false, err
		}
		v, err := ReadUint64(r, m)
		if err != nil {
			return false, err
		}
		b.rec.D, b.dSet = v, true
		return true, nil
	default:
		return false, nil
	}
}

func (b *altRenamedRecordBuilder) Finish() (altRenamedRecord, error) {
	if !b.valSet || !b.dSet {
		return altRenamedRecord{}, newFormatError(ErrCodeFieldMissing, "Required field was not found!")
	}
	return b.rec, nil
}

// childRecord is the flattened child: `{ val: u64, val2: Vec<u8> }`.
type childRecord struct {
	Val  uint64
	Val2 []byte
}

func (c *childRecord) NumberOfFields() uint64 {
	n := uint64(1)
	if len(c.Val2) > 0 {
		n++
	}
	return n
}

func (c *childRecord) WriteFields(w Writer) error {
	if err := WriteField(w, "val", Marker{Inner: MarkerU64}, func(w Writer) error {
		return WriteUint64(w, c.Val)
	}); err != nil {
		return err
	}
	if len(c.Val2) == 0 {
		return nil
	}
	return WriteField(w, "val2", Marker{Inner: MarkerString}, func(w Writer) error {
		return WriteBytes(w, c.Val2)
	})
}

// parentRecord flattens childRecord and adds its own field `h`.
type parentRecord struct {
	Child childRecord
	H     float64
}

func (p *parentRecord) NumberOfFields() uint64 {
	return p.Child.NumberOfFields() + 1
}

func (p *parentRecord) WriteFields(w Writer) error {
	if err := p.Child.WriteFields(w); err != nil {
		return err
	}
	return WriteField(w, "h", Marker{Inner: MarkerF64}, func(w Writer) error {
		return WriteFloat64(w, p.H)
	})
}

// manualFlatRecord has the same fields as parentRecord with the child
// flattened by hand, in the same declaration order the flatten
// adjustment produces: child fields first, then the parent's own.
type manualFlatRecord struct {
	Val  uint64
	Val2 []byte
	H    float64
}

func (m *manualFlatRecord) NumberOfFields() uint64 {
	n := uint64(1)
	if len(m.Val2) > 0 {
		n++
	}
	return n + 1
}

func (m *manualFlatRecord) WriteFields(w Writer) error {
	if err := WriteField(w, "val", Marker{Inner: MarkerU64}, func(w Writer) error {
		return WriteUint64(w, m.Val)
	}); err != nil {
		return err
	}
	if len(m.Val2) > 0 {
		if err := WriteField(w, "val2", Marker{Inner: MarkerString}, func(w Writer) error {
			return WriteBytes(w, m.Val2)
		}); err != nil {
			return err
		}
	}
	return WriteField(w, "h", Marker{Inner: MarkerF64}, func(w Writer) error {
		return WriteFloat64(w, m.H)
	})
}
