// fixtures.go: a small struct exercising the growable []byte field kind,
// kept separate from monero/ so the generator test suite has a minimal
// case that does not depend on the Monero record shapes.
package fixtures

//go:generate go run github.com/agilira/epee/cmd/epeegen -type Blob

// Blob pairs a short label with an arbitrary-length payload.
type Blob struct {
	Name    string `epee:"name"`
	Payload []byte `epee:"payload"`
}

// Flags exercises the bool-sequence kind and the derived wire name: the
// empty tag means "on the wire, but named by convention", so ActiveSpans
// serializes as "active_spans".
type Flags struct {
	ActiveSpans []bool `epee:""`
}

// Maybe exercises the optional-scalar kind: a nil pointer is absent on
// the wire (never written, never required on read).
type Maybe struct {
	Val *uint8 `epee:"val"`
}

// Envelope is the flattened child of Sample.
type Envelope struct {
	Val  uint64 `epee:"val"`
	Val2 []byte `epee:"val2"`
}

// Sample mixes a flattened child with a plain always-written field, so
// its field count must be the child's count plus its own fixed fields.
type Sample struct {
	Envelope Envelope `epee:",flatten"`
	H        float64  `epee:"h"`
}
