// errors.go: Error handling for the epee binary encoding
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package epee

import (
	"fmt"

	errors "github.com/agilira/go-errors"
)

// Error codes for the epee codec. Every diagnostic the decoder or encoder
// can produce carries one of these, grouped by the IO / Format / Value
// taxonomy the wire contract distinguishes.
const (
	// IO errors: the underlying reader or writer did not satisfy a request.
	ErrCodeReaderShort errors.ErrorCode = "EPEE_READER_SHORT"
	ErrCodeWriterShort errors.ErrorCode = "EPEE_WRITER_SHORT"

	// Format errors: the bytes on the wire do not describe a valid document.
	ErrCodeBadHeader       errors.ErrorCode = "EPEE_BAD_HEADER"
	ErrCodeUnknownMarker   errors.ErrorCode = "EPEE_UNKNOWN_MARKER"
	ErrCodeMarkerMismatch  errors.ErrorCode = "EPEE_MARKER_MISMATCH"
	ErrCodeArrayLength     errors.ErrorCode = "EPEE_ARRAY_LENGTH"
	ErrCodeStringTooLong   errors.ErrorCode = "EPEE_STRING_TOO_LONG"
	ErrCodeSkipDepth       errors.ErrorCode = "EPEE_SKIP_DEPTH"
	ErrCodeFieldMissing    errors.ErrorCode = "EPEE_FIELD_MISSING"
	ErrCodeNameTooLong     errors.ErrorCode = "EPEE_NAME_TOO_LONG"

	// Value errors: a decoded quantity cannot be represented in Go's types.
	ErrCodeIntTooLarge errors.ErrorCode = "EPEE_INT_TOO_LARGE"
)

// newIOError builds an IO-class error. IO errors never carry caller-site
// context beyond the operation name; the decode path is per-message, not
// per-log-line, so capturing a runtime.Caller frame on every short read
// would be pure overhead with no operator-facing payoff.
func newIOError(code errors.ErrorCode, message string) *errors.Error {
	return errors.New(code, message).WithSeverity("error")
}

// newFormatError builds a Format-class error, optionally annotated with
// the field or position that violated the wire contract.
func newFormatError(code errors.ErrorCode, message string) *errors.Error {
	return errors.New(code, message).WithSeverity("error")
}

// newValueError builds a Value-class error for conversions that overflow
// Go's native integer types.
func newValueError(code errors.ErrorCode, message string) *errors.Error {
	return errors.New(code, message).WithSeverity("error")
}

// withField annotates an error with the wire field name it occurred on.
// The object engine applies it to whatever a builder's AddField returns,
// so a marker mismatch three objects deep still names the field that
// tripped it.
func withField(err *errors.Error, field string) *errors.Error {
	return err.WithContext("field", field)
}

// RequiredFieldMissingError builds the standard "required field absent"
// error generated builders return from Finish when a non-defaulted,
// non-optional field was never set.
func RequiredFieldMissingError() error {
	return newFormatError(ErrCodeFieldMissing, "Required field was not found!")
}

// IsCode reports whether err is an epee error carrying the given code.
func IsCode(err error, code errors.ErrorCode) bool {
	return errors.HasCode(err, code)
}

// codePrefix is validated once at init so a typo in a new error constant
// is caught immediately rather than surfacing as an unrecognized code at
// some caller's error-handling site.
const codePrefix = "EPEE_"

func init() {
	codes := []errors.ErrorCode{
		ErrCodeReaderShort, ErrCodeWriterShort,
		ErrCodeBadHeader, ErrCodeUnknownMarker, ErrCodeMarkerMismatch,
		ErrCodeArrayLength, ErrCodeStringTooLong, ErrCodeSkipDepth,
		ErrCodeFieldMissing, ErrCodeNameTooLong, ErrCodeIntTooLarge,
	}
	for _, code := range codes {
		s := string(code)
		if len(s) < len(codePrefix) || s[:len(codePrefix)] != codePrefix {
			panic(fmt.Sprintf("error code %s does not follow EPEE_ prefix convention", code))
		}
	}
}
