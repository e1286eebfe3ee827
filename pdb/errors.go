package pdb

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFinite is the cause of a MalformedRecordError for a coordinate
	// that parsed to an infinity or NaN.
	ErrNotFinite = errors.New("coordinate is not finite")

	// ErrTruncated is the cause of a MalformedRecordError for a record too
	// short to hold its coordinates.
	ErrTruncated = errors.New("record is truncated")

	// ErrDuplicateResidue is returned when two residues share a key.
	ErrDuplicateResidue = errors.New("duplicate residue")

	// ErrNoResidue is returned when a key does not name a residue.
	ErrNoResidue = errors.New("no such residue")
)

// MalformedRecordError describes an ATOM or HETATM record that could not be
// read.
type MalformedRecordError struct {
	// Line is the 1-based line number of the record.
	Line int

	// Field is the name of the offending field, e.g., "x".
	Field string

	// Text is the offending text, as found.
	Text string

	Err error
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("Malformed %s field '%s' on line %d: %s",
		e.Field, e.Text, e.Line, e.Err)
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}
