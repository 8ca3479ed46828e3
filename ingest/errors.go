// File: errors.go — sentinel errors for malformed input rows.
package ingest

import "errors"

// ErrDiagonal is returned by NewNOE when a row's chemical shifts place it
// on the diagonal of its experiment: it refers to one nucleus, not a
// spatial contact between two, and carries no assignment evidence.
var ErrDiagonal = errors.New("ingest: NOE row lies on the diagonal")

// ErrMalformedRow is returned when a required field is missing or cannot
// be parsed as the type it is expected to hold.
var ErrMalformedRow = errors.New("ingest: malformed row")
