// Package ingest constructs model types from raw, loosely-typed input:
// HMQC signature rows, NOE peak rows, and a structure's JSON distance
// graph. Row constructors take a map[string]string so callers can source
// fields from CSV, TSV, or any other tabular format without this package
// depending on a specific parser.
//
// Signature rows reference other methyls and signatures only by label;
// ResolveSignatures performs the second pass that turns those labels into
// pointers once every row has been read and a Structure is available.
// NOE rows follow the same two-pass shape: NewNOE parses shifts and
// captures forced cluster/reciprocal label references in a RawNOE, and
// ResolveNOEs turns a batch of those into model.NOEs once the rest of
// the batch and the signature list are available.
package ingest
