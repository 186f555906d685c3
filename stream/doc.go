// Package stream feeds ordered construction events into a builder.
//
// # Overview
//
// The builder consumes a strictly ordered stream of typed records; this
// package defines that stream at its interface. A Source yields one
// Record at a time until io.EOF, Replay drives a builder from a Source,
// and Reader decodes the module's own line-oriented, tab-separated
// event-record form. Open maps a record file into memory and unwraps
// gzip transparently, so replay files can be stored compressed.
//
// The record form is an internal replay format, not a structure file
// grammar: one event per line, fields separated by tabs, the first
// field naming the event. Blank lines and lines starting with '#' are
// skipped.
//
// # Related Packages
//
//   - builder: consumes the records this package produces
//   - diag: carries the line numbers recorded here into diagnostics
package stream
