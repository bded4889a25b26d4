// Package primitives provides the foundational, zero-dependency data structures
// for the Turing machine engine.
//
// This package, internal/tape and internal/core use ONLY the Go standard library.
// Adapters (program codecs, trace export, CLI) live elsewhere and may pull in
// external modules.
//
// Core invariants:
// - Symbol has exactly two values; nothing else is representable through constructors
// - The zero Direction is invalid, so "no direction" never reads as Stay
// - State is a tagged union; the terminal kinds carry no payload
package primitives
