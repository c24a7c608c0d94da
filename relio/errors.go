// Package relio reads the plain-text graph, probability, source, and edge-order
// files the reliability solver consumes, and writes them back for round-trip
// testing. This file defines ONLY package-level sentinel errors; every parsing
// function in this package MUST return (or wrap with fmt.Errorf("%w: ...")) one
// of these sentinels rather than an ad-hoc error, so callers can recover the
// failure class via errors.Is.
package relio

import "errors"

var (
	// ErrFileUnreadable is returned when a file cannot be opened for reading.
	ErrFileUnreadable = errors.New("relio: file unreadable")

	// ErrMalformed is returned when a file's contents do not match the expected
	// plain-text layout (missing header, wrong token count, non-numeric field).
	ErrMalformed = errors.New("relio: malformed input")

	// ErrVertexRange is returned when a vertex ID falls outside [1, n].
	ErrVertexRange = errors.New("relio: vertex id out of range")

	// ErrProbabilityRange is returned when a probability is outside [0, 1].
	ErrProbabilityRange = errors.New("relio: probability out of [0,1]")

	// ErrLengthMismatch is returned when the probability file's edge count
	// does not match the graph file's edge count.
	ErrLengthMismatch = errors.New("relio: probability/edge count mismatch")

	// ErrUnknownEdge is returned by EdgeIndex when an order-file edge has no
	// matching endpoint pair in the reference graph.
	ErrUnknownEdge = errors.New("relio: edge not present in reference graph")
)
