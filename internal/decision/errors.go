package decision

import (
	"errors"
	"fmt"
)

// ShapeError indicates mismatched lengths between the table's sequences,
// detected at construction. Tables are never silently truncated or padded.
type ShapeError struct {
	Field string // the inconsistent sequence, e.g. "weights" or "scores[2]"
	Want  int
	Got   int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("decision table shape: %s has length %d, want %d", e.Field, e.Got, e.Want)
}

// IndexError indicates an out-of-range alternative or criterion index passed
// to a scoring operation.
type IndexError struct {
	Kind  string // "alternative" or "criterion"
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s index %d out of range [0,%d)", e.Kind, e.Index, e.Len)
}

var (
	// ErrZeroWeightSum indicates normalization of a table whose criterion
	// weights sum to zero.
	ErrZeroWeightSum = errors.New("criteria weights sum to zero")

	// ErrZeroMaxScore indicates normalization with a zero maximum score.
	ErrZeroMaxScore = errors.New("max score must be nonzero")

	// ErrNoCompleteRow indicates imputation on a table where every
	// alternative has at least one missing score, so no donor row exists.
	ErrNoCompleteRow = errors.New("no alternative has a fully known score row")

	// ErrAllTotalsMissing indicates best-alternative selection when every
	// total weighted score is missing.
	ErrAllTotalsMissing = errors.New("every alternative total is missing")
)
