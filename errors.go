package glovenn

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyQuery is returned when a query contains no words.
	ErrEmptyQuery = errors.New("query contains no words")

	// ErrEmptyTable is returned when a search has no candidates, either
	// because the table is empty or every entry is in the skip set.
	ErrEmptyTable = errors.New("embedding table has no candidates")

	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")
)

// MalformedLineError indicates a line in a vectors file that could not be
// parsed as a word followed by numeric components.
type MalformedLineError struct {
	Line int
	Msg  string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// DimensionMismatchError indicates a vector whose dimensionality differs
// from the table's. Line is zero unless the mismatch was found while
// parsing a vectors file.
type DimensionMismatchError struct {
	Line     int
	Expected int
	Actual   int
}

func (e *DimensionMismatchError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: dimension mismatch: expected %d components, got %d", e.Line, e.Expected, e.Actual)
	}
	return fmt.Sprintf("dimension mismatch: expected %d components, got %d", e.Expected, e.Actual)
}

// UnknownWordError indicates a query word absent from the embedding table.
type UnknownWordError struct {
	Word string
}

func (e *UnknownWordError) Error() string {
	return fmt.Sprintf("unknown word: %q", e.Word)
}
