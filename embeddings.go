package glovenn

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Vector is a word embedding. All vectors in a table share one
// dimensionality.
type Vector []float32

// WordSimilarity pairs a word with its cosine similarity to a query.
type WordSimilarity struct {
	Word       string
	Similarity float32
}

// Embeddings maps words to vectors. Iteration order is insertion order,
// which makes nearest-neighbor tie-breaks deterministic. The type is safe
// for concurrent readers once construction is complete.
type Embeddings struct {
	words   []string
	indices map[string]int
	data    []float32
	dims    int
}

// NewEmbeddings creates an empty table for vectors of the given
// dimensionality.
func NewEmbeddings(dims int) *Embeddings {
	return &Embeddings{
		indices: make(map[string]int),
		dims:    dims,
	}
}

// Put adds a vector for a word. Re-putting a word replaces its vector but
// keeps the word's original position in iteration order.
func (e *Embeddings) Put(word string, vec Vector) error {
	if len(vec) != e.dims {
		return &DimensionMismatchError{Expected: e.dims, Actual: len(vec)}
	}

	if idx, ok := e.indices[word]; ok {
		copy(e.row(idx), vec)
		return nil
	}

	e.indices[word] = len(e.words)
	e.words = append(e.words, word)
	e.data = append(e.data, vec...)

	return nil
}

// Vector returns the vector for a word. The slice aliases the table's
// backing storage and must not be modified.
func (e *Embeddings) Vector(word string) (Vector, bool) {
	idx, ok := e.indices[word]
	if !ok {
		return nil, false
	}

	return e.row(idx), true
}

// Size returns the number of words in the table.
func (e *Embeddings) Size() int {
	return len(e.words)
}

// Dims returns the dimensionality of the table's vectors.
func (e *Embeddings) Dims() int {
	return e.dims
}

// Iterate calls f for every (word, vector) pair in insertion order,
// stopping early if f returns false.
func (e *Embeddings) Iterate(f func(word string, vec Vector) bool) {
	for idx, word := range e.words {
		if !f(word, e.row(idx)) {
			return
		}
	}
}

func (e *Embeddings) row(idx int) Vector {
	return e.data[idx*e.dims : (idx+1)*e.dims]
}

// ReadTextVectors parses embeddings in the GloVe text format: one entry
// per line, a word followed by its components, separated by whitespace.
// Blank lines are skipped. The dimensionality is taken from the first
// entry and enforced for the rest of the file.
func ReadTextVectors(r io.Reader) (*Embeddings, error) {
	var embeds *Embeddings

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return nil, &MalformedLineError{Line: line, Msg: "expected a word followed by vector components"}
		}

		if embeds == nil {
			embeds = NewEmbeddings(len(fields) - 1)
		} else if len(fields)-1 != embeds.dims {
			return nil, &DimensionMismatchError{Line: line, Expected: embeds.dims, Actual: len(fields) - 1}
		}

		vec := make(Vector, len(fields)-1)
		for idx, field := range fields[1:] {
			val, err := strconv.ParseFloat(field, 32)
			if err != nil {
				return nil, &MalformedLineError{Line: line, Msg: fmt.Sprintf("component %q is not a number", field)}
			}
			vec[idx] = float32(val)
		}

		if err := embeds.Put(fields[0], vec); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading vectors: %w", err)
	}

	if embeds == nil {
		embeds = NewEmbeddings(0)
	}

	return embeds, nil
}

// WriteTextVectors writes the table in the GloVe text format, in
// iteration order. ReadTextVectors reads the output back into an
// equivalent table.
func WriteTextVectors(w io.Writer, embeds *Embeddings) error {
	bw := bufio.NewWriter(w)

	var writeErr error
	embeds.Iterate(func(word string, vec Vector) bool {
		if _, err := bw.WriteString(word + " " + floatSliceToString(vec) + "\n"); err != nil {
			writeErr = err
			return false
		}
		return true
	})
	if writeErr != nil {
		return writeErr
	}

	return bw.Flush()
}

func floatSliceToString(vec Vector) string {
	strs := make([]string, len(vec))

	for idx, val := range vec {
		strs[idx] = strconv.FormatFloat(float64(val), 'f', 6, 32)
	}

	return strings.Join(strs, " ")
}
