package glovenn

import (
	"sort"

	"gonum.org/v1/gonum/blas/blas32"
)

func blasVec(v Vector) blas32.Vector {
	return blas32.Vector{N: len(v), Inc: 1, Data: v}
}

// CosineSimilarity returns dot(a,b) / (‖a‖·‖b‖). If either vector has
// zero norm the similarity is 0, not NaN. The vectors must have the same
// length.
func CosineSimilarity(a, b Vector) float32 {
	x, y := blasVec(a), blasVec(b)

	normA := blas32.Nrm2(x)
	normB := blas32.Nrm2(y)
	if normA == 0 || normB == 0 {
		return 0
	}

	return blas32.Dot(x, y) / (normA * normB)
}

// Sum returns the element-wise sum of the vectors for the given words.
// Every word must be present in the table; a missing word is an
// UnknownWordError rather than a silent skip, since a partial sum would
// be misleading.
func (e *Embeddings) Sum(words []string) (Vector, error) {
	if len(words) == 0 {
		return nil, ErrEmptyQuery
	}

	sum := make(Vector, e.dims)
	acc := blasVec(sum)
	for _, word := range words {
		vec, ok := e.Vector(word)
		if !ok {
			return nil, &UnknownWordError{Word: word}
		}

		blas32.Axpy(1, blasVec(vec), acc)
	}

	return sum, nil
}

// Mean returns the element-wise mean of the vectors for the given words.
func (e *Embeddings) Mean(words []string) (Vector, error) {
	sum, err := e.Sum(words)
	if err != nil {
		return nil, err
	}

	blas32.Scal(1/float32(len(words)), blasVec(sum))

	return sum, nil
}

// Eval computes a word-arithmetic expression such as
//
//	king - man + woman
//
// The tokens "+" and "-" set the sign applied to the words that follow
// them; the initial sign is positive. Unknown words fail with
// UnknownWordError, and an expression containing no words at all fails
// with ErrEmptyQuery.
func (e *Embeddings) Eval(tokens []string) (Vector, error) {
	result := make(Vector, e.dims)
	acc := blasVec(result)

	sign := float32(1)
	sawWord := false
	for _, token := range tokens {
		switch token {
		case "+":
			sign = 1
		case "-":
			sign = -1
		default:
			vec, ok := e.Vector(token)
			if !ok {
				return nil, &UnknownWordError{Word: token}
			}

			blas32.Axpy(sign, blasVec(vec), acc)
			sawWord = true
		}
	}
	if !sawWord {
		return nil, ErrEmptyQuery
	}

	return result, nil
}

// Nearest returns the table entry with maximum cosine similarity to the
// query vector, skipping words in the skip set. Ties go to the word
// inserted first. When no candidate remains the error is ErrEmptyTable.
func (e *Embeddings) Nearest(query Vector, skips map[string]struct{}) (WordSimilarity, error) {
	if len(query) != e.dims {
		return WordSimilarity{}, &DimensionMismatchError{Expected: e.dims, Actual: len(query)}
	}

	var best WordSimilarity
	found := false
	for idx, word := range e.words {
		if _, ok := skips[word]; ok {
			continue
		}

		sim := CosineSimilarity(query, e.row(idx))
		if !found || sim > best.Similarity {
			best = WordSimilarity{Word: word, Similarity: sim}
			found = true
		}
	}
	if !found {
		return WordSimilarity{}, ErrEmptyTable
	}

	return best, nil
}

// NearestK returns up to k table entries ordered by decreasing cosine
// similarity to the query vector, skipping words in the skip set. Entries
// with equal similarity keep insertion order.
func (e *Embeddings) NearestK(query Vector, k int, skips map[string]struct{}) ([]WordSimilarity, error) {
	if k <= 0 {
		return nil, ErrInvalidK
	}
	if len(query) != e.dims {
		return nil, &DimensionMismatchError{Expected: e.dims, Actual: len(query)}
	}

	results := make([]WordSimilarity, 0, k)
	for idx, word := range e.words {
		if _, ok := skips[word]; ok {
			continue
		}

		sim := CosineSimilarity(query, e.row(idx))

		ip := sort.Search(len(results), func(i int) bool {
			return results[i].Similarity < sim
		})
		if ip < k {
			results = insertWithLimit(results, k, ip, WordSimilarity{Word: word, Similarity: sim})
		}
	}
	if len(results) == 0 {
		return nil, ErrEmptyTable
	}

	return results, nil
}

func insertWithLimit(slice []WordSimilarity, limit, index int, value WordSimilarity) []WordSimilarity {
	if len(slice) < limit {
		slice = append(slice, WordSimilarity{})
	}

	copy(slice[index+1:], slice[index:len(slice)-1])
	slice[index] = value
	return slice
}
