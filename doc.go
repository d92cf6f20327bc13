// Package glovenn loads pre-trained word embeddings from the GloVe plain
// text format and answers nearest-neighbor queries over them.
//
// The package supports word-vector arithmetic (sums, means, and signed
// expressions such as "king - man + woman") and finds neighbors with an
// exact linear scan using cosine similarity. Tables are small at this
// scale, so no index structure is built.
//
// Vector arithmetic goes through gonum's BLAS interface. The default
// build uses the pure Go implementation; build with the netlib tag to
// bind against a C BLAS library such as OpenBLAS:
//
//	CGO_LDFLAGS="-L/path/to/OpenBLAS -lopenblas" go build -tags netlib ./...
package glovenn
