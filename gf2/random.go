package gf2

import (
	"errors"
	"fmt"
	"io"

	"github.com/BackendStack21/mceliece-go/utils"
)

// maxSampleAttempts bounds the rejection loop in RandomInvertibleMatrix.
// A uniform binary matrix is invertible with probability ~0.289 regardless
// of size, so 256 attempts failing has probability below 2^-450.
const maxSampleAttempts = 256

// ErrSamplingFailed indicates the invertible-matrix rejection loop
// exhausted its attempt bound.
var ErrSamplingFailed = errors.New("failed to sample an invertible matrix")

// RandomMatrix returns a uniformly random rows x cols matrix with bits
// drawn from r.
func RandomMatrix(r io.Reader, rows, cols int) (Matrix, error) {
	bits, err := utils.RandomBits(r, rows*cols)
	if err != nil {
		return Matrix{}, err
	}
	return Matrix{rows: rows, cols: cols, data: bits}, nil
}

// RandomInvertibleMatrix samples uniformly random size x size matrices
// until one has full rank over GF(2), and returns it together with its
// inverse. Singular samples are rejected internally and never surface.
func RandomInvertibleMatrix(r io.Reader, size int) (Matrix, Matrix, error) {
	for attempt := 0; attempt < maxSampleAttempts; attempt++ {
		m, err := RandomMatrix(r, size, size)
		if err != nil {
			return Matrix{}, Matrix{}, err
		}
		inv, err := Inverse(m)
		if errors.Is(err, ErrSingularMatrix) {
			continue
		}
		if err != nil {
			return Matrix{}, Matrix{}, err
		}
		return m, inv, nil
	}
	return Matrix{}, Matrix{}, fmt.Errorf("%w after %d attempts", ErrSamplingFailed, maxSampleAttempts)
}

// RandomPermutationMatrix returns the matrix form of a uniformly random
// permutation of {0,...,n-1}: one 1 per row and per column. The inverse of
// a permutation matrix is its transpose.
func RandomPermutationMatrix(r io.Reader, n int) (Matrix, error) {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	// Fisher-Yates with rejection-sampled uniform indices.
	for i := n - 1; i > 0; i-- {
		j, err := utils.RandomInt(r, i+1)
		if err != nil {
			return Matrix{}, err
		}
		perm[i], perm[j] = perm[j], perm[i]
	}

	m := NewMatrix(n, n)
	for i, p := range perm {
		m.data[i*n+p] = 1
	}
	return m, nil
}
