package gf2

import (
	"testing"

	"github.com/BackendStack21/mceliece-go/utils"
)

func TestRandomMatrixDeterministic(t *testing.T) {
	seed := []byte("gf2-random-matrix-test-seed-0000")

	a, err := RandomMatrix(utils.NewShakeReader(seed), 11, 15)
	if err != nil {
		t.Fatalf("RandomMatrix failed: %v", err)
	}
	b, err := RandomMatrix(utils.NewShakeReader(seed), 11, 15)
	if err != nil {
		t.Fatalf("RandomMatrix failed: %v", err)
	}
	if !a.Equal(b) {
		t.Error("same seed must reproduce the same matrix")
	}

	c, err := RandomMatrix(utils.NewShakeReader([]byte("gf2-random-matrix-test-seed-0001")), 11, 15)
	if err != nil {
		t.Fatalf("RandomMatrix failed: %v", err)
	}
	if a.Equal(c) {
		t.Error("different seeds should give different matrices")
	}
}

func TestRandomInvertibleMatrix(t *testing.T) {
	for _, size := range []int{7, 11, 15} {
		r := utils.NewShakeReader([]byte("gf2-invertible-test-seed-0000000"))
		m, inv, err := RandomInvertibleMatrix(r, size)
		if err != nil {
			t.Fatalf("RandomInvertibleMatrix(%d) failed: %v", size, err)
		}
		if Rank(m) != size {
			t.Errorf("size %d: sampled matrix has rank %d, want full rank", size, Rank(m))
		}
		prod, err := Mul(m, inv)
		if err != nil {
			t.Fatalf("Mul failed: %v", err)
		}
		if !prod.Equal(Identity(size)) {
			t.Errorf("size %d: M * M^-1 should be the identity", size)
		}
	}
}

func TestRandomPermutationMatrix(t *testing.T) {
	r := utils.NewShakeReader([]byte("gf2-permutation-test-seed-000000"))
	const n = 15
	p, err := RandomPermutationMatrix(r, n)
	if err != nil {
		t.Fatalf("RandomPermutationMatrix failed: %v", err)
	}

	for i := 0; i < n; i++ {
		rowOnes, colOnes := 0, 0
		for j := 0; j < n; j++ {
			rowOnes += int(p.At(i, j))
			colOnes += int(p.At(j, i))
		}
		if rowOnes != 1 || colOnes != 1 {
			t.Fatalf("row/col %d has %d/%d ones, want exactly 1", i, rowOnes, colOnes)
		}
	}

	// The inverse of a permutation matrix is its transpose.
	prod, err := Mul(p, p.Transpose())
	if err != nil {
		t.Fatalf("Mul failed: %v", err)
	}
	if !prod.Equal(Identity(n)) {
		t.Error("P * P^T should be the identity")
	}
}
