// Package gf2 implements vector and matrix arithmetic over GF(2), the
// binary field where addition is XOR and multiplication is AND.
//
// Operations return freshly allocated results and never mutate their
// inputs, so values can be shared freely between keys and tests.
package gf2

import (
	"bytes"
	"errors"
)

var (
	// ErrDimensionMismatch indicates operand shapes incompatible for a
	// matrix or vector operation. Always a programming error.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrSingularMatrix indicates a square matrix with rank below its size.
	ErrSingularMatrix = errors.New("singular matrix")
)

// Vector is a sequence of bits stored one per byte, values in {0,1}.
type Vector []byte

// Clone returns a copy of the vector.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}

// Weight returns the Hamming weight (number of set bits).
func (v Vector) Weight() int {
	w := 0
	for _, b := range v {
		if b != 0 {
			w++
		}
	}
	return w
}

// XOR returns the element-wise sum of two vectors over GF(2).
func XOR(a, b Vector) (Vector, error) {
	if len(a) != len(b) {
		return nil, ErrDimensionMismatch
	}
	out := make(Vector, len(a))
	for i := range a {
		out[i] = a[i] ^ b[i]
	}
	return out, nil
}

// Matrix is a rectangular bit matrix stored row-major, one bit per byte.
type Matrix struct {
	rows, cols int
	data       []byte
}

// NewMatrix returns a zero matrix of the given shape.
// Panics on non-positive dimensions; shapes are compile-time facts here.
func NewMatrix(rows, cols int) Matrix {
	if rows <= 0 || cols <= 0 {
		panic("gf2: matrix dimensions must be positive")
	}
	return Matrix{rows: rows, cols: cols, data: make([]byte, rows*cols)}
}

// Identity returns the n x n identity matrix.
func Identity(n int) Matrix {
	m := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

// Rows returns the number of rows.
func (m Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m Matrix) Cols() int { return m.cols }

// At returns the bit at row i, column j.
func (m Matrix) At(i, j int) byte { return m.data[i*m.cols+j] }

// Set assigns the bit at row i, column j. Only used while constructing a
// matrix; the arithmetic operations never call it on their inputs.
func (m Matrix) Set(i, j int, v byte) { m.data[i*m.cols+j] = v & 1 }

// Clone returns a deep copy of the matrix.
func (m Matrix) Clone() Matrix {
	out := Matrix{rows: m.rows, cols: m.cols, data: make([]byte, len(m.data))}
	copy(out.data, m.data)
	return out
}

// Equal reports whether two matrices have the same shape and entries.
func (m Matrix) Equal(other Matrix) bool {
	return m.rows == other.rows && m.cols == other.cols && bytes.Equal(m.data, other.data)
}

// Row returns row i as a vector.
func (m Matrix) Row(i int) Vector {
	out := make(Vector, m.cols)
	copy(out, m.data[i*m.cols:(i+1)*m.cols])
	return out
}

// Transpose returns the transposed matrix.
func (m Matrix) Transpose() Matrix {
	out := NewMatrix(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.data[j*m.rows+i] = m.data[i*m.cols+j]
		}
	}
	return out
}

// Mul returns the matrix product A * B over GF(2).
func Mul(a, b Matrix) (Matrix, error) {
	if a.cols != b.rows {
		return Matrix{}, ErrDimensionMismatch
	}
	out := NewMatrix(a.rows, b.cols)
	for i := 0; i < a.rows; i++ {
		for l := 0; l < a.cols; l++ {
			if a.data[i*a.cols+l] == 0 {
				continue
			}
			rowOut := out.data[i*out.cols : (i+1)*out.cols]
			rowB := b.data[l*b.cols : (l+1)*b.cols]
			for j := range rowOut {
				rowOut[j] ^= rowB[j]
			}
		}
	}
	return out, nil
}

// VecMatMul returns the row-vector product v * M over GF(2).
// v must have len equal to the number of rows of M.
func VecMatMul(v Vector, m Matrix) (Vector, error) {
	if len(v) != m.rows {
		return nil, ErrDimensionMismatch
	}
	out := make(Vector, m.cols)
	for i, bit := range v {
		if bit == 0 {
			continue
		}
		row := m.data[i*m.cols : (i+1)*m.cols]
		for j := range out {
			out[j] ^= row[j]
		}
	}
	return out, nil
}

// MatVecMul returns the column-vector product M * v over GF(2).
// v must have len equal to the number of columns of M.
func MatVecMul(m Matrix, v Vector) (Vector, error) {
	if len(v) != m.cols {
		return nil, ErrDimensionMismatch
	}
	out := make(Vector, m.rows)
	for i := 0; i < m.rows; i++ {
		var sum byte
		row := m.data[i*m.cols : (i+1)*m.cols]
		for j, bit := range v {
			sum ^= row[j] & bit
		}
		out[i] = sum
	}
	return out, nil
}

// Inverse returns the inverse of a square matrix, computed by Gaussian
// elimination mod 2 on the augmented matrix [M | I].
func Inverse(m Matrix) (Matrix, error) {
	if m.rows != m.cols {
		return Matrix{}, ErrDimensionMismatch
	}
	n := m.rows
	a := m.Clone()
	inv := Identity(n)

	for col := 0; col < n; col++ {
		pivot := -1
		for row := col; row < n; row++ {
			if a.data[row*n+col] == 1 {
				pivot = row
				break
			}
		}
		if pivot < 0 {
			return Matrix{}, ErrSingularMatrix
		}
		a.swapRows(col, pivot)
		inv.swapRows(col, pivot)
		for row := 0; row < n; row++ {
			if row != col && a.data[row*n+col] == 1 {
				a.xorRow(row, col)
				inv.xorRow(row, col)
			}
		}
	}
	return inv, nil
}

// Rank returns the rank of the matrix over GF(2).
func Rank(m Matrix) int {
	a := m.Clone()
	rank := 0
	for col := 0; col < a.cols && rank < a.rows; col++ {
		pivot := -1
		for row := rank; row < a.rows; row++ {
			if a.data[row*a.cols+col] == 1 {
				pivot = row
				break
			}
		}
		if pivot < 0 {
			continue
		}
		a.swapRows(rank, pivot)
		for row := 0; row < a.rows; row++ {
			if row != rank && a.data[row*a.cols+col] == 1 {
				a.xorRow(row, rank)
			}
		}
		rank++
	}
	return rank
}

func (m Matrix) swapRows(i, j int) {
	if i == j {
		return
	}
	ri := m.data[i*m.cols : (i+1)*m.cols]
	rj := m.data[j*m.cols : (j+1)*m.cols]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}

// xorRow adds row src into row dst mod 2.
func (m Matrix) xorRow(dst, src int) {
	rd := m.data[dst*m.cols : (dst+1)*m.cols]
	rs := m.data[src*m.cols : (src+1)*m.cols]
	for k := range rd {
		rd[k] ^= rs[k]
	}
}
