package pke

import (
	"encoding/binary"
	"errors"
	"fmt"

	mceliece "github.com/BackendStack21/mceliece-go"
	"github.com/BackendStack21/mceliece-go/core"
	"github.com/BackendStack21/mceliece-go/gf2"
	"github.com/BackendStack21/mceliece-go/utils"
)

// Key wire format: a length-tagged variant string, the block count L, and
// the key's matrices. Matrices are stored as row count, column count and
// bit-packed row-major data (LSB first within each byte). All integers are
// little-endian uint32.

// SerializePublicKey serializes a public key to bytes.
func SerializePublicKey(pk *mceliece.PublicKey) []byte {
	buf := appendString(nil, string(pk.Variant))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(pk.L))
	buf = appendMatrix(buf, pk.GPub)
	return buf
}

// DeserializePublicKey deserializes a public key, validating the matrix
// shape against the variant's parameters.
func DeserializePublicKey(data []byte) (*mceliece.PublicKey, error) {
	variant, offset, err := readString(data, 0)
	if err != nil {
		return nil, err
	}
	params, err := core.GetParams(mceliece.Variant(variant))
	if err != nil {
		return nil, err
	}
	blocks, offset, err := utils.SafeReadLength(data, offset, utils.MaxBlockCount)
	if err != nil {
		return nil, err
	}
	if blocks < 1 {
		return nil, errors.New("block count must be at least 1")
	}
	gPub, offset, err := readMatrix(data, offset)
	if err != nil {
		return nil, err
	}
	if offset != len(data) {
		return nil, errors.New("trailing bytes after public key")
	}
	if gPub.Rows() != params.K || gPub.Cols() != params.N {
		return nil, fmt.Errorf("public key matrix is %dx%d, want %dx%d",
			gPub.Rows(), gPub.Cols(), params.K, params.N)
	}

	return &mceliece.PublicKey{
		Variant: mceliece.Variant(variant),
		Params:  params,
		L:       blocks,
		GPub:    gPub,
	}, nil
}

// SerializePrivateKey serializes a private key to bytes. Only S and P are
// stored; the inverses and the code are reconstructed on deserialization.
func SerializePrivateKey(sk *mceliece.PrivateKey) []byte {
	buf := appendString(nil, string(sk.Variant))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(sk.L))
	buf = appendMatrix(buf, sk.S)
	buf = appendMatrix(buf, sk.P)
	return buf
}

// DeserializePrivateKey deserializes a private key, recomputing S^-1 and
// P^-1 and validating that S is invertible and P is a permutation matrix.
func DeserializePrivateKey(data []byte) (*mceliece.PrivateKey, error) {
	variant, offset, err := readString(data, 0)
	if err != nil {
		return nil, err
	}
	params, err := core.GetParams(mceliece.Variant(variant))
	if err != nil {
		return nil, err
	}
	blocks, offset, err := utils.SafeReadLength(data, offset, utils.MaxBlockCount)
	if err != nil {
		return nil, err
	}
	if blocks < 1 {
		return nil, errors.New("block count must be at least 1")
	}
	s, offset, err := readMatrix(data, offset)
	if err != nil {
		return nil, err
	}
	p, offset, err := readMatrix(data, offset)
	if err != nil {
		return nil, err
	}
	if offset != len(data) {
		return nil, errors.New("trailing bytes after private key")
	}
	if s.Rows() != params.K || s.Cols() != params.K {
		return nil, fmt.Errorf("scrambling matrix is %dx%d, want %dx%d",
			s.Rows(), s.Cols(), params.K, params.K)
	}
	if err := validatePermutation(p, params.N); err != nil {
		return nil, err
	}

	sInv, err := gf2.Inverse(s)
	if err != nil {
		return nil, fmt.Errorf("scrambling matrix: %w", err)
	}
	code, err := NewCode(mceliece.Variant(variant))
	if err != nil {
		return nil, err
	}

	return &mceliece.PrivateKey{
		Variant: mceliece.Variant(variant),
		Params:  params,
		L:       blocks,
		S:       s,
		SInv:    sInv,
		P:       p,
		PInv:    p.Transpose(),
		Code:    code,
	}, nil
}

func validatePermutation(p gf2.Matrix, n int) error {
	if p.Rows() != n || p.Cols() != n {
		return fmt.Errorf("permutation matrix is %dx%d, want %dx%d", p.Rows(), p.Cols(), n, n)
	}
	colSeen := make([]bool, n)
	for i := 0; i < n; i++ {
		ones := 0
		col := -1
		for j := 0; j < n; j++ {
			if p.At(i, j) == 1 {
				ones++
				col = j
			}
		}
		if ones != 1 || colSeen[col] {
			return errors.New("not a permutation matrix")
		}
		colSeen[col] = true
	}
	return nil
}

func appendString(buf []byte, s string) []byte {
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(s)))
	return append(buf, s...)
}

func readString(data []byte, offset int) (string, int, error) {
	length, offset, err := utils.SafeReadLength(data, offset, 255)
	if err != nil {
		return "", offset, err
	}
	if err := utils.ValidateSliceAccess(data, offset, length); err != nil {
		return "", offset, err
	}
	return string(data[offset : offset+length]), offset + length, nil
}

func appendMatrix(buf []byte, m gf2.Matrix) []byte {
	buf = binary.LittleEndian.AppendUint32(buf, uint32(m.Rows()))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(m.Cols()))
	packed := make([]byte, (m.Rows()*m.Cols()+7)/8)
	idx := 0
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if m.At(i, j) == 1 {
				packed[idx/8] |= 1 << (idx % 8)
			}
			idx++
		}
	}
	return append(buf, packed...)
}

func readMatrix(data []byte, offset int) (gf2.Matrix, int, error) {
	rows, offset, err := utils.SafeReadLength(data, offset, utils.MaxMatrixElements)
	if err != nil {
		return gf2.Matrix{}, offset, err
	}
	cols, offset, err := utils.SafeReadLength(data, offset, utils.MaxMatrixElements)
	if err != nil {
		return gf2.Matrix{}, offset, err
	}
	if rows < 1 || cols < 1 || rows*cols > utils.MaxMatrixElements {
		return gf2.Matrix{}, offset, utils.ErrExceedsLimit
	}
	packedLen := (rows*cols + 7) / 8
	if err := utils.ValidateSliceAccess(data, offset, packedLen); err != nil {
		return gf2.Matrix{}, offset, err
	}
	m := gf2.NewMatrix(rows, cols)
	idx := 0
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.Set(i, j, (data[offset+idx/8]>>(idx%8))&1)
			idx++
		}
	}
	return m, offset + packedLen, nil
}
