// Package hamming implements the (15,11) Hamming code with syndrome
// decoding. The code corrects exactly one bit error per 15-bit block;
// heavier error patterns may silently decode to the wrong codeword, which
// is inherent to single-error-correcting codes.
package hamming

import (
	mceliece "github.com/BackendStack21/mceliece-go"
	"github.com/BackendStack21/mceliece-go/core"
	"github.com/BackendStack21/mceliece-go/gf2"
)

const (
	n          = 15
	k          = 11
	parityBits = 4
)

// parityPositions are the 0-based codeword positions of the parity bits,
// the powers of two (1, 2, 4, 8) in 1-based numbering.
var parityPositions = [parityBits]int{0, 1, 3, 7}

// dataPositions are the remaining 0-based codeword positions, carrying the
// 11 message bits in order.
var dataPositions = [k]int{2, 4, 5, 6, 8, 9, 10, 11, 12, 13, 14}

// Code is the (15,11) Hamming code. The zero value is not usable; call New.
type Code struct {
	g gf2.Matrix // 11 x 15 generator
	h gf2.Matrix // 4 x 15 parity check
}

var _ mceliece.Code = (*Code)(nil)

// New constructs the canonical (15,11) Hamming code. Column i of H holds
// the 4-bit binary representation of i+1, least-significant bit in row 0,
// so a nonzero syndrome reads as the 1-based position of a single error.
func New() *Code {
	h := gf2.NewMatrix(parityBits, n)
	for i := 0; i < n; i++ {
		for j := 0; j < parityBits; j++ {
			h.Set(j, i, byte((i+1)>>j)&1)
		}
	}

	g := gf2.NewMatrix(k, n)
	for i, pos := range dataPositions {
		g.Set(i, pos, 1)
		// A data bit at 1-based position p contributes to the parity bit
		// for every power of two present in p.
		for j, pp := range parityPositions {
			if (pos+1)&(1<<j) != 0 {
				g.Set(i, pp, 1)
			}
		}
	}

	return &Code{g: g, h: h}
}

// Params returns (n, k, t) = (15, 11, 1).
func (c *Code) Params() mceliece.CodeParams { return core.Hamming1511Params }

// Generator returns a copy of the 11 x 15 generator matrix.
func (c *Code) Generator() gf2.Matrix { return c.g.Clone() }

// ParityCheck returns a copy of the 4 x 15 parity-check matrix.
func (c *Code) ParityCheck() gf2.Matrix { return c.h.Clone() }

// Encode maps an 11-bit message to its 15-bit codeword via message * G.
func (c *Code) Encode(message gf2.Vector) (gf2.Vector, error) {
	return gf2.VecMatMul(message, c.g)
}

// Decode corrects up to one bit error in a received 15-bit word. It
// computes the syndrome H * r^T and, when nonzero, flips the bit whose H
// column equals the syndrome. A syndrome matching no column reports
// mceliece.ErrUncorrectable; the canonical H makes that unreachable, but
// the branch is kept rather than assumed away.
func (c *Code) Decode(received gf2.Vector) (gf2.Vector, []int, error) {
	syndrome, err := gf2.MatVecMul(c.h, received)
	if err != nil {
		return nil, nil, err
	}
	if syndrome.Weight() == 0 {
		return received.Clone(), nil, nil
	}

	col := -1
	for j := 0; j < n; j++ {
		match := true
		for i := 0; i < parityBits; i++ {
			if c.h.At(i, j) != syndrome[i] {
				match = false
				break
			}
		}
		if match {
			col = j
			break
		}
	}
	if col < 0 {
		return nil, nil, mceliece.ErrUncorrectable
	}

	corrected := received.Clone()
	corrected[col] ^= 1
	return corrected, []int{col}, nil
}

// Extract returns the 11 message bits of a corrected codeword.
func (c *Code) Extract(codeword gf2.Vector) gf2.Vector {
	message := make(gf2.Vector, k)
	for i, pos := range dataPositions {
		message[i] = codeword[pos]
	}
	return message
}
