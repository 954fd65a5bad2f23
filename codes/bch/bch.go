// Package bch implements the binary BCH(15,7) code with syndrome decoding
// over GF(16). The code corrects up to two bit errors per 15-bit block;
// three or more errors either miscorrect silently or report an
// uncorrectable pattern, both of which are inherent failure modes.
package bch

import (
	"math/bits"
	"sort"

	mceliece "github.com/BackendStack21/mceliece-go"
	"github.com/BackendStack21/mceliece-go/core"
	"github.com/BackendStack21/mceliece-go/gf2"
)

const (
	n          = 15
	k          = 7
	parityBits = 8

	// genPoly is x^8 + x^7 + x^6 + x^4 + 1, the lcm of the minimal
	// polynomials of alpha and alpha^3 over GF(2). Design distance 5.
	genPoly = 0b111010001
)

// Code is the BCH(15,7) code. The zero value is not usable; call New.
type Code struct {
	g gf2.Matrix // 7 x 15 systematic generator [I | A]
	h gf2.Matrix // 8 x 15 parity check [A^T | I]
}

var _ mceliece.Code = (*Code)(nil)

// New constructs the BCH(15,7) code in systematic form. Row i of G carries
// the message bit at position i followed by the remainder of x^(14-i)
// divided by the generator polynomial, so bit j of a codeword is the
// coefficient of x^(14-j).
func New() *Code {
	g := gf2.NewMatrix(k, n)
	for i := 0; i < k; i++ {
		g.Set(i, i, 1)
		rem := polyMod(1<<(14-i), genPoly)
		for j := 0; j < parityBits; j++ {
			g.Set(i, k+j, byte(rem>>(parityBits-1-j))&1)
		}
	}

	h := gf2.NewMatrix(parityBits, n)
	for r := 0; r < parityBits; r++ {
		for c := 0; c < k; c++ {
			h.Set(r, c, g.At(c, k+r))
		}
		h.Set(r, k+r, 1)
	}

	return &Code{g: g, h: h}
}

// polyMod returns the remainder of the binary polynomial p divided by q.
func polyMod(p, q int) int {
	nq := bits.Len(uint(q))
	for bits.Len(uint(p)) >= nq {
		p ^= q << (bits.Len(uint(p)) - nq)
	}
	return p
}

// Params returns (n, k, t) = (15, 7, 2).
func (c *Code) Params() mceliece.CodeParams { return core.BCH157Params }

// Generator returns a copy of the 7 x 15 generator matrix.
func (c *Code) Generator() gf2.Matrix { return c.g.Clone() }

// ParityCheck returns a copy of the 8 x 15 parity-check matrix.
func (c *Code) ParityCheck() gf2.Matrix { return c.h.Clone() }

// Encode maps a 7-bit message to its 15-bit codeword via message * G.
func (c *Code) Encode(message gf2.Vector) (gf2.Vector, error) {
	return gf2.VecMatMul(message, c.g)
}

// syndrome evaluates the received word as a polynomial at alpha^power:
// bit i is the coefficient of x^(14-i).
func syndrome(received gf2.Vector, power int) byte {
	var s byte
	for i, bit := range received {
		if bit != 0 {
			s ^= alphaPow((14 - i) * power)
		}
	}
	return s
}

// Decode corrects up to two bit errors in a received 15-bit word using the
// syndromes S1 = r(alpha) and S3 = r(alpha^3).
//
// S1 = S3 = 0 means no error. S3 = S1^3 (S1 nonzero) means a single error
// whose locator is S1 itself. Otherwise the two error locators are the
// roots of x^2 + S1*x + (S3/S1 + S1^2), found by testing all 15 nonzero
// field elements; any other root count, or S1 = 0 with S3 nonzero, cannot
// come from a weight <= 2 error and reports mceliece.ErrUncorrectable.
func (c *Code) Decode(received gf2.Vector) (gf2.Vector, []int, error) {
	if len(received) != n {
		return nil, nil, gf2.ErrDimensionMismatch
	}

	s1 := syndrome(received, 1)
	s3 := syndrome(received, 3)

	if s1 == 0 && s3 == 0 {
		return received.Clone(), nil, nil
	}

	if s1 != 0 && s3 == gfMul(gfMul(s1, s1), s1) {
		pos := 14 - int(gfLog[s1])
		corrected := received.Clone()
		corrected[pos] ^= 1
		return corrected, []int{pos}, nil
	}

	if s1 == 0 {
		return nil, nil, mceliece.ErrUncorrectable
	}

	coeff := gfMul(s3, gfInv(s1)) ^ gfMul(s1, s1)
	var positions []int
	for e := 0; e < 15; e++ {
		x := gfExp[e]
		if gfMul(x, x)^gfMul(s1, x)^coeff == 0 {
			positions = append(positions, 14-e)
		}
	}
	if len(positions) != 2 {
		return nil, nil, mceliece.ErrUncorrectable
	}
	sort.Ints(positions)

	corrected := received.Clone()
	for _, pos := range positions {
		corrected[pos] ^= 1
	}
	return corrected, positions, nil
}

// Extract returns the 7 message bits of a corrected codeword, the
// systematic prefix.
func (c *Code) Extract(codeword gf2.Vector) gf2.Vector {
	return codeword[:k].Clone()
}
