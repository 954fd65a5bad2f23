// Package core provides parameter sets and validation for mceliece-go.
package core

import (
	"errors"
	"fmt"

	mceliece "github.com/BackendStack21/mceliece-go"
)

// Hamming1511Params is the parameter set for the Hamming(15,11) variant:
// 15-bit codewords, 11-bit messages, 1 correctable error per block.
var Hamming1511Params = mceliece.CodeParams{N: 15, K: 11, T: 1}

// BCH157Params is the parameter set for the BCH(15,7) variant:
// 15-bit codewords, 7-bit messages, 2 correctable errors per block.
var BCH157Params = mceliece.CodeParams{N: 15, K: 7, T: 2}

// GetParams returns the parameter set for the given code variant.
func GetParams(variant mceliece.Variant) (mceliece.CodeParams, error) {
	switch variant {
	case mceliece.Hamming1511:
		return Hamming1511Params, nil
	case mceliece.BCH157:
		return BCH157Params, nil
	default:
		return mceliece.CodeParams{}, fmt.Errorf("unknown code variant: %s", variant)
	}
}

// ValidateParams validates a parameter set for consistency.
func ValidateParams(p mceliece.CodeParams) error {
	if p.N <= 0 || p.K <= 0 {
		return errors.New("code dimensions must be positive")
	}
	if p.K >= p.N {
		return errors.New("message length must be smaller than codeword length")
	}
	if p.T < 1 {
		return errors.New("error-correction capability must be at least 1")
	}
	if 2*p.T > p.N-p.K {
		return errors.New("error-correction capability exceeds redundancy")
	}
	return nil
}

// ExpansionRatio returns n/k, the ciphertext-to-plaintext size ratio of
// one block.
func ExpansionRatio(p mceliece.CodeParams) float64 {
	return float64(p.N) / float64(p.K)
}
