// Package mceliece implements the McEliece code-based public-key
// cryptosystem instantiated over two small binary block codes: a
// single-error-correcting Hamming(15,11) code and a double-error-correcting
// BCH(15,7) code.
//
// WARNING: These parameter sets are far too small to offer any real
// security. This implementation exists to study the construction itself
// (scrambled generator matrices, noisy codewords, syndrome decoding).
// DO NOT use it to protect sensitive data.
package mceliece

import (
	"errors"

	"github.com/BackendStack21/mceliece-go/gf2"
)

// Variant identifies the underlying block code of a key pair.
type Variant string

const (
	// Hamming1511 is the Hamming(15,11) code, correcting 1 error per block.
	Hamming1511 Variant = "hamming-15-11"
	// BCH157 is the BCH(15,7) code, correcting 2 errors per block.
	BCH157 Variant = "bch-15-7"
)

var (
	// ErrUncorrectable indicates a syndrome inconsistent with any error
	// pattern the code is able to correct.
	ErrUncorrectable = errors.New("uncorrectable error pattern")

	// ErrInvalidMessageLength indicates a message or ciphertext whose bit
	// length does not match the key's block structure.
	ErrInvalidMessageLength = errors.New("invalid message length")
)

// CodeParams holds the fixed parameters of a block code.
type CodeParams struct {
	N int // Codeword length in bits
	K int // Message length in bits
	T int // Guaranteed error-correction capability per block
}

// Code is a binary linear block code with a syndrome decoder.
//
// Decode returns the corrected codeword together with the positions that
// were flipped. It returns ErrUncorrectable when the syndrome cannot be
// reconciled with any correctable error pattern; note that errors beyond
// the code's capability t may instead be silently miscorrected, which is
// an inherent property of syndrome decoding, not a defect.
type Code interface {
	Params() CodeParams
	Generator() gf2.Matrix
	ParityCheck() gf2.Matrix
	Encode(message gf2.Vector) (gf2.Vector, error)
	Decode(received gf2.Vector) (gf2.Vector, []int, error)
	Extract(codeword gf2.Vector) gf2.Vector
}

// PublicKey is the scrambled generator matrix G_pub = S * G * P together
// with the block structure. It is safe to share.
type PublicKey struct {
	Variant Variant
	Params  CodeParams
	L       int        // Number of independent blocks per message
	GPub    gf2.Matrix // K x N scrambled generator, shared by all L blocks
}

// MessageBits returns the plaintext length in bits accepted by this key.
func (pk *PublicKey) MessageBits() int { return pk.Params.K * pk.L }

// CiphertextBits returns the ciphertext length in bits produced by this key.
func (pk *PublicKey) CiphertextBits() int { return pk.Params.N * pk.L }

// PrivateKey holds the structured code together with the scrambling and
// permutation matrices and their inverses. It is never transmitted.
type PrivateKey struct {
	Variant Variant
	Params  CodeParams
	L       int
	S       gf2.Matrix // K x K invertible scrambling matrix
	SInv    gf2.Matrix
	P       gf2.Matrix // N x N permutation matrix
	PInv    gf2.Matrix
	Code    Code
}

// KeyPair contains both halves of a generated key.
type KeyPair struct {
	PublicKey  PublicKey
	PrivateKey PrivateKey
}
