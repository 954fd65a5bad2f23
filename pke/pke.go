// Package pke implements the McEliece public-key encryption pipeline:
// key generation from a structured code, per-block encryption with
// injected random noise, and decryption via syndrome decoding.
package pke

import (
	"errors"
	"fmt"
	"io"

	mceliece "github.com/BackendStack21/mceliece-go"
	"github.com/BackendStack21/mceliece-go/codes/bch"
	"github.com/BackendStack21/mceliece-go/codes/hamming"
	"github.com/BackendStack21/mceliece-go/core"
	"github.com/BackendStack21/mceliece-go/gf2"
	"github.com/BackendStack21/mceliece-go/utils"
)

const (
	DomainScramble = "mceliece-keygen-scramble-v1"
	DomainPermute  = "mceliece-keygen-permute-v1"
)

// NewCode returns the block code implementation for a variant.
func NewCode(variant mceliece.Variant) (mceliece.Code, error) {
	switch variant {
	case mceliece.Hamming1511:
		return hamming.New(), nil
	case mceliece.BCH157:
		return bch.New(), nil
	default:
		return nil, fmt.Errorf("unknown code variant: %s", variant)
	}
}

// BlockError reports a decode failure in a single ciphertext block.
type BlockError struct {
	Block int
	Err   error
}

func (e *BlockError) Error() string {
	return fmt.Sprintf("block %d: %v", e.Block, e.Err)
}

func (e *BlockError) Unwrap() error { return e.Err }

// GenerateKeyPair generates a McEliece key pair for the given code variant
// and block count. Each of the blocks uses the same scrambled generator
// G_pub = S * G * P; blocks scales message capacity and cost linearly.
func GenerateKeyPair(variant mceliece.Variant, blocks int) (*mceliece.KeyPair, error) {
	seed, err := utils.SecureRandomBytes(32)
	if err != nil {
		return nil, err
	}
	return GenerateKeyPairFromSeed(variant, blocks, seed)
}

// GenerateKeyPairFromSeed generates a deterministic key pair from a seed.
// The scrambling matrix S and permutation matrix P are sampled from
// domain-separated SHAKE256 streams derived from the seed.
func GenerateKeyPairFromSeed(variant mceliece.Variant, blocks int, seed []byte) (*mceliece.KeyPair, error) {
	if blocks < 1 {
		return nil, errors.New("block count must be at least 1")
	}
	if len(seed) < 32 {
		return nil, errors.New("seed must be at least 32 bytes")
	}

	params, err := core.GetParams(variant)
	if err != nil {
		return nil, err
	}
	if err := core.ValidateParams(params); err != nil {
		return nil, err
	}
	code, err := NewCode(variant)
	if err != nil {
		return nil, err
	}

	sReader := utils.NewShakeReader(utils.Shake256WithDomain(DomainScramble, seed, 32))
	pReader := utils.NewShakeReader(utils.Shake256WithDomain(DomainPermute, seed, 32))

	s, sInv, err := gf2.RandomInvertibleMatrix(sReader, params.K)
	if err != nil {
		return nil, err
	}
	p, err := gf2.RandomPermutationMatrix(pReader, params.N)
	if err != nil {
		return nil, err
	}
	pInv := p.Transpose() // the inverse of a permutation matrix

	sg, err := gf2.Mul(s, code.Generator())
	if err != nil {
		return nil, err
	}
	gPub, err := gf2.Mul(sg, p)
	if err != nil {
		return nil, err
	}

	return &mceliece.KeyPair{
		PublicKey: mceliece.PublicKey{
			Variant: variant,
			Params:  params,
			L:       blocks,
			GPub:    gPub,
		},
		PrivateKey: mceliece.PrivateKey{
			Variant: variant,
			Params:  params,
			L:       blocks,
			S:       s,
			SInv:    sInv,
			P:       p,
			PInv:    pInv,
			Code:    code,
		},
	}, nil
}

// Encrypt encrypts a message of exactly L*k bits, injecting t random bit
// errors into each of the L ciphertext blocks. Randomness comes from the
// default source, so encrypting the same message twice yields different
// ciphertexts.
func Encrypt(pk *mceliece.PublicKey, message gf2.Vector) (gf2.Vector, error) {
	return EncryptWithReader(pk, message, utils.RandReader)
}

// EncryptWithReader is Encrypt with an explicit randomness source, letting
// tests reproduce the injected error vectors deterministically.
func EncryptWithReader(pk *mceliece.PublicKey, message gf2.Vector, r io.Reader) (gf2.Vector, error) {
	return encrypt(pk, message, pk.Params.T, r)
}

// EncryptWithWeight encrypts with a chosen error weight per block, between
// 0 and the code's capability t. This is a testing knob for exercising the
// capacity boundary; Encrypt always injects exactly t errors.
func EncryptWithWeight(pk *mceliece.PublicKey, message gf2.Vector, weight int, r io.Reader) (gf2.Vector, error) {
	if weight < 0 || weight > pk.Params.T {
		return nil, fmt.Errorf("error weight must be between 0 and %d", pk.Params.T)
	}
	return encrypt(pk, message, weight, r)
}

func encrypt(pk *mceliece.PublicKey, message gf2.Vector, weight int, r io.Reader) (gf2.Vector, error) {
	if len(message) != pk.MessageBits() {
		return nil, fmt.Errorf("%w: got %d bits, want %d", mceliece.ErrInvalidMessageLength, len(message), pk.MessageBits())
	}

	k, n := pk.Params.K, pk.Params.N
	ciphertext := make(gf2.Vector, 0, pk.CiphertextBits())
	for b := 0; b < pk.L; b++ {
		codeword, err := gf2.VecMatMul(message[b*k:(b+1)*k], pk.GPub)
		if err != nil {
			return nil, err
		}
		errVec, err := randomErrorVector(r, n, weight)
		if err != nil {
			return nil, err
		}
		noisy, err := gf2.XOR(codeword, errVec)
		if err != nil {
			return nil, err
		}
		ciphertext = append(ciphertext, noisy...)
	}
	return ciphertext, nil
}

// randomErrorVector returns an nbits-long vector with exactly weight ones
// at distinct uniform positions.
func randomErrorVector(r io.Reader, nbits, weight int) (gf2.Vector, error) {
	e := make(gf2.Vector, nbits)
	for placed := 0; placed < weight; {
		pos, err := utils.RandomInt(r, nbits)
		if err != nil {
			return nil, err
		}
		if e[pos] == 0 {
			e[pos] = 1
			placed++
		}
	}
	return e, nil
}

// BlockResult is the outcome of decrypting one ciphertext block.
type BlockResult struct {
	Message        gf2.Vector // nil when Err is set
	ErrorPositions []int      // positions the decoder flipped, in the un-permuted codeword
	Err            error
}

// Decrypt decrypts a ciphertext of exactly L*n bits, failing fast: the
// first block whose syndrome cannot be reconciled aborts the whole message
// with a *BlockError identifying it. Use DecryptBlocks to collect partial
// results instead.
func Decrypt(sk *mceliece.PrivateKey, ciphertext gf2.Vector) (gf2.Vector, error) {
	n := sk.Params.N
	if len(ciphertext) != n*sk.L {
		return nil, fmt.Errorf("%w: got %d bits, want %d", mceliece.ErrInvalidMessageLength, len(ciphertext), n*sk.L)
	}

	message := make(gf2.Vector, 0, sk.Params.K*sk.L)
	for b := 0; b < sk.L; b++ {
		res := decryptBlock(sk, ciphertext[b*n:(b+1)*n])
		if res.Err != nil {
			return nil, &BlockError{Block: b, Err: res.Err}
		}
		message = append(message, res.Message...)
	}
	return message, nil
}

// DecryptBlocks decrypts every block independently and returns one result
// per block, so callers can mark individual blocks as failed rather than
// abort the whole message.
func DecryptBlocks(sk *mceliece.PrivateKey, ciphertext gf2.Vector) ([]BlockResult, error) {
	n := sk.Params.N
	if len(ciphertext) != n*sk.L {
		return nil, fmt.Errorf("%w: got %d bits, want %d", mceliece.ErrInvalidMessageLength, len(ciphertext), n*sk.L)
	}

	results := make([]BlockResult, sk.L)
	for b := range results {
		results[b] = decryptBlock(sk, ciphertext[b*n:(b+1)*n])
	}
	return results, nil
}

// decryptBlock inverts one block: un-permute with P^-1, correct the noise
// with the private code's decoder, take the information symbols, and
// un-scramble with S^-1.
func decryptBlock(sk *mceliece.PrivateKey, block gf2.Vector) BlockResult {
	unpermuted, err := gf2.VecMatMul(block, sk.PInv)
	if err != nil {
		return BlockResult{Err: err}
	}
	corrected, positions, err := sk.Code.Decode(unpermuted)
	if err != nil {
		return BlockResult{Err: err}
	}
	scrambled := sk.Code.Extract(corrected)
	message, err := gf2.VecMatMul(scrambled, sk.SInv)
	if err != nil {
		return BlockResult{Err: err}
	}
	return BlockResult{Message: message, ErrorPositions: positions}
}
