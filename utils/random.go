// Package utils provides randomness, SHAKE256 and bit-conversion helpers
// for the mceliece-go packages.
package utils

import (
	"crypto/rand"
	"errors"
	"io"
)

// RandReader is the default source of randomness. It can be replaced in
// tests, but the preferred way to get deterministic behavior is to pass an
// explicit reader (see NewShakeReader) to the sampling functions.
var RandReader io.Reader = rand.Reader

// SecureRandomBytes generates n cryptographically secure random bytes from
// the default source.
func SecureRandomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(RandReader, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// RandomInt returns a uniform random integer in [0, max) drawn from r.
// It uses rejection sampling to avoid modulo bias.
func RandomInt(r io.Reader, max int) (int, error) {
	if max <= 0 {
		return 0, errors.New("max must be positive")
	}
	if max == 1 {
		return 0, nil
	}

	bitsNeeded := 0
	for m := max - 1; m > 0; m >>= 1 {
		bitsNeeded++
	}
	bytesNeeded := (bitsNeeded + 7) / 8
	mask := (1 << bitsNeeded) - 1

	buf := make([]byte, bytesNeeded)
	for {
		if _, err := io.ReadFull(r, buf); err != nil {
			return 0, err
		}

		var value int
		for i := 0; i < bytesNeeded; i++ {
			value = (value << 8) | int(buf[i])
		}
		value &= mask

		if value < max {
			return value, nil
		}
	}
}

// RandomBits fills a slice of n values in {0,1} with uniform bits from r.
func RandomBits(r io.Reader, n int) ([]byte, error) {
	raw := make([]byte, (n+7)/8)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, err
	}
	bits := make([]byte, n)
	for i := 0; i < n; i++ {
		bits[i] = (raw[i/8] >> (i % 8)) & 1
	}
	return bits, nil
}

// StringToBits converts a string to its bit representation, 8 bits per
// byte, most significant bit first.
func StringToBits(s string) []byte {
	bits := make([]byte, 0, len(s)*8)
	for i := 0; i < len(s); i++ {
		for j := 7; j >= 0; j-- {
			bits = append(bits, (s[i]>>j)&1)
		}
	}
	return bits
}

// BitsToString converts a bit slice back to a string. The slice is
// zero-padded to a multiple of 8 bits and null bytes are skipped, so a
// message padded during encryption round-trips to the original text.
func BitsToString(bits []byte) string {
	padded := bits
	if len(padded)%8 != 0 {
		padded = append(append([]byte{}, bits...), make([]byte, 8-len(bits)%8)...)
	}
	out := make([]byte, 0, len(padded)/8)
	for i := 0; i < len(padded); i += 8 {
		var b byte
		for j := 0; j < 8; j++ {
			b = b<<1 | padded[i+j]
		}
		if b != 0 {
			out = append(out, b)
		}
	}
	return string(out)
}
