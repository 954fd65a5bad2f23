package mceliece

// Version of the mceliece-go implementation.
const Version = "1.0.0"

// API summary:
//
// Public-key encryption:
//   - pke.GenerateKeyPair(variant, L) - Generate a key pair for a code variant
//   - pke.Encrypt(pk, message) - Encode and add random noise per block
//   - pke.Decrypt(sk, ciphertext) - Remove noise and recover the message
//
// Parameters:
//   - core.GetParams(variant) - Get (n, k, t) for a code variant
//   - Hamming1511 - Hamming(15,11), t=1 error per 15-bit block
//   - BCH157 - BCH(15,7), t=2 errors per 15-bit block
//
// Blocks:
//   - L independent blocks make up one message/ciphertext pair. Larger L
//     linearly increases message capacity and key-generation, encryption
//     and decryption cost.
