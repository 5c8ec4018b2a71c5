// Package crypto implements the cryptographic primitives used by the
// store-and-forward handler: NaCl-based authenticated encryption, ECDH key
// agreement, Ed25519 signatures, and memory-safe key handling.
//
// # Core Types
//
//   - [KeyPair]: Curve25519 key pair used for ECDH and NaCl box encryption.
//   - [Nonce]: 24-byte nonce consumed by both box and secretbox operations.
//   - [Signature]: Ed25519 signature over an origin-signed payload.
//   - [ToxID]: public key plus nospam and checksum, used as a node identity.
//
// # Shared-secret decryption
//
// The store-and-forward response handler never has a direct channel to the
// original sender, so it derives the same symmetric key the sender used by
// combining its own secret key with the sender's public key:
//
//	secret, err := crypto.DeriveSharedSecret(originPublicKey, selfSecretKey)
//	plaintext, err := crypto.DecryptSymmetric(encryptedBody, nonce, secret)
//
// # Signatures
//
// Ed25519 signatures authenticate the origin of a stored message independent
// of the symmetric encryption step:
//
//	sig, err := crypto.Sign(encryptedBody, originSecretKey)
//	originSigningPublicKey := crypto.SigningPublicKey(originSecretKey)
//	ok, err := crypto.Verify(encryptedBody, sig, originSigningPublicKey)
//
// # Secure memory handling
//
// Intermediate key material should be wiped after use:
//
//	defer crypto.ZeroBytes(sharedSecret[:])
package crypto
