package crypto

import (
	"crypto/ed25519"
	"errors"
)

// SignatureSize is the size of an Ed25519 signature in bytes.
const SignatureSize = ed25519.SignatureSize

// Signature represents an Ed25519 signature.
type Signature [SignatureSize]byte

// Sign creates an Ed25519 signature for a message using privateKey as the
// Ed25519 seed. The corresponding verification key is SigningPublicKey(privateKey),
// not the Curve25519 key a KeyPair derived from the same seed would carry as
// its Public field — the two live on different curves and are never equal.
func Sign(message []byte, privateKey [32]byte) (Signature, error) {
	if len(message) == 0 {
		return Signature{}, errors.New("empty message")
	}

	// Convert the 32-byte private key to the format expected by ed25519
	// Ed25519 private keys are 64 bytes (32 bytes seed + 32 bytes public key)
	edPrivateKey := ed25519.NewKeyFromSeed(privateKey[:])

	// Sign the message
	signatureBytes := ed25519.Sign(edPrivateKey, message)

	var signature Signature
	copy(signature[:], signatureBytes)

	return signature, nil
}

// SigningPublicKey derives the Ed25519 public key that verifies signatures
// made by Sign(_, privateKey). Callers must pass this, not a KeyPair's
// Curve25519 Public field, to Verify — the two keys are derived from the
// same seed but are points on different curves.
func SigningPublicKey(privateKey [32]byte) [32]byte {
	edPrivateKey := ed25519.NewKeyFromSeed(privateKey[:])
	var publicKey [32]byte
	copy(publicKey[:], edPrivateKey.Public().(ed25519.PublicKey))
	return publicKey
}

// Verify checks if a signature is valid for a message and Ed25519 public
// key. publicKey must be a key produced by SigningPublicKey, not a NaCl box
// public key — see Sign.
func Verify(message []byte, signature Signature, publicKey [32]byte) (bool, error) {
	if len(message) == 0 {
		return false, errors.New("empty message")
	}

	// Convert the 32-byte public key to the format expected by ed25519
	var edPublicKey [ed25519.PublicKeySize]byte
	copy(edPublicKey[:], publicKey[:])

	// Verify the signature
	return ed25519.Verify(edPublicKey[:], message, signature[:]), nil
}
