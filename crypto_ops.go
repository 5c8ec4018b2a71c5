package storeforward

import (
	"fmt"

	"github.com/opd-ai/storeforward/crypto"
	"github.com/opd-ai/storeforward/envelope"
)

// VerifyOriginSignature checks the origin's Ed25519 signature over the
// encrypted body. originSigningPublicKey must be the Ed25519 key from
// DhtHeader.OriginSigningPublicKey, not DhtHeader.OriginPublicKey — the
// latter is the origin's Curve25519 ECDH identity and will never validate
// an Ed25519 signature even when both were derived from the same secret.
// It is pure and CPU-bound; callers running it inside a cooperative
// pipeline should offload it to a worker pool (see ResponseHandler.processEntry).
func VerifyOriginSignature(encryptedBody []byte, signature envelope.Signature, originSigningPublicKey [32]byte) (bool, error) {
	ok, err := crypto.Verify(encryptedBody, crypto.Signature(signature), originSigningPublicKey)
	if err != nil {
		return false, fmt.Errorf("signature verification: %w", err)
	}
	return ok, nil
}

// DecryptStoredBody derives the ECDH shared secret between this node's
// secret key and the origin's public key, then uses it to symmetrically
// decrypt encryptedBody. The nonce is taken from the leading
// crypto.NonceSize bytes of encryptedBody and the rest is the ciphertext;
// crypto.EncryptSymmetric returns only the ciphertext, so the sender
// prepends the nonce itself.
func DecryptStoredBody(encryptedBody []byte, originPublicKey, selfSecretKey [32]byte) ([]byte, error) {
	if len(encryptedBody) < crypto.NonceSize {
		return nil, fmt.Errorf("stored body too short to contain a nonce")
	}

	var nonce crypto.Nonce
	copy(nonce[:], encryptedBody[:crypto.NonceSize])
	ciphertext := encryptedBody[crypto.NonceSize:]

	sharedSecret, err := crypto.DeriveSharedSecret(originPublicKey, selfSecretKey)
	if err != nil {
		return nil, fmt.Errorf("deriving shared secret: %w", err)
	}
	defer crypto.ZeroBytes(sharedSecret[:])

	plaintext, err := crypto.DecryptSymmetric(ciphertext, nonce, sharedSecret)
	if err != nil {
		return nil, fmt.Errorf("symmetric decryption: %w", err)
	}

	return plaintext, nil
}
