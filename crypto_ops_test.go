package storeforward

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/storeforward/crypto"
	"github.com/opd-ai/storeforward/envelope"
)

func TestVerifyOriginSignatureAcceptsValidSignature(t *testing.T) {
	origin := mustKeyPair(t)
	body := []byte("encrypted-body-bytes")

	sig, err := crypto.Sign(body, origin.Private)
	require.NoError(t, err)

	signingPublicKey := crypto.SigningPublicKey(origin.Private)
	ok, err := VerifyOriginSignature(body, envelope.Signature(sig), signingPublicKey)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyOriginSignatureRejectsTamperedBody(t *testing.T) {
	origin := mustKeyPair(t)
	body := []byte("encrypted-body-bytes")

	sig, err := crypto.Sign(body, origin.Private)
	require.NoError(t, err)

	tampered := append([]byte{}, body...)
	tampered[0] ^= 0xFF

	signingPublicKey := crypto.SigningPublicKey(origin.Private)
	ok, err := VerifyOriginSignature(tampered, envelope.Signature(sig), signingPublicKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyOriginSignatureRejectsBoxPublicKeyInPlaceOfSigningKey(t *testing.T) {
	origin := mustKeyPair(t)
	body := []byte("encrypted-body-bytes")

	sig, err := crypto.Sign(body, origin.Private)
	require.NoError(t, err)

	// origin.Public is the Curve25519 box key, never a valid Ed25519
	// verification key for a signature made over the same seed.
	ok, err := VerifyOriginSignature(body, envelope.Signature(sig), origin.Public)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDecryptStoredBodyRoundTrip(t *testing.T) {
	origin := mustKeyPair(t)
	destination := mustKeyPair(t)
	plaintext := []byte("hello offline peer")

	sharedSecret, err := crypto.DeriveSharedSecret(destination.Public, origin.Private)
	require.NoError(t, err)

	nonce, err := crypto.GenerateNonce()
	require.NoError(t, err)

	ciphertext, err := crypto.EncryptSymmetric(plaintext, nonce, sharedSecret)
	require.NoError(t, err)

	encryptedBody := append(append([]byte{}, nonce[:]...), ciphertext...)

	decrypted, err := DecryptStoredBody(encryptedBody, origin.Public, destination.Private)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestDecryptStoredBodyRejectsTooShortBody(t *testing.T) {
	origin := mustKeyPair(t)
	destination := mustKeyPair(t)

	_, err := DecryptStoredBody([]byte("short"), origin.Public, destination.Private)
	assert.Error(t, err)
}

func TestDecryptStoredBodyFailsForWrongRecipient(t *testing.T) {
	origin := mustKeyPair(t)
	destination := mustKeyPair(t)
	wrongRecipient := mustKeyPair(t)
	plaintext := []byte("hello offline peer")

	sharedSecret, err := crypto.DeriveSharedSecret(destination.Public, origin.Private)
	require.NoError(t, err)

	nonce, err := crypto.GenerateNonce()
	require.NoError(t, err)

	ciphertext, err := crypto.EncryptSymmetric(plaintext, nonce, sharedSecret)
	require.NoError(t, err)

	encryptedBody := append(append([]byte{}, nonce[:]...), ciphertext...)

	_, err = DecryptStoredBody(encryptedBody, origin.Public, wrongRecipient.Private)
	assert.Error(t, err)
}
