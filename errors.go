package storeforward

import "errors"

// Sentinel errors for the store-and-forward handler's internal error
// taxonomy. Handlers wrap these with fmt.Errorf("...: %w", Err...) so
// callers can still match with errors.Is while getting a useful message.
var (
	// ErrInvalidEnvelopeBody means the decrypted body bytes did not
	// deserialize to the expected request or response type.
	ErrInvalidEnvelopeBody = errors.New("storeforward: invalid envelope body")

	// ErrInvalidDestination means a stored entry's destination does not
	// match the node evaluating it.
	ErrInvalidDestination = errors.New("storeforward: invalid destination")

	// ErrInvalidSignature means the origin signature failed verification.
	ErrInvalidSignature = errors.New("storeforward: invalid origin signature")

	// ErrDecryptionFailed means ECDH-derived symmetric decryption, or the
	// inner deserialization that follows it, failed.
	ErrDecryptionFailed = errors.New("storeforward: decryption failed")

	// ErrPeerNotFound means the origin peer is unknown to the local peer
	// directory.
	ErrPeerNotFound = errors.New("storeforward: peer not found")

	// ErrOutboundFailed means an outbound send could not be delivered to
	// the transport.
	ErrOutboundFailed = errors.New("storeforward: outbound send failed")

	// ErrDownstreamFailed means the downstream stage returned an error.
	ErrDownstreamFailed = errors.New("storeforward: downstream stage failed")
)
