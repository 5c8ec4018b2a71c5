package envelope

import "errors"

// PeerIdentity names the peer an envelope is attributed to: either the
// relay that physically delivered it, or, for a message recovered from a
// SafStoredMessages batch, the original sender it was decrypted on behalf
// of.
type PeerIdentity struct {
	NodeID    [32]byte
	PublicKey [32]byte
}

// DecryptedDhtMessage is an inbound envelope after its outer transport-layer
// encryption has been removed. Decryption can fail at the transport layer
// before this envelope ever reaches the handler stage; DecryptionFailed
// records that case so control messages that could not be read are dropped
// rather than forwarded.
type DecryptedDhtMessage struct {
	SourcePeer       PeerIdentity
	CommsHeader      CommsHeader
	DhtHeader        DhtHeader
	Message          *Message
	DecryptionFailed bool
}

// IsDhtMessage reports whether this envelope's type is overlay-control
// rather than an opaque application payload.
func (m *DecryptedDhtMessage) IsDhtMessage() bool {
	return m.DhtHeader.MessageType.IsDhtMessage()
}

// ErrOriginIdentityMismatch is returned when a message's transport-layer
// sender key disagrees with its overlay-layer origin key. The two are
// partially redundant by design; treating them as the same logical identity
// and rejecting disagreement is the conservative choice (see package doc).
var ErrOriginIdentityMismatch = errors.New("envelope: comms header and dht header disagree on origin identity")

// CheckOriginConsistency rejects an envelope whose CommsHeader.MessagePublicKey
// disagrees with its DhtHeader.OriginPublicKey. The two are sourced
// independently but are expected to name the same peer. ResponseHandler does
// not call this method; it applies the same comparison to each
// StoredMessage's headers directly.
func (m *DecryptedDhtMessage) CheckOriginConsistency() error {
	if m.CommsHeader.MessagePublicKey != m.DhtHeader.OriginPublicKey {
		return ErrOriginIdentityMismatch
	}
	return nil
}

// Succeeded builds a DecryptedDhtMessage representing a successfully
// decrypted stored message, attributed to the origin peer rather than the
// relay that delivered the containing response.
func Succeeded(origin PeerIdentity, comms CommsHeader, dht DhtHeader, msg *Message) *DecryptedDhtMessage {
	return &DecryptedDhtMessage{
		SourcePeer:  origin,
		CommsHeader: comms,
		DhtHeader:   dht,
		Message:     msg,
	}
}

// Failed builds a DecryptedDhtMessage representing an envelope whose outer
// decryption failed; HandlerStage drops these when they are DHT-control
// messages.
func Failed(relay PeerIdentity, comms CommsHeader, dht DhtHeader) *DecryptedDhtMessage {
	return &DecryptedDhtMessage{
		SourcePeer:       relay,
		CommsHeader:      comms,
		DhtHeader:        dht,
		DecryptionFailed: true,
	}
}
