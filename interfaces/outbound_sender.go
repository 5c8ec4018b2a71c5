package interfaces

import "github.com/opd-ai/storeforward/envelope"

// BroadcastStrategy selects how OutboundSender resolves a destination
// address before handing a message to the transport.
type BroadcastStrategy byte

const (
	// DirectPublicKey sends to the single peer identified by a public key,
	// the strategy RequestHandler uses to reply to a requester.
	DirectPublicKey BroadcastStrategy = iota
)

// OutboundEncryption selects how OutboundSender encrypts a payload before
// transmission.
type OutboundEncryption byte

const (
	// EncryptForDestination seals the payload so that only the resolved
	// destination can decrypt it, using its public key.
	EncryptForDestination OutboundEncryption = iota
)

// OutboundSender abstracts sending a message through the transport and
// wire-encoding layers. The store-and-forward handler never touches a
// socket directly; RequestHandler's only write path is through this
// contract.
type OutboundSender interface {
	// Send transmits payload to the peer identified by strategy's
	// parameters, using encryption, tagged with the given destination
	// header and overlay message type. It may block awaiting send
	// capacity; it takes no context, so that wait cannot be cancelled
	// through this call.
	Send(strategy BroadcastStrategy, recipientPublicKey [32]byte, destination envelope.NodeDestination, encryption OutboundEncryption, messageType envelope.DhtMessageType, payload []byte) error
}
