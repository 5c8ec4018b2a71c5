package interfaces

import (
	"context"

	"github.com/opd-ai/storeforward/envelope"
)

// DownstreamStage is the next processing step in the inbound pipeline,
// consuming decrypted envelopes that HandlerStage decides not to act on
// itself, and receiving the individual messages ResponseHandler recovers
// from a SafStoredMessages batch.
type DownstreamStage interface {
	// Handle processes a single decrypted envelope, returning a pipeline
	// error on failure. Implementations may be called concurrently from
	// multiple handler tasks.
	Handle(ctx context.Context, message *envelope.DecryptedDhtMessage) error
}

// NodeIdentity is this node's own key material, immutable for the process
// lifetime and shared by reference across every concurrent handler task.
type NodeIdentity interface {
	NodeID() [32]byte
	PublicKey() [32]byte
	SecretKey() [32]byte
}
