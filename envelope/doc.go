// Package envelope defines the overlay message types the store-and-forward
// handler consumes and produces: the decrypted inbound envelope, the two
// SAF-specific request/response bodies, and the stored-message format that
// sits between them.
//
// # Message types
//
// [DhtMessageType] enumerates overlay-control types. Only SafRequestMessages
// and SafStoredMessages are acted on by the handler stage; every other type,
// including plain UserMessage, passes through unmodified.
//
// # Destinations
//
// [NodeDestination] mirrors a three-way tagged union: Undisclosed matches
// any requester, PublicKey and NodeID restrict to a single identity. Use
// [Undisclosed], [ToPublicKey], and [ToNodeID] to construct one, and
// [NodeDestination.MatchesRequester] to test it.
//
// # Wire format
//
// StoredMessagesRequest and StoredMessagesResponse serialize to
// self-describing, length-prefixed binary via their MarshalBinary methods
// and the package-level Unmarshal* functions; see wire.go for the exact
// layout. Both are versioned through DhtHeader.ProtocolVersion carried in
// the enclosing envelope.
//
// # Origin identity
//
// CommsHeader.MessagePublicKey and DhtHeader.OriginPublicKey are populated
// independently (one by the transport layer, one by the overlay layer) but
// are expected to name the same peer. Callers that need both should check
// [DecryptedDhtMessage.CheckOriginConsistency] and reject a disagreement
// rather than silently preferring one field.
package envelope
