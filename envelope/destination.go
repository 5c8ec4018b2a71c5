package envelope

// DestinationKind discriminates the variants of NodeDestination.
type DestinationKind byte

const (
	// DestinationUndisclosed means the stored message names no specific
	// recipient; any peer may attempt to decrypt it.
	DestinationUndisclosed DestinationKind = iota

	// DestinationPublicKey restricts the message to the holder of a
	// specific Curve25519 public key.
	DestinationPublicKey

	// DestinationNodeID restricts the message to a specific overlay node id.
	DestinationNodeID
)

// NodeDestination names who a stored message is addressed to. It mirrors a
// tagged union: exactly one of PublicKey or NodeID is meaningful, selected
// by Kind.
type NodeDestination struct {
	Kind      DestinationKind
	PublicKey [32]byte
	NodeID    [32]byte
}

// Undisclosed constructs a destination that matches any requester.
func Undisclosed() NodeDestination {
	return NodeDestination{Kind: DestinationUndisclosed}
}

// ToPublicKey constructs a destination restricted to a single public key.
func ToPublicKey(pk [32]byte) NodeDestination {
	return NodeDestination{Kind: DestinationPublicKey, PublicKey: pk}
}

// ToNodeID constructs a destination restricted to a single node id.
func ToNodeID(id [32]byte) NodeDestination {
	return NodeDestination{Kind: DestinationNodeID, NodeID: id}
}

// MatchesRequester reports whether this destination should be served to a
// requester identified by the given public key and node id. This is the
// rule RequestHandler applies when filtering SafStore entries, and the rule
// ResponseHandler applies (with requesterPublicKey/requesterNodeID set to
// the local identity) when deciding whether an incoming stored message is
// addressed to this node.
func (d NodeDestination) MatchesRequester(requesterPublicKey, requesterNodeID [32]byte) bool {
	switch d.Kind {
	case DestinationUndisclosed:
		return true
	case DestinationPublicKey:
		return d.PublicKey == requesterPublicKey
	case DestinationNodeID:
		return d.NodeID == requesterNodeID
	default:
		return false
	}
}
