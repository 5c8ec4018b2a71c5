package envelope

// DhtMessageType identifies the overlay-level meaning of a decrypted
// message. The store-and-forward subsystem only acts on two of these; every
// other value passes through the handler stage unmodified.
type DhtMessageType byte

const (
	// UserMessage is an ordinary application payload with no overlay-level
	// handling; the handler stage forwards it downstream unchanged.
	UserMessage DhtMessageType = iota

	// PingRequest and PingResponse are overlay liveness probes.
	PingRequest
	PingResponse

	// GetNodesRequest and GetNodesResponse implement closest-node discovery.
	GetNodesRequest
	GetNodesResponse

	// SafRequestMessages asks a neighbour to return any stored messages
	// addressed to, or undisclosed for, the requester.
	SafRequestMessages

	// SafStoredMessages carries a batch of previously stored messages back
	// to the peer that asked for them (or to the node that originally
	// deposited them, if pushed unsolicited).
	SafStoredMessages
)

// IsDhtMessage reports whether this type is an overlay-control message
// rather than an opaque application payload. SAF types are always overlay
// control messages: a control message that failed outer decryption can
// never be acted upon and must be dropped rather than forwarded.
func (t DhtMessageType) IsDhtMessage() bool {
	switch t {
	case PingRequest, PingResponse, GetNodesRequest, GetNodesResponse,
		SafRequestMessages, SafStoredMessages:
		return true
	default:
		return false
	}
}

// String renders a human-readable name, used in log fields.
func (t DhtMessageType) String() string {
	switch t {
	case UserMessage:
		return "UserMessage"
	case PingRequest:
		return "PingRequest"
	case PingResponse:
		return "PingResponse"
	case GetNodesRequest:
		return "GetNodesRequest"
	case GetNodesResponse:
		return "GetNodesResponse"
	case SafRequestMessages:
		return "SafRequestMessages"
	case SafStoredMessages:
		return "SafStoredMessages"
	default:
		return "Unknown"
	}
}
