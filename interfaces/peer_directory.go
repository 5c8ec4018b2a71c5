package interfaces

// PeerDirectory abstracts peer discovery and routing-table membership for
// the store-and-forward handler. RequestHandler uses it to decide whether a
// requester is close enough to be served; ResponseHandler uses it to
// resolve a stored message's origin public key to a known peer before
// forwarding it downstream.
type PeerDirectory interface {
	// InRegion reports whether candidate is among the numClosest nearest
	// known peers to self, under the overlay's distance metric.
	InRegion(candidate, self [32]byte, numClosest int) bool

	// FindByPublicKey resolves a public key to a known peer's node id. The
	// second return value is false if the key is not present in the
	// directory.
	FindByPublicKey(publicKey [32]byte) (nodeID [32]byte, found bool)
}
