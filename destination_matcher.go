package storeforward

import "github.com/opd-ai/storeforward/envelope"

// DestinationMatches is the pure predicate shared by RequestHandler (does a
// stored entry match the peer asking for it?) and ResponseHandler (does a
// received stored message match this node?). Undisclosed always matches;
// PublicKey and NodeID require an exact match against the given identity.
func DestinationMatches(destination envelope.NodeDestination, publicKey, nodeID [32]byte) bool {
	return destination.MatchesRequester(publicKey, nodeID)
}
