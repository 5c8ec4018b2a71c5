package dht

import (
	"github.com/opd-ai/storeforward/crypto"
)

// PeerDirectory adapts a RoutingTable to the narrow contract the
// store-and-forward handler depends on: region-membership and
// public-key-to-node-id lookup, with no knowledge of handler internals.
type PeerDirectory struct {
	table *RoutingTable
}

// NewPeerDirectory wraps an existing routing table as a PeerDirectory.
func NewPeerDirectory(table *RoutingTable) *PeerDirectory {
	return &PeerDirectory{table: table}
}

// InRegion reports whether candidate is among the numClosest nearest known
// peers to self. RequestHandler uses this to decide whether to serve a
// requester; RegionPolicy is the only caller that should ever need it.
func (d *PeerDirectory) InRegion(candidate, self [32]byte, numClosest int) bool {
	targetID := crypto.ToxID{PublicKey: self}
	closest := d.table.FindClosestNodes(targetID, numClosest)

	for _, node := range closest {
		if node.PublicKey == candidate {
			return true
		}
	}
	return false
}

// FindByPublicKey resolves a public key to a known peer's node id by
// scanning the routing table. A node is only returned if its public key
// matches exactly.
func (d *PeerDirectory) FindByPublicKey(publicKey [32]byte) (nodeID [32]byte, found bool) {
	for _, node := range d.table.GetAllNodes() {
		if node.PublicKey == publicKey {
			var id [32]byte
			copy(id[:], node.ID.PublicKey[:])
			return id, true
		}
	}
	return [32]byte{}, false
}
