package storeforward

import "github.com/opd-ai/storeforward/interfaces"

// RegionPolicy decides whether a requester falls within this node's
// configured closeness radius, deferring the actual distance computation to
// a PeerDirectory. It caches nothing itself; callers that need caching
// should wrap the PeerDirectory they hand in.
type RegionPolicy struct {
	directory interfaces.PeerDirectory
}

// NewRegionPolicy builds a RegionPolicy backed by the given directory.
func NewRegionPolicy(directory interfaces.PeerDirectory) *RegionPolicy {
	return &RegionPolicy{directory: directory}
}

// InRegion reports whether candidate is among the numClosest nearest known
// peers to self.
func (p *RegionPolicy) InRegion(candidate, self [32]byte, numClosest int) bool {
	return p.directory.InRegion(candidate, self, numClosest)
}
