// Package dht implements the routing-table primitives the store-and-forward
// handler uses to decide which peers count as "in region": a modified
// Kademlia routing table organized into k-buckets, with nodes grouped by
// their XOR distance from the local node's public key.
//
// # Routing Table
//
// The routing table implements Kademlia-style k-buckets whose size is passed
// to NewRoutingTable (8 in this example). Nodes are organized by XOR distance:
//
//	table := dht.NewRoutingTable(selfID, 8)
//	table.AddNode(node)
//	closest := table.FindClosestNodes(targetID, 8)
//
// FindClosestNodes collects every known node, sorts by XOR distance to the
// target, and returns the closest matches. It backs the region-containment
// check that the store-and-forward request handler uses to decide whether a
// requester is close enough to this node to be served.
//
// # Node Status
//
// Nodes transition through three states based on responsiveness:
//
//	const (
//	    StatusUnknown NodeStatus = iota  // New node, untested
//	    StatusBad                        // Unresponsive, pending removal
//	    StatusGood                       // Actively responding to pings
//	)
//
// # Thread Safety
//
// RoutingTable and KBucket guard their internal state with sync.RWMutex and
// are safe for concurrent use.
//
// # Deterministic Testing
//
// For reproducible test scenarios, use the TimeProvider interface:
//
//	dht.SetDefaultTimeProvider(&MockTimeProvider{currentTime: fixedTime})
//
// or inject one directly into a node:
//
//	node := dht.NewNodeWithTimeProvider(id, addr, mockTimeProvider)
package dht
