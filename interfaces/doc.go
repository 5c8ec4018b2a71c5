// Package interfaces defines the narrow capability contracts the
// store-and-forward handler depends on, rather than the concrete types
// that satisfy them. This keeps peer discovery, wire transport, and node
// identity as external collaborators the handler only ever sees through
// these boundaries.
//
// # Contracts
//
// [PeerDirectory] answers region-membership and public-key lookup queries;
// a concrete implementation backed by a Kademlia-style routing table lives
// in package dht.
//
// [OutboundSender] abstracts the send path used by RequestHandler to reply
// to a requester.
//
// [DownstreamStage] abstracts the next pipeline step; ResponseHandler
// issues zero or more calls to it per inbound response.
//
// [NodeIdentity] abstracts this node's own immutable key material.
//
// # Why interfaces, not structs
//
// HandlerStage is meant to be generic over whatever sits downstream of it;
// modeling that as a narrow interface rather than a concrete dependency
// keeps the handler testable with simple fakes and avoids coupling it to
// any one transport or routing implementation.
package interfaces
