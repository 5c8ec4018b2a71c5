// Package storeforward implements the store-and-forward (SAF) handler for
// a DHT overlay's inbound message pipeline: the subsystem that lets offline
// peers exchange messages indirectly through intermediate nodes holding
// encrypted messages on their behalf.
//
// The handler sits as a stage in an inbound pipeline. An inbound decrypted
// envelope arrives at [HandlerStage]. If its type is SafRequestMessages,
// [RequestHandler] filters [SafStore]'s contents and replies with a single
// SafStoredMessages message. If its type is SafStoredMessages,
// [ResponseHandler] decrypts and verifies each contained entry and pushes
// successful ones into the downstream stage. Every other type passes
// through to the downstream stage unmodified.
//
// # Getting started
//
//	store := storeforward.NewSafStore(config.StoreCapacity)
//	identity := storeforward.NewIdentity(nodeID, publicKey, secretKey)
//	regionPolicy := storeforward.NewRegionPolicy(peerDirectory)
//
//	requestHandler := storeforward.NewRequestHandler(store, regionPolicy, identity, outboundSender, config)
//	responseHandler := storeforward.NewResponseHandler(identity, peerDirectory, downstream)
//	stage := storeforward.NewHandlerStage(requestHandler, responseHandler, downstream)
//
//	err := stage.Run(ctx, inboundMessage)
//
// # Collaborators
//
// The handler depends on four narrow contracts defined in package
// interfaces, rather than on any concrete peer-discovery, transport, or
// identity implementation: [interfaces.PeerDirectory],
// [interfaces.OutboundSender], [interfaces.DownstreamStage], and
// [interfaces.NodeIdentity]. A PeerDirectory backed by a Kademlia-style
// routing table lives in package dht.
//
// # Concurrency
//
// ResponseHandler fans a single response's entries out across goroutines,
// bounded by a semaphore so that a maximal response from a hostile relay
// cannot force unbounded concurrent decryption work. SafStore guards its
// state with a single internal mutex and never performs I/O while holding
// it.
//
// # Error handling
//
// Sentinel errors in errors.go name the taxonomy the handler uses
// internally (ErrInvalidEnvelopeBody, ErrInvalidDestination,
// ErrInvalidSignature, ErrDecryptionFailed, ErrPeerNotFound,
// ErrOutboundFailed, ErrDownstreamFailed).
// ResponseHandler absorbs all per-entry errors; only a malformed outer
// response surfaces to its caller. RequestHandler surfaces
// ErrInvalidEnvelopeBody and ErrOutboundFailed; region refusal is logged,
// not an error. HandlerStage wraps a downstream failure as
// ErrDownstreamFailed, preserving the original error via errors.Is. Every
// envelope body this package reads or writes is bounds-checked against
// package limits before use, independent of the bounded concurrency in
// ResponseHandler.
package storeforward
