// Package transport defines the wire-level abstractions the store-and-forward
// handler sits on top of: a minimal packet format, the Transport interface
// used to send and receive packets, and PacketSender, which frames outbound
// payloads for a Transport. Transport implementations
// (UDP, TCP, and friends) and their NAT/proxy concerns are outside this core;
// only the contract and the framing survive here.
//
// # The Transport interface
//
//	type Transport interface {
//	    Send(packet *Packet, addr net.Addr) error
//	    Close() error
//	    LocalAddr() net.Addr
//	    RegisterHandler(packetType PacketType, handler PacketHandler)
//	}
//
// # Packet Types
//
// Packet types are defined in packet.go:
//
//	const (
//	    PacketPingRequest  PacketType = iota + 1
//	    PacketPingResponse
//	    PacketGetNodes
//	    PacketSendNodes
//	    PacketDHTEnvelope
//	)
//
// PacketDHTEnvelope carries the overlay's own envelope (comms header, DHT
// header, encrypted body) as its payload; the overlay message type --
// including SafRequestMessages and SafStoredMessages -- lives one layer up in
// the envelope package, not in PacketType.
//
// # Handler Registration
//
// Packet handlers are registered per-type for dispatch:
//
//	transport.RegisterHandler(PacketDHTEnvelope, func(p *Packet, addr net.Addr) error {
//	    return deframer.Handle(p, addr)
//	})
//
// # Thread Safety
//
// This package contains no Transport implementation. PacketSender keeps no
// mutable state of its own; whether it is safe for concurrent use depends on
// the Transport and AddressBook it is given.
package transport
