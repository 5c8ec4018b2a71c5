package transport

import (
	"net"
)

// PacketHandler processes an incoming packet from a given source address.
// Handlers are invoked concurrently per received packet.
type PacketHandler func(packet *Packet, addr net.Addr) error

// Transport abstracts the network transports the DHT message pipeline can
// be fed from (UDP, TCP, ...), so that handler-stage code depends only on
// this narrow capability contract rather than any concrete implementation.
//
//export ToxTransport
type Transport interface {
	// Send transmits a packet to the specified network address.
	Send(packet *Packet, addr net.Addr) error

	// Close shuts down the transport and releases all resources.
	Close() error

	// LocalAddr returns the local address the transport is listening on.
	LocalAddr() net.Addr

	// RegisterHandler associates a handler function with a packet type.
	RegisterHandler(packetType PacketType, handler PacketHandler)
}
