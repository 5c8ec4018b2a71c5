// Package transport implements the wire-framing layer consumed by the
// store-and-forward handler's OutboundSender. This file defines the raw
// packet structure and a minimal set of packet types; the overlay's own
// message types (including the two SAF types) live one layer up, in the
// envelope package, and travel as the packet's payload.
package transport

import (
	"errors"
)

// PacketType identifies the type of a low-level transport packet.
type PacketType byte

const (
	// PacketPingRequest and PacketPingResponse implement basic liveness
	// checks between directly connected peers.
	PacketPingRequest PacketType = iota + 1
	PacketPingResponse

	// PacketGetNodes and PacketSendNodes implement Kademlia-style closest
	// node discovery, independent of the overlay message types carried by
	// PacketDHTEnvelope.
	PacketGetNodes
	PacketSendNodes

	// PacketDHTEnvelope carries an encrypted overlay envelope (comms
	// header, DHT header, and encrypted body) as its payload. This is the
	// packet type used to deliver SafRequestMessages and SafStoredMessages
	// traffic, along with every other overlay message type.
	PacketDHTEnvelope
)

// Packet is the fundamental unit of communication on the transport. It
// pairs a packet type with an opaque, variable-length payload.
//
//export ToxPacket
type Packet struct {
	PacketType PacketType
	Data       []byte
}

// Serialize converts a packet to a byte slice for network transmission.
//
// Packet format: [packet_type(1)][data(variable)]
func (p *Packet) Serialize() ([]byte, error) {
	if p.Data == nil {
		return nil, errors.New("packet data is nil")
	}

	result := make([]byte, 1+len(p.Data))
	result[0] = byte(p.PacketType)
	copy(result[1:], p.Data)

	return result, nil
}

// ParsePacket converts a byte slice received from the network to a Packet.
func ParsePacket(data []byte) (*Packet, error) {
	if len(data) < 1 {
		return nil, errors.New("packet too short")
	}

	packet := &Packet{
		PacketType: PacketType(data[0]),
		Data:       make([]byte, len(data)-1),
	}
	copy(packet.Data, data[1:])

	return packet, nil
}

// NodePacket is a specialized packet carrying a public key and nonce
// alongside its encrypted payload, used for DHT node-to-node exchanges
// that need explicit cryptographic context in the wire format.
//
//export ToxNodePacket
type NodePacket struct {
	PublicKey [32]byte
	Nonce     [24]byte
	Payload   []byte
}

// Serialize converts a NodePacket to a byte slice for transmission.
//
// Packet format: [public_key(32)][nonce(24)][payload(variable)]
func (np *NodePacket) Serialize() ([]byte, error) {
	result := make([]byte, 32+24+len(np.Payload))

	copy(result[0:32], np.PublicKey[:])
	copy(result[32:56], np.Nonce[:])
	copy(result[56:], np.Payload)

	return result, nil
}

// ParseNodePacket converts a byte slice to a NodePacket structure.
func ParseNodePacket(data []byte) (*NodePacket, error) {
	if len(data) < 56 {
		return nil, errors.New("node packet too short")
	}

	packet := &NodePacket{
		Payload: make([]byte, len(data)-56),
	}
	copy(packet.PublicKey[:], data[0:32])
	copy(packet.Nonce[:], data[32:56])
	copy(packet.Payload, data[56:])

	return packet, nil
}
