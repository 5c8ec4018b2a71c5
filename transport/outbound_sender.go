package transport

import (
	"fmt"
	"net"

	"github.com/opd-ai/storeforward/envelope"
	"github.com/opd-ai/storeforward/interfaces"
)

// AddressBook resolves a peer's public key to the network address a sender
// should deliver to. Concrete implementations typically wrap a peer
// directory or routing table; PacketSender depends only on this narrow
// lookup rather than a full directory contract.
type AddressBook interface {
	ResolveAddr(publicKey [32]byte) (net.Addr, bool)
}

// PacketSender is a concrete interfaces.OutboundSender that frames every
// outbound payload as a PacketDHTEnvelope and hands it to a Transport for
// delivery. It is the packet-framing half of the OutboundSender contract
// RequestHandler depends on; socket I/O itself remains the Transport
// implementation's concern.
type PacketSender struct {
	transport Transport
	addresses AddressBook
}

// NewPacketSender builds a PacketSender delivering over the given
// transport, resolving recipients through addresses.
func NewPacketSender(transport Transport, addresses AddressBook) *PacketSender {
	return &PacketSender{transport: transport, addresses: addresses}
}

// Send implements interfaces.OutboundSender. strategy, destination,
// encryption and messageType are ignored: the payload is not encrypted and
// no destination header is written. Send resolves the recipient's address
// and frames the payload bytes, exactly as given, as a PacketDHTEnvelope.
func (s *PacketSender) Send(strategy interfaces.BroadcastStrategy, recipientPublicKey [32]byte, destination envelope.NodeDestination, encryption interfaces.OutboundEncryption, messageType envelope.DhtMessageType, payload []byte) error {
	addr, found := s.addresses.ResolveAddr(recipientPublicKey)
	if !found {
		return fmt.Errorf("transport: no known address for recipient public key %x", recipientPublicKey[:8])
	}

	packet := &Packet{PacketType: PacketDHTEnvelope, Data: payload}
	return s.transport.Send(packet, addr)
}

var _ interfaces.OutboundSender = (*PacketSender)(nil)
