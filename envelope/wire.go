package envelope

import (
	"bytes"
	"encoding/binary"
	"errors"
	"time"
)

// ErrTruncated is returned by the Unmarshal* functions when the input ends
// before a length-prefixed field can be fully read.
var ErrTruncated = errors.New("envelope: truncated binary payload")

// MarshalBinary encodes a StoredMessagesRequest as self-describing,
// length-prefixed binary: a presence byte followed by an optional
// nanosecond Unix timestamp.
func (r StoredMessagesRequest) MarshalBinary() ([]byte, error) {
	buf := &bytes.Buffer{}
	if r.Since == nil {
		buf.WriteByte(0)
		return buf.Bytes(), nil
	}
	buf.WriteByte(1)
	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], uint64(r.Since.UnixNano()))
	buf.Write(ts[:])
	return buf.Bytes(), nil
}

// UnmarshalStoredMessagesRequest decodes the format written by MarshalBinary.
func UnmarshalStoredMessagesRequest(data []byte) (StoredMessagesRequest, error) {
	if len(data) < 1 {
		return StoredMessagesRequest{}, ErrTruncated
	}
	if data[0] == 0 {
		return StoredMessagesRequest{}, nil
	}
	if len(data) < 9 {
		return StoredMessagesRequest{}, ErrTruncated
	}
	nanos := binary.BigEndian.Uint64(data[1:9])
	since := time.Unix(0, int64(nanos)).UTC()
	return StoredMessagesRequest{Since: &since}, nil
}

// MarshalBinary encodes a StoredMessage as self-describing, length-prefixed
// binary. Layout:
//
//	version(1) protocolVersion(1) commsMessagePublicKey(32)
//	originPublicKey(32) originSignature(64) originSigningPublicKey(32)
//	destinationKind(1) destinationKey(32)
//	messageType(1) encryptedBodyLen(4) encryptedBody(N) storedAtUnixNano(8)
func (m StoredMessage) MarshalBinary() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte(m.Version)
	buf.WriteByte(m.DhtHeader.ProtocolVersion)
	buf.Write(m.CommsHeader.MessagePublicKey[:])
	buf.Write(m.DhtHeader.OriginPublicKey[:])
	buf.Write(m.DhtHeader.OriginSignature[:])
	buf.Write(m.DhtHeader.OriginSigningPublicKey[:])
	buf.WriteByte(byte(m.DhtHeader.Destination.Kind))
	switch m.DhtHeader.Destination.Kind {
	case DestinationPublicKey:
		buf.Write(m.DhtHeader.Destination.PublicKey[:])
	case DestinationNodeID:
		buf.Write(m.DhtHeader.Destination.NodeID[:])
	default:
		var zero [32]byte
		buf.Write(zero[:])
	}
	buf.WriteByte(byte(m.DhtHeader.MessageType))

	var length [4]byte
	binary.BigEndian.PutUint32(length[:], uint32(len(m.EncryptedBody)))
	buf.Write(length[:])
	buf.Write(m.EncryptedBody)

	var ts [8]byte
	binary.BigEndian.PutUint64(ts[:], uint64(m.StoredAt.UnixNano()))
	buf.Write(ts[:])

	return buf.Bytes(), nil
}

const storedMessageFixedHeaderSize = 1 + 1 + 32 + 32 + 64 + 32 + 1 + 32 + 1 + 4

// unmarshalStoredMessage decodes a single StoredMessage and returns the
// number of bytes consumed, so callers can decode a sequence back to back.
func unmarshalStoredMessage(data []byte) (StoredMessage, int, error) {
	if len(data) < storedMessageFixedHeaderSize {
		return StoredMessage{}, 0, ErrTruncated
	}

	var msg StoredMessage
	offset := 0

	msg.Version = data[offset]
	offset++
	msg.DhtHeader.ProtocolVersion = data[offset]
	offset++

	copy(msg.CommsHeader.MessagePublicKey[:], data[offset:offset+32])
	offset += 32
	copy(msg.DhtHeader.OriginPublicKey[:], data[offset:offset+32])
	offset += 32
	copy(msg.DhtHeader.OriginSignature[:], data[offset:offset+64])
	offset += 64
	copy(msg.DhtHeader.OriginSigningPublicKey[:], data[offset:offset+32])
	offset += 32

	kind := DestinationKind(data[offset])
	offset++
	var destKey [32]byte
	copy(destKey[:], data[offset:offset+32])
	offset += 32
	switch kind {
	case DestinationPublicKey:
		msg.DhtHeader.Destination = ToPublicKey(destKey)
	case DestinationNodeID:
		msg.DhtHeader.Destination = ToNodeID(destKey)
	default:
		msg.DhtHeader.Destination = Undisclosed()
	}

	msg.DhtHeader.MessageType = DhtMessageType(data[offset])
	offset++

	bodyLen := binary.BigEndian.Uint32(data[offset : offset+4])
	offset += 4

	if len(data) < offset+int(bodyLen)+8 {
		return StoredMessage{}, 0, ErrTruncated
	}

	msg.EncryptedBody = make([]byte, bodyLen)
	copy(msg.EncryptedBody, data[offset:offset+int(bodyLen)])
	offset += int(bodyLen)

	nanos := binary.BigEndian.Uint64(data[offset : offset+8])
	offset += 8
	msg.StoredAt = time.Unix(0, int64(nanos)).UTC()

	return msg, offset, nil
}

// UnmarshalStoredMessage decodes the format written by StoredMessage.MarshalBinary.
func UnmarshalStoredMessage(data []byte) (StoredMessage, error) {
	msg, _, err := unmarshalStoredMessage(data)
	return msg, err
}

// MarshalBinary encodes a StoredMessagesResponse as a count prefix followed
// by each entry's own length-prefixed encoding.
func (r StoredMessagesResponse) MarshalBinary() ([]byte, error) {
	buf := &bytes.Buffer{}
	var count [4]byte
	binary.BigEndian.PutUint32(count[:], uint32(len(r.Messages)))
	buf.Write(count[:])

	for _, m := range r.Messages {
		encoded, err := m.MarshalBinary()
		if err != nil {
			return nil, err
		}
		buf.Write(encoded)
	}
	return buf.Bytes(), nil
}

// UnmarshalStoredMessagesResponse decodes the format written by
// StoredMessagesResponse.MarshalBinary.
func UnmarshalStoredMessagesResponse(data []byte) (StoredMessagesResponse, error) {
	if len(data) < 4 {
		return StoredMessagesResponse{}, ErrTruncated
	}
	count := binary.BigEndian.Uint32(data[0:4])
	offset := 4

	messages := make([]StoredMessage, 0, count)
	for i := uint32(0); i < count; i++ {
		msg, consumed, err := unmarshalStoredMessage(data[offset:])
		if err != nil {
			return StoredMessagesResponse{}, err
		}
		messages = append(messages, msg)
		offset += consumed
	}

	return StoredMessagesResponse{Messages: messages}, nil
}
