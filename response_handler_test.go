package storeforward

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opd-ai/storeforward/envelope"
)

func responseEnvelope(t *testing.T, relay envelope.PeerIdentity, messages []envelope.StoredMessage) *envelope.DecryptedDhtMessage {
	t.Helper()
	response := envelope.StoredMessagesResponse{Messages: messages}
	body, err := response.MarshalBinary()
	require.NoError(t, err)

	return &envelope.DecryptedDhtMessage{
		SourcePeer: relay,
		DhtHeader: envelope.DhtHeader{
			MessageType: envelope.SafStoredMessages,
		},
		Message: &envelope.Message{Body: body},
	}
}

func TestResponseHandlerForwardsSuccessfullyDecryptedEntry(t *testing.T) {
	origin := mustKeyPair(t)
	self := mustKeyPair(t)

	var selfNodeID, originNodeID, relayNodeID [32]byte
	selfNodeID[0] = 1
	originNodeID[0] = 2
	relayNodeID[0] = 3

	stored := sealedStoredMessage(t, origin, self, []byte("hello"), envelope.ToPublicKey(self.Public), time.Now())

	directory := newFakePeerDirectory()
	directory.addPeer(origin.Public, originNodeID)

	identity := NewIdentity(selfNodeID, self.Public, self.Private)
	downstream := &fakeDownstream{}
	handler := NewResponseHandler(identity, directory, downstream)

	msg := responseEnvelope(t, envelope.PeerIdentity{NodeID: relayNodeID}, []envelope.StoredMessage{stored})

	err := handler.Handle(context.Background(), msg)
	require.NoError(t, err)
	require.Equal(t, 1, downstream.callCount())

	forwarded := downstream.calls[0]
	assert.Equal(t, []byte("hello"), forwarded.Message.Body)
	assert.Equal(t, originNodeID, forwarded.SourcePeer.NodeID)
}

func TestResponseHandlerDropsEntryNotAddressedToSelf(t *testing.T) {
	origin := mustKeyPair(t)
	self := mustKeyPair(t)
	otherDestination := mustKeyPair(t)

	var selfNodeID [32]byte
	selfNodeID[0] = 1

	stored := sealedStoredMessage(t, origin, self, []byte("hello"), envelope.ToPublicKey(otherDestination.Public), time.Now())

	directory := newFakePeerDirectory()
	identity := NewIdentity(selfNodeID, self.Public, self.Private)
	downstream := &fakeDownstream{}
	handler := NewResponseHandler(identity, directory, downstream)

	msg := responseEnvelope(t, envelope.PeerIdentity{}, []envelope.StoredMessage{stored})

	err := handler.Handle(context.Background(), msg)
	require.NoError(t, err)
	assert.Equal(t, 0, downstream.callCount())
}

func TestResponseHandlerDropsEntryWithTamperedSignature(t *testing.T) {
	origin := mustKeyPair(t)
	self := mustKeyPair(t)

	var selfNodeID, originNodeID [32]byte
	selfNodeID[0] = 1
	originNodeID[0] = 2

	stored := sealedStoredMessage(t, origin, self, []byte("hello"), envelope.ToPublicKey(self.Public), time.Now())
	stored.EncryptedBody[0] ^= 0xFF // tamper after signing

	directory := newFakePeerDirectory()
	directory.addPeer(origin.Public, originNodeID)
	identity := NewIdentity(selfNodeID, self.Public, self.Private)
	downstream := &fakeDownstream{}
	handler := NewResponseHandler(identity, directory, downstream)

	msg := responseEnvelope(t, envelope.PeerIdentity{}, []envelope.StoredMessage{stored})

	err := handler.Handle(context.Background(), msg)
	require.NoError(t, err)
	assert.Equal(t, 0, downstream.callCount())
}

func TestResponseHandlerDropsEntryWithUnknownOrigin(t *testing.T) {
	origin := mustKeyPair(t)
	self := mustKeyPair(t)

	var selfNodeID [32]byte
	selfNodeID[0] = 1

	stored := sealedStoredMessage(t, origin, self, []byte("hello"), envelope.ToPublicKey(self.Public), time.Now())

	directory := newFakePeerDirectory() // origin never registered
	identity := NewIdentity(selfNodeID, self.Public, self.Private)
	downstream := &fakeDownstream{}
	handler := NewResponseHandler(identity, directory, downstream)

	msg := responseEnvelope(t, envelope.PeerIdentity{}, []envelope.StoredMessage{stored})

	err := handler.Handle(context.Background(), msg)
	require.NoError(t, err)
	assert.Equal(t, 0, downstream.callCount())
}

func TestResponseHandlerDropsEntryWithOriginIdentityMismatch(t *testing.T) {
	origin := mustKeyPair(t)
	imposter := mustKeyPair(t)
	self := mustKeyPair(t)

	var selfNodeID, originNodeID [32]byte
	selfNodeID[0] = 1
	originNodeID[0] = 2

	stored := sealedStoredMessage(t, origin, self, []byte("hello"), envelope.ToPublicKey(self.Public), time.Now())
	stored.CommsHeader.MessagePublicKey = imposter.Public // disagrees with DhtHeader.OriginPublicKey

	directory := newFakePeerDirectory()
	directory.addPeer(origin.Public, originNodeID)
	identity := NewIdentity(selfNodeID, self.Public, self.Private)
	downstream := &fakeDownstream{}
	handler := NewResponseHandler(identity, directory, downstream)

	msg := responseEnvelope(t, envelope.PeerIdentity{}, []envelope.StoredMessage{stored})

	err := handler.Handle(context.Background(), msg)
	require.NoError(t, err)
	assert.Equal(t, 0, downstream.callCount())
}

func TestResponseHandlerProcessesBatchConcurrentlyUnderBound(t *testing.T) {
	self := mustKeyPair(t)
	var selfNodeID [32]byte
	selfNodeID[0] = 1

	const batchSize = 40
	messages := make([]envelope.StoredMessage, 0, batchSize)
	directory := newFakePeerDirectory()

	for i := 0; i < batchSize; i++ {
		origin := mustKeyPair(t)
		var originNodeID [32]byte
		originNodeID[0] = byte(i + 10)
		directory.addPeer(origin.Public, originNodeID)
		messages = append(messages, sealedStoredMessage(t, origin, self, []byte("payload"), envelope.ToPublicKey(self.Public), time.Now()))
	}

	identity := NewIdentity(selfNodeID, self.Public, self.Private)
	downstream := &fakeDownstream{}
	handler := NewResponseHandlerWithConcurrency(identity, directory, downstream, 4)

	msg := responseEnvelope(t, envelope.PeerIdentity{}, messages)

	err := handler.Handle(context.Background(), msg)
	require.NoError(t, err)
	assert.Equal(t, batchSize, downstream.callCount())
}

func TestResponseHandlerDropsOversizedStoredEntry(t *testing.T) {
	origin := mustKeyPair(t)
	self := mustKeyPair(t)

	var selfNodeID, originNodeID [32]byte
	selfNodeID[0] = 1
	originNodeID[0] = 2

	stored := sealedStoredMessage(t, origin, self, []byte("hello"), envelope.ToPublicKey(self.Public), time.Now())
	stored.EncryptedBody = make([]byte, 32*1024) // exceeds limits.MaxStorageMessage

	directory := newFakePeerDirectory()
	directory.addPeer(origin.Public, originNodeID)
	identity := NewIdentity(selfNodeID, self.Public, self.Private)
	downstream := &fakeDownstream{}
	handler := NewResponseHandler(identity, directory, downstream)

	msg := responseEnvelope(t, envelope.PeerIdentity{}, []envelope.StoredMessage{stored})

	err := handler.Handle(context.Background(), msg)
	require.NoError(t, err)
	assert.Equal(t, 0, downstream.callCount())
}

func TestResponseHandlerRejectsOversizedResponseBody(t *testing.T) {
	self := mustKeyPair(t)
	var selfNodeID [32]byte
	selfNodeID[0] = 1

	directory := newFakePeerDirectory()
	identity := NewIdentity(selfNodeID, self.Public, self.Private)
	downstream := &fakeDownstream{}
	handler := NewResponseHandler(identity, directory, downstream)

	msg := &envelope.DecryptedDhtMessage{
		DhtHeader: envelope.DhtHeader{MessageType: envelope.SafStoredMessages},
		Message:   &envelope.Message{Body: make([]byte, 2*1024*1024)},
	}

	err := handler.Handle(context.Background(), msg)
	assert.ErrorIs(t, err, ErrInvalidEnvelopeBody)
}

func TestResponseHandlerRejectsMalformedResponseBody(t *testing.T) {
	self := mustKeyPair(t)
	var selfNodeID [32]byte
	selfNodeID[0] = 1

	directory := newFakePeerDirectory()
	identity := NewIdentity(selfNodeID, self.Public, self.Private)
	downstream := &fakeDownstream{}
	handler := NewResponseHandler(identity, directory, downstream)

	msg := &envelope.DecryptedDhtMessage{
		DhtHeader: envelope.DhtHeader{MessageType: envelope.SafStoredMessages},
		Message:   &envelope.Message{Body: []byte{0x01}}, // too short to be a valid count prefix
	}

	err := handler.Handle(context.Background(), msg)
	assert.ErrorIs(t, err, ErrInvalidEnvelopeBody)
}
