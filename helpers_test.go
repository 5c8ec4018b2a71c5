package storeforward

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/opd-ai/storeforward/crypto"
	"github.com/opd-ai/storeforward/envelope"
	"github.com/opd-ai/storeforward/interfaces"
)

// sealedStoredMessage builds a StoredMessage whose EncryptedBody is a real
// ECDH+secretbox ciphertext from origin to destination, signed by origin,
// so that response-handler tests exercise the actual crypto path rather
// than a synthetic stand-in.
func sealedStoredMessage(t *testing.T, origin, destination *crypto.KeyPair, body []byte, dest envelope.NodeDestination, storedAt time.Time) envelope.StoredMessage {
	t.Helper()

	sharedSecret, err := crypto.DeriveSharedSecret(destination.Public, origin.Private)
	if err != nil {
		t.Fatalf("DeriveSharedSecret: %v", err)
	}

	nonce, err := crypto.GenerateNonce()
	if err != nil {
		t.Fatalf("GenerateNonce: %v", err)
	}

	ciphertext, err := crypto.EncryptSymmetric(body, nonce, sharedSecret)
	if err != nil {
		t.Fatalf("EncryptSymmetric: %v", err)
	}

	encryptedBody := append(append([]byte{}, nonce[:]...), ciphertext...)

	sig, err := crypto.Sign(encryptedBody, origin.Private)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	return envelope.StoredMessage{
		Version: 1,
		CommsHeader: envelope.CommsHeader{
			MessagePublicKey: origin.Public,
		},
		DhtHeader: envelope.DhtHeader{
			OriginPublicKey:        origin.Public,
			OriginSignature:        envelope.Signature(sig),
			OriginSigningPublicKey: crypto.SigningPublicKey(origin.Private),
			Destination:            dest,
			MessageType:            envelope.SafStoredMessages,
			ProtocolVersion:        1,
		},
		EncryptedBody: encryptedBody,
		StoredAt:      storedAt,
	}
}

func mustKeyPair(t *testing.T) *crypto.KeyPair {
	t.Helper()
	kp, err := crypto.GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	return kp
}

// fakePeerDirectory is a minimal in-memory PeerDirectory for tests.
type fakePeerDirectory struct {
	mu          sync.Mutex
	byPublicKey map[[32]byte][32]byte
	inRegion    map[[32]byte]bool
}

func newFakePeerDirectory() *fakePeerDirectory {
	return &fakePeerDirectory{
		byPublicKey: make(map[[32]byte][32]byte),
		inRegion:    make(map[[32]byte]bool),
	}
}

func (d *fakePeerDirectory) addPeer(publicKey, nodeID [32]byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.byPublicKey[publicKey] = nodeID
}

func (d *fakePeerDirectory) setInRegion(nodeID [32]byte, in bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.inRegion[nodeID] = in
}

func (d *fakePeerDirectory) InRegion(candidate, self [32]byte, numClosest int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.inRegion[candidate]
}

func (d *fakePeerDirectory) FindByPublicKey(publicKey [32]byte) ([32]byte, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	id, ok := d.byPublicKey[publicKey]
	return id, ok
}

// fakeOutboundSender records every Send call for assertion.
type fakeOutboundSender struct {
	mu    sync.Mutex
	calls []fakeOutboundCall
	err   error
}

type fakeOutboundCall struct {
	recipientPublicKey [32]byte
	destination        envelope.NodeDestination
	messageType        envelope.DhtMessageType
	payload            []byte
}

func (s *fakeOutboundSender) Send(strategy interfaces.BroadcastStrategy, recipientPublicKey [32]byte, destination envelope.NodeDestination, encryption interfaces.OutboundEncryption, messageType envelope.DhtMessageType, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.calls = append(s.calls, fakeOutboundCall{
		recipientPublicKey: recipientPublicKey,
		destination:        destination,
		messageType:        messageType,
		payload:            payload,
	})
	return nil
}

// fakeDownstream records every Handle call for assertion.
type fakeDownstream struct {
	mu    sync.Mutex
	calls []*envelope.DecryptedDhtMessage
	err   error
}

func (d *fakeDownstream) Handle(ctx context.Context, message *envelope.DecryptedDhtMessage) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.calls = append(d.calls, message)
	return d.err
}

func (d *fakeDownstream) callCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.calls)
}
