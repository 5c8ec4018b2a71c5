package envelope

import "time"

// StoredMessage is the unit of store-and-forward retention: an envelope a
// node is holding on behalf of an offline peer, still encrypted under the
// ECDH shared secret of its origin and destination.
type StoredMessage struct {
	Version       uint8
	CommsHeader   CommsHeader
	DhtHeader     DhtHeader
	EncryptedBody []byte
	StoredAt      time.Time
}

// Clone returns a deep copy of the stored message. RequestHandler clones
// retained entries rather than handing out references into the store, so
// that results survive past the store's lock scope.
func (m StoredMessage) Clone() StoredMessage {
	body := make([]byte, len(m.EncryptedBody))
	copy(body, m.EncryptedBody)
	clone := m
	clone.EncryptedBody = body
	return clone
}
