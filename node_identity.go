package storeforward

// Identity is the concrete, immutable implementation of
// interfaces.NodeIdentity: a node id, public key, and secret key fixed for
// the process lifetime and shared by reference across every concurrent
// handler task.
type Identity struct {
	nodeID    [32]byte
	publicKey [32]byte
	secretKey [32]byte
}

// NewIdentity builds an Identity from its three fixed fields.
func NewIdentity(nodeID, publicKey, secretKey [32]byte) *Identity {
	return &Identity{nodeID: nodeID, publicKey: publicKey, secretKey: secretKey}
}

// NodeID returns the node's overlay identifier.
func (id *Identity) NodeID() [32]byte { return id.nodeID }

// PublicKey returns the node's Curve25519 public key.
func (id *Identity) PublicKey() [32]byte { return id.publicKey }

// SecretKey returns the node's Curve25519 secret key.
func (id *Identity) SecretKey() [32]byte { return id.secretKey }
