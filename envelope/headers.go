package envelope

// CommsHeader is the opaque transport-layer header attached to every
// envelope, independent of whatever overlay message it carries.
type CommsHeader struct {
	// MessagePublicKey is the sender's public key as asserted by the
	// transport layer. See the package doc for why this is checked against
	// DhtHeader.OriginPublicKey rather than trusted on its own.
	MessagePublicKey [32]byte
}

// DhtHeader is the overlay-level header carried by every DHT message.
type DhtHeader struct {
	// OriginPublicKey is the origin's Curve25519 identity: the key the peer
	// directory indexes it by and the key ECDH is derived against. It is
	// never valid as an Ed25519 verification key for OriginSignature — the
	// two live on different curves. See OriginSigningPublicKey.
	OriginPublicKey [32]byte
	OriginSignature Signature
	// OriginSigningPublicKey is the Ed25519 public key that verifies
	// OriginSignature, derived by the origin from the same secret seed as
	// OriginPublicKey via crypto.SigningPublicKey but distinct from it.
	OriginSigningPublicKey [32]byte
	Destination            NodeDestination
	MessageType            DhtMessageType
	ProtocolVersion        uint8
}

// Signature is an opaque Ed25519 signature, kept as a fixed byte array so
// the envelope package has no dependency on the crypto package's types.
type Signature [64]byte
