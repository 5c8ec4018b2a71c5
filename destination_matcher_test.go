package storeforward

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/opd-ai/storeforward/envelope"
)

func TestDestinationMatchesDelegatesToNodeDestination(t *testing.T) {
	var pk, nodeID [32]byte
	pk[0] = 1
	nodeID[0] = 2

	assert.True(t, DestinationMatches(envelope.Undisclosed(), pk, nodeID))
	assert.True(t, DestinationMatches(envelope.ToPublicKey(pk), pk, nodeID))
	assert.False(t, DestinationMatches(envelope.ToPublicKey(pk), [32]byte{99}, nodeID))
}
