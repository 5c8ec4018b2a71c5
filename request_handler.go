package storeforward

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/storeforward/envelope"
	"github.com/opd-ai/storeforward/interfaces"
	"github.com/opd-ai/storeforward/limits"
)

// RequestHandler serves SafRequestMessages: it filters SafStore's contents
// down to what the requester is entitled to see and emits a single
// SafStoredMessages reply.
type RequestHandler struct {
	store        *SafStore
	regionPolicy *RegionPolicy
	identity     interfaces.NodeIdentity
	outbound     interfaces.OutboundSender
	config       Config
}

// NewRequestHandler wires together the collaborators RequestHandler needs.
func NewRequestHandler(store *SafStore, regionPolicy *RegionPolicy, identity interfaces.NodeIdentity, outbound interfaces.OutboundSender, config Config) *RequestHandler {
	return &RequestHandler{
		store:        store,
		regionPolicy: regionPolicy,
		identity:     identity,
		outbound:     outbound,
		config:       config,
	}
}

// Handle serves a single decrypted SafRequestMessages envelope.
func (h *RequestHandler) Handle(ctx context.Context, message *envelope.DecryptedDhtMessage) error {
	logger := logrus.WithFields(logrus.Fields{
		"function": "RequestHandler.Handle",
		"package":  "storeforward",
	})

	if err := limits.ValidateProcessingBuffer(message.Message.Body); err != nil {
		return fmt.Errorf("%w: request body: %v", ErrInvalidEnvelopeBody, err)
	}

	request, err := envelope.UnmarshalStoredMessagesRequest(message.Message.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEnvelopeBody, err)
	}

	requesterPublicKey := message.SourcePeer.PublicKey
	requesterNodeID := message.SourcePeer.NodeID
	selfNodeID := h.identity.NodeID()

	if !h.regionPolicy.InRegion(requesterNodeID, selfNodeID, h.config.SafNumClosestNodes) {
		logger.WithFields(logrus.Fields{
			"requester_node_id": fmt.Sprintf("%x", requesterNodeID[:8]),
		}).Debug("requester outside serving region, dropping request")
		return nil
	}

	var retained []envelope.StoredMessage
	h.store.WithInner(func(messages []envelope.StoredMessage) {
		for _, m := range messages {
			if !sinceMatches(request, m) {
				continue
			}
			if !DestinationMatches(m.DhtHeader.Destination, requesterPublicKey, requesterNodeID) {
				continue
			}
			retained = append(retained, m)
			if len(retained) >= h.config.SafMaxReturnedMessages {
				break
			}
		}
	})

	cloned := make([]envelope.StoredMessage, len(retained))
	for i, m := range retained {
		cloned[i] = m.Clone()
	}

	response := envelope.StoredMessagesResponse{Messages: cloned}
	payload, err := response.MarshalBinary()
	if err != nil {
		return fmt.Errorf("%w: marshaling response: %v", ErrInvalidEnvelopeBody, err)
	}

	if err := limits.ValidateProcessingBuffer(payload); err != nil {
		return fmt.Errorf("%w: outbound response body: %v", ErrInvalidEnvelopeBody, err)
	}

	err = h.outbound.Send(
		interfaces.DirectPublicKey,
		requesterPublicKey,
		envelope.Undisclosed(),
		interfaces.EncryptForDestination,
		envelope.SafStoredMessages,
		payload,
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrOutboundFailed, err)
	}

	logger.WithFields(logrus.Fields{
		"entries_returned": len(cloned),
	}).Debug("served stored messages request")

	return nil
}

// sinceMatches reports whether a stored message satisfies a request's
// since filter. A nil Since matches everything.
func sinceMatches(request envelope.StoredMessagesRequest, m envelope.StoredMessage) bool {
	if request.Since == nil {
		return true
	}
	return !m.StoredAt.Before(*request.Since)
}
