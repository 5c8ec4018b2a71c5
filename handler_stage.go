package storeforward

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/storeforward/envelope"
	"github.com/opd-ai/storeforward/interfaces"
)

// HandlerStage is the dispatcher at the head of the store-and-forward
// subsystem: it routes an inbound decrypted envelope to the request
// handler, the response handler, or straight through to the downstream
// stage, based on the envelope's message type. A HandlerStage carries no
// per-message state of its own, so a single instance can serve every
// inbound message.
type HandlerStage struct {
	requestHandler  *RequestHandler
	responseHandler *ResponseHandler
	downstream      interfaces.DownstreamStage
}

// NewHandlerStage wires together the request handler, response handler, and
// downstream stage that HandlerStage dispatches to.
func NewHandlerStage(requestHandler *RequestHandler, responseHandler *ResponseHandler, downstream interfaces.DownstreamStage) *HandlerStage {
	return &HandlerStage{
		requestHandler:  requestHandler,
		responseHandler: responseHandler,
		downstream:      downstream,
	}
}

// Run dispatches a single inbound envelope. A failed SAF sub-handler does
// not fall through to the downstream stage; its error is returned as-is.
func (s *HandlerStage) Run(ctx context.Context, message *envelope.DecryptedDhtMessage) error {
	if message.IsDhtMessage() && message.DecryptionFailed {
		logrus.WithFields(logrus.Fields{
			"function":     "HandlerStage.Run",
			"package":      "storeforward",
			"message_type": message.DhtHeader.MessageType.String(),
		}).Debug("dropping DHT control message that failed outer decryption")
		return nil
	}

	switch message.DhtHeader.MessageType {
	case envelope.SafRequestMessages:
		return s.requestHandler.Handle(ctx, message)
	case envelope.SafStoredMessages:
		return s.responseHandler.Handle(ctx, message)
	default:
		if err := s.downstream.Handle(ctx, message); err != nil {
			return fmt.Errorf("%w: %w", ErrDownstreamFailed, err)
		}
		return nil
	}
}
