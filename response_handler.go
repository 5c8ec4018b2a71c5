package storeforward

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"

	"github.com/opd-ai/storeforward/envelope"
	"github.com/opd-ai/storeforward/interfaces"
	"github.com/opd-ai/storeforward/limits"
)

// defaultResponseConcurrency bounds how many entries from a single
// SafStoredMessages response are decrypted and verified at once. A
// malicious relay could otherwise force an unbounded amount of ECDH and
// signature-verification work with one maximal response.
const defaultResponseConcurrency = 16

// ResponseHandler processes a received SafStoredMessages batch: each
// contained StoredMessage is independently verified and decrypted, and
// successes are forwarded downstream as if they had just arrived directly.
type ResponseHandler struct {
	identity      interfaces.NodeIdentity
	peerDirectory interfaces.PeerDirectory
	downstream    interfaces.DownstreamStage
	concurrency   *semaphore.Weighted
}

// NewResponseHandler builds a ResponseHandler with the default per-response
// concurrency bound.
func NewResponseHandler(identity interfaces.NodeIdentity, peerDirectory interfaces.PeerDirectory, downstream interfaces.DownstreamStage) *ResponseHandler {
	return NewResponseHandlerWithConcurrency(identity, peerDirectory, downstream, defaultResponseConcurrency)
}

// NewResponseHandlerWithConcurrency builds a ResponseHandler whose per-entry
// fan-out never exceeds maxConcurrent simultaneous decrypt/verify
// operations.
func NewResponseHandlerWithConcurrency(identity interfaces.NodeIdentity, peerDirectory interfaces.PeerDirectory, downstream interfaces.DownstreamStage, maxConcurrent int64) *ResponseHandler {
	return &ResponseHandler{
		identity:      identity,
		peerDirectory: peerDirectory,
		downstream:    downstream,
		concurrency:   semaphore.NewWeighted(maxConcurrent),
	}
}

// Handle processes a decrypted SafStoredMessages envelope. It never returns
// an error for per-entry failures; only a malformed outer response body
// surfaces to the caller.
func (h *ResponseHandler) Handle(ctx context.Context, message *envelope.DecryptedDhtMessage) error {
	logger := logrus.WithFields(logrus.Fields{
		"function": "ResponseHandler.Handle",
		"package":  "storeforward",
	})

	if err := limits.ValidateProcessingBuffer(message.Message.Body); err != nil {
		return fmt.Errorf("%w: response body: %v", ErrInvalidEnvelopeBody, err)
	}

	response, err := envelope.UnmarshalStoredMessagesResponse(message.Message.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEnvelopeBody, err)
	}

	relay := message.SourcePeer

	var wg sync.WaitGroup
	for _, stored := range response.Messages {
		stored := stored

		wg.Add(1)
		go func() {
			defer wg.Done()

			// Acquiring the semaphore is the concrete stand-in for
			// submitting to a bounded blocking worker pool: at most the
			// handler's configured bound (defaultResponseConcurrency unless
			// set via NewResponseHandlerWithConcurrency) of these goroutines
			// run the CPU-bound crypto below at any moment, regardless of
			// batch size.
			if err := h.concurrency.Acquire(ctx, 1); err != nil {
				return
			}
			defer h.concurrency.Release(1)

			decrypted, procErr := h.processEntry(stored)
			h.reportEntry(ctx, relay, decrypted, procErr, logger)
		}()
	}
	wg.Wait()

	return nil
}

// processEntry runs the per-entry verification pipeline: size bound,
// destination check, origin-identity consistency, signature check,
// decryption, and peer lookup, in that order, short-circuiting on the
// first failure.
func (h *ResponseHandler) processEntry(stored envelope.StoredMessage) (*envelope.DecryptedDhtMessage, error) {
	selfPublicKey := h.identity.PublicKey()
	selfNodeID := h.identity.NodeID()

	if err := limits.ValidateStorageMessage(stored.EncryptedBody); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEnvelopeBody, err)
	}

	if !DestinationMatches(stored.DhtHeader.Destination, selfPublicKey, selfNodeID) {
		return nil, ErrInvalidDestination
	}

	if stored.CommsHeader.MessagePublicKey != stored.DhtHeader.OriginPublicKey {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, envelope.ErrOriginIdentityMismatch)
	}

	verified, err := VerifyOriginSignature(stored.EncryptedBody, stored.DhtHeader.OriginSignature, stored.DhtHeader.OriginSigningPublicKey)
	if err != nil || !verified {
		return nil, ErrInvalidSignature
	}

	plaintext, err := DecryptStoredBody(stored.EncryptedBody, stored.DhtHeader.OriginPublicKey, h.identity.SecretKey())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryptionFailed, err)
	}

	originNodeID, found := h.peerDirectory.FindByPublicKey(stored.DhtHeader.OriginPublicKey)
	if !found {
		return nil, ErrPeerNotFound
	}

	origin := envelope.PeerIdentity{NodeID: originNodeID, PublicKey: stored.DhtHeader.OriginPublicKey}
	decrypted := envelope.Succeeded(origin, stored.CommsHeader, stored.DhtHeader, &envelope.Message{Body: plaintext})
	return decrypted, nil
}

// reportEntry classifies a processed entry's outcome and either forwards it
// downstream or logs its failure at the severity the failure kind calls
// for, per the error taxonomy's propagation policy.
func (h *ResponseHandler) reportEntry(ctx context.Context, relay envelope.PeerIdentity, decrypted *envelope.DecryptedDhtMessage, procErr error, logger *logrus.Entry) {
	if procErr == nil {
		if err := h.downstream.Handle(ctx, decrypted); err != nil {
			logger.WithFields(logrus.Fields{
				"error": err.Error(),
			}).Warn("downstream stage rejected forwarded stored message")
		}
		return
	}

	if errors.Is(procErr, ErrDecryptionFailed) || errors.Is(procErr, ErrPeerNotFound) {
		logger.WithFields(logrus.Fields{
			"reason": procErr.Error(),
		}).Debug("dropping stored message entry: expected, non-punitive failure")
		return
	}

	logger.WithFields(logrus.Fields{
		"security":      true,
		"relay_node_id": fmt.Sprintf("%x", relay.NodeID[:8]),
		"reason":        procErr.Error(),
	}).Warn("dropping stored message entry: possible relay or origin misbehaviour")
}
