// Package limits provides centralized message size constants and validation
// functions for the store-and-forward handler. These bounds are enforced at
// every boundary where attacker-controlled data enters the pipeline: the
// encrypted body of a stored message, the serialized request/response
// envelopes, and the handler's own processing buffers.
//
// # Message Size Hierarchy
//
//   - MaxPlaintextMessage (1372 bytes): the maximum size of a decrypted
//     message body once CryptoOps has removed the encryption layer.
//
//   - MaxEncryptedMessage: the maximum size of an encrypted body as stored
//     in a StoredMessage, equal to MaxPlaintextMessage plus EncryptionOverhead.
//
//   - MaxStorageMessage (16384 bytes): the maximum encrypted-body size
//     ResponseHandler accepts for a single received stored entry. SafStore
//     itself does not check entry sizes on insertion.
//
//   - MaxProcessingBuffer (1MB): the absolute ceiling for any buffer read
//     off the wire before it has been size-checked, guarding against memory
//     exhaustion from a malformed or hostile StoredMessagesResponse.
//
// # Validation Functions
//
//	err := limits.ValidateEncryptedMessage(storedMessage.EncryptedBody)
//	if err != nil {
//	    // ErrMessageEmpty or ErrMessageTooLarge
//	}
//
// For custom size limits, such as bounding a single StoredMessagesRequest
// by saf_max_returned_messages, use the generic form:
//
//	err := limits.ValidateMessageSize(data, customMax)
//
// # Error Types
//
//   - ErrMessageEmpty: an empty or nil message was provided.
//   - ErrMessageTooLarge: the message exceeds the limit being checked. The
//     returned error wraps it with the actual size and the limit; match it
//     with errors.Is.
package limits
