package envelope

import "time"

// StoredMessagesRequest asks a neighbour for whatever it is holding on the
// requester's behalf. A nil Since means "all retained entries, regardless
// of age".
type StoredMessagesRequest struct {
	Since *time.Time
}

// StoredMessagesResponse is the ordered batch of stored messages a neighbour
// sends back in reply to a StoredMessagesRequest. Its length is bounded by
// the serving node's saf_max_returned_messages configuration.
type StoredMessagesResponse struct {
	Messages []StoredMessage
}
