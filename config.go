package storeforward

import (
	"errors"
	"time"
)

// Config holds the recognized DHT configuration keys relevant to the
// store-and-forward subsystem.
type Config struct {
	// SafNumClosestNodes is the region radius used to decide whether a
	// requester is close enough to this node to be served.
	SafNumClosestNodes int

	// SafMaxReturnedMessages caps the length of a single
	// StoredMessagesResponse.
	SafMaxReturnedMessages int

	// StoreCapacity is the maximum number of entries SafStore will retain
	// before evicting the oldest.
	StoreCapacity int

	// DefaultTTL is the configured retention period for stored messages.
	// SafStore does not read it: Insert and Deposit take the TTL as an
	// explicit argument and apply no default.
	DefaultTTL time.Duration
}

// DefaultConfig returns configuration values representative of a single
// well-behaved overlay node.
func DefaultConfig() Config {
	return Config{
		SafNumClosestNodes:     8,
		SafMaxReturnedMessages: 64,
		StoreCapacity:          10000,
		DefaultTTL:             24 * time.Hour,
	}
}

// Validate checks that every configuration key is within its documented
// positive range.
func (c Config) Validate() error {
	if c.SafNumClosestNodes <= 0 {
		return errors.New("storeforward: saf_num_closest_nodes must be positive")
	}
	if c.SafMaxReturnedMessages <= 0 {
		return errors.New("storeforward: saf_max_returned_messages must be positive")
	}
	if c.StoreCapacity <= 0 {
		return errors.New("storeforward: store_capacity must be positive")
	}
	if c.DefaultTTL <= 0 {
		return errors.New("storeforward: default_ttl must be positive")
	}
	return nil
}
