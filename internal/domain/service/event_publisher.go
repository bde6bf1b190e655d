package service

import (
	"context"
	"time"
)

// AddressEventType names a change made to the catalog.
type AddressEventType string

const (
	AddressCreated AddressEventType = "address.created"
	AddressUpdated AddressEventType = "address.updated"
	AddressDeleted AddressEventType = "address.deleted"
)

// AddressEvent describes a committed change to a single address
type AddressEvent struct {
	RequestID  string           `json:"request_id,omitempty"` // For distributed tracing
	Type       AddressEventType `json:"type"`
	AddressID  int              `json:"address_id"`
	Postcode   string           `json:"postcode,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAddressEvent publishes a catalog change event
	PublishAddressEvent(ctx context.Context, event *AddressEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
