package service

import (
	"context"
	"fmt"

	"addressbook/internal/domain/entity"
	"addressbook/internal/errors"
)

// ErrZoneLookupTransient marks a zone lookup failure that may succeed if tried again,
// such as a dropped connection or a 5xx from the zone source.
var ErrZoneLookupTransient = errors.New("transient zone lookup failure")

// ZoneClient supplies the current set of blacklisted zones.
//
// Implementations return ErrZoneLookupTransient (wrapped) for I/O failures worth retrying,
// and the context's error when ctx is cancelled or expires while the lookup is outstanding.
// Any other error is treated as permanent.
type ZoneClient interface {
	GetAllZones(ctx context.Context) ([]*entity.Zone, error)
}

// NewTransientZoneError wraps cause so that it matches both ErrZoneLookupTransient and cause.
func NewTransientZoneError(cause error, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %w", ErrZoneLookupTransient, fmt.Sprintf(format, args...), cause)
}
