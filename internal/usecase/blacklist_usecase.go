package usecase

import (
	"context"

	"addressbook/internal/domain/entity"
)

// BlacklistUsecase checks addresses against the blacklisted zones
type BlacklistUsecase interface {
	// FilterExcludingBlacklisted returns, in their original order, the addresses whose
	// postcode is not blacklisted.
	FilterExcludingBlacklisted(ctx context.Context, addresses []*entity.Address) ([]*entity.Address, error)

	// IsBlacklisted reports whether postcode matches a blacklisted zone.
	IsBlacklisted(ctx context.Context, postcode string) (bool, error)
}
