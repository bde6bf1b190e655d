package usecase

import (
	"context"

	"addressbook/internal/domain/entity"
)

// AddressInput carries the mutable fields of an address
type AddressInput struct {
	Building string `json:"building" validate:"required,max=255"`
	Street   string `json:"street" validate:"required,max=255"`
	Town     string `json:"town" validate:"required,max=255"`
	Postcode string `json:"postcode" validate:"required,max=16"`
}

// AddressUsecase defines the interface for address catalog use cases
type AddressUsecase interface {
	// ListAddresses returns every address, dropping blacklisted ones unless includeBlacklisted is set.
	ListAddresses(ctx context.Context, includeBlacklisted bool) ([]*entity.Address, error)

	// ListAddressesByPostcode returns the addresses with the given postcode, ignoring case.
	// When blacklisted addresses are excluded and the postcode is blacklisted, the result is empty.
	ListAddressesByPostcode(ctx context.Context, postcode string, includeBlacklisted bool) ([]*entity.Address, error)

	GetAddress(ctx context.Context, id int) (*entity.Address, error)
	CreateAddress(ctx context.Context, input *AddressInput) (*entity.Address, error)
	UpdateAddress(ctx context.Context, id int, input *AddressInput) (*entity.Address, error)
	DeleteAddress(ctx context.Context, id int) error
}
