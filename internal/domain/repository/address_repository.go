// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"addressbook/internal/domain/entity"
	"addressbook/internal/errors"
)

// ErrAddressNotFound is returned when no address matches the requested ID.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines the interface for address-related database operations.
type AddressRepository interface {
	// FindAllAddresses retrieves every address in the catalog, ordered by ID.
	FindAllAddresses(ctx context.Context) ([]*entity.Address, error)

	// FindAddressByID retrieves an address by its ID.
	// Returns ErrAddressNotFound if no such address exists.
	FindAddressByID(ctx context.Context, id int) (*entity.Address, error)

	// FindAddressesByPostcode retrieves all addresses whose postcode equals the given one, ignoring case.
	FindAddressesByPostcode(ctx context.Context, postcode string) ([]*entity.Address, error)

	// ExistsAddressByID reports whether an address with the given ID exists.
	ExistsAddressByID(ctx context.Context, id int) (bool, error)

	// CreateAddress persists a new address. The store assigns ID and timestamps on the entity.
	CreateAddress(ctx context.Context, address *entity.Address) error

	// UpdateAddress overwrites the mutable fields of an existing address.
	// Returns ErrAddressNotFound if no row was updated.
	UpdateAddress(ctx context.Context, address *entity.Address) error

	// DeleteAddress removes an address by its ID.
	// Returns ErrAddressNotFound if no row was deleted.
	DeleteAddress(ctx context.Context, id int) error
}
