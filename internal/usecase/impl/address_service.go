package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "addressbook/internal/delivery/context"
	"addressbook/internal/domain/entity"
	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/domain/repository"
	"addressbook/internal/domain/service"
	"addressbook/internal/errors"
	"addressbook/internal/usecase"
)

type addressService struct {
	addressRepo repository.AddressRepository
	blacklist   usecase.BlacklistUsecase
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// NewAddressService creates a new address catalog service instance
func NewAddressService(
	addressRepo repository.AddressRepository,
	blacklist usecase.BlacklistUsecase,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.AddressUsecase {
	return &addressService{
		addressRepo: addressRepo,
		blacklist:   blacklist,
		publisher:   publisher,
		logger:      logger,
	}
}

func (s *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ListAddresses retrieves the catalog, optionally without blacklisted addresses
func (s *addressService) ListAddresses(ctx context.Context, includeBlacklisted bool) ([]*entity.Address, error) {
	addresses, err := s.addressRepo.FindAllAddresses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find addresses: %w", err)
	}

	if includeBlacklisted || len(addresses) == 0 {
		return addresses, nil
	}

	filtered, err := s.blacklist.FilterExcludingBlacklisted(ctx, addresses)
	if err != nil {
		return nil, s.translateBlacklistError(ctx, err)
	}

	return filtered, nil
}

// ListAddressesByPostcode retrieves the addresses for a postcode, optionally refusing blacklisted ones
func (s *addressService) ListAddressesByPostcode(ctx context.Context, postcode string, includeBlacklisted bool) ([]*entity.Address, error) {
	if !includeBlacklisted {
		blacklisted, err := s.blacklist.IsBlacklisted(ctx, postcode)
		if err != nil {
			return nil, s.translateBlacklistError(ctx, err)
		}

		if blacklisted {
			s.log(ctx).Debug("Postcode is blacklisted", slog.String("postcode", postcode))

			return []*entity.Address{}, nil
		}
	}

	addresses, err := s.addressRepo.FindAddressesByPostcode(ctx, postcode)
	if err != nil {
		return nil, fmt.Errorf("failed to find addresses by postcode: %w", err)
	}

	return addresses, nil
}

// GetAddress retrieves a single address by ID
func (s *addressService) GetAddress(ctx context.Context, id int) (*entity.Address, error) {
	address, err := s.addressRepo.FindAddressByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.ErrAddressNotFound
		}

		return nil, fmt.Errorf("failed to find address by ID: %w", err)
	}

	return address, nil
}

// CreateAddress adds a new address to the catalog; the store assigns its ID
func (s *addressService) CreateAddress(ctx context.Context, input *usecase.AddressInput) (*entity.Address, error) {
	now := time.Now()
	address := &entity.Address{
		Building:  input.Building,
		Street:    input.Street,
		Town:      input.Town,
		Postcode:  input.Postcode,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.addressRepo.CreateAddress(ctx, address); err != nil {
		return nil, fmt.Errorf("failed to create address: %w", err)
	}

	s.log(ctx).Info("Created address", slog.Int("address_id", address.ID), slog.String("postcode", address.Postcode))
	s.publish(ctx, service.AddressCreated, address)

	return address, nil
}

// UpdateAddress overwrites the fields of an existing address
func (s *addressService) UpdateAddress(ctx context.Context, id int, input *usecase.AddressInput) (*entity.Address, error) {
	address, err := s.addressRepo.FindAddressByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.ErrAddressNotFound
		}

		return nil, fmt.Errorf("failed to find address by ID: %w", err)
	}

	address.Building = input.Building
	address.Street = input.Street
	address.Town = input.Town
	address.Postcode = input.Postcode
	address.UpdatedAt = time.Now()

	if err := s.addressRepo.UpdateAddress(ctx, address); err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.ErrAddressNotFound
		}

		return nil, fmt.Errorf("failed to update address: %w", err)
	}

	s.log(ctx).Info("Updated address", slog.Int("address_id", address.ID), slog.String("postcode", address.Postcode))
	s.publish(ctx, service.AddressUpdated, address)

	return address, nil
}

// DeleteAddress removes an address from the catalog
func (s *addressService) DeleteAddress(ctx context.Context, id int) error {
	exists, err := s.addressRepo.ExistsAddressByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check address existence: %w", err)
	}

	if !exists {
		return domainerrors.ErrAddressNotFound
	}

	if err := s.addressRepo.DeleteAddress(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return domainerrors.ErrAddressNotFound
		}

		return fmt.Errorf("failed to delete address: %w", err)
	}

	s.log(ctx).Info("Deleted address", slog.Int("address_id", id))
	s.publish(ctx, service.AddressDeleted, &entity.Address{ID: id})

	return nil
}

// translateBlacklistError maps a filter failure onto the catalog's blacklist errors.
// The cause is logged and not returned.
func (s *addressService) translateBlacklistError(ctx context.Context, err error) error {
	if errors.Is(err, ErrBlacklistInterrupted) {
		s.log(ctx).Warn("Blacklist lookup interrupted", slog.Any("error", err))

		return domainerrors.ErrBlacklistInterrupted
	}

	s.log(ctx).Error("Blacklist lookup unavailable", slog.Any("error", err))

	return domainerrors.ErrBlacklistUnavailable
}

// publish emits a change event; failures are logged and never fail the write
func (s *addressService) publish(ctx context.Context, eventType service.AddressEventType, address *entity.Address) {
	if s.publisher == nil {
		return
	}

	event := &service.AddressEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		AddressID:  address.ID,
		Postcode:   address.Postcode,
		OccurredAt: time.Now(),
	}

	if err := s.publisher.PublishAddressEvent(ctx, event); err != nil {
		s.log(ctx).Warn("Failed to publish address event",
			slog.String("type", string(eventType)),
			slog.Int("address_id", address.ID),
			slog.Any("error", err),
		)
	}
}
