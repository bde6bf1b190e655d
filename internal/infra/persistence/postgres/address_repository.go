// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"addressbook/internal/domain/entity"
	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/domain/repository"
	"addressbook/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// addressRepository implements the domain.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{
		db: db,
	}
}

// FindAllAddresses retrieves every address ordered by ID.
func (repo *addressRepository) FindAllAddresses(ctx context.Context) ([]*entity.Address, error) {
	var addressModels []*model.AddressModel

	if err := repo.db.WithContext(ctx).Order("id").Find(&addressModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find addresses")
	}

	return toAddressDomains(addressModels), nil
}

// FindAddressByID retrieves an address by its unique ID.
func (repo *addressRepository) FindAddressByID(ctx context.Context, id int) (*entity.Address, error) {
	var addressM model.AddressModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&addressM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find address by ID")
	}

	return toAddressDomain(&addressM), nil
}

// FindAddressesByPostcode retrieves the addresses with the given postcode, ignoring case.
func (repo *addressRepository) FindAddressesByPostcode(ctx context.Context, postcode string) ([]*entity.Address, error) {
	var addressModels []*model.AddressModel

	err := repo.db.WithContext(ctx).
		Where("LOWER(postcode) = LOWER(?)", postcode).
		Order("id").
		Find(&addressModels).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find addresses by postcode")
	}

	return toAddressDomains(addressModels), nil
}

// ExistsAddressByID reports whether an address with the given ID exists.
func (repo *addressRepository) ExistsAddressByID(ctx context.Context, id int) (bool, error) {
	var count int64

	err := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check address existence")
	}

	return count > 0, nil
}

// CreateAddress persists a new address; the database assigns its ID.
func (repo *addressRepository) CreateAddress(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)
	addressM.ID = 0

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required address information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	// Update the entity with generated values
	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// UpdateAddress overwrites the mutable columns of an existing address.
func (repo *addressRepository) UpdateAddress(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	result := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("id = ?", addressM.ID).
		Select("building", "street", "town", "postcode", "updated_at").
		Updates(addressM)
	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required address information")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update address")
	}

	// If no rows were affected, it means the address was not found.
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// DeleteAddress removes an address by its ID.
func (repo *addressRepository) DeleteAddress(ctx context.Context, id int) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AddressModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete address")
	}

	// If no rows were affected, it means the address was not found.
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAddressDomain converts a GORM AddressModel to a domain Address entity.
func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:        data.ID,
		Building:  data.Building,
		Street:    data.Street,
		Town:      data.Town,
		Postcode:  data.Postcode,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toAddressDomains(data []*model.AddressModel) []*entity.Address {
	addresses := make([]*entity.Address, 0, len(data))
	for _, addressM := range data {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return addresses
}

// fromAddressDomain converts a domain Address entity to a GORM AddressModel.
func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		ID:        data.ID,
		Building:  data.Building,
		Street:    data.Street,
		Town:      data.Town,
		Postcode:  data.Postcode,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
