package model

import (
	"time"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
type AddressModel struct {
	ID        int    `gorm:"primaryKey;autoIncrement"`
	Building  string `gorm:"type:varchar(255);not null"`
	Street    string `gorm:"type:varchar(255);not null"`
	Town      string `gorm:"type:varchar(255);not null"`
	Postcode  string `gorm:"type:varchar(16);not null;index:idx_addresses_on_postcode"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
