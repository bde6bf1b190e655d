// Package entity contains the core business objects of the project.
package entity

import "time"

// Address is a postal address held in the catalog.
type Address struct {
	ID        int       `json:"id"`       // Assigned by the store on creation, immutable afterwards.
	Building  string    `json:"building"` // Building name or number.
	Street    string    `json:"street"`
	Town      string    `json:"town"`
	Postcode  string    `json:"postcode"` // Compared case-insensitively everywhere.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
