package zone

import (
	"context"

	"addressbook/internal/domain/entity"
	"addressbook/internal/domain/service"
)

// staticZoneClient serves a fixed blacklist from configuration
type staticZoneClient struct {
	postcodes []string
}

// NewStaticZoneClient creates a zone client that always returns postcodes
func NewStaticZoneClient(postcodes []string) service.ZoneClient {
	return &staticZoneClient{postcodes: postcodes}
}

// GetAllZones returns the configured blacklist
func (c *staticZoneClient) GetAllZones(ctx context.Context) ([]*entity.Zone, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	zones := make([]*entity.Zone, 0, len(c.postcodes))
	for _, postcode := range c.postcodes {
		zones = append(zones, &entity.Zone{Postcode: postcode})
	}

	return zones, nil
}
