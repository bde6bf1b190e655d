package impl

import (
	"io"
	"log/slog"
	"time"

	"addressbook/config"
	"addressbook/internal/domain/entity"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxAttempts int, delay time.Duration) *config.Config {
	return &config.Config{
		Blacklist: &config.BlacklistConfig{
			Retry: config.RetryConfig{
				MaxAttempts: maxAttempts,
				Delay:       delay,
			},
		},
	}
}

func zones(postcodes ...string) []*entity.Zone {
	result := make([]*entity.Zone, 0, len(postcodes))
	for _, postcode := range postcodes {
		result = append(result, &entity.Zone{Postcode: postcode})
	}

	return result
}

func address(id int, postcode string) *entity.Address {
	return &entity.Address{
		ID:       id,
		Building: "Flat 1",
		Street:   "High Street",
		Town:     "Reading",
		Postcode: postcode,
	}
}
