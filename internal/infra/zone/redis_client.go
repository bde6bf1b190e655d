package zone

import (
	"context"
	"log/slog"

	"addressbook/internal/domain/entity"
	"addressbook/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// redisZoneClient reads the blacklist from a Redis set of postcodes
type redisZoneClient struct {
	client redis.UniversalClient
	key    string
	logger *slog.Logger
}

// NewRedisZoneClient creates a zone client reading the members of the set at key
func NewRedisZoneClient(client redis.UniversalClient, key string, logger *slog.Logger) service.ZoneClient {
	return &redisZoneClient{
		client: client,
		key:    key,
		logger: logger,
	}
}

// GetAllZones fetches the current blacklist
func (c *redisZoneClient) GetAllZones(ctx context.Context) ([]*entity.Zone, error) {
	members, err := c.client.SMembers(ctx, c.key).Result()
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.WithStack(ctx.Err())
		}

		return nil, service.NewTransientZoneError(err, "SMEMBERS %s", c.key)
	}

	zones := make([]*entity.Zone, 0, len(members))
	for _, member := range members {
		zones = append(zones, &entity.Zone{Postcode: member})
	}

	c.logger.Debug("Fetched blacklisted zones",
		slog.String("source", "redis"),
		slog.Int("count", len(zones)),
	)

	return zones, nil
}
