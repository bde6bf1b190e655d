package zone

import (
	"context"
	"testing"

	"addressbook/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postcodesOf(t *testing.T, zones []*entity.Zone) []string {
	t.Helper()

	out := make([]string, 0, len(zones))
	for _, zone := range zones {
		out = append(out, zone.Postcode)
	}

	return out
}

func TestReplaceRedisZones(t *testing.T) {
	mr, client := setupTestRedis(t)
	_, err := mr.SAdd("blacklist:zones", "OLD 1AA")
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, ReplaceRedisZones(ctx, client, "blacklist:zones", []string{"M17 1BR", "RG6 1PS"}))

	zones, err := NewRedisZoneClient(client, "blacklist:zones", newDiscardLogger()).GetAllZones(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"M17 1BR", "RG6 1PS"}, postcodesOf(t, zones))

	require.NoError(t, ReplaceRedisZones(ctx, client, "blacklist:zones", nil))
	assert.False(t, mr.Exists("blacklist:zones"))
}

func TestWriteBlobZones(t *testing.T) {
	bucket := newTestBucket(t)

	ctx := context.Background()
	require.NoError(t, WriteBlobZones(ctx, bucket, "zones.json", []string{"M17 1BR"}))

	data, err := bucket.ReadAll(ctx, "zones.json")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"postCode":"M17 1BR"}]`, string(data))

	zones, err := NewBlobZoneClient(bucket, "zones.json", newDiscardLogger()).GetAllZones(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"M17 1BR"}, postcodesOf(t, zones))
}
