package zone

import (
	"context"
	"testing"

	"addressbook/config"
	"addressbook/internal/domain/constants"
	"addressbook/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newClientParams(t *testing.T, blacklist *config.BlacklistConfig) ClientParams {
	t.Helper()

	return ClientParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{Blacklist: blacklist},
		Logger: newDiscardLogger(),
	}
}

func TestNewZoneClient_DefaultsToStatic(t *testing.T) {
	client, err := NewZoneClient(newClientParams(t, nil))
	require.NoError(t, err)

	zones, err := client.GetAllZones(context.Background())
	require.NoError(t, err)
	assert.Empty(t, zones)
}

func TestNewZoneClient_Static(t *testing.T) {
	client, err := NewZoneClient(newClientParams(t, &config.BlacklistConfig{
		Provider: constants.ZoneProviderStatic,
		Static:   &config.ZoneStaticConfig{Postcodes: []string{"M17 1BR"}},
	}))
	require.NoError(t, err)

	zones, err := client.GetAllZones(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []*entity.Zone{{Postcode: "M17 1BR"}}, zones)
}

func TestNewZoneClient_HTTPRequiresBaseURL(t *testing.T) {
	_, err := NewZoneClient(newClientParams(t, &config.BlacklistConfig{
		Provider: constants.ZoneProviderHTTP,
	}))
	require.Error(t, err)
}

func TestNewZoneClient_RedisRequiresAddr(t *testing.T) {
	_, err := NewZoneClient(newClientParams(t, &config.BlacklistConfig{
		Provider: constants.ZoneProviderRedis,
		Redis:    &config.ZoneRedisConfig{},
	}))
	require.Error(t, err)
}

func TestNewZoneClient_Blob(t *testing.T) {
	params := newClientParams(t, &config.BlacklistConfig{
		Provider: constants.ZoneProviderBlob,
		Blob:     &config.ZoneBlobConfig{URL: "mem://", Key: "zones.json"},
	})

	client, err := NewZoneClient(params)
	require.NoError(t, err)
	assert.NotNil(t, client)

	lc, ok := params.Lc.(*fxtest.Lifecycle)
	require.True(t, ok)
	lc.RequireStart().RequireStop()
}

func TestNewZoneClient_UnknownProvider(t *testing.T) {
	_, err := NewZoneClient(newClientParams(t, &config.BlacklistConfig{Provider: "ldap"}))
	require.EqualError(t, err, "unknown blacklist provider: ldap")
}

func TestStaticZoneClient_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStaticZoneClient([]string{"M17 1BR"}).GetAllZones(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
