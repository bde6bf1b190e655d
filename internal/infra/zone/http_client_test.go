package zone

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"addressbook/internal/domain/entity"
	"addressbook/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPZoneClient_GetAllZones(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/blacklist/zones", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"postCode":"M17 1BR"},{"postCode":"rg6 1ps"}]`))
	}))
	defer server.Close()

	client := NewHTTPZoneClient(server.URL, "/blacklist/zones", time.Second, newDiscardLogger())

	zones, err := client.GetAllZones(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []*entity.Zone{{Postcode: "M17 1BR"}, {Postcode: "rg6 1ps"}}, zones)
}

func TestHTTPZoneClient_DefaultPath(t *testing.T) {
	var gotPath atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath.Store(r.URL.Path)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewHTTPZoneClient(server.URL, "", time.Second, newDiscardLogger())

	zones, err := client.GetAllZones(context.Background())
	require.NoError(t, err)
	assert.Empty(t, zones)
	assert.Equal(t, "/zones", gotPath.Load())
}

func TestHTTPZoneClient_ServerErrorIsTransient(t *testing.T) {
	for _, status := range []int{
		http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout,
	} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(status)
			}))
			defer server.Close()

			client := NewHTTPZoneClient(server.URL, "/zones", time.Second, newDiscardLogger())

			_, err := client.GetAllZones(context.Background())
			require.ErrorIs(t, err, service.ErrZoneLookupTransient)
		})
	}
}

func TestHTTPZoneClient_ClientErrorIsPermanent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewHTTPZoneClient(server.URL, "/zones", time.Second, newDiscardLogger())

	_, err := client.GetAllZones(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrZoneLookupTransient)
}

func TestHTTPZoneClient_MalformedBodyIsPermanent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"zones":`))
	}))
	defer server.Close()

	client := NewHTTPZoneClient(server.URL, "/zones", time.Second, newDiscardLogger())

	_, err := client.GetAllZones(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrZoneLookupTransient)
}

func TestHTTPZoneClient_ConnectionRefusedIsTransient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewHTTPZoneClient(url, "/zones", time.Second, newDiscardLogger())

	_, err := client.GetAllZones(context.Background())
	require.ErrorIs(t, err, service.ErrZoneLookupTransient)
}

func TestHTTPZoneClient_CancelAbortsRequest(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	defer server.Close()
	defer close(release)

	client := NewHTTPZoneClient(server.URL, "/zones", 0, newDiscardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel)

	_, err := client.GetAllZones(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, service.ErrZoneLookupTransient)
}
