package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"addressbook/config"
	"addressbook/internal/domain/constants"
	"addressbook/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newPublisherParams(t *testing.T, cfg *config.PubSubConfig) PublisherParams {
	t.Helper()

	return PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{PubSub: cfg},
		Logger: newDiscardLogger(),
	}
}

func TestNewEventPublisher_NoopWhenUnconfigured(t *testing.T) {
	publisher, err := NewEventPublisher(newPublisherParams(t, nil))
	require.NoError(t, err)

	require.NoError(t, publisher.PublishAddressEvent(context.Background(), &service.AddressEvent{
		Type:      service.AddressCreated,
		AddressID: 1,
	}))
	require.NoError(t, publisher.Close())
}

func TestNewEventPublisher_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.PubSubConfig
		want string
	}{
		{
			name: "local without endpoint",
			cfg:  &config.PubSubConfig{Provider: constants.PubSubProviderLocal},
			want: "local endpoint is required for local provider",
		},
		{
			name: "google without project",
			cfg:  &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "addresses"},
			want: "project ID is required for google provider",
		},
		{
			name: "google without topic",
			cfg:  &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "catalog"},
			want: "topic ID is required for google provider",
		},
		{
			name: "unknown provider",
			cfg:  &config.PubSubConfig{Provider: "kafka"},
			want: "unknown pubsub provider: kafka",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEventPublisher(newPublisherParams(t, tt.cfg))
			require.EqualError(t, err, tt.want)
		})
	}
}

func TestLocalHTTPPublisher_PublishAddressEvent(t *testing.T) {
	received := make(chan PushMessage, 1)
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")

		var push PushMessage
		if err := json.NewDecoder(r.Body).Decode(&push); err != nil {
			w.WriteHeader(http.StatusBadRequest)

			return
		}
		received <- push
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher, err := NewEventPublisher(newPublisherParams(t, &config.PubSubConfig{
		Provider:      constants.PubSubProviderLocal,
		LocalEndpoint: server.URL,
	}))
	require.NoError(t, err)

	event := &service.AddressEvent{
		RequestID:  "req-42",
		Type:       service.AddressUpdated,
		AddressID:  42,
		Postcode:   "RG14 5BY",
		OccurredAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	require.NoError(t, publisher.PublishAddressEvent(context.Background(), event))

	push := <-received
	assert.Equal(t, "req-42", requestID)
	assert.Equal(t, localSubscription, push.Subscription)
	assert.Equal(t, "address.updated", push.Message.Attributes["event_type"])
	assert.Equal(t, "42", push.Message.Attributes["address_id"])
	assert.NotEmpty(t, push.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(push.Message.Data)
	require.NoError(t, err)

	var decoded service.AddressEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())

	err := publisher.PublishAddressEvent(context.Background(), &service.AddressEvent{Type: service.AddressDeleted, AddressID: 7})
	require.EqualError(t, err, "push endpoint returned non-success status: 500")
}
