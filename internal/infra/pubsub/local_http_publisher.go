package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"addressbook/internal/domain/service"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const localSubscription = "projects/local/subscriptions/address-events"

// localHTTPPublisher implements EventPublisher by POSTing Pub/Sub push envelopes
// to a local endpoint, for development without the Pub/Sub emulator
type localHTTPPublisher struct {
	endpoint string
	client   *resty.Client
	logger   *slog.Logger
}

// PushMessage mirrors the body Google Pub/Sub sends to push subscribers
type PushMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// NewLocalHTTPPublisher creates a new local HTTP publisher for development
func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint: endpoint,
		client: resty.New().
			SetTimeout(10*time.Second).
			SetHeader("Content-Type", "application/json"),
		logger: logger,
	}
}

// PublishAddressEvent wraps the event in a push envelope and POSTs it
func (p *localHTTPPublisher) PublishAddressEvent(ctx context.Context, event *service.AddressEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	push := PushMessage{Subscription: localSubscription}
	push.Message.Data = base64.StdEncoding.EncodeToString(data)
	push.Message.Attributes = eventAttributes(event)
	push.Message.MessageID = uuid.NewString()
	push.Message.PublishTime = time.Now().UTC().Format(time.RFC3339)

	req := p.client.R().
		SetContext(ctx).
		SetBody(push)
	if event.RequestID != "" {
		req.SetHeader("X-Request-Id", event.RequestID)
	}

	resp, err := req.Post(p.endpoint)
	if err != nil {
		return errors.WithStack(err)
	}

	if resp.IsError() {
		return errors.Errorf("push endpoint returned non-success status: %d", resp.StatusCode())
	}

	p.logger.Debug("[LocalPubSub] Address event published",
		slog.String("endpoint", p.endpoint),
		slog.String("type", string(event.Type)),
		slog.Int("address_id", event.AddressID),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (p *localHTTPPublisher) Close() error {
	return nil
}

// eventAttributes builds the message attributes used for subscription filtering and tracing
func eventAttributes(event *service.AddressEvent) map[string]string {
	attributes := map[string]string{
		"event_type": string(event.Type),
		"address_id": strconv.Itoa(event.AddressID),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
