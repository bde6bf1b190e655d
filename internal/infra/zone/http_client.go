package zone

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"addressbook/internal/domain/entity"
	"addressbook/internal/domain/service"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

const defaultZonesPath = "/zones"

// zoneDocument is the wire form of a zone, shared by the HTTP and blob sources
type zoneDocument struct {
	PostCode string `json:"postCode"`
}

// httpZoneClient reads the blacklist from a REST endpoint returning a JSON array of zones
type httpZoneClient struct {
	client *resty.Client
	path   string
	logger *slog.Logger
}

// NewHTTPZoneClient creates a zone client backed by resty.
// Requests are bound to the caller's context so cancellation aborts them.
func NewHTTPZoneClient(baseURL, path string, timeout time.Duration, logger *slog.Logger) service.ZoneClient {
	if path == "" {
		path = defaultZonesPath
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &httpZoneClient{
		client: client,
		path:   path,
		logger: logger,
	}
}

// GetAllZones fetches the current blacklist
func (c *httpZoneClient) GetAllZones(ctx context.Context) ([]*entity.Zone, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		Get(c.path)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.WithStack(ctx.Err())
		}

		return nil, service.NewTransientZoneError(err, "GET %s", c.path)
	}

	if isRetryableStatus(resp.StatusCode()) {
		return nil, service.NewTransientZoneError(
			errors.Errorf("zone source returned status %d", resp.StatusCode()),
			"GET %s", c.path,
		)
	}

	if resp.IsError() {
		return nil, errors.Errorf("zone source rejected request: GET %s: status %d", c.path, resp.StatusCode())
	}

	zones, err := decodeZones(resp.Body())
	if err != nil {
		return nil, err
	}

	c.logger.Debug("Fetched blacklisted zones",
		slog.String("source", "http"),
		slog.Int("count", len(zones)),
		slog.Duration("elapsed", resp.Time()),
	)

	return zones, nil
}

// isRetryableStatus reports whether the zone source answered with a status worth retrying.
func isRetryableStatus(statusCode int) bool {
	switch statusCode {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func decodeZones(data []byte) ([]*entity.Zone, error) {
	var docs []zoneDocument
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, errors.Wrap(err, "decode zones")
	}

	zones := make([]*entity.Zone, 0, len(docs))
	for _, doc := range docs {
		zones = append(zones, &entity.Zone{Postcode: doc.PostCode})
	}

	return zones, nil
}
