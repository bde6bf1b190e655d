package zone

import (
	"context"
	"log/slog"

	"addressbook/internal/domain/entity"
	"addressbook/internal/domain/service"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Bucket drivers selectable by URL scheme
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

// blobZoneClient reads the blacklist from a JSON document stored in a bucket
type blobZoneClient struct {
	bucket *blob.Bucket
	key    string
	logger *slog.Logger
}

// OpenBucket opens the bucket at url (file://, mem:// or gs://)
func OpenBucket(ctx context.Context, url string) (*blob.Bucket, error) {
	bucket, err := blob.OpenBucket(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", url)
	}

	return bucket, nil
}

// NewBlobZoneClient creates a zone client reading the document at key.
// The document has the same shape as the HTTP source's response body.
func NewBlobZoneClient(bucket *blob.Bucket, key string, logger *slog.Logger) service.ZoneClient {
	return &blobZoneClient{
		bucket: bucket,
		key:    key,
		logger: logger,
	}
}

// GetAllZones fetches the current blacklist
func (c *blobZoneClient) GetAllZones(ctx context.Context) ([]*entity.Zone, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	data, err := c.bucket.ReadAll(ctx, c.key)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.WithStack(ctx.Err())
		}

		switch gcerrors.Code(err) {
		case gcerrors.NotFound, gcerrors.PermissionDenied, gcerrors.InvalidArgument:
			return nil, errors.Wrapf(err, "read zone document %s", c.key)
		default:
			return nil, service.NewTransientZoneError(err, "read zone document %s", c.key)
		}
	}

	zones, err := decodeZones(data)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("Fetched blacklisted zones",
		slog.String("source", "blob"),
		slog.Int("count", len(zones)),
	)

	return zones, nil
}
