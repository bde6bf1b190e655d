package zone

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"gocloud.dev/blob"
)

// ReplaceRedisZones atomically replaces the set at key with postcodes
func ReplaceRedisZones(ctx context.Context, client redis.UniversalClient, key string, postcodes []string) error {
	_, err := client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		if len(postcodes) > 0 {
			members := make([]any, 0, len(postcodes))
			for _, postcode := range postcodes {
				members = append(members, postcode)
			}
			pipe.SAdd(ctx, key, members...)
		}

		return nil
	})

	return errors.Wrapf(err, "replace zones at %s", key)
}

// WriteBlobZones writes postcodes to key as a zone document
func WriteBlobZones(ctx context.Context, bucket *blob.Bucket, key string, postcodes []string) error {
	data, err := encodeZones(postcodes)
	if err != nil {
		return err
	}

	err = bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: "application/json"})

	return errors.Wrapf(err, "write zone document %s", key)
}

func encodeZones(postcodes []string) ([]byte, error) {
	docs := make([]zoneDocument, 0, len(postcodes))
	for _, postcode := range postcodes {
		docs = append(docs, zoneDocument{PostCode: postcode})
	}

	data, err := json.Marshal(docs)
	if err != nil {
		return nil, errors.Wrap(err, "encode zones")
	}

	return data, nil
}
