package redis

import (
	// Go Internal Packages
	"context"
	"encoding/json"
	"fmt"

	// Local Packages
	errors "fraud-dash/errors"
	models "fraud-dash/models"

	// External Packages
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type DeadLetterQueue struct {
	client *redis.Client
	logger *zap.Logger
	prefix string
}

func NewDeadLetterQueue(client *redis.Client, logger *zap.Logger, prefix string) *DeadLetterQueue {
	return &DeadLetterQueue{client: client, logger: logger, prefix: prefix}
}

// Key is the redis key a record is stored under: "{prefix}:{topic}:{record key}"
func (r *DeadLetterQueue) Key(record models.Record) string {
	return fmt.Sprintf("%s:%s:%s", r.prefix, record.Topic, record.Key)
}

// Send stores all failed records into Redis. It only fails when no record could be stored.
func (r *DeadLetterQueue) Send(ctx context.Context, records []models.Record) error {
	if len(records) == 0 {
		return nil
	}

	successCount := 0
	for _, record := range records {
		jsonData, err := json.Marshal(record)
		if err != nil {
			r.logger.Error("failed to marshal record", zap.Error(err))
			continue
		}

		key := r.Key(record)
		err = r.client.Set(ctx, key, jsonData, 0).Err()
		if err != nil {
			r.logger.Error("failed to store record", zap.String("key", key), zap.Error(err))
			continue
		}
		successCount++
	}

	if successCount == 0 {
		return errors.E(errors.Unavailable, fmt.Sprintf("dead-lettering %d records failed", len(records)), nil)
	}
	r.logger.Info("successfully sent records", zap.Int("count", successCount))
	return nil
}
