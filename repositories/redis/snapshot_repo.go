package redis

import (
	// Go Internal Packages
	"context"
	"encoding/json"
	"fmt"

	// Local Packages
	models "fraud-dash/models"

	// External Packages
	"github.com/redis/go-redis/v9"
)

// SnapshotStore keeps the last visible feed collection under a single key.
type SnapshotStore struct {
	client *redis.Client
	key    string
}

func NewSnapshotStore(client *redis.Client, key string) *SnapshotStore {
	return &SnapshotStore{client: client, key: key}
}

// Save overwrites the stored collection
func (s *SnapshotStore) Save(ctx context.Context, records []models.Transaction) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to marshal feed snapshot: %w", err)
	}
	return s.client.Set(ctx, s.key, data, 0).Err()
}

// Load returns the stored collection, nil when nothing was saved yet
func (s *SnapshotStore) Load(ctx context.Context) ([]models.Transaction, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var records []models.Transaction
	if err = json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal feed snapshot: %w", err)
	}
	return records, nil
}
