package rangestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"gardenmon/internal/models"
)

// Store persists user-edited range configs in redis so a dashboard session
// keeps its bands across restarts. Entries never expire; the user replaces
// them by saving new bands.
type Store struct {
	client *redis.Client
}

// NewStore returns redis-backed store.
func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

func (s *Store) key(session string) string {
	return fmt.Sprintf("gardenmon:ranges:%s", session)
}

// Save persists the bands for a session.
func (s *Store) Save(ctx context.Context, session string, ranges models.Ranges) error {
	data, err := json.Marshal(ranges)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(session), data, 0).Err()
}

// Load returns the persisted bands, or (nil, nil) when the session never
// saved any.
func (s *Store) Load(ctx context.Context, session string) (*models.Ranges, error) {
	result, err := s.client.Get(ctx, s.key(session)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var ranges models.Ranges
	if err := json.Unmarshal([]byte(result), &ranges); err != nil {
		return nil, err
	}
	return &ranges, nil
}

// Delete removes the persisted bands for a session.
func (s *Store) Delete(ctx context.Context, session string) error {
	return s.client.Del(ctx, s.key(session)).Err()
}
