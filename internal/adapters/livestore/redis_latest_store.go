package livestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"travel-time-service/internal/domain"
	"travel-time-service/internal/ports"
)

// Redis-backed implementation of the LatestStore port. Each mode and
// origin/destination pair keeps exactly one entry, overwritten on every
// collection. This is a read surface for "what was the last observed
// travel time", not a request cache.
type RedisLatestStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisLatestStore connects to redis at addr and verifies the
// connection. ttl of zero keeps entries until overwritten.
func NewRedisLatestStore(addr string, ttl time.Duration) (*RedisLatestStore, error) {
	if strings.TrimSpace(addr) == "" {
		return nil, errors.New("latest store: redis address is empty")
	}

	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("latest store: ping redis: %w", err)
	}

	return &RedisLatestStore{client: client, ttl: ttl}, nil
}

func (s *RedisLatestStore) Close() error {
	return s.client.Close()
}

func (s *RedisLatestStore) SetLatest(ctx context.Context, sample domain.Sample) error {
	if sample.Origin == "" || sample.Destination == "" {
		return errors.New("set latest: sample origin and destination must be non-empty")
	}

	payload, err := json.Marshal(sample)
	if err != nil {
		return fmt.Errorf("set latest: marshal sample: %w", err)
	}

	key := latestKey(sample.Mode, sample.Origin, sample.Destination)
	if err := s.client.Set(ctx, key, payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("set latest %q: %w", key, err)
	}

	return nil
}

// Return the last stored sample for the pair. The origin and
// destination must match the stored sample's address form.
func (s *RedisLatestStore) GetLatest(ctx context.Context, mode domain.Mode, origin, destination string) (domain.Sample, error) {
	key := latestKey(mode, origin, destination)

	payload, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Sample{}, fmt.Errorf("get latest %q: %w", key, ports.ErrSampleNotFound)
	}
	if err != nil {
		return domain.Sample{}, fmt.Errorf("get latest %q: %w", key, err)
	}

	var sample domain.Sample
	if err := json.Unmarshal(payload, &sample); err != nil {
		return domain.Sample{}, fmt.Errorf("get latest %q: unmarshal sample: %w", key, err)
	}

	return sample, nil
}

func latestKey(mode domain.Mode, origin, destination string) string {
	return fmt.Sprintf("latest:%s:%s|%s", mode, origin, destination)
}
