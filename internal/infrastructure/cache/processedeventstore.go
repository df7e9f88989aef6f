// Package cache holds short-lived state kept outside the database.
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/redis/go-redis/v9"
)

const (
	processedEventPrefix = "billing:event:"
	// ProcessedEventTTL outlasts the provider's retry schedule (three days).
	ProcessedEventTTL = 72 * time.Hour

	memoryEventStoreMaxKeys = 50000
)

// ProcessedEventStore remembers which webhook events were already applied.
type ProcessedEventStore interface {
	// Claim marks eventID as processed. It returns false when someone else
	// claimed it first.
	Claim(ctx context.Context, eventID string) (bool, error)
	// Release forgets a claim so a redelivery is applied again.
	Release(ctx context.Context, eventID string) error
}

// RedisProcessedEventStore claims events with SETNX.
type RedisProcessedEventStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisProcessedEventStore(client *redis.Client) *RedisProcessedEventStore {
	return &RedisProcessedEventStore{client: client, ttl: ProcessedEventTTL}
}

func (s *RedisProcessedEventStore) Claim(ctx context.Context, eventID string) (bool, error) {
	ok, err := s.client.SetNX(ctx, processedEventPrefix+eventID, 1, s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to claim event %s: %w", eventID, err)
	}
	return ok, nil
}

func (s *RedisProcessedEventStore) Release(ctx context.Context, eventID string) error {
	if err := s.client.Del(ctx, processedEventPrefix+eventID).Err(); err != nil {
		return fmt.Errorf("failed to release event %s: %w", eventID, err)
	}
	return nil
}

// MemoryProcessedEventStore is the single-instance fallback when Redis is
// disabled. Claims are lost on restart.
type MemoryProcessedEventStore struct {
	mu     sync.Mutex
	events *expirable.LRU[string, struct{}]
}

func NewMemoryProcessedEventStore(ttl time.Duration) *MemoryProcessedEventStore {
	if ttl <= 0 {
		ttl = ProcessedEventTTL
	}
	return &MemoryProcessedEventStore{
		events: expirable.NewLRU[string, struct{}](memoryEventStoreMaxKeys, nil, ttl),
	}
}

func (s *MemoryProcessedEventStore) Claim(_ context.Context, eventID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.events.Contains(eventID) {
		return false, nil
	}
	s.events.Add(eventID, struct{}{})
	return true, nil
}

func (s *MemoryProcessedEventStore) Release(_ context.Context, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events.Remove(eventID)
	return nil
}
