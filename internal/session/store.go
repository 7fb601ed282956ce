package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// ErrUnavailable is returned when no Redis client is configured.
var ErrUnavailable = errors.New("session store unavailable")

// Store keeps State as JSON under session:<userID>.
type Store struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewStore accepts a nil client; every call then returns ErrUnavailable.
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	return &Store{redis: client, ttl: ttl}
}

func stateKey(userID int64) string {
	return fmt.Sprintf("session:%d", userID)
}

// Load returns the stored state, or an empty one for a fresh login.
func (s *Store) Load(ctx context.Context, userID int64) (*State, error) {
	if s.redis == nil {
		return nil, ErrUnavailable
	}

	data, err := s.redis.Get(ctx, stateKey(userID)).Bytes()
	if err == redis.Nil {
		return &State{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	return &state, nil
}

func (s *Store) Save(ctx context.Context, userID int64, state *State) error {
	if s.redis == nil {
		return ErrUnavailable
	}

	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.redis.Set(ctx, stateKey(userID), data, s.ttl).Err()
}

func (s *Store) Clear(ctx context.Context, userID int64) error {
	if s.redis == nil {
		return ErrUnavailable
	}
	return s.redis.Del(ctx, stateKey(userID)).Err()
}

// Revocations records logged-out token ids until they would have expired.
type Revocations struct {
	redis *redis.Client
}

func NewRevocations(client *redis.Client) *Revocations {
	return &Revocations{redis: client}
}

func revokedKey(jti string) string {
	return "blacklist:" + jti
}

// Revoke is a no-op without Redis.
func (r *Revocations) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if r.redis == nil || ttl <= 0 {
		return nil
	}
	return r.redis.Set(ctx, revokedKey(jti), "1", ttl).Err()
}

// IsRevoked reports false without Redis.
func (r *Revocations) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if r.redis == nil {
		return false, nil
	}
	n, err := r.redis.Exists(ctx, revokedKey(jti)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
