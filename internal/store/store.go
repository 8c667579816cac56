// Package store persists Game snapshots in Redis: a TTL'd key per
// game plus an index set of live game IDs, per spec.md §4.6. TTL is
// refreshed on every save so an active game never expires mid-play,
// and CleanupInactive sweeps the index against actual key presence so
// the index never drifts from what Redis actually still holds.
package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"monopoly-backend/internal/apperr"
	"monopoly-backend/internal/gamestate"
	"monopoly-backend/internal/logger"
)

// TTL is how long an untouched game snapshot survives in Redis before
// expiring, per spec.md §4.6.
const TTL = 7200 * time.Second

const keyPrefix = "monopoly:game"
const indexKey = "monopoly:game:index"

// Store is the narrow persistence contract the delivery layer
// depends on, kept interface-shaped the way the teacher's repository
// layer is, so it can be faked in tests without a real Redis.
type Store interface {
	Save(ctx context.Context, g *gamestate.Game) error
	Load(ctx context.Context, id string) (*gamestate.Game, error)
	Delete(ctx context.Context, id string) error
	Exists(ctx context.Context, id string) (bool, error)
	AllIDs(ctx context.Context) ([]string, error)
	CleanupInactive(ctx context.Context) (int, error)
}

// RedisStore is the Redis-backed Store implementation.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore wraps an existing Redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func gameKey(id string) string {
	return keyPrefix + ":" + id
}

// Save serializes g and writes it with a refreshed TTL, adding its ID
// to the index set.
func (s *RedisStore) Save(ctx context.Context, g *gamestate.Game) error {
	data, err := json.Marshal(g)
	if err != nil {
		return apperr.Fatal("failed to marshal game snapshot", err)
	}
	pipe := s.client.TxPipeline()
	pipe.Set(ctx, gameKey(g.ID), data, TTL)
	pipe.SAdd(ctx, indexKey, g.ID)
	pipe.Expire(ctx, indexKey, TTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperr.Transient("failed to save game to store", err)
	}
	return nil
}

// Load fetches and deserializes a game snapshot by ID.
func (s *RedisStore) Load(ctx context.Context, id string) (*gamestate.Game, error) {
	data, err := s.client.Get(ctx, gameKey(id)).Bytes()
	if err == redis.Nil {
		return nil, apperr.NotFound("game", id)
	}
	if err != nil {
		return nil, apperr.Transient("failed to load game from store", err)
	}
	var g gamestate.Game
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, apperr.Fatal("failed to unmarshal game snapshot", err)
	}
	return &g, nil
}

// Delete removes a game's key and its index membership.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, gameKey(id))
	pipe.SRem(ctx, indexKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return apperr.Transient("failed to delete game from store", err)
	}
	return nil
}

// Exists reports whether a game key is currently present.
func (s *RedisStore) Exists(ctx context.Context, id string) (bool, error) {
	n, err := s.client.Exists(ctx, gameKey(id)).Result()
	if err != nil {
		return false, apperr.Transient("failed to check game existence", err)
	}
	return n > 0, nil
}

// AllIDs returns every game ID currently in the index set, whether or
// not the underlying key has since expired.
func (s *RedisStore) AllIDs(ctx context.Context) ([]string, error) {
	ids, err := s.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, apperr.Transient("failed to list games", err)
	}
	return ids, nil
}

// CleanupInactive removes index entries whose backing key has expired
// from Redis, returning how many were pruned. Intended to run
// periodically from cmd/server's background sweep.
func (s *RedisStore) CleanupInactive(ctx context.Context) (int, error) {
	ids, err := s.AllIDs(ctx)
	if err != nil {
		return 0, err
	}
	pruned := 0
	for _, id := range ids {
		exists, err := s.Exists(ctx, id)
		if err != nil {
			logger.Warn("cleanup: failed to check game existence", zap.String("game_id", id), zap.Error(err))
			continue
		}
		if exists {
			continue
		}
		if err := s.client.SRem(ctx, indexKey, id).Err(); err != nil {
			logger.Warn("cleanup: failed to prune stale index entry", zap.String("game_id", id), zap.Error(err))
			continue
		}
		pruned++
	}
	return pruned, nil
}
