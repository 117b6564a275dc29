package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/martin-core-poc/agent/internal/agent/model"
	errx "github.com/martin-core-poc/agent/internal/core/error"
	logx "github.com/martin-core-poc/agent/pkg/logger"
)

// RedisSessionArchive persists flattened session turns in Redis lists, one
// list per session, with a TTL refreshed on every append.
type RedisSessionArchive struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewRedisSessionArchive(rdb redis.Cmdable, ttl time.Duration) *RedisSessionArchive {
	return &RedisSessionArchive{rdb: rdb, ttl: ttl}
}

func (r *RedisSessionArchive) sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s:turns", sessionID)
}

func (r *RedisSessionArchive) AppendTurn(ctx context.Context, sessionID string, turn model.ArchivedTurn) error {
	b, err := json.Marshal(turn)
	if err != nil {
		logx.Error().Err(err).Str("sessionID", sessionID).Msg("failed to marshal turn")
		return fmt.Errorf("marshal turn: %w", err)
	}
	key := r.sessionKey(sessionID)

	// append turn
	if err := r.rdb.RPush(ctx, key, b).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to push turn to redis")
		return errx.WrapRedis(err)
	}
	// extend TTL on touch
	if r.ttl > 0 {
		if ok, err := r.rdb.Expire(ctx, key, r.ttl).Result(); err != nil {
			logx.Error().Err(err).Str("key", key).Msg("failed to set expire")
			return errx.WrapRedis(err)
		} else if !ok {
			logx.Warn().Str("key", key).Dur("ttl", r.ttl).Msg("failed to set TTL on session key")
		}
	}
	return nil
}

func (r *RedisSessionArchive) LoadTurns(ctx context.Context, sessionID string) ([]model.ArchivedTurn, error) {
	key := r.sessionKey(sessionID)

	rows, err := r.rdb.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		if err == redis.Nil {
			return []model.ArchivedTurn{}, nil
		}
		logx.Error().Err(err).Str("key", key).Msg("failed to load session turns from redis")
		return nil, errx.WrapRedis(err)
	}

	turns := make([]model.ArchivedTurn, 0, len(rows))
	for i, s := range rows {
		var t model.ArchivedTurn
		if err := json.Unmarshal([]byte(s), &t); err != nil {
			logx.Error().Err(err).Str("sessionID", sessionID).Int("index", i).Msg("failed to unmarshal turn")
			return nil, fmt.Errorf("unmarshal turn at index %d: %w", i, err)
		}
		turns = append(turns, t)
	}
	return turns, nil
}

func (r *RedisSessionArchive) Clear(ctx context.Context, sessionID string) error {
	key := r.sessionKey(sessionID)
	if err := r.rdb.Del(ctx, key).Err(); err != nil {
		logx.Error().Err(err).Str("key", key).Msg("failed to delete session turns from redis")
		return errx.WrapRedis(err)
	}
	return nil
}

func (r *RedisSessionArchive) TurnCount(ctx context.Context, sessionID string) (int, error) {
	key := r.sessionKey(sessionID)
	n, err := r.rdb.LLen(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		logx.Error().Err(err).Str("key", key).Msg("failed to get turn count from redis")
		return 0, errx.WrapRedis(err)
	}
	return int(n), nil
}

var _ model.SessionArchive = (*RedisSessionArchive)(nil)
