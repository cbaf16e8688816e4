package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vyronamart/group-ledger/internal/domain/entity"
	coreport "github.com/vyronamart/group-ledger/internal/domain/port/core"
)

const (
	// ActiveGroupsKey holds the serialized active group listing
	ActiveGroupsKey = "vm:groups:active"
	// GenerationKey counts invalidations of the listing
	GenerationKey = "vm:groups:generation"
)

// cachedGroup is the wire shape of one listed group
type cachedGroup struct {
	ID          uint64     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	CreatorID   uint64     `json:"creatorId"`
	Active      bool       `json:"active"`
	RoomCode    string     `json:"roomCode"`
	MemberCount int64      `json:"memberCount"`
	CreatedAt   time.Time  `json:"createdAt"`
	ClosedAt    *time.Time `json:"closedAt,omitempty"`
}

// RedisGroupCache implements external.GroupListCache on a Redis string key
type RedisGroupCache struct {
	client *redis.Client
	ttl    time.Duration
	logger coreport.Logger
}

// NewRedisGroupCache parses redisURL, checks the connection and returns the cache
func NewRedisGroupCache(ctx context.Context, redisURL string, ttl time.Duration, logger coreport.Logger) (*RedisGroupCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	logger.Info("Redis connection established", map[string]any{
		"addr": opt.Addr,
		"db":   opt.DB,
	})
	return NewRedisGroupCacheFromClient(client, ttl, logger), nil
}

// NewRedisGroupCacheFromClient wraps an existing client
func NewRedisGroupCacheFromClient(client *redis.Client, ttl time.Duration, logger coreport.Logger) *RedisGroupCache {
	return &RedisGroupCache{client: client, ttl: ttl, logger: logger}
}

// GetActiveGroups reads the listing and the generation in one round trip.
// A missing listing is a miss, not an error.
func (c *RedisGroupCache) GetActiveGroups(ctx context.Context) ([]*entity.ShoppingGroup, int64, bool, error) {
	values, err := c.client.MGet(ctx, ActiveGroupsKey, GenerationKey).Result()
	if err != nil {
		return nil, 0, false, err
	}

	generation, err := parseGeneration(values[1])
	if err != nil {
		return nil, 0, false, err
	}

	raw, ok := values[0].(string)
	if !ok {
		return nil, generation, false, nil
	}

	groups, err := decodeGroups([]byte(raw))
	if err != nil {
		c.logger.Warn("Discarding unreadable group cache entry", map[string]any{
			"key":   ActiveGroupsKey,
			"error": err.Error(),
		})
		return nil, generation, false, nil
	}
	return groups, generation, true, nil
}

// SetActiveGroups stores the listing with the configured TTL. The write is
// skipped when the generation moved on since the caller's read.
func (c *RedisGroupCache) SetActiveGroups(ctx context.Context, groups []*entity.ShoppingGroup, generation int64) error {
	data, err := encodeGroups(groups)
	if err != nil {
		return err
	}

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, GenerationKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != generation {
			return errStaleListing
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, ActiveGroupsKey, data, c.ttl)
			return nil
		})
		return err
	}, GenerationKey)

	if errors.Is(err, errStaleListing) || errors.Is(err, redis.TxFailedErr) {
		c.logger.Debug("Skipping stale group listing", map[string]any{
			"generation": generation,
		})
		return nil
	}
	return err
}

// Invalidate advances the generation and deletes the listing atomically
func (c *RedisGroupCache) Invalidate(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, GenerationKey)
		pipe.Del(ctx, ActiveGroupsKey)
		return nil
	})
	return err
}

// Ping reports whether Redis answers
func (c *RedisGroupCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (c *RedisGroupCache) Close() error {
	return c.client.Close()
}

var errStaleListing = errors.New("group listing generation changed")

func parseGeneration(v any) (int64, error) {
	raw, ok := v.(string)
	if !ok {
		return 0, nil
	}
	generation, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", GenerationKey, err)
	}
	return generation, nil
}

func encodeGroups(groups []*entity.ShoppingGroup) ([]byte, error) {
	rows := make([]cachedGroup, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, cachedGroup{
			ID:          g.ID,
			Name:        g.Name,
			Description: g.Description,
			CreatorID:   g.CreatorID,
			Active:      g.Active,
			RoomCode:    g.RoomCode,
			MemberCount: g.MemberCount,
			CreatedAt:   g.CreatedAt,
			ClosedAt:    g.ClosedAt,
		})
	}
	return json.Marshal(rows)
}

func decodeGroups(data []byte) ([]*entity.ShoppingGroup, error) {
	var rows []cachedGroup
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, err
	}

	groups := make([]*entity.ShoppingGroup, 0, len(rows))
	for _, r := range rows {
		groups = append(groups, &entity.ShoppingGroup{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			CreatorID:   r.CreatorID,
			Active:      r.Active,
			RoomCode:    r.RoomCode,
			MemberCount: r.MemberCount,
			CreatedAt:   r.CreatedAt,
			ClosedAt:    r.ClosedAt,
		})
	}
	return groups, nil
}
