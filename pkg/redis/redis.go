package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Iqbalalh/ypkai-sipusaka-next-ts-sub000/config"
)

// ErrSessionNotFound no session is stored under the id, or it expired
var ErrSessionNotFound = errors.New("session not found")

// Client wraps go-redis for the dashboard.
// Holds sign-in sessions (session id → upstream bearer token) and sign-in rate-limit counters.
type Client struct {
	rdb    goredis.UniversalClient
	logger *zap.Logger
}

// NewClient connects and pings Redis
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	logger.Info("redis connected", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// NewFromUniversal wraps an existing go-redis client
func NewFromUniversal(rdb goredis.UniversalClient, logger *zap.Logger) *Client {
	return &Client{rdb: rdb, logger: logger}
}

// ── sessions ──

const sessionPrefix = "session:"

// SaveSession stores an encoded session with the given lifetime
func (c *Client) SaveSession(ctx context.Context, id string, payload []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return fmt.Errorf("save session %s: non-positive ttl", id)
	}
	return c.rdb.Set(ctx, sessionPrefix+id, payload, ttl).Err()
}

// LoadSession returns the encoded session stored under id
func (c *Client) LoadSession(ctx context.Context, id string) ([]byte, error) {
	b, err := c.rdb.Get(ctx, sessionPrefix+id).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// DeleteSession removes a session; deleting a missing session is not an error
func (c *Client) DeleteSession(ctx context.Context, id string) error {
	return c.rdb.Del(ctx, sessionPrefix+id).Err()
}

// ── rate limit ──

// CheckRateLimit fixed-window counter: the first hit in a window sets the expiry,
// hits beyond limit within the window are refused.
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	pipe := c.rdb.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return incr.Val() <= int64(limit), nil
}

// Close closes the connection
func (c *Client) Close() error {
	return c.rdb.Close()
}
