package redis

import (
	"context"
	"errors"

	"github.com/bunny00908/anime/internal/config"

	"github.com/go-redis/redis/v8"
)

// ErrNil is returned by Get-style calls when the key or field is absent.
var ErrNil = redis.Nil

// RedisClient is the thin command surface the directory needs.
type RedisClient interface {
	Ping(ctx context.Context) error
	HSet(ctx context.Context, key, field string, value interface{}) (int64, error)
	HGet(ctx context.Context, key, field string) (string, error)
	HLen(ctx context.Context, key string) (int64, error)
	Close() error
}

var _ RedisClient = (*redClient)(nil)

type redClient struct {
	cli *redis.Client
}

func NewClient(ctx context.Context, cfg *config.RedisConfig) (*redClient, error) {
	if cfg == nil || cfg.URL == "" {
		return nil, errors.New("redis url is empty")
	}
	opts := &redis.Options{
		Addr:     cfg.URL,
		Password: cfg.Password,
		DB:       cfg.DB,
	}
	c := redis.NewClient(opts)
	if err := c.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &redClient{cli: c}, nil
}

func (c *redClient) Ping(ctx context.Context) error { return c.cli.Ping(ctx).Err() }

func (c *redClient) HSet(ctx context.Context, key, field string, value interface{}) (int64, error) {
	return c.cli.HSet(ctx, key, field, value).Result()
}

func (c *redClient) HGet(ctx context.Context, key, field string) (string, error) {
	return c.cli.HGet(ctx, key, field).Result()
}

func (c *redClient) HLen(ctx context.Context, key string) (int64, error) {
	return c.cli.HLen(ctx, key).Result()
}

func (c *redClient) Close() error { return c.cli.Close() }
