package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/supplier_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/supplier_ledger/internal/core/ports/repositories"
	goredis "github.com/redis/go-redis/v9"
)

// StatementCache stores statements as JSON documents with a fixed TTL.
type StatementCache struct {
	client goredis.UniversalClient
	ttl    time.Duration
}

var _ portsrepo.StatementCache = (*StatementCache)(nil)

// NewStatementCache wraps an existing client.
func NewStatementCache(client goredis.UniversalClient, ttl time.Duration) *StatementCache {
	return &StatementCache{client: client, ttl: ttl}
}

// NewClient connects to the server described by a redis:// URL and pings it.
func NewClient(ctx context.Context, redisURL string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	client := goredis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

// GetStatement returns nil and no error on a miss.
func (c *StatementCache) GetStatement(ctx context.Context, key string) (*domain.Statement, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached statement %s: %w", key, err)
	}

	stmt, err := decodeStatement(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode cached statement %s: %w", key, err)
	}
	return stmt, nil
}

// SetStatement stores stmt under key for the configured TTL.
func (c *StatementCache) SetStatement(ctx context.Context, key string, stmt domain.Statement) error {
	raw, err := json.Marshal(stmt)
	if err != nil {
		return fmt.Errorf("failed to encode statement: %w", err)
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache statement %s: %w", key, err)
	}
	return nil
}

func decodeStatement(raw []byte) (*domain.Statement, error) {
	var stmt domain.Statement
	if err := json.Unmarshal(raw, &stmt); err != nil {
		return nil, err
	}
	return &stmt, nil
}
