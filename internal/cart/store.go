package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lmarchetti/storefront-backend/pkg/config"
	pkgerrors "github.com/lmarchetti/storefront-backend/pkg/errors"
	"github.com/lmarchetti/storefront-backend/pkg/logger"
	"github.com/lmarchetti/storefront-backend/pkg/redis"
)

// Store owns the read-modify-write cycle for the cart document. UI-facing
// code never touches the underlying key directly; this is the single module
// that knows carts are stored as atomically replaced JSON blobs.
type Store interface {
	Load(ctx context.Context, token string) ([]Line, error)
	Save(ctx context.Context, token string, lines []Line) error
	Clear(ctx context.Context, token string) error
}

type documentClient interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	CartKey(token string) string
}

type redisStore struct {
	client documentClient
	ttl    time.Duration
	logg   *logger.Logger
}

// NewStore builds the Redis-backed cart document store.
func NewStore(client *redis.Client, cfg config.CartConfig, logg *logger.Logger) (Store, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client required")
	}
	return &redisStore{client: client, ttl: cfg.TTL, logg: logg}, nil
}

// Load reads the document for the token. A missing key or a value that does
// not parse as the expected shape degrades to an empty cart; a corrupted
// cart must never block shopping. Only transport failures surface as errors.
func (s *redisStore) Load(ctx context.Context, token string) ([]Line, error) {
	raw, err := s.client.Get(ctx, s.client.CartKey(token))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []Line{}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart document")
	}

	var lines []Line
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		if s.logg != nil {
			s.logg.Warn(ctx, "discarding unparseable cart document")
		}
		return []Line{}, nil
	}
	return lines, nil
}

// Save serializes the whole document and overwrites the key. Concurrent
// writers race and the last write wins; the cart is single-shopper state and
// the race is accepted.
func (s *redisStore) Save(ctx context.Context, token string, lines []Line) error {
	if lines == nil {
		lines = []Line{}
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode cart document")
	}
	if err := s.client.Set(ctx, s.client.CartKey(token), string(raw), s.ttl); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist cart document")
	}
	return nil
}

// Clear removes the document entirely.
func (s *redisStore) Clear(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.client.CartKey(token)); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart document")
	}
	return nil
}
