package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const oauthStatePrefix = "oauth_state:"

// Repository defines methods for interacting with Redis key-values
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	SetOAuthState(ctx context.Context, state string, ttl time.Duration) error
	ConsumeOAuthState(ctx context.Context, state string) (bool, error)
}

type redis struct {
	client *goredis.Client
}

// NewRepository wraps an injected client. A nil client turns every call into a miss.
func NewRepository(client *goredis.Client) Repository {
	return &redis{client: client}
}

// Get returns "" with a nil error when the key does not exist.
func (r *redis) Get(ctx context.Context, key string) (string, error) {
	if r.client == nil {
		return "", nil
	}
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", nil
		}
		return "", err
	}
	return val, nil
}

func (r *redis) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	if r.client == nil {
		return nil
	}
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *redis) Delete(ctx context.Context, key string) error {
	if r.client == nil {
		return nil
	}
	return r.client.Del(ctx, key).Err()
}

func (r *redis) SetOAuthState(ctx context.Context, state string, ttl time.Duration) error {
	if r.client == nil {
		return errors.New("redis client not configured")
	}
	return r.client.Set(ctx, oauthStatePrefix+state, "1", ttl).Err()
}

// ConsumeOAuthState deletes the state and reports whether it existed.
func (r *redis) ConsumeOAuthState(ctx context.Context, state string) (bool, error) {
	if r.client == nil {
		return false, errors.New("redis client not configured")
	}
	n, err := r.client.Del(ctx, oauthStatePrefix+state).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
