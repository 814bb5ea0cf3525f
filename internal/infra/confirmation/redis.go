package confirmation

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"table-reservation/internal/domain/reservation"
	"table-reservation/internal/pkg/config"
	"table-reservation/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "reservation:confirmation:"

type RedisStore struct {
	client redis.UniversalClient
}

func NewRedisClient(cfg config.ConfirmationConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, errs.Wrap(err, "parse REDIS_URL")
	}
	if cfg.RedisPassword != "" {
		opts.Password = cfg.RedisPassword
	}
	return redis.NewClient(opts), nil
}

func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Put(ctx context.Context, token string, pc reservation.PendingConfirmation, ttl time.Duration) error {
	payload, err := json.Marshal(pc)
	if err != nil {
		return errs.Wrap(err, "encode pending confirmation")
	}
	if err := s.client.Set(ctx, keyPrefix+token, payload, ttl).Err(); err != nil {
		return errs.Wrap(err, "store pending confirmation")
	}
	return nil
}

func (s *RedisStore) Take(ctx context.Context, token string) (*reservation.PendingConfirmation, error) {
	payload, err := s.client.GetDel(ctx, keyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errs.ErrConfirmationNotFound
		}
		return nil, errs.Wrap(err, "take pending confirmation")
	}

	var pc reservation.PendingConfirmation
	if err := json.Unmarshal(payload, &pc); err != nil {
		return nil, errs.Wrap(err, "decode pending confirmation")
	}
	return &pc, nil
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
