package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/clubregistry/internal/model"
	"github.com/mcoot/clubregistry/internal/storage"
)

// addUserScript stores the record and appends its id to the order list,
// refusing ids that already exist.
// KEYS[1] = order list, KEYS[2] = user key; ARGV[1] = id, ARGV[2] = record JSON
var addUserScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[2]) == 1 then
	return 0
end
redis.call('SET', KEYS[2], ARGV[2])
redis.call('RPUSH', KEYS[1], ARGV[1])
return 1
`)

// deleteUserScript removes the record and its id from the order list.
// KEYS[1] = order list, KEYS[2] = user key; ARGV[1] = id
var deleteUserScript = redis.NewScript(`
if redis.call('DEL', KEYS[2]) == 0 then
	return 0
end
redis.call('LREM', KEYS[1], 0, ARGV[1])
return 1
`)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

func (s *Storage) ListUsers(ctx context.Context) ([]*model.User, error) {
	ids, err := s.client.LRange(ctx, userOrderKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	users := make([]*model.User, 0, len(ids))
	if len(ids) == 0 {
		return users, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = userKey(model.UserID(id))
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	for _, v := range values {
		// A nil entry means the record vanished between LRANGE and MGET
		str, ok := v.(string)
		if !ok {
			continue
		}
		var user model.User
		if err := json.Unmarshal([]byte(str), &user); err != nil {
			return nil, err
		}
		users = append(users, &user)
	}
	return users, nil
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	data, err := s.client.Get(ctx, userKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Storage) AddUser(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}

	keys := []string{userOrderKey(), userKey(user.ID)}
	added, err := addUserScript.Run(ctx, s.client, keys, string(user.ID), data).Int()
	if err != nil {
		return err
	}
	if added == 0 {
		return model.ErrUserExists
	}
	return nil
}

func (s *Storage) DeleteUser(ctx context.Context, id model.UserID) error {
	keys := []string{userOrderKey(), userKey(id)}
	deleted, err := deleteUserScript.Run(ctx, s.client, keys, string(id)).Int()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return model.ErrUserNotFound
	}
	return nil
}
