package sessions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"medimanager/internal/ports/auth"
)

const redisKeyPrefix = "medimanager:session:"

// RedisStore guarda sesiones en redis para que sobrevivan reinicios
// o se compartan entre instancias.
type RedisStore struct {
	client   redis.UniversalClient
	ttl      time.Duration
	newToken func() string
}

var _ auth.SessionStore = (*RedisStore)(nil)

type redisSession struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// NewRedisStore: ttl <= 0 = sin vencimiento.
func NewRedisStore(client redis.UniversalClient, ttl time.Duration) *RedisStore {
	if ttl < 0 {
		ttl = 0
	}
	return &RedisStore{
		client:   client,
		ttl:      ttl,
		newToken: uuid.NewString,
	}
}

// DialRedis abre un cliente y hace ping.
func DialRedis(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	c := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return c, nil
}

func (s *RedisStore) Issue(ctx context.Context, claims auth.Claims) (string, error) {
	if strings.TrimSpace(claims.UserID) == "" {
		return "", auth.ErrInvalidToken
	}

	b, err := json.Marshal(redisSession{UserID: claims.UserID, Username: claims.Username})
	if err != nil {
		return "", err
	}

	token := s.newToken()
	if err := s.client.Set(ctx, redisKeyPrefix+token, b, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("redis set session: %w", err)
	}
	return token, nil
}

func (s *RedisStore) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, auth.ErrInvalidToken
	}

	b, err := s.client.Get(ctx, redisKeyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return auth.Claims{}, auth.ErrInvalidToken
		}
		return auth.Claims{}, fmt.Errorf("redis get session: %w", err)
	}

	var sess redisSession
	if err := json.Unmarshal(b, &sess); err != nil || sess.UserID == "" {
		return auth.Claims{}, auth.ErrInvalidToken
	}
	return auth.Claims{UserID: sess.UserID, Username: sess.Username}, nil
}

func (s *RedisStore) Revoke(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil
	}
	return s.client.Del(ctx, redisKeyPrefix+token).Err()
}
