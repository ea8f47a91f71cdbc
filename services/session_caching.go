package services

import (
	"context"
	"encoding/json"
	"fmt"
	"main/model"
	"time"

	"github.com/redis/go-redis/v9"
)

type SessionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// GlobalSessionCache is nil when Redis is unavailable; callers fall back to Mongo.
var GlobalSessionCache *SessionCache

// NewSessionCache creates and initializes a new session cache
func NewSessionCache(redisURL string, ttl time.Duration) (*SessionCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &SessionCache{client: client, ttl: ttl}, nil
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

// SetSession caches a session until its expiry or the cache TTL, whichever is sooner
func (sc *SessionCache) SetSession(session *model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %v", err)
	}

	ttl := sc.ttl
	if until := time.Until(session.ExpiresAt); until > 0 && until < ttl {
		ttl = until
	}

	ctx := context.Background()
	return sc.client.Set(ctx, sessionKey(session.SessionID), data, ttl).Err()
}

// GetSession returns a cached session, or nil on a cache miss
func (sc *SessionCache) GetSession(sessionID string) (*model.Session, error) {
	ctx := context.Background()
	data, err := sc.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached session: %v", err)
	}
	return &session, nil
}

// InvalidateSession drops a session from the cache
func (sc *SessionCache) InvalidateSession(sessionID string) error {
	ctx := context.Background()
	return sc.client.Del(ctx, sessionKey(sessionID)).Err()
}

// Close closes the Redis connection
func (sc *SessionCache) Close() error {
	return sc.client.Close()
}
