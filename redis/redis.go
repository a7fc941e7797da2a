package redis

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	Client *redis.Client
	Ctx    = context.Background()
)

// Init connects to Redis when REDIS_ADDR is configured. Refresh-token
// revocation degrades gracefully without it.
func Init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR not set, refresh tokens will not be revocable")
		return
	}

	Client = redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   0,
	})

	if _, err := Client.Ping(Ctx).Result(); err != nil {
		panic(fmt.Sprintf("Failed to connect to Redis: %v", err))
	}
	log.Println("Connected to Redis")
}

func refreshKey(userID uint) string {
	return fmt.Sprintf("refresh:%d", userID)
}

// StoreRefreshToken saves the user's current refresh token with a TTL.
func StoreRefreshToken(userID uint, token string, ttl time.Duration) error {
	if Client == nil {
		return nil
	}
	return Client.Set(Ctx, refreshKey(userID), token, ttl).Err()
}

// ValidateRefreshToken reports whether the token matches the stored one.
// With no Redis configured every structurally valid token is accepted.
func ValidateRefreshToken(userID uint, token string) bool {
	if Client == nil {
		return true
	}
	stored, err := Client.Get(Ctx, refreshKey(userID)).Result()
	if err != nil {
		return false
	}
	return stored == token
}

// RevokeRefreshToken drops the user's stored refresh token.
func RevokeRefreshToken(userID uint) error {
	if Client == nil {
		return nil
	}
	return Client.Del(Ctx, refreshKey(userID)).Err()
}
