package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/portal-cosmico/backend/internal/config"
	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client
var Ctx = context.Background()

func InitRedis() {
	Redis = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       0,
	})

	_, err := Redis.Ping(Ctx).Result()
	if err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v. Caching and push fan-out will be disabled.", err)
	} else {
		log.Println("Connected to Redis successfully")
	}
}

// Caching
func CacheSet(key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return Redis.Set(Ctx, key, data, expiration).Err()
}

func CacheGet(key string, dest interface{}) error {
	val, err := Redis.Get(Ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

func CacheInvalidate(pattern string) error {
	keys, err := Redis.Keys(Ctx, pattern).Result()
	if err != nil {
		return err
	}
	if len(keys) > 0 {
		return Redis.Del(Ctx, keys...).Err()
	}
	return nil
}

// Publish pushes a payload onto a channel for the push-gateway worker.
// Delivery is best-effort; callers must not depend on it.
func Publish(channel string, payload interface{}) error {
	if Redis == nil {
		return fmt.Errorf("redis not configured")
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return Redis.Publish(Ctx, channel, data).Err()
}
