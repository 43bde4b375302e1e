// db/redis.go
package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	logger "github.com/campushub/campus-api/logging"
	"github.com/campushub/campus-api/model"
)

var RedisClient *redis.Client

func InitRedis() error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:         viper.GetString("redis.addr"),
		Password:     viper.GetString("redis.password"),
		DB:           viper.GetInt("redis.db"),
		DialTimeout:  viper.GetDuration("redis.dialTimeout"),
		ReadTimeout:  viper.GetDuration("redis.readTimeout"),
		WriteTimeout: viper.GetDuration("redis.writeTimeout"),
		PoolSize:     viper.GetInt("redis.poolSize"),
		PoolTimeout:  viper.GetDuration("redis.poolTimeout"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Successfully connected to Redis")
	return nil
}

func CloseRedis() {
	if RedisClient != nil {
		if err := RedisClient.Close(); err != nil {
			logger.Error("Error closing Redis connection", zap.Error(err))
		}
	}
}

func menusKey(cafeteriaID int, date string) string {
	return fmt.Sprintf("menus:%d:%s", cafeteriaID, date)
}

// CacheMenus stores one cafeteria's menu list for a day. A nil client
// (cache disabled) is a no-op.
func CacheMenus(ctx context.Context, cafeteriaID int, date string, menus []model.CafeteriaMenu) error {
	if RedisClient == nil {
		return nil
	}

	menusJSON, err := json.Marshal(menus)
	if err != nil {
		return fmt.Errorf("failed to marshal menus: %w", err)
	}

	key := menusKey(cafeteriaID, date)
	defaultTTL := viper.GetDuration("redis.defaultCacheTTL")
	err = RedisClient.Set(ctx, key, menusJSON, defaultTTL).Err()
	if err != nil {
		return fmt.Errorf("failed to cache menus: %w", err)
	}

	logger.Debug("Menus cached successfully", zap.String("key", key))
	return nil
}

// GetCachedMenus returns the cached menu list for one cafeteria and
// day, or nil on a cache miss.
func GetCachedMenus(ctx context.Context, cafeteriaID int, date string) ([]model.CafeteriaMenu, error) {
	if RedisClient == nil {
		return nil, nil
	}

	key := menusKey(cafeteriaID, date)
	menusJSON, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		logger.Debug("Menus not found in cache", zap.String("key", key))
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get menus from cache: %w", err)
	}

	var menus []model.CafeteriaMenu
	err = json.Unmarshal([]byte(menusJSON), &menus)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal menus: %w", err)
	}

	logger.Debug("Menus retrieved from cache", zap.String("key", key))
	return menus, nil
}

// InvalidateCachedMenus drops every cached menu list. Called after a
// successful sync so readers fall through to the replaced table.
func InvalidateCachedMenus(ctx context.Context) error {
	if RedisClient == nil {
		return nil
	}

	iter := RedisClient.Scan(ctx, 0, "menus:*", 0).Iterator()
	for iter.Next(ctx) {
		if err := RedisClient.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete cached menus: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cached menus: %w", err)
	}

	logger.Debug("Cached menus invalidated")
	return nil
}

func RateLimit(ctx context.Context, key string, limit int, per time.Duration) (bool, error) {
	if RedisClient == nil {
		return true, nil
	}

	pipe := RedisClient.Pipeline()
	now := time.Now().UnixNano()
	key = fmt.Sprintf("ratelimit:%s", key)

	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", now-(per.Nanoseconds())))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: now})
	pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, per)

	cmds, err := pipe.Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to execute rate limit commands: %w", err)
	}

	count := cmds[2].(*redis.IntCmd).Val()
	allowed := count <= int64(limit)
	logger.Debug("Rate limit check",
		zap.String("key", key),
		zap.Int64("count", count),
		zap.Int("limit", limit),
		zap.Bool("allowed", allowed))
	return allowed, nil
}

func LockResource(ctx context.Context, resourceName string, ttl time.Duration) (bool, error) {
	if RedisClient == nil {
		return true, nil
	}

	key := fmt.Sprintf("lock:%s", resourceName)
	locked, err := RedisClient.SetNX(ctx, key, "locked", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire lock: %w", err)
	}
	logger.Debug("Lock acquisition attempt",
		zap.String("resource", resourceName),
		zap.Bool("locked", locked))
	return locked, nil
}

func UnlockResource(ctx context.Context, resourceName string) error {
	if RedisClient == nil {
		return nil
	}

	key := fmt.Sprintf("lock:%s", resourceName)
	err := RedisClient.Del(ctx, key).Err()
	if err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	logger.Debug("Lock released", zap.String("resource", resourceName))
	return nil
}
