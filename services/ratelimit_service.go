// file: services/ratelimit_service.go
package services

import (
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stansam/EduSafaris-sub001/database"
)

// AllowRequest is a sliding-window counter shared across server instances:
// one sorted set per key holds the timestamps of recent attempts, entries
// older than the window are pruned on every check, and the remaining count is
// compared to the limit. Fails open when redis is unreachable so throttling
// never takes the login path down with it.
func AllowRequest(purpose, key string, limit int, window time.Duration) bool {
	if database.RDB == nil {
		return true
	}

	redisKey := fmt.Sprintf("ratelimit:%s:%s", purpose, key)
	now := time.Now()
	windowStart := now.Add(-window)

	pipe := database.RDB.TxPipeline()
	pipe.ZRemRangeByScore(database.Ctx, redisKey, "0", fmt.Sprintf("%d", windowStart.UnixNano()))
	countCmd := pipe.ZCard(database.Ctx, redisKey)
	pipe.ZAdd(database.Ctx, redisKey, redis.Z{Score: float64(now.UnixNano()), Member: now.UnixNano()})
	pipe.Expire(database.Ctx, redisKey, window)

	if _, err := pipe.Exec(database.Ctx); err != nil {
		log.Printf("rate limit check for %s failed: %v", redisKey, err)
		return true
	}
	return countCmd.Val() < int64(limit)
}
