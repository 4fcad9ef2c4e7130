// file: services/ratelimit_service_test.go
package services

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stansam/EduSafaris-sub001/database"
)

func TestAllowRequestFailsOpenWithoutRedis(t *testing.T) {
	prev := database.RDB
	database.RDB = nil
	t.Cleanup(func() { database.RDB = prev })

	assert.True(t, AllowRequest("login", "someone@example.com", 1, time.Minute))
	assert.True(t, AllowRequest("login", "someone@example.com", 1, time.Minute))
}

// TestAllowRequestWindow needs a live redis; set TEST_REDIS_ADDR to run it.
func TestAllowRequestWindow(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set")
	}

	prev := database.RDB
	database.RDB = redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() {
		database.RDB.Close()
		database.RDB = prev
	})

	key := fmt.Sprintf("window-test-%d", time.Now().UnixNano())
	require.True(t, AllowRequest("test", key, 3, 2*time.Second))
	require.True(t, AllowRequest("test", key, 3, 2*time.Second))
	require.True(t, AllowRequest("test", key, 3, 2*time.Second))
	assert.False(t, AllowRequest("test", key, 3, 2*time.Second), "fourth attempt inside the window is throttled")

	// Entries fall out of the window and the key recovers.
	time.Sleep(2100 * time.Millisecond)
	assert.True(t, AllowRequest("test", key, 3, 2*time.Second))
}
