package idempotency

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/fne-platform/hours-backend/internal/auth"
)

func bodyHash(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

func buildKey(method, path, subject, requestKey string) string {
	return "idemp:" + strings.ToLower(method) + ":" + path + ":" + subject + ":" + requestKey
}

// subject scopes keys per caller so two users cannot collide on the same key.
func subject(c *gin.Context) string {
	claims, ok := auth.FromContext(c)
	if !ok {
		return "anonymous"
	}

	return claims.Subject
}

var reUUID = regexp.MustCompile(`^[a-fA-F0-9]{8}-[a-fA-F0-9]{4}-[a-fA-F0-9]{4}-[a-fA-F0-9]{4}-[a-fA-F0-9]{12}$`)

func validKey(key string) bool {
	return reUUID.MatchString(key)
}

func provisionalSet(ctx context.Context, rdb *redis.Client, key string, e entry) (bool, error) {
	payload, _ := json.Marshal(e)
	return rdb.SetNX(ctx, key, payload, provisionalLockTTL).Result()
}

func loadEntry(ctx context.Context, rdb *redis.Client, key string) (entry, error) {
	var e entry

	payload, err := rdb.Get(ctx, key).Bytes()
	if err != nil {
		return e, err
	}

	err = json.Unmarshal(payload, &e)
	return e, err
}

func saveFinal(ctx context.Context, rdb *redis.Client, key string, e entry, ttl time.Duration) error {
	payload, _ := json.Marshal(e)
	return rdb.Set(ctx, key, payload, ttl).Err()
}
