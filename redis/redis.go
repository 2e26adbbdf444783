package redis

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

const artistsKey = "artists:all"

var (
	Client *redis.Client
	Ctx    = context.Background()
)

// InitRedis connects the artist-list cache. The cache is best-effort: when
// redis is unreachable every lookup is a miss and writes are dropped.
func InitRedis() {
	Client = redis.NewClient(&redis.Options{
		Addr: os.Getenv("REDIS_ADDR"),
		DB:   0,
	})

	if _, err := Client.Ping(Ctx).Result(); err != nil {
		log.Printf("Warning: redis unavailable, artist cache disabled: %v", err)
		Client = nil
		return
	}
	log.Println("✅ Connected to Redis")
}

// GetArtists returns the cached artist list payload, if any.
func GetArtists() ([]byte, bool) {
	if Client == nil {
		return nil, false
	}
	payload, err := Client.Get(Ctx, artistsKey).Bytes()
	if err != nil {
		return nil, false
	}
	return payload, true
}

// SetArtists caches the artist list payload for a minute.
func SetArtists(payload []byte) {
	if Client == nil {
		return
	}
	Client.Set(Ctx, artistsKey, payload, time.Minute)
}

// InvalidateArtists drops the cached list after any artist write.
func InvalidateArtists() {
	if Client == nil {
		return
	}
	Client.Del(Ctx, artistsKey)
}
