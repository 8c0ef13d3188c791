package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultPlayWindow = time.Hour

// PlayGuard suppresses repeat play counts from the same listener within a
// time window, backed by Redis. Key format: play:<audio_id>:<listener>.
// The guard is advisory only: callers treat errors as "not seen" so an
// unavailable Redis never blocks counting.
type PlayGuard struct {
	client *redis.Client
	window time.Duration
}

// NewPlayGuard creates a PlayGuard wrapping the given Redis client. A
// non-positive window falls back to one hour.
func NewPlayGuard(client *redis.Client, window time.Duration) *PlayGuard {
	if window <= 0 {
		window = defaultPlayWindow
	}
	return &PlayGuard{client: client, window: window}
}

// SeenRecently reports whether listener already played audioID inside the
// window, marking the pair as seen for the next window either way.
func (g *PlayGuard) SeenRecently(ctx context.Context, audioID, listener string) (bool, error) {
	key := g.key(audioID, listener)

	// SetNX doubles as check-and-mark: false means the key already existed.
	set, err := g.client.SetNX(ctx, key, "1", g.window).Result()
	if err != nil {
		return false, fmt.Errorf("play guard: %w", err)
	}
	return !set, nil
}

func (g *PlayGuard) key(audioID, listener string) string {
	return fmt.Sprintf("play:%s:%s", audioID, listener)
}
