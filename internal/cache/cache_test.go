package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFishKey(t *testing.T) {
	assert.Equal(t, "fish:FISH-AB12CD", FishKey("FISH-AB12CD"))
}

func TestNilClientIsSafe(t *testing.T) {
	var c *Client
	ctx := context.Background()

	var dest map[string]string
	assert.False(t, c.GetJSON(ctx, StatsKey, &dest))

	c.SetJSON(ctx, FishKey("FISH-AB12CD"), map[string]string{"id": "FISH-AB12CD"}, time.Minute)
	c.Delete(ctx, FishKey("FISH-AB12CD"))
	assert.NoError(t, c.Close())
}
