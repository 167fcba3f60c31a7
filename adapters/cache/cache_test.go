package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mahathirrr/portfolio/internal/config"
	"github.com/mahathirrr/portfolio/pkg/logger"
)

type homeView struct {
	Name     string          `json:"name"`
	Settings map[string]bool `json:"settings"`
}

func TestPrefixedCache_SetGetDelete(t *testing.T) {
	engine := NewMemoryEngine(time.Minute)
	home := NewPrefixedCache[homeView](engine, "page:home:")
	ctx := context.Background()

	_, err := home.Get(ctx, "view")
	assert.Error(t, err)

	want := homeView{Name: "Jane", Settings: map[string]bool{"show_experience_menu": false}}
	require.NoError(t, home.Set(ctx, "view", want))

	got, err := home.Get(ctx, "view")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, home.Delete(ctx, "view"))
	_, err = home.Get(ctx, "view")
	assert.Error(t, err)
}

func TestPrefixedCache_PrefixesDoNotCollide(t *testing.T) {
	engine := NewMemoryEngine(time.Minute)
	home := NewPrefixedCache[homeView](engine, "page:home:")
	services := NewPrefixedCache[homeView](engine, "page:services:")
	ctx := context.Background()

	require.NoError(t, home.Set(ctx, "view", homeView{Name: "home"}))

	_, err := services.Get(ctx, "view")
	assert.Error(t, err)
}

func TestNewEngine(t *testing.T) {
	var cfg config.Config
	cfg.Cache.TTL = time.Minute

	cfg.Cache.Type = config.CacheTypeMemory
	engine, err := NewEngine(cfg, nil, logger.NewNop())
	require.NoError(t, err)
	assert.NotEmpty(t, engine.GetType())

	cfg.Cache.Type = config.CacheTypeRedis
	_, err = NewEngine(cfg, nil, logger.NewNop())
	assert.Error(t, err)

	cfg.Cache.Type = "memcached"
	_, err = NewEngine(cfg, nil, logger.NewNop())
	assert.Error(t, err)
}
