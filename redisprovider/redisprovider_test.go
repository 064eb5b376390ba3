package redisprovider

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/anyproto/any-sync/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

func TestRedisProvider(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := miniredis.RunT(t)
		a := new(app.App)
		rp := New()
		a.Register(testConfig{Config{Url: "redis://" + server.Addr()}}).Register(rp)
		require.NoError(t, a.Start(ctx))
		t.Cleanup(func() {
			require.NoError(t, a.Close(ctx))
		})
		require.NoError(t, rp.Redis().Set(ctx, "k", "v", 0).Err())
		val, err := server.Get("k")
		require.NoError(t, err)
		assert.Equal(t, "v", val)
	})
	t.Run("invalid url", func(t *testing.T) {
		a := new(app.App)
		a.Register(testConfig{Config{Url: "http://nope"}}).Register(New())
		require.Error(t, a.Start(ctx))
	})
}

type testConfig struct {
	redis Config
}

func (c testConfig) Init(a *app.App) (err error) {
	return
}

func (c testConfig) Name() (name string) {
	return "config"
}

func (c testConfig) GetRedis() Config {
	return c.redis
}
