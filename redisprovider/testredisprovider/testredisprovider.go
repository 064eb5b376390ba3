package testredisprovider

import (
	"context"

	"github.com/alicebob/miniredis/v2"
	"github.com/anyproto/any-sync/app"
	"github.com/redis/go-redis/v9"

	"github.com/anyproto/anytype-fcm-notifier/redisprovider"
)

// NewTestRedisProvider returns a provider backed by an in-memory miniredis server.
func NewTestRedisProvider() redisprovider.RedisProvider {
	return &testRedisProvider{}
}

type testRedisProvider struct {
	server *miniredis.Miniredis
	redis  redis.UniversalClient
}

func (t *testRedisProvider) Init(a *app.App) (err error) {
	if t.server, err = miniredis.Run(); err != nil {
		return err
	}
	t.redis = redis.NewClient(&redis.Options{Addr: t.server.Addr()})
	return nil
}

func (t *testRedisProvider) Name() (name string) {
	return redisprovider.CName
}

func (t *testRedisProvider) Run(ctx context.Context) (err error) {
	return nil
}

func (t *testRedisProvider) Redis() redis.UniversalClient {
	return t.redis
}

func (t *testRedisProvider) Close(ctx context.Context) (err error) {
	if t.redis != nil {
		_ = t.redis.Close()
	}
	if t.server != nil {
		t.server.Close()
	}
	return nil
}
