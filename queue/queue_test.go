package queue

import (
	"context"
	"testing"
	"time"

	"github.com/anyproto/any-sync/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyproto/anytype-fcm-notifier/domain"
	"github.com/anyproto/anytype-fcm-notifier/redisprovider/testredisprovider"
)

var ctx = context.Background()

func TestQueue_Consume(t *testing.T) {
	fx := newFixture(t)
	created := time.Now().UTC().Truncate(time.Second)
	var toSend = []Message{
		{Id: "1", AccountIds: []string{"a"}, Notification: domain.PushNotification{Title: "one"}, Created: created},
		{Id: "2", AccountIds: []string{"b", "c"}, Notification: domain.PushNotification{Topic: "news"}, Created: created},
	}
	require.NoError(t, fx.Add(ctx, toSend[0]))
	var msgs = make(chan Message)
	require.NoError(t, fx.Consume(ctx, func(msg Message) error {
		msgs <- msg
		return nil
	}))

	require.NoError(t, fx.Add(ctx, toSend[1]))
	var result = make([]Message, 2)
	for i := range result {
		select {
		case msg := <-msgs:
			result[i] = msg
		case <-time.After(time.Second):
			t.Fatal("timeout")
		}
	}
	assert.Equal(t, toSend, result)
}

func TestQueue_AddDefaults(t *testing.T) {
	fx := newFixture(t)
	require.NoError(t, fx.Add(ctx, Message{AccountIds: []string{"a"}}))
	var msgs = make(chan Message, 1)
	require.NoError(t, fx.Consume(ctx, func(msg Message) error {
		msgs <- msg
		return nil
	}))
	select {
	case msg := <-msgs:
		assert.NotEmpty(t, msg.Id)
		assert.False(t, msg.Created.IsZero())
	case <-time.After(time.Second):
		t.Fatal("timeout")
	}
	assert.Equal(t, defaultWorkers, fx.Workers())
}

func TestQueue_ConsumeLargeNumbers(t *testing.T) {
	fx := newFixture(t)
	require.NoError(t, fx.Add(ctx, Message{
		AccountIds:   []string{"a"},
		Notification: domain.PushNotification{Data: map[string]any{"messageId": uint64(9007199254740993)}},
	}))
	var msgs = make(chan Message, 1)
	require.NoError(t, fx.Consume(ctx, func(msg Message) error {
		msgs <- msg
		return nil
	}))
	select {
	case msg := <-msgs:
		env := msg.Notification.ToFCM(nil).Format()
		assert.Equal(t, "9007199254740993", env.Message.Data["messageId"])
	case <-time.After(time.Second):
		t.Fatal("timeout")
	}
}

func TestDecodeMessage(t *testing.T) {
	msg, err := decodeMessage(`{"id":"1","notification":{"data":{"n":9007199254740993,"f":1.5,"nested":{"big":18446744073709551615}}}}`)
	require.NoError(t, err)
	data := msg.Notification.ToFCM(nil).Format().Message.Data
	assert.Equal(t, "9007199254740993", data["n"])
	assert.Equal(t, "1.5", data["f"])
	assert.JSONEq(t, `{"big":18446744073709551615}`, data["nested"])

	_, err = decodeMessage("{")
	assert.Error(t, err)
}

type fixture struct {
	Queue
	a *app.App
}

func newFixture(t *testing.T) *fixture {
	fx := &fixture{
		Queue: New(),
		a:     new(app.App),
	}
	fx.a.Register(testredisprovider.NewTestRedisProvider()).Register(fx.Queue)
	require.NoError(t, fx.a.Start(ctx))
	t.Cleanup(func() {
		require.NoError(t, fx.a.Close(ctx))
	})
	return fx
}
