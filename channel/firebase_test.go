package channel

import (
	"context"
	"testing"
	"time"

	"firebase.google.com/go/v4/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anyproto/anytype-fcm-notifier/fcmmessage"
)

type firebaseSenderFunc func(ctx context.Context, message *messaging.Message) (string, error)

func (f firebaseSenderFunc) Send(ctx context.Context, message *messaging.Message) (string, error) {
	return f(ctx, message)
}

func TestFirebaseTransport_Send(t *testing.T) {
	var sent *messaging.Message
	tr := &firebaseTransport{client: firebaseSenderFunc(func(ctx context.Context, message *messaging.Message) (string, error) {
		sent = message
		return "projects/p/messages/1", nil
	})}
	c := NewWithTransport("p", tr)
	require.NoError(t, c.Send(ctx, Route(fcmmessage.Token("device")), titleNotification("hi")))
	require.NotNil(t, sent)
	assert.Equal(t, "device", sent.Token)
	assert.Equal(t, "hi", sent.Notification.Title)
}

func TestToFirebaseMessage(t *testing.T) {
	t.Run("full", func(t *testing.T) {
		env := fcmmessage.New().
			To(fcmmessage.Token("device")).
			Title("title").
			Body("body").
			Sound("default").
			Icon("http://x/i.png").
			ClickAction("OPEN").
			Data(map[string]any{"n": 1}).
			Priority(fcmmessage.PriorityHigh).
			CollapseKey("group").
			ContentAvailable(true).
			MutableContent(true).
			TimeToLive(60).
			RestrictedPackageName("io.anytype").
			Format()
		msg := toFirebaseMessage(env.Message)

		ttl := time.Minute
		assert.Equal(t, &messaging.Message{
			Token: "device",
			Data:  map[string]string{"n": "1"},
			Notification: &messaging.Notification{
				Title:    "title",
				Body:     "body",
				ImageURL: "http://x/i.png",
			},
			Android: &messaging.AndroidConfig{
				Priority:              "high",
				CollapseKey:           "group",
				RestrictedPackageName: "io.anytype",
				TTL:                   &ttl,
				Notification: &messaging.AndroidNotification{
					Sound:       "default",
					ClickAction: "OPEN",
					Icon:        "http://x/i.png",
					ImageURL:    "http://x/i.png",
				},
			},
			APNS: &messaging.APNSConfig{
				Payload: &messaging.APNSPayload{
					Aps: &messaging.Aps{
						Sound:            "default",
						ContentAvailable: true,
						MutableContent:   true,
						CustomData:       map[string]interface{}{"priority": 10},
					},
				},
				FCMOptions: &messaging.APNSFCMOptions{ImageURL: "http://x/i.png"},
			},
		}, msg)
	})
	t.Run("topic", func(t *testing.T) {
		msg := toFirebaseMessage(fcmmessage.New().To(fcmmessage.Topic("news")).Format().Message)
		assert.Equal(t, "news", msg.Topic)
		assert.Empty(t, msg.Token)
		assert.Nil(t, msg.Notification)
		assert.Nil(t, msg.Android.TTL)
		assert.Equal(t, "normal", msg.Android.Priority)
		assert.Equal(t, 5, msg.APNS.Payload.Aps.CustomData["priority"])
	})
	t.Run("condition", func(t *testing.T) {
		msg := toFirebaseMessage(fcmmessage.New().Condition("'a' in topics").Format().Message)
		assert.Equal(t, "'a' in topics", msg.Condition)
		assert.Empty(t, msg.Token)
	})
}
