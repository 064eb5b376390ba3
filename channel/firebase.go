package channel

import (
	"context"
	"time"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"github.com/anyproto/anytype-fcm-notifier/credentials"
	"github.com/anyproto/anytype-fcm-notifier/fcmmessage"
)

// firebaseSender is the subset of messaging.Client used by the sdk transport.
type firebaseSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

func newFirebaseTransport(ctx context.Context, creds *credentials.Credentials) (Transport, error) {
	opt := option.WithCredentialsFile(creds.File)
	fcmApp, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: creds.ProjectId}, opt)
	if err != nil {
		return nil, err
	}
	client, err := fcmApp.Messaging(ctx)
	if err != nil {
		return nil, err
	}
	return &firebaseTransport{client: client}, nil
}

// firebaseTransport sends through the Firebase Admin SDK. Unlike the http
// transport the SDK validates the message locally, e.g. it refuses a message
// carrying both a token and a condition.
type firebaseTransport struct {
	client firebaseSender
}

func (f *firebaseTransport) Send(ctx context.Context, env fcmmessage.Envelope) (name string, err error) {
	return f.client.Send(ctx, toFirebaseMessage(env.Message))
}

func toFirebaseMessage(p fcmmessage.Payload) *messaging.Message {
	msg := &messaging.Message{
		Condition: p.Condition,
		Data:      p.Data,
		Android: &messaging.AndroidConfig{
			Priority:              p.Android.Priority,
			CollapseKey:           p.CollapseKey,
			RestrictedPackageName: p.RestrictedPackageName,
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					CustomData: map[string]interface{}{"priority": p.APNS.Payload.Aps.Priority},
				},
			},
		},
	}
	if topic, ok := fcmmessage.TopicName(p.Token); ok {
		msg.Topic = topic
	} else {
		msg.Token = p.Token
	}
	if p.TimeToLive != nil {
		ttl := time.Duration(*p.TimeToLive) * time.Second
		msg.Android.TTL = &ttl
	}
	if p.ContentAvailable != nil {
		msg.APNS.Payload.Aps.ContentAvailable = *p.ContentAvailable
	}
	if p.MutableContent != nil {
		msg.APNS.Payload.Aps.MutableContent = *p.MutableContent
	}
	if p.APNS.FCMOptions != nil {
		msg.APNS.FCMOptions = &messaging.APNSFCMOptions{ImageURL: p.APNS.FCMOptions.Image}
	}
	if n := p.Notification; n != nil {
		msg.Notification = &messaging.Notification{ImageURL: n.Icon}
		if n.Title != nil {
			msg.Notification.Title = *n.Title
		}
		if n.Body != nil {
			msg.Notification.Body = *n.Body
		}
		msg.APNS.Payload.Aps.Sound = n.Sound
		if n.Sound != "" || n.ClickAction != "" || n.Icon != "" {
			msg.Android.Notification = &messaging.AndroidNotification{
				Sound:       n.Sound,
				ClickAction: n.ClickAction,
				Icon:        n.Icon,
				ImageURL:    n.Icon,
			}
		}
	}
	return msg
}
