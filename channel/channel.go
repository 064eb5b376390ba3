//go:generate mockgen -destination mock_channel/mock_channel.go github.com/anyproto/anytype-fcm-notifier/channel Channel

// Package channel delivers notifications to FCM.
//
// A notification that resolves to no recipient is silently dropped: Send
// returns nil without calling FCM. Callers rely on this soft-fail, it is not
// an error condition.
package channel

import (
	"context"
	"fmt"
	"time"

	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
	"github.com/anyproto/any-sync/metric"
	"go.uber.org/zap"

	"github.com/anyproto/anytype-fcm-notifier/credentials"
	"github.com/anyproto/anytype-fcm-notifier/fcmmessage"
)

const CName = "fcm.channel"

// ChannelName is the routing key a Notifiable is asked for.
const ChannelName = "fcm"

var log = logger.NewNamed(CName)

// Notifiable is the target of a notification, e.g. an account or a device.
type Notifiable interface {
	RouteNotificationFor(ctx context.Context, channel string) (fcmmessage.Recipient, error)
}

// Notification converts itself into an FCM message for the given target.
type Notification interface {
	ToFCM(notifiable Notifiable) *fcmmessage.Message
}

// Route is a Notifiable with a fixed recipient.
type Route fcmmessage.Recipient

func (r Route) RouteNotificationFor(ctx context.Context, channel string) (fcmmessage.Recipient, error) {
	return fcmmessage.Recipient(r), nil
}

type NotificationFunc func(notifiable Notifiable) *fcmmessage.Message

func (f NotificationFunc) ToFCM(notifiable Notifiable) *fcmmessage.Message {
	return f(notifiable)
}

func New() Channel {
	return new(channel)
}

// NewWithTransport returns a ready to use channel, Init only registers metrics.
func NewWithTransport(projectId string, transport Transport) Channel {
	return &channel{projectId: projectId, transport: transport}
}

type Channel interface {
	Send(ctx context.Context, notifiable Notifiable, notification Notification) error
	ProjectId() string
	app.Component
}

type channel struct {
	projectId string
	transport Transport
	metrics   metrics
}

func (c *channel) Init(a *app.App) (err error) {
	if m, ok := a.Component(metric.CName).(metric.Metric); ok {
		registerMetrics(m.Registry(), c)
	}
	if c.transport != nil {
		return nil
	}
	conf := a.MustComponent("config").(configSource).GetFCM()
	ctx := context.Background()
	creds, err := credentials.Load(ctx, conf.CredentialsFile)
	if err != nil {
		return err
	}
	c.projectId = creds.ProjectId
	switch conf.Transport {
	case TransportSDK:
		c.transport, err = newFirebaseTransport(ctx, creds)
	case "", TransportHTTP:
		c.transport = NewHTTPTransport(sendURL(conf.endpoint(), creds.ProjectId), creds.TokenSource, nil)
	default:
		err = fmt.Errorf("fcm: unknown transport %q", conf.Transport)
	}
	if err != nil {
		return err
	}
	log.Info("fcm channel initialized", zap.String("projectId", c.projectId), zap.String("transport", conf.Transport))
	return nil
}

func (c *channel) Name() (name string) {
	return CName
}

func (c *channel) ProjectId() string {
	return c.projectId
}

func (c *channel) Send(ctx context.Context, notifiable Notifiable, notification Notification) (err error) {
	msg := notification.ToFCM(notifiable)
	if msg == nil {
		c.metrics.skipCount.Add(1)
		return nil
	}
	if !msg.Recipient().IsSet() {
		if notifiable == nil {
			c.metrics.skipCount.Add(1)
			return nil
		}
		to, err := notifiable.RouteNotificationFor(ctx, ChannelName)
		if err != nil {
			return err
		}
		if to.IsEmpty() {
			c.metrics.skipCount.Add(1)
			log.Debug("no recipient, skip")
			return nil
		}
		msg.To(to)
	}

	st := time.Now()
	name, err := c.transport.Send(ctx, msg.Format())
	c.metrics.observe(time.Since(st))
	if err != nil {
		c.metrics.errorCount.Add(1)
		log.Warn("fcm send error", zap.Error(err), zap.Duration("dur", time.Since(st)))
		return err
	}
	c.metrics.sendCount.Add(1)
	log.Debug("push sent", zap.String("name", name), zap.Duration("dur", time.Since(st)))
	return nil
}
