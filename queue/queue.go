//go:generate mockgen -destination mock_queue/mock_queue.go github.com/anyproto/anytype-fcm-notifier/queue Queue

package queue

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/adjust/rmq/v5"
	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/anyproto/anytype-fcm-notifier/domain"
	"github.com/anyproto/anytype-fcm-notifier/redisprovider"
)

const CName = "fcm.queue"

const (
	defaultTag     = "fcm-notifier"
	defaultName    = "notifications"
	defaultWorkers = 10
)

var log = logger.NewNamed(CName)

type Config struct {
	Tag     string `yaml:"tag"`
	Name    string `yaml:"name"`
	Workers int    `yaml:"workers"`
}

func (c Config) withDefaults() Config {
	if c.Tag == "" {
		c.Tag = defaultTag
	}
	if c.Name == "" {
		c.Name = defaultName
	}
	if c.Workers <= 0 {
		c.Workers = defaultWorkers
	}
	return c
}

type configSource interface {
	GetQueue() Config
}

func New() Queue {
	return new(queue)
}

// Message is a notification addressed to the devices of the given accounts
// and of the members of the given groups.
type Message struct {
	Id              string                  `json:"id"`
	AccountIds      []string                `json:"accountIds"`
	Groups          []string                `json:"groups,omitempty"`
	IgnoreAccountId string                  `json:"ignoreAccountId,omitempty"`
	Notification    domain.PushNotification `json:"notification"`
	Created         time.Time               `json:"created"`
}

type Queue interface {
	Add(ctx context.Context, msg Message) error
	Consume(ctx context.Context, handle func(msg Message) error) error
	Workers() int
	app.ComponentRunnable
}

type queue struct {
	conf         Config
	client       redis.UniversalClient
	rmqConn      rmq.Connection
	queue        rmq.Queue
	errCh        chan error
	runCtx       context.Context
	runCtxCancel context.CancelFunc
}

func (q *queue) Init(a *app.App) (err error) {
	q.client = a.MustComponent(redisprovider.CName).(redisprovider.RedisProvider).Redis()
	if cs, ok := a.Component("config").(configSource); ok {
		q.conf = cs.GetQueue()
	}
	q.conf = q.conf.withDefaults()
	q.runCtx, q.runCtxCancel = context.WithCancel(context.Background())
	return
}

func (q *queue) Name() (name string) {
	return CName
}

func (q *queue) Run(ctx context.Context) (err error) {
	q.errCh = make(chan error, 10)
	if q.rmqConn, err = rmq.OpenClusterConnection(q.conf.Tag, q.client, q.errCh); err != nil {
		return err
	}
	go q.handleRmqErrs()
	if q.queue, err = q.rmqConn.OpenQueue(q.conf.Name); err != nil {
		return err
	}
	return q.queue.StartConsuming(int64(q.conf.Workers), time.Millisecond*100)
}

func (q *queue) Workers() int {
	return q.conf.Workers
}

func (q *queue) Add(ctx context.Context, msg Message) error {
	if msg.Id == "" {
		msg.Id = uuid.NewString()
	}
	if msg.Created.IsZero() {
		msg.Created = time.Now()
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return q.queue.Publish(string(data))
}

func (q *queue) Consume(ctx context.Context, handle func(msg Message) error) error {
	cons := func(delivery rmq.Delivery) {
		select {
		case <-q.runCtx.Done():
			_ = delivery.Reject()
			return
		case <-ctx.Done():
			_ = delivery.Reject()
			return
		default:
		}
		msg, err := decodeMessage(delivery.Payload())
		if err != nil {
			log.Warn("invalid queue message", zap.Error(err))
			_ = delivery.Reject()
			return
		}
		if err = handle(msg); err != nil {
			log.Warn("handle queue message error", zap.String("id", msg.Id), zap.Error(err))
			_ = delivery.Reject()
		} else {
			_ = delivery.Ack()
		}
	}
	_, err := q.queue.AddConsumerFunc(q.conf.Tag, cons)
	return err
}

// decodeMessage keeps numbers of the notification data as json.Number, so large integers are not rounded.
func decodeMessage(payload string) (msg Message, err error) {
	dec := json.NewDecoder(strings.NewReader(payload))
	dec.UseNumber()
	err = dec.Decode(&msg)
	return
}

func (q *queue) handleRmqErrs() {
	for {
		select {
		case <-q.runCtx.Done():
			return
		case err := <-q.errCh:
			log.Warn("rmq error", zap.Error(err))
		}
	}
}

func (q *queue) Close(ctx context.Context) (err error) {
	if q.runCtxCancel != nil {
		q.runCtxCancel()
	}
	if q.queue != nil {
		done := q.queue.StopConsuming()
		<-done
	}
	return nil
}
