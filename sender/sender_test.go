package sender

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/anyproto/any-sync/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/anyproto/anytype-fcm-notifier/channel"
	"github.com/anyproto/anytype-fcm-notifier/channel/mock_channel"
	"github.com/anyproto/anytype-fcm-notifier/domain"
	"github.com/anyproto/anytype-fcm-notifier/fcmmessage"
	"github.com/anyproto/anytype-fcm-notifier/queue"
	"github.com/anyproto/anytype-fcm-notifier/queue/mock_queue"
	"github.com/anyproto/anytype-fcm-notifier/repo/accountrepo"
	"github.com/anyproto/anytype-fcm-notifier/repo/accountrepo/mock_accountrepo"
	"github.com/anyproto/anytype-fcm-notifier/repo/tokenrepo"
	"github.com/anyproto/anytype-fcm-notifier/repo/tokenrepo/mock_tokenrepo"
)

var ctx = context.Background()

var unregistered = &channel.SendError{StatusCode: http.StatusNotFound, Status: "NOT_FOUND", ErrorCode: "UNREGISTERED"}

func TestSender_SendMessage(t *testing.T) {
	notification := domain.PushNotification{Title: "hello"}

	t.Run("per token", func(t *testing.T) {
		fx := newFixture(t)
		fx.tokenRepo.EXPECT().GetActiveTokensByAccountIds(gomock.Any(), []string{"a1", "a2"}).Return([]domain.Token{
			{Id: "t1", AccountId: "a1"},
			{Id: "t2", AccountId: "a2"},
		}, nil)
		fx.channel.EXPECT().Send(gomock.Any(), channel.Route(fcmmessage.Token("t1")), notification).Return(nil)
		fx.channel.EXPECT().Send(gomock.Any(), channel.Route(fcmmessage.Token("t2")), notification).Return(nil)

		require.NoError(t, fx.SendMessage(queue.Message{Id: "1", AccountIds: []string{"a1", "a2"}, Notification: notification}))
	})
	t.Run("groups", func(t *testing.T) {
		fx := newFixture(t)
		fx.accountRepo.EXPECT().GetAccountIdsByGroups(gomock.Any(), []string{"g1"}).Return([]string{"a2", "a3", "a1"}, nil)
		fx.tokenRepo.EXPECT().GetActiveTokensByAccountIds(gomock.Any(), []string{"a1", "a3"}).Return([]domain.Token{{Id: "t1"}}, nil)
		fx.channel.EXPECT().Send(gomock.Any(), channel.Route(fcmmessage.Token("t1")), notification).Return(nil)

		require.NoError(t, fx.SendMessage(queue.Message{
			Id:              "1",
			AccountIds:      []string{"a1"},
			Groups:          []string{"g1"},
			IgnoreAccountId: "a2",
			Notification:    notification,
		}))
	})
	t.Run("no accounts", func(t *testing.T) {
		fx := newFixture(t)
		fx.accountRepo.EXPECT().GetAccountIdsByGroups(gomock.Any(), []string{"g1"}).Return(nil, nil)
		fx.channel.EXPECT().Send(gomock.Any(), channel.Route(fcmmessage.Tokens()), notification).Return(nil)

		require.NoError(t, fx.SendMessage(queue.Message{Id: "1", Groups: []string{"g1"}, Notification: notification}))
	})
	t.Run("no tokens", func(t *testing.T) {
		fx := newFixture(t)
		fx.tokenRepo.EXPECT().GetActiveTokensByAccountIds(gomock.Any(), []string{"a1"}).Return(nil, nil)
		fx.channel.EXPECT().Send(gomock.Any(), channel.Route(fcmmessage.Tokens()), notification).Return(nil)

		require.NoError(t, fx.SendMessage(queue.Message{Id: "1", AccountIds: []string{"a1"}, Notification: notification}))
	})
	t.Run("topic", func(t *testing.T) {
		fx := newFixture(t)
		topicNotification := domain.PushNotification{Title: "hello", Topic: "news"}
		fx.channel.EXPECT().Send(gomock.Any(), nil, topicNotification).Return(nil)

		require.NoError(t, fx.SendMessage(queue.Message{Id: "1", AccountIds: []string{"a1"}, Notification: topicNotification}))
	})
	t.Run("repo error", func(t *testing.T) {
		fx := newFixture(t)
		expErr := errors.New("mongo down")
		fx.tokenRepo.EXPECT().GetActiveTokensByAccountIds(gomock.Any(), []string{"a1"}).Return(nil, expErr)

		assert.ErrorIs(t, fx.SendMessage(queue.Message{Id: "1", AccountIds: []string{"a1"}, Notification: notification}), expErr)
	})
	t.Run("send error", func(t *testing.T) {
		fx := newFixture(t)
		expErr := errors.New("timeout")
		fx.tokenRepo.EXPECT().GetActiveTokensByAccountIds(gomock.Any(), []string{"a1"}).Return([]domain.Token{{Id: "t1"}}, nil)
		fx.channel.EXPECT().Send(gomock.Any(), channel.Route(fcmmessage.Token("t1")), notification).Return(expErr)

		assert.ErrorIs(t, fx.SendMessage(queue.Message{Id: "1", AccountIds: []string{"a1"}, Notification: notification}), expErr)
	})
	t.Run("partial failure", func(t *testing.T) {
		fx := newFixture(t)
		fx.tokenRepo.EXPECT().GetActiveTokensByAccountIds(gomock.Any(), []string{"a1"}).Return([]domain.Token{{Id: "t1"}, {Id: "t2"}}, nil)
		fx.channel.EXPECT().Send(gomock.Any(), channel.Route(fcmmessage.Token("t1")), notification).Return(errors.New("timeout"))
		fx.channel.EXPECT().Send(gomock.Any(), channel.Route(fcmmessage.Token("t2")), notification).Return(nil)

		assert.NoError(t, fx.SendMessage(queue.Message{Id: "1", AccountIds: []string{"a1"}, Notification: notification}))
	})
}

func TestSender_InvalidTokens(t *testing.T) {
	fx := newFixture(t)
	notification := domain.PushNotification{Body: "body"}
	fx.tokenRepo.EXPECT().GetActiveTokensByAccountIds(gomock.Any(), []string{"a1"}).Return([]domain.Token{{Id: "t1"}, {Id: "t2"}}, nil)
	fx.channel.EXPECT().Send(gomock.Any(), channel.Route(fcmmessage.Token("t1")), notification).Return(unregistered)
	fx.channel.EXPECT().Send(gomock.Any(), channel.Route(fcmmessage.Token("t2")), notification).Return(nil)

	marked := make(chan []string, 1)
	fx.tokenRepo.EXPECT().MarkInvalid(gomock.Any(), []string{"t1"}).DoAndReturn(func(ctx context.Context, ids []string) error {
		marked <- ids
		return nil
	})

	require.NoError(t, fx.SendMessage(queue.Message{Id: "1", AccountIds: []string{"a1"}, Notification: notification}))
	select {
	case ids := <-marked:
		assert.Equal(t, []string{"t1"}, ids)
	case <-time.After(invalidBatchDelay * 3):
		t.Fatal("invalid tokens were not marked")
	}
}

func TestSender_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	fx := &fixture{
		Sender:      New(),
		a:           new(app.App),
		accountRepo: mock_accountrepo.NewMockAccountRepo(ctrl),
		tokenRepo:   mock_tokenrepo.NewMockTokenRepo(ctrl),
		queue:       mock_queue.NewMockQueue(ctrl),
		channel:     mock_channel.NewMockChannel(ctrl),
	}
	fx.expectComponents()
	fx.queue.EXPECT().Workers().Return(3)
	fx.queue.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(nil).Times(3)
	fx.start(t)
}

type fixture struct {
	Sender
	a           *app.App
	accountRepo *mock_accountrepo.MockAccountRepo
	tokenRepo   *mock_tokenrepo.MockTokenRepo
	queue       *mock_queue.MockQueue
	channel     *mock_channel.MockChannel
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	fx := &fixture{
		Sender:      New(),
		a:           new(app.App),
		accountRepo: mock_accountrepo.NewMockAccountRepo(ctrl),
		tokenRepo:   mock_tokenrepo.NewMockTokenRepo(ctrl),
		queue:       mock_queue.NewMockQueue(ctrl),
		channel:     mock_channel.NewMockChannel(ctrl),
	}
	fx.expectComponents()
	fx.queue.EXPECT().Workers().Return(1).AnyTimes()
	fx.queue.EXPECT().Consume(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	fx.start(t)
	return fx
}

func (fx *fixture) expectComponents() {
	fx.accountRepo.EXPECT().Name().Return(accountrepo.CName).AnyTimes()
	fx.accountRepo.EXPECT().Init(gomock.Any()).AnyTimes()
	fx.accountRepo.EXPECT().Run(gomock.Any()).AnyTimes()
	fx.accountRepo.EXPECT().Close(gomock.Any()).AnyTimes()
	fx.tokenRepo.EXPECT().Name().Return(tokenrepo.CName).AnyTimes()
	fx.tokenRepo.EXPECT().Init(gomock.Any()).AnyTimes()
	fx.tokenRepo.EXPECT().Run(gomock.Any()).AnyTimes()
	fx.tokenRepo.EXPECT().Close(gomock.Any()).AnyTimes()
	fx.queue.EXPECT().Name().Return(queue.CName).AnyTimes()
	fx.queue.EXPECT().Init(gomock.Any()).AnyTimes()
	fx.queue.EXPECT().Run(gomock.Any()).AnyTimes()
	fx.queue.EXPECT().Close(gomock.Any()).AnyTimes()
	fx.channel.EXPECT().Name().Return(channel.CName).AnyTimes()
	fx.channel.EXPECT().Init(gomock.Any()).AnyTimes()
}

func (fx *fixture) start(t *testing.T) {
	fx.a.Register(fx.accountRepo).
		Register(fx.tokenRepo).
		Register(fx.queue).
		Register(fx.channel).
		Register(fx.Sender)
	require.NoError(t, fx.a.Start(ctx))
	t.Cleanup(func() {
		require.NoError(t, fx.a.Close(ctx))
	})
}
