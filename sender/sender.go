// Package sender delivers queued notifications to the devices of their accounts.
package sender

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
	"github.com/anyproto/any-sync/metric"
	"github.com/cheggaaa/mb/v3"
	"go.uber.org/zap"

	"github.com/anyproto/anytype-fcm-notifier/channel"
	"github.com/anyproto/anytype-fcm-notifier/domain"
	"github.com/anyproto/anytype-fcm-notifier/fcmmessage"
	"github.com/anyproto/anytype-fcm-notifier/queue"
	"github.com/anyproto/anytype-fcm-notifier/repo/accountrepo"
	"github.com/anyproto/anytype-fcm-notifier/repo/tokenrepo"
)

const CName = "fcm.sender"

const (
	sendTimeout       = 30 * time.Second
	invalidBatchSize  = 10
	invalidBatchDelay = time.Second
)

var log = logger.NewNamed(CName)

func New() Sender {
	return new(sender)
}

type Sender interface {
	SendMessage(message queue.Message) (err error)
	app.ComponentRunnable
}

type sender struct {
	accountRepo   accountrepo.AccountRepo
	tokenRepo     tokenrepo.TokenRepo
	queue         queue.Queue
	channel       channel.Channel
	metric        metric.Metric
	invalidTokens *mb.MB[string]
	loopDone      chan struct{}
}

func (s *sender) Init(a *app.App) (err error) {
	s.accountRepo = a.MustComponent(accountrepo.CName).(accountrepo.AccountRepo)
	s.tokenRepo = a.MustComponent(tokenrepo.CName).(tokenrepo.TokenRepo)
	s.queue = a.MustComponent(queue.CName).(queue.Queue)
	s.channel = a.MustComponent(channel.CName).(channel.Channel)
	s.metric, _ = a.Component(metric.CName).(metric.Metric)
	s.invalidTokens = mb.New[string](100)
	return
}

func (s *sender) Name() (name string) {
	return CName
}

func (s *sender) Run(ctx context.Context) (err error) {
	s.loopDone = make(chan struct{})
	go s.markInvalidLoop()
	for range s.queue.Workers() {
		if err = s.queue.Consume(ctx, s.SendMessage); err != nil {
			return
		}
	}
	return
}

// SendMessage sends the notification once per active device token of the message accounts and group members.
// Topic and condition notifications are sent once, without a token lookup.
func (s *sender) SendMessage(message queue.Message) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	var (
		st           = time.Now()
		sent, failed int
	)
	defer func() {
		if s.metric != nil {
			s.metric.RequestLog(ctx, "sender.send",
				metric.TotalDur(time.Since(st)),
				zap.String("id", message.Id),
				zap.Int("sent", sent),
				zap.Int("failed", failed),
				zap.Error(err),
			)
		}
	}()

	notification := message.Notification
	if notification.Topic != "" || notification.Condition != "" {
		if err = s.channel.Send(ctx, nil, notification); err != nil {
			return
		}
		sent++
		return
	}

	accountIds, err := s.accountIds(ctx, message)
	if err != nil {
		return
	}
	var tokens []domain.Token
	if len(accountIds) > 0 {
		if tokens, err = s.tokenRepo.GetActiveTokensByAccountIds(ctx, accountIds); err != nil {
			return
		}
	}
	if len(tokens) == 0 {
		// the channel drops a notification with an empty route
		return s.channel.Send(ctx, channel.Route(fcmmessage.Tokens()), notification)
	}

	var sendErr error
	for _, token := range tokens {
		tErr := s.channel.Send(ctx, channel.Route(fcmmessage.Token(token.Id)), notification)
		if tErr == nil {
			sent++
			continue
		}
		failed++
		if channel.IsUnregistered(tErr) || channel.IsInvalidArgument(tErr) {
			log.Info("mark token as invalid", zap.String("token", token.Id), zap.Error(tErr))
			s.onInvalid(token.Id)
		} else {
			log.Warn("fcm returned error", zap.String("token", token.Id), zap.Error(tErr))
			sendErr = tErr
		}
	}
	if sent == 0 && sendErr != nil {
		return sendErr
	}
	log.Info("push sent", zap.String("id", message.Id), zap.Int("success", sent), zap.Int("failure", failed))
	return nil
}

func (s *sender) accountIds(ctx context.Context, message queue.Message) ([]string, error) {
	accountIds := slices.Clone(message.AccountIds)
	if len(message.Groups) > 0 {
		members, err := s.accountRepo.GetAccountIdsByGroups(ctx, message.Groups)
		if err != nil {
			return nil, err
		}
		accountIds = append(accountIds, members...)
	}
	slices.Sort(accountIds)
	accountIds = slices.Compact(accountIds)
	return slices.DeleteFunc(accountIds, func(id string) bool {
		return id == message.IgnoreAccountId
	}), nil
}

func (s *sender) onInvalid(token string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.invalidTokens.Add(ctx, token); err != nil {
		log.Warn("can't queue invalid token", zap.String("token", token), zap.Error(err))
	}
}

func (s *sender) markInvalidLoop() {
	defer close(s.loopDone)
	ctx := mb.CtxWithTimeLimit(context.Background(), invalidBatchDelay)
	cond := s.invalidTokens.NewCond().WithMin(invalidBatchSize)
	for {
		tokens, err := cond.Wait(ctx)
		if err != nil {
			if !errors.Is(err, mb.ErrClosed) {
				log.Error("invalid tokens wait error", zap.Error(err))
			}
			return
		}
		if len(tokens) == 0 {
			continue
		}
		st := time.Now()
		if err = s.tokenRepo.MarkInvalid(context.Background(), tokens); err != nil {
			log.Error("mark tokens invalid error", zap.Error(err))
		} else {
			log.Info("mark tokens invalid success", zap.Int("count", len(tokens)), zap.Duration("dur", time.Since(st)))
		}
	}
}

func (s *sender) Close(ctx context.Context) (err error) {
	if err = s.invalidTokens.Close(); err != nil || s.loopDone == nil {
		return
	}
	select {
	case <-s.loopDone:
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}
