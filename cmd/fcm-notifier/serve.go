package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/metric"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/anyproto/anytype-fcm-notifier/channel"
	"github.com/anyproto/anytype-fcm-notifier/db"
	"github.com/anyproto/anytype-fcm-notifier/queue"
	"github.com/anyproto/anytype-fcm-notifier/redisprovider"
	"github.com/anyproto/anytype-fcm-notifier/repo/accountrepo"
	"github.com/anyproto/anytype-fcm-notifier/repo/tokenrepo"
	"github.com/anyproto/anytype-fcm-notifier/sender"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Deliver queued notifications until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		conf, err := loadConfig()
		if err != nil {
			return err
		}
		startCtx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
		defer cancel()
		a, err := startApp(startCtx, conf, serveComponents()...)
		if err != nil {
			return fmt.Errorf("can't start app: %w", err)
		}
		log.Info("app started")

		exit := make(chan os.Signal, 1)
		signal.Notify(exit, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
		sig := <-exit
		log.Info("received exit signal, stop app...", zap.String("signal", fmt.Sprint(sig)))
		closeApp(a)
		log.Info("goodbye!")
		return nil
	},
}

// serveComponents returns the worker components in registration order; metric goes before the channel.
func serveComponents() []app.Component {
	return []app.Component{
		metric.New(),
		db.New(),
		accountrepo.New(),
		tokenrepo.New(),
		redisprovider.New(),
		queue.New(),
		channel.New(),
		sender.New(),
	}
}
