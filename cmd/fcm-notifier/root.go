package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/anyproto/anytype-fcm-notifier/config"
)

var log = logger.NewNamed("main")

var configFile string

var rootCmd = &cobra.Command{
	Use:           "fcm-notifier",
	Short:         "Firebase Cloud Messaging notification sender",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "etc/fcm-notifier.yml", "path to config file")
	if envFile := os.Getenv("FCM_NOTIFIER_CONFIG"); envFile != "" {
		configFile = envFile
	}
	rootCmd.AddCommand(sendCmd, enqueueCmd, serveCmd, tokenCmd, accountCmd, versionCmd)
	rootCmd.Version = Version
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	conf, err := config.NewFromFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("can't open config file: %w", err)
	}
	conf.Log.ApplyGlobal()
	return conf, nil
}

// startApp registers the config and the given components and starts them.
func startApp(ctx context.Context, conf *config.Config, components ...app.Component) (*app.App, error) {
	a := new(app.App)
	a.Register(conf)
	for _, c := range components {
		a.Register(c)
	}
	st := time.Now()
	if err := a.Start(ctx); err != nil {
		closeApp(a)
		return nil, err
	}
	log.Debug("app started", zap.Duration("duration", time.Since(st)))
	return a, nil
}

func closeApp(a *app.App) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := a.Close(ctx); err != nil {
		log.Error("close error", zap.Error(err))
	}
}
