package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/anyproto/anytype-fcm-notifier/channel"
	"github.com/anyproto/anytype-fcm-notifier/fcmmessage"
)

var (
	errNoRecipient       = errors.New("no recipient: pass --token, --topic or --condition")
	errRecipientConflict = errors.New("--token can't be combined with --topic or --condition")
)

var (
	sendFlags  notificationFlags
	sendTokens []string
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send a notification synchronously",
	Long:  "Send a notification directly to FCM. Every --token gets its own request.",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := sendFlags.notification(cmd.Flags())
		if err != nil {
			return err
		}
		if len(sendTokens) == 0 && !sendFlags.hasTarget() {
			return errNoRecipient
		}
		if len(sendTokens) > 0 && sendFlags.hasTarget() {
			return errRecipientConflict
		}
		conf, err := loadConfig()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		a, err := startApp(ctx, conf, channel.New())
		if err != nil {
			return err
		}
		defer closeApp(a)
		ch := a.MustComponent(channel.CName).(channel.Channel)

		if sendFlags.hasTarget() {
			if err = ch.Send(ctx, nil, n); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "sent")
			return nil
		}
		var failed int
		for _, token := range sendTokens {
			if err = ch.Send(ctx, channel.Route(fcmmessage.Token(token)), n); err != nil {
				failed++
				log.Warn("send error", zap.String("token", token), zap.Error(err))
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", token, err)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: sent\n", token)
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d sends failed", failed, len(sendTokens))
		}
		return nil
	},
}

func init() {
	sendFlags.bind(sendCmd.Flags())
	sendCmd.Flags().StringArrayVarP(&sendTokens, "token", "t", nil, "device registration token, repeatable")
}
