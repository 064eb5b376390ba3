package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anyproto/anytype-fcm-notifier/queue"
	"github.com/anyproto/anytype-fcm-notifier/redisprovider"
)

var (
	enqueueFlags    notificationFlags
	enqueueAccounts []string
	enqueueGroups   []string
	enqueueIgnore   string
)

var enqueueCmd = &cobra.Command{
	Use:   "enqueue",
	Short: "Queue a notification for the devices of the given accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := enqueueFlags.notification(cmd.Flags())
		if err != nil {
			return err
		}
		if len(enqueueAccounts) == 0 && len(enqueueGroups) == 0 && !enqueueFlags.hasTarget() {
			return errors.New("no recipient: pass --account, --group, --topic or --condition")
		}
		conf, err := loadConfig()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		a, err := startApp(ctx, conf, redisprovider.New(), queue.New())
		if err != nil {
			return err
		}
		defer closeApp(a)

		msg := queue.Message{
			AccountIds:      enqueueAccounts,
			Groups:          enqueueGroups,
			IgnoreAccountId: enqueueIgnore,
			Notification:    n,
		}
		if err = a.MustComponent(queue.CName).(queue.Queue).Add(ctx, msg); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "queued")
		return nil
	},
}

func init() {
	enqueueFlags.bind(enqueueCmd.Flags())
	enqueueCmd.Flags().StringSliceVarP(&enqueueAccounts, "account", "a", nil, "account id, repeatable")
	enqueueCmd.Flags().StringSliceVarP(&enqueueGroups, "group", "g", nil, "account group, repeatable")
	enqueueCmd.Flags().StringVar(&enqueueIgnore, "ignore-account", "", "account id to leave out, usually the sender")
}
