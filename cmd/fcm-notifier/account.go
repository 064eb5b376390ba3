package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anyproto/anytype-fcm-notifier/db"
	"github.com/anyproto/anytype-fcm-notifier/repo/accountrepo"
)

var accountGroups []string

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manage account groups",
}

var accountSetGroupsCmd = &cobra.Command{
	Use:   "set-groups <accountId>",
	Short: "Replace the groups of an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withAccountRepo(cmd, func(repo accountrepo.AccountRepo) error {
			if err := repo.SetAccountGroups(cmd.Context(), args[0], accountGroups); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		})
	},
}

var accountGroupsCmd = &cobra.Command{
	Use:   "groups <accountId>",
	Short: "Print the groups of an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withAccountRepo(cmd, func(repo accountrepo.AccountRepo) error {
			groups, err := repo.GetGroupsByAccountId(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(groups, "\n"))
			return nil
		})
	},
}

func withAccountRepo(cmd *cobra.Command, f func(repo accountrepo.AccountRepo) error) error {
	conf, err := loadConfig()
	if err != nil {
		return err
	}
	a, err := startApp(cmd.Context(), conf, db.New(), accountrepo.New())
	if err != nil {
		return err
	}
	defer closeApp(a)
	return f(a.MustComponent(accountrepo.CName).(accountrepo.AccountRepo))
}

func init() {
	accountSetGroupsCmd.Flags().StringSliceVarP(&accountGroups, "group", "g", nil, "group name, repeatable; none clears the groups")
	accountCmd.AddCommand(accountSetGroupsCmd, accountGroupsCmd)
}
