package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anyproto/anytype-fcm-notifier/db"
	"github.com/anyproto/anytype-fcm-notifier/domain"
	"github.com/anyproto/anytype-fcm-notifier/repo/tokenrepo"
)

var (
	tokenAccount  string
	tokenPeer     string
	tokenPlatform string
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage device tokens",
}

var tokenAddCmd = &cobra.Command{
	Use:   "add <token>",
	Short: "Register a device token for an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		platform, err := domain.ParsePlatform(tokenPlatform)
		if err != nil {
			return err
		}
		return withTokenRepo(cmd, func(repo tokenrepo.TokenRepo) error {
			return repo.AddToken(cmd.Context(), domain.Token{
				Id:        args[0],
				AccountId: tokenAccount,
				PeerId:    tokenPeer,
				Platform:  platform,
				Status:    domain.TokenStatusValid,
			})
		})
	},
}

var tokenRevokeCmd = &cobra.Command{
	Use:   "revoke",
	Short: "Remove the token of an account peer",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTokenRepo(cmd, func(repo tokenrepo.TokenRepo) error {
			return repo.RevokeToken(cmd.Context(), tokenAccount, tokenPeer)
		})
	},
}

var tokenInvalidateCmd = &cobra.Command{
	Use:   "invalidate <token>",
	Short: "Mark a device token invalid, it stays stored but gets no pushes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTokenRepo(cmd, func(repo tokenrepo.TokenRepo) error {
			return repo.UpdateTokenStatus(cmd.Context(), args[0], domain.TokenStatusInvalid)
		})
	},
}

var tokenRemoveCmd = &cobra.Command{
	Use:   "remove <token>...",
	Short: "Delete device tokens",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withTokenRepo(cmd, func(repo tokenrepo.TokenRepo) error {
			return repo.RemoveTokens(cmd.Context(), args)
		})
	},
}

// openTokenRepo starts the components the token commands need.
var openTokenRepo = func(cmd *cobra.Command) (repo tokenrepo.TokenRepo, closeFn func(), err error) {
	conf, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	a, err := startApp(cmd.Context(), conf, db.New(), tokenrepo.New())
	if err != nil {
		return nil, nil, err
	}
	return a.MustComponent(tokenrepo.CName).(tokenrepo.TokenRepo), func() { closeApp(a) }, nil
}

func withTokenRepo(cmd *cobra.Command, f func(repo tokenrepo.TokenRepo) error) error {
	repo, closeFn, err := openTokenRepo(cmd)
	if err != nil {
		return err
	}
	defer closeFn()
	if err = f(repo); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "ok")
	return nil
}

func init() {
	for _, c := range []*cobra.Command{tokenAddCmd, tokenRevokeCmd} {
		c.Flags().StringVar(&tokenAccount, "account", "", "account id")
		c.Flags().StringVar(&tokenPeer, "peer", "", "peer id")
		_ = c.MarkFlagRequired("account")
		_ = c.MarkFlagRequired("peer")
	}
	tokenAddCmd.Flags().StringVar(&tokenPlatform, "platform", "android", "ios or android")
	tokenCmd.AddCommand(tokenAddCmd, tokenRevokeCmd, tokenInvalidateCmd, tokenRemoveCmd)
}
