// Package cmd implements the command-line interface for xtrex.
package cmd

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/xtrex-cli/xtrex/config"
	"github.com/xtrex-cli/xtrex/key"
	"github.com/xtrex-cli/xtrex/network"
	"github.com/xtrex-cli/xtrex/style"
	"github.com/xtrex-cli/xtrex/xtream"
)

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.SetOut(os.Stdout)
}

// checkCmd queries get_user_info for every configured provider and reports account status.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify panel accounts and display their status",
	Long:  "Query every configured panel account for its subscription status, expiry date and connection limits.",
	Run: func(cmd *cobra.Command, args []string) {
		providers, err := config.Providers()
		handleErr(err)

		timeout := time.Duration(viper.GetInt(key.NetworkTimeoutSeconds)) * time.Second
		httpClient := network.WithTimeout(timeout)

		for _, p := range providers {
			client := xtream.New(p.Name, p.URL, p.Username, p.Password, httpClient)
			account, err := client.Account(context.Background())
			if err != nil {
				cmd.Printf("%s %s: %v\n", style.Fg(style.ErrorColor)("✗"), style.Bold(p.Name), err)
				continue
			}

			info := account.UserInfo
			cmd.Printf("%s %s: status=%s expires=%s connections=%s/%s\n",
				style.Fg(style.SuccessColor)("✓"),
				style.Bold(p.Name),
				info.Status,
				expiry(info.ExpDate),
				info.ActiveCons, info.MaxConnections)
		}
	},
}

// expiry renders a panel expiry value, which is a unix timestamp or empty for unlimited accounts.
func expiry(raw xtream.FlexID) string {
	if raw == "" {
		return "never"
	}
	seconds, err := strconv.ParseInt(raw.String(), 10, 64)
	if err != nil {
		return raw.String()
	}
	return time.Unix(seconds, 0).UTC().Format("2006-01-02")
}
