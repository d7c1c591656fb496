// Package cmd implements the command-line interface for xtrex.
package cmd

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/xtrex-cli/xtrex/config"
	"github.com/xtrex-cli/xtrex/filesystem"
	"github.com/xtrex-cli/xtrex/key"
	"github.com/xtrex-cli/xtrex/network"
	"github.com/xtrex-cli/xtrex/style"
	"github.com/xtrex-cli/xtrex/util"
	"github.com/xtrex-cli/xtrex/xtream"
)

func init() {
	rootCmd.AddCommand(m3uCmd)
	m3uCmd.Flags().String("type", "m3u_plus", "Playlist type requested from the panel")
	m3uCmd.Flags().String("format", "ts", "Container format requested from the panel (ts, m3u8)")
	m3uCmd.SetOut(os.Stdout)
}

// m3uCmd downloads the raw M3U playlist for every configured provider.
var m3uCmd = &cobra.Command{
	Use:   "m3u",
	Short: "Download the M3U playlist for every configured provider",
	Run: func(cmd *cobra.Command, args []string) {
		providers, err := config.Providers()
		handleErr(err)

		kind := lo.Must(cmd.Flags().GetString("type"))
		format := lo.Must(cmd.Flags().GetString("format"))
		dir := viper.GetString(key.OutputDir)
		timeout := time.Duration(viper.GetInt(key.NetworkTimeoutSeconds)) * time.Second
		httpClient := network.WithTimeout(timeout)

		for _, p := range providers {
			client := xtream.New(p.Name, p.URL, p.Username, p.Password, httpClient)
			playlist, err := client.Playlist(context.Background(), kind, format)
			if err != nil {
				cmd.Printf("%s %s: %v\n", style.Fg(style.ErrorColor)("✗"), style.Bold(p.Name), err)
				continue
			}

			path := filepath.Join(dir, util.SanitizeFilename(p.Name)+".m3u")
			if err := filesystem.API().WriteFile(path, []byte(playlist), 0644); err != nil {
				cmd.Printf("%s %s: %v\n", style.Fg(style.ErrorColor)("✗"), style.Bold(p.Name), err)
				continue
			}

			cmd.Printf("%s %s: playlist saved to %s\n", style.Fg(style.SuccessColor)("✓"), style.Bold(p.Name), path)
		}
	},
}
