// Package cmd implements the command-line interface for xtrex.
package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/xtrex-cli/xtrex/config"
	"github.com/xtrex-cli/xtrex/constant"
	"github.com/xtrex-cli/xtrex/extract"
	"github.com/xtrex-cli/xtrex/key"
	"github.com/xtrex-cli/xtrex/log"
	"github.com/xtrex-cli/xtrex/style"
	"github.com/xtrex-cli/xtrex/util"
	"github.com/xtrex-cli/xtrex/xtream"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("output", "o", "", "Directory where exported files are written")
	lo.Must0(viper.BindPFlag(key.OutputDir, rootCmd.PersistentFlags().Lookup("output")))

	rootCmd.Flags().StringSliceP("types", "t", nil, "Content types to extract (live, vod, series)")
	lo.Must0(viper.BindPFlag(key.ExtractTypes, rootCmd.Flags().Lookup("types")))

	rootCmd.Flags().StringSliceP("provider", "p", nil, "Extract only providers matching these names")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("provider", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return providerNameCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	}))

	rootCmd.Flags().Bool("sequential", false, "Process provider/content-type cells one at a time")

	rootCmd.SetOut(os.Stdout)
}

// rootCmd defines the entry point for xtrex: a full catalog extraction run.
var rootCmd = &cobra.Command{
	Use:   constant.Xtrex,
	Short: "Export IPTV panel catalogs as CSV files",
	Long: `Retrieve live, VOD and series catalogs from every configured Xtream panel account,
resolve category names, and write one CSV file per provider and content type.`,
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		providers, err := config.Providers()
		handleErr(err)

		if filter := lo.Must(cmd.Flags().GetStringSlice("provider")); len(filter) > 0 {
			providers = filterProviders(providers, filter)
		}
		if len(providers) == 0 {
			handleErr(fmt.Errorf("no providers configured; add one with '%s providers add'", constant.Xtrex))
		}

		types, err := contentTypes(viper.GetStringSlice(key.ExtractTypes))
		handleErr(err)

		concurrent := viper.GetBool(key.ExtractConcurrent)
		if lo.Must(cmd.Flags().GetBool("sequential")) {
			concurrent = false
		}

		outcomes := extract.Run(context.Background(), &extract.Options{
			Providers:  providers,
			Dir:        viper.GetString(key.OutputDir),
			Types:      types,
			Concurrent: concurrent,
			Stamp:      mo.None[string](),
		})

		printReport(cmd, outcomes)

		failed := lo.CountBy(outcomes, extract.Outcome.Failed)
		if failed == len(outcomes) {
			os.Exit(1)
		}
	},
}

// printReport renders the per-cell outcome table for a finished run.
func printReport(cmd *cobra.Command, outcomes []extract.Outcome) {
	ok := style.Fg(style.SuccessColor)
	warn := style.Fg(style.WarningColor)
	fail := style.Fg(style.ErrorColor)

	for _, outcome := range outcomes {
		label := fmt.Sprintf("%s/%s", outcome.Provider, outcome.Type)

		switch {
		case outcome.Failed():
			cmd.Printf("%s %s: %v\n", fail("✗"), style.Bold(label), outcome.Err)
		case outcome.Rows == 0:
			cmd.Printf("%s %s: empty catalog, header-only %s\n", warn("!"), style.Bold(label), outcome.Path.MustGet())
		default:
			cmd.Printf("%s %s: %s -> %s\n", ok("✓"), style.Bold(label), util.Quantify(outcome.Rows, "row", "rows"), outcome.Path.MustGet())
		}
	}

	failed := lo.CountBy(outcomes, extract.Outcome.Failed)
	cmd.Printf("\n%s extracted, %s failed\n",
		util.Quantify(len(outcomes)-failed, "cell", "cells"),
		util.Quantify(failed, "cell", "cells"))
}

// filterProviders keeps providers whose names fuzzy-match any of the given patterns.
func filterProviders(providers []config.Provider, patterns []string) []config.Provider {
	return lo.Filter(providers, func(p config.Provider, _ int) bool {
		for _, pattern := range patterns {
			if strings.EqualFold(p.Name, pattern) || fuzzy.MatchFold(pattern, p.Name) {
				return true
			}
		}
		return false
	})
}

// contentTypes parses the configured content type names.
func contentTypes(names []string) ([]xtream.ContentType, error) {
	types := make([]xtream.ContentType, 0, len(names))
	for _, name := range names {
		ct, err := xtream.ParseContentType(strings.ToLower(strings.TrimSpace(name)))
		if err != nil {
			return nil, err
		}
		types = append(types, ct)
	}
	return types, nil
}

// providerNameCompletions returns configured provider names matching the partial input.
func providerNameCompletions(toComplete string) []string {
	providers, err := config.Providers()
	if err != nil {
		return nil
	}

	names := lo.Map(providers, func(p config.Provider, _ int) string { return p.Name })
	if toComplete == "" {
		return names
	}
	return fuzzy.FindFold(toComplete, names)
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "✗ %s\n", strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
