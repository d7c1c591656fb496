// Package cmd implements the command-line interface for xtrex.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AlecAivazis/survey/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/xtrex-cli/xtrex/auth"
	"github.com/xtrex-cli/xtrex/config"
	"github.com/xtrex-cli/xtrex/constant"
	"github.com/xtrex-cli/xtrex/key"
	"github.com/xtrex-cli/xtrex/style"
	"github.com/xtrex-cli/xtrex/where"
)

func init() {
	rootCmd.AddCommand(providersCmd)
}

// providersCmd provides a parent command for managing configured panel accounts.
var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "Manage configured panel accounts",
}

func init() {
	providersCmd.AddCommand(providersListCmd)
	providersListCmd.Flags().BoolP("raw", "r", false, "Suppress styling in the output")
	providersListCmd.SetOut(os.Stdout)
}

// providersListCmd displays all configured panel accounts.
var providersListCmd = &cobra.Command{
	Use:   "list",
	Short: "Display all configured panel accounts",
	Run: func(cmd *cobra.Command, args []string) {
		providers, err := config.Providers()
		handleErr(err)

		if len(providers) == 0 {
			cmd.Println("no providers configured")
			return
		}

		raw := lo.Must(cmd.Flags().GetBool("raw"))
		for _, p := range providers {
			if raw {
				cmd.Printf("%s\t%s\n", p.Name, p.URL)
				continue
			}
			cmd.Printf("%s %s\n", style.Bold(p.Name), style.Faint(p.URL))
		}
	},
}

func init() {
	providersCmd.AddCommand(providersAddCmd)
	providersAddCmd.Flags().BoolP("keyring", "k", false, "Store the password in the system keyring instead of the config file")
}

// providersAddCmd interactively appends a panel account to the configuration file.
var providersAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Interactively add a panel account to the configuration",
	Run: func(cmd *cobra.Command, args []string) {
		var answers struct {
			Name     string
			URL      string
			Username string
			Password string
		}

		questions := []*survey.Question{
			{
				Name:     "name",
				Prompt:   &survey.Input{Message: "Provider name:"},
				Validate: survey.Required,
			},
			{
				Name:     "url",
				Prompt:   &survey.Input{Message: "Panel base URL:", Help: "e.g. http://panel.example.com:8080"},
				Validate: survey.Required,
			},
			{
				Name:     "username",
				Prompt:   &survey.Input{Message: "Username:"},
				Validate: survey.Required,
			},
			{
				Name:     "password",
				Prompt:   &survey.Password{Message: "Password:"},
				Validate: survey.Required,
			},
		}
		handleErr(survey.Ask(questions, &answers))

		entry := map[string]any{
			"name":     answers.Name,
			"url":      answers.URL,
			"username": answers.Username,
			"password": answers.Password,
		}

		if lo.Must(cmd.Flags().GetBool("keyring")) {
			handleErr(auth.SetPassword(answers.Name, answers.Password))
			entry["password"] = ""
		}

		var existing []map[string]any
		handleErr(viper.UnmarshalKey(key.Providers, &existing))
		for _, p := range existing {
			if p["name"] == answers.Name {
				handleErr(fmt.Errorf("provider %q already configured", answers.Name))
			}
		}

		viper.Set(key.Providers, append(existing, entry))
		path := filepath.Join(where.Config(), constant.Xtrex+".toml")
		handleErr(viper.WriteConfigAs(path))

		cmd.Printf("added provider %s to %s\n", style.Bold(answers.Name), path)
	},
}
