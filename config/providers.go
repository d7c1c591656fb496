// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/xtrex-cli/xtrex/auth"
	"github.com/xtrex-cli/xtrex/key"
	"github.com/xtrex-cli/xtrex/log"
)

// Provider describes one configured panel account. Entries live in the
// config file's [[providers]] array and are immutable for the duration of a run.
type Provider struct {
	Name     string `mapstructure:"name"`
	URL      string `mapstructure:"url"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// Providers decodes the configured panel accounts. A provider whose password
// field is empty is completed from the system keyring; if the keyring has no
// entry either, the provider is returned as-is and the panel will reject it.
func Providers() ([]Provider, error) {
	var providers []Provider
	if err := viper.UnmarshalKey(key.Providers, &providers); err != nil {
		return nil, fmt.Errorf("decode providers: %w", err)
	}

	for i, p := range providers {
		if p.Name == "" {
			return nil, fmt.Errorf("provider #%d has no name", i+1)
		}
		if p.URL == "" {
			return nil, fmt.Errorf("provider %q has no url", p.Name)
		}

		if p.Password == "" {
			secret, err := auth.GetPassword(p.Name)
			if err != nil {
				log.Warnf("no keyring password for provider %s: %v", p.Name, err)
				continue
			}
			providers[i].Password = secret
		}
	}

	return providers, nil
}
