// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"strings"

	"github.com/spf13/viper"
	"github.com/xtrex-cli/xtrex/constant"
	"github.com/xtrex-cli/xtrex/key"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Xtrex + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// Current returns the effective value of the field, after config file and environment overrides.
func (f *Field) Current() any {
	return viper.Get(f.Key)
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	// register validates and adds a new configuration field to the global registry.
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		f := Field{Key: k, Value: v, Description: desc}
		Default[k] = f
		EnvExposed = append(EnvExposed, k)
	}

	register(key.OutputDir, ".", "Directory where catalog CSV files are written")
	register(key.OutputDelimiter, ",", "Field delimiter used in exported files")
	register(key.ExtractTypes, []string{"live", "vod", "series"}, "Content types to extract.\nAny subset of: live, vod, series")
	register(key.ExtractConcurrent, true, "Extract provider/content-type cells concurrently.\nDisable to process cells one at a time")
	register(key.NetworkTimeoutSeconds, 60, "Per-request timeout for panel API calls, in seconds")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
}
