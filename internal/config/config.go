// Package config layers z80dec's runtime configuration over a config
// file, environment variables, and command-line flags, in that order
// of increasing precedence.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the settings z80dec's subcommands read after Load
// resolves config file, environment, and flag precedence.
type Config struct {
	LogLevel     string `mapstructure:"log-level"`
	StartAddress uint16 `mapstructure:"start-address"`
	Format       string `mapstructure:"format"`
}

// Load builds a Config from (lowest to highest precedence) the
// package defaults, an optional config file, Z80DEC_-prefixed
// environment variables, and flags already registered on fs.
func Load(fs *pflag.FlagSet, configFile string) (Config, error) {
	v := viper.New()

	v.SetDefault("log-level", "info")
	v.SetDefault("start-address", 0)
	v.SetDefault("format", "text")

	v.SetEnvPrefix("z80dec")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "reading config file %q", configFile)
		}
	}

	if err := v.BindPFlags(fs); err != nil {
		return Config{}, errors.Wrap(err, "binding flags")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "unmarshaling config")
	}
	return cfg, nil
}
