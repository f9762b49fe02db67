package cli

import (
	"fmt"
	"strings"

	"github.com/pi/bitbuf/md"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

const (
	OutputText = "text"
	OutputYAML = "yaml"

	EnvPrefix = "BITBUF"
)

type Config struct {
	Output    string `mapstructure:"output"`
	Group     int    `mapstructure:"group"`
	Separator string `mapstructure:"separator"`
	LogLevel  string `mapstructure:"log-level"`
	Workers   int    `mapstructure:"workers"`
}

func DefaultConfig() *Config {
	return &Config{
		Output:    OutputText,
		Group:     md.Byte,
		Separator: " ",
		LogLevel:  zapcore.WarnLevel.String(),
		Workers:   4,
	}
}

func (cfg *Config) Validate() error {
	if cfg.Output != OutputText && cfg.Output != OutputYAML {
		return fmt.Errorf("invalid `Output`; expected: %q or %q, given: %q", OutputText, OutputYAML, cfg.Output)
	}

	if cfg.Group < md.MinWidth || cfg.Group > md.MaxWidth {
		return fmt.Errorf("invalid `Group`; expected: [%d, %d], given: %d", md.MinWidth, md.MaxWidth, cfg.Group)
	}

	if _, err := zapcore.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("invalid `LogLevel`; expected: debug, info, warn or error, given: %q", cfg.LogLevel)
	}

	if cfg.Workers < 1 {
		return fmt.Errorf("invalid `Workers`; expected: >= 1, given: %d", cfg.Workers)
	}

	return nil
}

// NewViper returns a viper instance preloaded with the defaults and reading
// BITBUF_* environment variables.
func NewViper() *viper.Viper {
	v := viper.New()
	def := DefaultConfig()
	v.SetDefault("output", def.Output)
	v.SetDefault("group", def.Group)
	v.SetDefault("separator", def.Separator)
	v.SetDefault("log-level", def.LogLevel)
	v.SetDefault("workers", def.Workers)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// LoadConfig reads the optional config file into v and returns the merged,
// validated configuration. Flags bound to v take precedence over the file.
func LoadConfig(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(err, "failed to read config file")
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
