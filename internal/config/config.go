package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/justinabrahms/boardgames/internal/game"
)

type Config struct {
	Game GameConfig `mapstructure:"game"`
	Log  LogConfig  `mapstructure:"log"`
}

type GameConfig struct {
	Type        string `mapstructure:"type"` // "chess", "checkers" or empty to ask
	Modified    bool   `mapstructure:"modified"`
	AskModified bool   `mapstructure:"ask_modified"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// Load reads config.yaml from the working directory or ./config, then
// BOARDGAMES_* environment variables (BOARDGAMES_GAME_TYPE, ...).
func Load() (*Config, error) {
	return load(viper.New(), ".", "./config")
}

func load(v *viper.Viper, paths ...string) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	// Enable environment variables
	v.SetEnvPrefix("BOARDGAMES")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	v.SetDefault("game.type", "")
	v.SetDefault("game.modified", false)
	v.SetDefault("game.ask_modified", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", true)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Game.Type != "" {
		if _, err := game.ParseGameType(c.Game.Type); err != nil {
			return fmt.Errorf("invalid game.type: %w", err)
		}
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log.level: %w", err)
	}
	return nil
}

// GameType returns the configured game, or false when the player should be
// asked.
func (c *Config) GameType() (game.GameType, bool) {
	gt, err := game.ParseGameType(c.Game.Type)
	if err != nil {
		return "", false
	}
	return gt, true
}
