package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Game     Game   `yaml:"game"`
	Rules    Rules  `yaml:"rules"`
	Sounds   Sounds `yaml:"sounds"`
}

type Game struct {
	OpponentDelay time.Duration `yaml:"opponent-delay" env:"GAME_OPPONENT_DELAY" env-default:"700ms"`
}

type Rules struct {
	LineDelay time.Duration `yaml:"line-delay" env:"RULES_LINE_DELAY" env-default:"300ms"`
	WordDelay time.Duration `yaml:"word-delay" env:"RULES_WORD_DELAY" env-default:"200ms"`
}

// Sounds are handed to the page once per session; the server never plays them.
type Sounds struct {
	X   string `yaml:"x" json:"x" env:"SOUNDS_X" env-default:"https://cdn.jsdelivr.net/gh/jshawl/mario-sounds/x.mp3"`
	O   string `yaml:"o" json:"o" env:"SOUNDS_O" env-default:"https://cdn.jsdelivr.net/gh/jshawl/mario-sounds/o.mp3"`
	Win string `yaml:"win" json:"win" env:"SOUNDS_WIN" env-default:"https://cdn.jsdelivr.net/gh/jshawl/mario-sounds/win.mp3"`
}

var ErrInvalidDelay = errors.New("delay must be positive")

// MustLoad - load configuration from the yml file at path, or from the
// environment alone when the file does not exist.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err == nil {
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("failed to read config from env: %w", err)
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) validate() error {
	delays := map[string]time.Duration{
		"game.opponent-delay": that.Game.OpponentDelay,
		"rules.line-delay":    that.Rules.LineDelay,
		"rules.word-delay":    that.Rules.WordDelay,
	}

	for name, delay := range delays {
		if delay <= 0 {
			return fmt.Errorf("%w: %s = %s", ErrInvalidDelay, name, delay)
		}
	}

	return nil
}
