package config

import (
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/nelhage/knights/knights"
)

type Config struct {
	Locale      string `env:"KNIGHTS_LOCALE" env-default:"en" env-description:"language of the console text (en, ru)"`
	Border      string `env:"KNIGHTS_BORDER" env-default:"*" env-description:"glyph framing the rendered board"`
	Glyphs      string `env:"KNIGHTS_GLYPHS" env-default:",." env-description:"glyphs players pick their horse from"`
	ClearScreen bool   `env:"KNIGHTS_CLEAR" env-default:"true" env-description:"clear the terminal before drawing the board"`
	LogLevel    string `env:"KNIGHTS_LOG_LEVEL" env-default:"info" env-description:"debug, info, warn or error"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	return cfg, nil
}

// Usage describes every environment variable Load reads.
func Usage() string {
	out, err := cleanenv.GetDescription(&Config{}, nil)
	if err != nil {
		return ""
	}
	return out
}

// Rules converts the glyph settings to a validated knights.Config.
func (c *Config) Rules() (knights.Config, error) {
	if utf8.RuneCountInString(c.Border) != 1 {
		return knights.Config{}, fmt.Errorf("border %q must be a single character", c.Border)
	}
	border, _ := utf8.DecodeRuneInString(c.Border)
	rules := knights.Config{
		Border:  border,
		Palette: []rune(c.Glyphs),
	}
	if err := rules.Validate(); err != nil {
		return knights.Config{}, fmt.Errorf("glyphs: %w", err)
	}
	return rules, nil
}

func (c *Config) Level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", c.LogLevel)
}
