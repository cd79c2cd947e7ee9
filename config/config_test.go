package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nelhage/knights/knights"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Locale)
	assert.True(t, cfg.ClearScreen)

	rules, err := cfg.Rules()
	require.NoError(t, err)
	assert.Equal(t, knights.DefaultConfig, rules)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("KNIGHTS_LOCALE", "ru")
	t.Setenv("KNIGHTS_BORDER", "-")
	t.Setenv("KNIGHTS_GLYPHS", "♘♞@")
	t.Setenv("KNIGHTS_CLEAR", "false")
	t.Setenv("KNIGHTS_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "ru", cfg.Locale)
	assert.False(t, cfg.ClearScreen)

	rules, err := cfg.Rules()
	require.NoError(t, err)
	assert.Equal(t, '-', rules.Border)
	assert.Equal(t, []rune{'♘', '♞', '@'}, rules.Palette)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadBadBool(t *testing.T) {
	t.Setenv("KNIGHTS_CLEAR", "sometimes")
	_, err := Load()
	assert.Error(t, err)
}

func TestRulesRejects(t *testing.T) {
	cases := []Config{
		{Border: "", Glyphs: ",."},
		{Border: "**", Glyphs: ",."},
		{Border: "*", Glyphs: ","},
		{Border: "*", Glyphs: ",,"},
		{Border: "*", Glyphs: ",*"},
		{Border: "*", Glyphs: ", "},
		{Border: "*", Glyphs: "#."},
	}
	for _, c := range cases {
		_, err := c.Rules()
		assert.Error(t, err, "%+v", c)
	}
}

func TestLevelUnknown(t *testing.T) {
	c := Config{LogLevel: "loud"}
	_, err := c.Level()
	assert.Error(t, err)
}

func TestUsage(t *testing.T) {
	assert.Contains(t, Usage(), "KNIGHTS_GLYPHS")
}
