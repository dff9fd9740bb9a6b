package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpmorrow/tictactoe/internal/game/strategy"
)

func TestInit_Defaults(t *testing.T) {
	require.NoError(t, Init(""))

	c := Get()
	assert.Equal(t, strategy.NameWeighted, c.Match.SeatX)
	assert.Equal(t, strategy.NameRandom, c.Match.SeatO)
	assert.Equal(t, int64(0), c.Match.Seed)
	assert.Equal(t, 1, c.Demo.Games)
	assert.True(t, c.Demo.ShowBoards)
	assert.Equal(t, "info", c.Logging.Level)
	assert.Equal(t, "console", c.Logging.Format)
	assert.Equal(t, "X", c.UI.HumanMark)
	assert.Positive(t, c.UI.CellSize)
}

func TestInit_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
match:
  seat_x: first-open
  seat_o: weighted
  seed: 42
demo:
  games: 100
  show_boards: false
logging:
  level: debug
  format: json
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	require.NoError(t, Init(path))

	c := Get()
	assert.Equal(t, strategy.NameFirstOpen, c.Match.SeatX)
	assert.Equal(t, strategy.NameWeighted, c.Match.SeatO)
	assert.Equal(t, int64(42), c.Match.Seed)
	assert.Equal(t, 100, c.Demo.Games)
	assert.False(t, c.Demo.ShowBoards)
	assert.Equal(t, "json", c.Logging.Format)
	assert.Equal(t, path, ConfigFilePath())
}

func TestInit_MissingFileUsesDefaults(t *testing.T) {
	require.NoError(t, Init(filepath.Join(t.TempDir(), "nope.yaml")))
	assert.Equal(t, 1, Get().Demo.Games)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Match:   MatchConfig{SeatX: strategy.NameRandom, SeatO: strategy.NameWeighted},
			Demo:    DemoConfig{Games: 10},
			Logging: LoggingConfig{Level: "info", Format: "console"},
			UI: UIConfig{
				Window:       WindowConfig{Width: 480, Height: 560, Title: "t"},
				CellSize:     160,
				TurnInterval: 30,
				HumanMark:    "O",
				AIStrategy:   strategy.NameFirstOpen,
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"unknown seat strategy", func(c *Config) { c.Match.SeatX = "minimax" }, "match.seat_x"},
		{"zero games", func(c *Config) { c.Demo.Games = 0 }, "demo.games"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"zero cell size", func(c *Config) { c.UI.CellSize = 0 }, "ui.cell_size"},
		{"bad human mark", func(c *Config) { c.UI.HumanMark = "Z" }, "ui.human_mark"},
		{"bad ai strategy", func(c *Config) { c.UI.AIStrategy = "" }, "ui.ai_strategy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := Validate(c)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestSetAndAccessors(t *testing.T) {
	require.NoError(t, Init(""))

	Set("demo.games", 7)

	assert.Equal(t, 7, GetInt("demo.games"))
	assert.Equal(t, 7, Get().Demo.Games)
	assert.Equal(t, "info", GetString("logging.level"))
	assert.True(t, GetBool("demo.show_boards"))
}
