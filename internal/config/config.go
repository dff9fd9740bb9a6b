package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/kpmorrow/tictactoe/internal/game/strategy"
)

// Config holds all configuration for the application
type Config struct {
	Match   MatchConfig   `mapstructure:"match"`
	Demo    DemoConfig    `mapstructure:"demo"`
	Logging LoggingConfig `mapstructure:"logging"`
	UI      UIConfig      `mapstructure:"ui"`
}

// MatchConfig holds the default seat setup for a match
type MatchConfig struct {
	// SeatX and SeatO name the strategy driving each seat
	SeatX string `mapstructure:"seat_x"`
	SeatO string `mapstructure:"seat_o"`
	// Seed for the strategies' random sources; 0 means clock-seeded
	Seed int64 `mapstructure:"seed"`
}

// DemoConfig holds headless runner settings
type DemoConfig struct {
	Games      int  `mapstructure:"games"`
	ShowBoards bool `mapstructure:"show_boards"`
	// AlternateFirst swaps which seat opens each successive game
	AlternateFirst bool `mapstructure:"alternate_first"`
}

// LoggingConfig holds log output settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// UIConfig holds graphical client configuration
type UIConfig struct {
	Window       WindowConfig `mapstructure:"window"`
	CellSize     int          `mapstructure:"cell_size"`
	TurnInterval int          `mapstructure:"turn_interval"`
	HumanMark    string       `mapstructure:"human_mark"`
	AIStrategy   string       `mapstructure:"ai_strategy"`
}

// WindowConfig holds window settings
type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Match defaults
	v.SetDefault("match.seat_x", strategy.NameWeighted)
	v.SetDefault("match.seat_o", strategy.NameRandom)
	v.SetDefault("match.seed", 0)

	// Demo runner defaults
	v.SetDefault("demo.games", 1)
	v.SetDefault("demo.show_boards", true)
	v.SetDefault("demo.alternate_first", true)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	// UI defaults
	v.SetDefault("ui.window.width", 480)
	v.SetDefault("ui.window.height", 560)
	v.SetDefault("ui.window.title", "Tic Tac Toe")
	v.SetDefault("ui.cell_size", 160)
	v.SetDefault("ui.turn_interval", 30)
	v.SetDefault("ui.human_mark", "X")
	v.SetDefault("ui.ai_strategy", strategy.NameWeighted)
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	// Set defaults before loading any config
	setViperDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Default config locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Set environment variable prefix
	v.SetEnvPrefix("TTT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file; a missing file just means defaults
	if err := v.ReadInConfig(); err != nil {
		if configPath == "" {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	// Unmarshal into config struct
	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	// Validate configuration
	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		// Initialize with defaults if not already initialized
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// Set allows runtime config updates
func Set(key string, value interface{}) {
	v.Set(key, value)
	// Re-unmarshal to update struct
	v.Unmarshal(cfg)
}

// GetString gets a string value from config
func GetString(key string) string {
	return v.GetString(key)
}

// GetInt gets an int value from config
func GetInt(key string) int {
	return v.GetInt(key)
}

// GetBool gets a bool value from config
func GetBool(key string) bool {
	return v.GetBool(key)
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of config file
func WatchConfig(onChange func()) {
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		// Re-unmarshal on change
		v.Unmarshal(cfg)
		if onChange != nil {
			onChange()
		}
	})
}

// Validate validates the configuration values
func Validate(c *Config) error {
	if err := validStrategy(c.Match.SeatX); err != nil {
		return fmt.Errorf("match.seat_x: %w", err)
	}
	if err := validStrategy(c.Match.SeatO); err != nil {
		return fmt.Errorf("match.seat_o: %w", err)
	}

	if c.Demo.Games <= 0 {
		return fmt.Errorf("demo.games must be positive")
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json")
	}

	if c.UI.Window.Width <= 0 || c.UI.Window.Height <= 0 {
		return fmt.Errorf("ui.window dimensions must be positive")
	}
	if c.UI.CellSize <= 0 {
		return fmt.Errorf("ui.cell_size must be positive")
	}
	if c.UI.TurnInterval <= 0 {
		return fmt.Errorf("ui.turn_interval must be positive")
	}
	if c.UI.HumanMark != "X" && c.UI.HumanMark != "O" {
		return fmt.Errorf("ui.human_mark must be X or O")
	}
	if err := validStrategy(c.UI.AIStrategy); err != nil {
		return fmt.Errorf("ui.ai_strategy: %w", err)
	}

	return nil
}

func validStrategy(name string) error {
	for _, known := range strategy.Names() {
		if name == known {
			return nil
		}
	}
	return fmt.Errorf("%w: %q (want one of %s)", strategy.ErrUnknownStrategy, name, strings.Join(strategy.Names(), ", "))
}
