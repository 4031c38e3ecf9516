package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/willibrandon/vimarcade/internal/engine"
	"github.com/willibrandon/vimarcade/internal/storage"
)

// Storage drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	// DriverNone plays without saving anything.
	DriverNone = "none"
)

// DefaultSampleText is the buffer every question starts from.
var DefaultSampleText = []string{
	"Vim is a powerful text editor for efficient editing.",
	"Modes separate moving around from changing text.",
	"Counts repeat a command: 3dd deletes three lines.",
	"Yank copies a line and put pastes it below.",
	"Words are runs of letters, digits and underscores.",
	"The dollar sign jumps to the end of a line.",
	"Zero returns to the very first column.",
	"gg goes to the top and G goes to the bottom.",
	"Practice a little every day to build muscle memory.",
	"Soon these keys will feel like second nature.",
	"Every keystroke saved is time for thinking.",
	"Happy editing!",
}

// Config represents the root configuration structure
type Config struct {
	Player  PlayerConfig  `mapstructure:"player"`
	Game    GameConfig    `mapstructure:"game"`
	Storage StorageConfig `mapstructure:"storage"`
	UI      UIConfig      `mapstructure:"ui"`
	Debug   bool          `mapstructure:"debug"`
}

// PlayerConfig identifies the local player.
type PlayerConfig struct {
	// Username skips the welcome prompt when set.
	Username string `mapstructure:"username"`
}

// GameConfig holds round timing and content settings.
type GameConfig struct {
	Duration time.Duration `mapstructure:"duration"`
	// Debounce is the pause after the last keystroke before the input is
	// checked. Zero disables auto-submit; Enter always submits.
	Debounce     time.Duration `mapstructure:"debounce"`
	AdvanceDelay time.Duration `mapstructure:"advance_delay"`
	HintFlash    time.Duration `mapstructure:"hint_flash"`
	HintTrigger  string        `mapstructure:"hint_trigger"`
	// QuestionCount limits how many questions are drawn per game; 0 uses the
	// whole bank.
	QuestionCount  int      `mapstructure:"question_count"`
	QuestionsFile  string   `mapstructure:"questions_file"`
	SampleText     []string `mapstructure:"sample_text"`
	TimeoutPenalty bool     `mapstructure:"timeout_penalty"`
}

// StorageConfig selects and configures the score store.
type StorageConfig struct {
	Driver       string        `mapstructure:"driver"`
	Path         string        `mapstructure:"path"`
	DSN          string        `mapstructure:"dsn"`
	PoolMaxConns int           `mapstructure:"pool_max_conns"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

// UIConfig holds user interface preferences
type UIConfig struct {
	LeaderboardSize int    `mapstructure:"leaderboard_size"`
	DateFormat      string `mapstructure:"date_format"`
	// Clipboard mirrors yanked lines to the system clipboard.
	Clipboard bool `mapstructure:"clipboard"`
}

// Load reads config.yaml from the default locations.
func Load() (*Config, error) {
	return LoadFromPath("")
}

// LoadFromPath loads configuration from a specific path.
// If configPath is empty, it searches default locations.
func LoadFromPath(configPath string) (*Config, error) {
	v := viper.New()

	// Environment variable support
	v.AutomaticEnv()
	v.SetEnvPrefix("VIMARCADE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	applyDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		if configDir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(configDir, "vimarcade"))
		}
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "vimarcade"))
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return configFromViper(v)
}

func configFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	cfg.Storage.Path = expandPath(cfg.Storage.Path)
	if cfg.Storage.Path == "" {
		cfg.Storage.Path = DefaultDBPath()
	}
	cfg.Game.QuestionsFile = expandPath(cfg.Game.QuestionsFile)
	cfg.Player.Username = strings.TrimSpace(cfg.Player.Username)

	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in configuration without reading any file or
// environment variable.
func Default() *Config {
	v := viper.New()
	applyDefaults(v)
	cfg, err := configFromViper(v)
	if err != nil {
		panic(fmt.Sprintf("default config is invalid: %v", err))
	}
	return cfg
}

// ValidateConfig validates the configuration values
func ValidateConfig(cfg *Config) error {
	if cfg.Player.Username != "" {
		if _, err := storage.NormalizeUsername(cfg.Player.Username); err != nil {
			return fmt.Errorf("player.username: %w", err)
		}
	}

	// Game timing
	if cfg.Game.Duration < 5*time.Second || cfg.Game.Duration > time.Hour {
		return fmt.Errorf("game.duration must be between 5s and 1h, got %v", cfg.Game.Duration)
	}
	if cfg.Game.Debounce < 0 || cfg.Game.Debounce > 5*time.Second {
		return fmt.Errorf("game.debounce must be between 0 and 5s, got %v", cfg.Game.Debounce)
	}
	if cfg.Game.AdvanceDelay < 0 || cfg.Game.AdvanceDelay > 10*time.Second {
		return fmt.Errorf("game.advance_delay must be between 0 and 10s, got %v", cfg.Game.AdvanceDelay)
	}
	if cfg.Game.HintFlash < 0 || cfg.Game.HintFlash > 10*time.Second {
		return fmt.Errorf("game.hint_flash must be between 0 and 10s, got %v", cfg.Game.HintFlash)
	}

	trigger := strings.TrimSpace(cfg.Game.HintTrigger)
	if trigger == "" {
		return fmt.Errorf("game.hint_trigger cannot be empty")
	}
	if engine.Parse(trigger).Kind != engine.KindUnknown {
		return fmt.Errorf("game.hint_trigger %q collides with an editor command", cfg.Game.HintTrigger)
	}

	if cfg.Game.QuestionCount < 0 {
		return fmt.Errorf("game.question_count must be >= 0, got %d", cfg.Game.QuestionCount)
	}
	if len(cfg.Game.SampleText) == 0 {
		return fmt.Errorf("game.sample_text must contain at least one line")
	}

	// Storage
	switch cfg.Storage.Driver {
	case DriverSQLite:
		if cfg.Storage.Path == "" {
			return fmt.Errorf("storage.path cannot be empty for the sqlite driver")
		}
	case DriverPostgres:
		if cfg.Storage.DSN == "" {
			return fmt.Errorf("storage.dsn is required for the postgres driver")
		}
		if cfg.Storage.PoolMaxConns < 1 {
			return fmt.Errorf("storage.pool_max_conns must be >= 1, got %d", cfg.Storage.PoolMaxConns)
		}
	case DriverNone:
	default:
		return fmt.Errorf("storage.driver must be one of: %v, got %s",
			[]string{DriverSQLite, DriverPostgres, DriverNone}, cfg.Storage.Driver)
	}
	if cfg.Storage.Timeout < 100*time.Millisecond || cfg.Storage.Timeout > time.Minute {
		return fmt.Errorf("storage.timeout must be between 100ms and 60s, got %v", cfg.Storage.Timeout)
	}

	// UI
	if cfg.UI.LeaderboardSize < 1 || cfg.UI.LeaderboardSize > 100 {
		return fmt.Errorf("ui.leaderboard_size must be between 1 and 100, got %d", cfg.UI.LeaderboardSize)
	}
	if cfg.UI.DateFormat == "" {
		return fmt.Errorf("ui.date_format cannot be empty")
	}

	return nil
}

// applyDefaults sets default configuration values
func applyDefaults(v *viper.Viper) {
	v.SetDefault("player.username", "")

	// Game defaults
	v.SetDefault("game.duration", "60s")
	v.SetDefault("game.debounce", "300ms")
	v.SetDefault("game.advance_delay", "2s")
	v.SetDefault("game.hint_flash", "1200ms")
	v.SetDefault("game.hint_trigger", "@@")
	v.SetDefault("game.question_count", 0)
	v.SetDefault("game.questions_file", "")
	v.SetDefault("game.sample_text", DefaultSampleText)
	v.SetDefault("game.timeout_penalty", false)

	// Storage defaults
	v.SetDefault("storage.driver", DriverSQLite)
	v.SetDefault("storage.path", "")
	v.SetDefault("storage.dsn", "")
	v.SetDefault("storage.pool_max_conns", 4)
	v.SetDefault("storage.timeout", "5s")

	// UI defaults
	v.SetDefault("ui.leaderboard_size", 10)
	v.SetDefault("ui.date_format", "2006-01-02 15:04")
	v.SetDefault("ui.clipboard", false)

	v.SetDefault("debug", false)
}

// Dir returns the per-user vimarcade directory.
func Dir() string {
	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "vimarcade")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "vimarcade")
	}
	return "."
}

// DefaultDBPath returns the default SQLite database location.
func DefaultDBPath() string {
	return filepath.Join(Dir(), "vimarcade.db")
}

// DefaultLogPath returns the default log file location.
func DefaultLogPath() string {
	return filepath.Join(Dir(), "vimarcade.log")
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
