package examnum

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/AndrewConway/make-exam-numbers/examnum/database"
)

// LoadConfig reads a TOML config file from cfgPath. An empty path returns the
// defaults, so the tool runs without any config file.
func LoadConfig(cfgPath string) (Config, error) {
	cfg := defaultConfig()
	if cfgPath == "" {
		return cfg, nil
	}

	file, err := os.Open(cfgPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	if _, err = toml.NewDecoder(file).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config file: %w", err)
	}

	return cfg, nil
}

func defaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:     slog.LevelInfo,
			Format:    LogFormatText,
			AddSource: false,
		},
		Generator: GeneratorConfig{
			Digits:      6,
			MinDistance: 3,
			MaxAttempts: 0,
		},
		Output: OutputConfig{
			Dir: ".",
		},
	}
}

type Config struct {
	Log           LogConfig           `toml:"log"`
	Generator     GeneratorConfig     `toml:"generator"`
	Output        OutputConfig        `toml:"output"`
	Database      database.Config     `toml:"database"`
	Notifications NotificationsConfig `toml:"notifications"`
}

func (c Config) String() string {
	return fmt.Sprintf("Log: %s\nGenerator: %s\nOutput: %s\nDatabase: %s\nNotifications: %s",
		c.Log,
		c.Generator,
		c.Output,
		c.Database,
		c.Notifications,
	)
}

// Validate rejects configurations the generator cannot run with, before any
// code generation starts.
func (c Config) Validate() error {
	if c.Generator.Digits < 1 || c.Generator.Digits > maxDigits {
		return fmt.Errorf("generator.digits is %d, must be between 1 and %d", c.Generator.Digits, maxDigits)
	}
	if c.Generator.MinDistance < 0 {
		return fmt.Errorf("generator.min_distance is %d, must not be negative", c.Generator.MinDistance)
	}
	if c.Generator.MaxAttempts < 0 {
		return fmt.Errorf("generator.max_attempts is %d, must not be negative", c.Generator.MaxAttempts)
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir must not be empty")
	}
	if c.Database.Enabled && c.Database.Address == "" {
		return fmt.Errorf("database.address must not be empty when the database is enabled")
	}
	if c.Notifications.Enabled && c.Notifications.WebhookURL == "" {
		return fmt.Errorf("notifications.webhook_url must not be empty when notifications are enabled")
	}
	return nil
}

type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

type LogConfig struct {
	Level     slog.Level `toml:"level"`
	Format    LogFormat  `toml:"format"`
	AddSource bool       `toml:"add_source"`
}

func (c LogConfig) String() string {
	return fmt.Sprintf("\n Level: %s\n Format: %s\n AddSource: %t",
		c.Level,
		c.Format,
		c.AddSource,
	)
}

type GeneratorConfig struct {
	Digits      int     `toml:"digits"`
	MinDistance int     `toml:"min_distance"`
	Seed        *uint64 `toml:"seed"`
	MaxAttempts int     `toml:"max_attempts"`
}

func (c GeneratorConfig) String() string {
	seed := "entropy"
	if c.Seed != nil {
		seed = fmt.Sprintf("%d", *c.Seed)
	}
	return fmt.Sprintf("\n Digits: %d\n MinDistance: %d\n Seed: %s\n MaxAttempts: %d",
		c.Digits,
		c.MinDistance,
		seed,
		c.MaxAttempts,
	)
}

type OutputConfig struct {
	Dir string `toml:"dir"`
	QR  bool   `toml:"qr"`
}

func (c OutputConfig) String() string {
	return fmt.Sprintf("\n Dir: %s\n QR: %t",
		c.Dir,
		c.QR,
	)
}

type NotificationsConfig struct {
	Enabled    bool   `toml:"enabled"`
	WebhookURL string `toml:"webhook_url"`
}

func (c NotificationsConfig) String() string {
	return fmt.Sprintf("\n Enabled: %t\n WebhookURL: %s",
		c.Enabled,
		strings.Repeat("*", len(c.WebhookURL)),
	)
}
