package store

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gookit/validate"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"tableflip.dev/tally/pkg/palette"
	"tableflip.dev/tally/pkg/press"
)

// Config exposes the settings the rest of tally needs.
type Config interface {
	BasePath() string
	Settings() Settings
}

// Settings is the decoded .tally configuration.
type Settings struct {
	Path    string        `mapstructure:"path" validate:"required"`
	Backend string        `mapstructure:"backend" validate:"required|in:diskv,sqlite,redis"`
	Redis   RedisSettings `mapstructure:"redis"`
	Press   PressSettings `mapstructure:"press"`
	UI      UISettings    `mapstructure:"ui"`
	Log     LogSettings   `mapstructure:"log"`
	Palette []string      `mapstructure:"palette"`
}

type RedisSettings struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" validate:"min:0"`
}

type PressSettings struct {
	Threshold time.Duration `mapstructure:"threshold" validate:"required|min:1"`
}

type UISettings struct {
	MinRowHeight int `mapstructure:"minRowHeight" validate:"required|min:1"`
}

type LogSettings struct {
	Level string `mapstructure:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic,disabled"`
	File  string `mapstructure:"file"`
}

// LoadConfig reads .tally (yaml) from $TALLY_CONFIG_PATH or the working
// directory, overlaid with TALLY_* environment variables.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault("path", "~/.tally")
	v.SetDefault("backend", string(BackendDiskv))
	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("press.threshold", press.DefaultThreshold)
	v.SetDefault("ui.minRowHeight", 3)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("palette", []string(palette.Default))

	v.SetConfigName(".tally") // .yaml is implicit
	v.SetConfigType("yaml")
	v.SetEnvPrefix("TALLY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if override := os.Getenv("TALLY_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("store: decode config: %w", err)
	}
	return newFileConfig(s)
}

func newFileConfig(s Settings) (*fileConfig, error) {
	if vd := validate.Struct(&s); !vd.Validate() {
		return nil, fmt.Errorf("store: invalid config: %s", vd.Errors.One())
	}
	path, err := homedir.Expand(s.Path)
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}
	s.Path = path
	return &fileConfig{settings: s}, nil
}

// StaticConfig builds a Config without touching viper, for callers (and
// tests) that already know where the board lives.
func StaticConfig(path string) Config {
	return &fileConfig{settings: Settings{
		Path:    path,
		Backend: string(BackendDiskv),
		Press:   PressSettings{Threshold: press.DefaultThreshold},
		UI:      UISettings{MinRowHeight: 3},
		Log:     LogSettings{Level: "info"},
		Palette: palette.Default,
	}}
}

type fileConfig struct {
	settings Settings
}

func (f *fileConfig) BasePath() string {
	return f.settings.Path
}

func (f *fileConfig) Settings() Settings {
	return f.settings
}
