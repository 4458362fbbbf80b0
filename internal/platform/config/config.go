package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "CRUXLOG"

type Config struct {
	// File is the config file actually read, empty when running on defaults.
	File    string          `mapstructure:"-"`
	Session SessionDefaults `mapstructure:"session"`
	Rest    RestConfig      `mapstructure:"rest"`
	Log     LogConfig       `mapstructure:"log"`
}

// SessionDefaults seeds the home form and lists the choices it cycles through.
type SessionDefaults struct {
	Type       string   `mapstructure:"type"`
	Goal       string   `mapstructure:"goal"`
	Level      string   `mapstructure:"level"`
	Clip       string   `mapstructure:"clip"`
	Audio      bool     `mapstructure:"audio"`
	LowSleep   bool     `mapstructure:"low_sleep"`
	Discomfort bool     `mapstructure:"discomfort"`
	Goals      []string `mapstructure:"goals"`
	Levels     []string `mapstructure:"levels"`
	Clips      []string `mapstructure:"clips"`
}

type RestConfig struct {
	Default time.Duration `mapstructure:"default"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Load reads configuration from path (or CRUXLOG_CONFIG, or the user config
// dir) and applies CRUXLOG_* env overrides. A missing default file is not
// an error; a missing explicit file is.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv(envPrefix + "_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "cruxlog"))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.File = v.ConfigFileUsed()
	if c.Rest.Default <= 0 {
		return Config{}, fmt.Errorf("rest.default must be positive, got %s", c.Rest.Default)
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("session.type", "training")
	v.SetDefault("session.goal", "technique")
	v.SetDefault("session.level", "V4")
	v.SetDefault("session.clip", "Overhang Problem #1")
	v.SetDefault("session.audio", true)
	v.SetDefault("session.low_sleep", false)
	v.SetDefault("session.discomfort", false)
	v.SetDefault("session.goals", []string{"technique", "power", "endurance", "project"})
	v.SetDefault("session.levels", []string{"V0", "V1", "V2", "V3", "V4", "V5", "V6", "V7", "V8", "V9", "V10"})
	v.SetDefault("session.clips", []string{"Overhang Problem #1", "Slab Traverse", "Crimp Ladder", "Dyno Box"})
	v.SetDefault("rest.default", "3m")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
}
