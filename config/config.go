package config // Settings file and environment configuration

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Settings are run defaults read from seq_tagger.yaml and SEQ_TAGGER_* variables.
// Command line flags take precedence over every field.
type Settings struct {
	OutDir      string `mapstructure:"out_dir"`
	Seed        *int64 `mapstructure:"seed"` // nil when no seed is configured
	Gzip        bool   `mapstructure:"gzip"`
	Plot        bool   `mapstructure:"plot"`
	Description string `mapstructure:"description"`
}

// Load reads settings from path, or when path is empty from seq_tagger.yaml in
// the working directory or ~/.config/seq_tagger. A missing default file is fine.
func Load(path string) (Settings, error) {
	v := viper.New()
	v.SetDefault("out_dir", ".")
	v.SetDefault("gzip", false)
	v.SetDefault("plot", false)
	v.SetDefault("description", "")

	v.SetEnvPrefix("SEQ_TAGGER")
	v.AutomaticEnv()
	if err := v.BindEnv("seed"); err != nil {
		return Settings{}, fmt.Errorf("failed to bind seed variable: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("seq_tagger")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "seq_tagger"))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("failed to read settings: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unable to decode settings: %w", err)
	}
	return s, nil
}
