package appconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/renameio"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Load reads configuration from the provided path. If path is empty, uses
// DefaultConfigPath. A missing file yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			return Config{}, err
		}
		path = defaultPath
	}

	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetDefault("config_version", cfg.ConfigVersion)
	v.SetDefault("theme", cfg.Theme)
	v.SetDefault("width", cfg.Width)
	v.SetDefault("format", cfg.Format)
	v.SetDefault("stray_closers", cfg.StrayClosers)
	v.SetDefault("front_matter", cfg.FrontMatter)
	v.SetDefault("soft_wrap", cfg.SoftWrap)
	v.SetDefault("pdf.page_size", cfg.PDF.PageSize)
	v.SetDefault("pdf.margin", cfg.PDF.Margin)
	v.SetDefault("pdf.font_family", cfg.PDF.FontFamily)
	v.SetDefault("pdf.font_size", cfg.PDF.FontSize)
	v.SetDefault("pdf.line_height", cfg.PDF.LineHeight)
	v.SetDefault("pdf.background", cfg.PDF.Background)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return Config{}, err
		}
	} else {
		if !v.InConfig("config_version") {
			return Config{}, fmt.Errorf("config_version is required; expected %d", CurrentConfigVersion)
		}
		if v.GetInt("config_version") != CurrentConfigVersion {
			return Config{}, fmt.Errorf("unsupported config_version %d; expected %d", v.GetInt("config_version"), CurrentConfigVersion)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal renders cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}

// Write stores cfg at path, replacing any existing file atomically.
func Write(path string, cfg Config) error {
	if path == "" {
		return fmt.Errorf("config path is empty")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
