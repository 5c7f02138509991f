package appconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pkt.systems/wikimark"
	"pkt.systems/wikimark/pdf"
)

// CurrentConfigVersion is the only config_version Load accepts.
const CurrentConfigVersion = 1

// Config is the top-level application configuration.
type Config struct {
	ConfigVersion int          `mapstructure:"config_version" yaml:"config_version"`
	Theme         string       `mapstructure:"theme" yaml:"theme"`
	Width         int          `mapstructure:"width" yaml:"width"`
	Format        string       `mapstructure:"format" yaml:"format"`
	StrayClosers  string       `mapstructure:"stray_closers" yaml:"stray_closers"`
	FrontMatter   bool         `mapstructure:"front_matter" yaml:"front_matter"`
	SoftWrap      bool         `mapstructure:"soft_wrap" yaml:"soft_wrap"`
	Rules         []RuleConfig `mapstructure:"rules" yaml:"rules,omitempty"`
	PDF           PDFConfig    `mapstructure:"pdf" yaml:"pdf"`
}

// RuleConfig is one delimiter rule. Kind is toggle, opener or closer.
type RuleConfig struct {
	Token string `mapstructure:"token" yaml:"token"`
	Kind  string `mapstructure:"kind" yaml:"kind"`
	State string `mapstructure:"state" yaml:"state"`
}

// PDFConfig configures the pdf output format.
type PDFConfig struct {
	PageSize   string  `mapstructure:"page_size" yaml:"page_size"`
	Margin     float64 `mapstructure:"margin" yaml:"margin"`
	FontFamily string  `mapstructure:"font_family" yaml:"font_family"`
	FontSize   float64 `mapstructure:"font_size" yaml:"font_size"`
	LineHeight float64 `mapstructure:"line_height" yaml:"line_height"`
	Background bool    `mapstructure:"background" yaml:"background"`
}

// Output formats understood by the render command.
var Formats = []string{"ansi", "plain", "html", "pdf"}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	p := pdf.DefaultConfig()
	return Config{
		ConfigVersion: CurrentConfigVersion,
		Theme:         wikimark.DefaultTheme().Name(),
		Width:         0,
		Format:        "ansi",
		StrayClosers:  wikimark.StrayDrop.String(),
		FrontMatter:   true,
		PDF: PDFConfig{
			PageSize:   p.PageSize,
			Margin:     p.Margin,
			FontFamily: p.FontFamily,
			FontSize:   p.FontSize,
			LineHeight: p.LineHeight,
			Background: p.BackgroundEnabled,
		},
	}
}

// DefaultConfigPath returns the standard config path.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "wikimark", "config.yaml"), nil
}

// RuleTable converts the configured rules. An empty list yields nil, which
// selects the built-in table.
func (c Config) RuleTable() (wikimark.Rules, error) {
	if len(c.Rules) == 0 {
		return nil, nil
	}
	rules := make(wikimark.Rules, 0, len(c.Rules))
	for i, rc := range c.Rules {
		kind, err := wikimark.ParseRuleKind(rc.Kind)
		if err != nil {
			return nil, fmt.Errorf("rules[%d]: %w", i, err)
		}
		state, err := wikimark.ParseState(rc.State)
		if err != nil {
			return nil, fmt.Errorf("rules[%d]: %w", i, err)
		}
		rules = append(rules, wikimark.NewRule(kind, rc.Token, state))
	}
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("rules: %w", err)
	}
	return rules, nil
}

// ParserOptions converts the parser-related settings into options.
func (c Config) ParserOptions() ([]wikimark.Option, error) {
	stray, err := wikimark.ParseStrayPolicy(c.StrayClosers)
	if err != nil {
		return nil, err
	}
	rules, err := c.RuleTable()
	if err != nil {
		return nil, err
	}
	opts := []wikimark.Option{
		wikimark.WithStrayPolicy(stray),
		wikimark.WithFrontMatter(c.FrontMatter),
		wikimark.WithSoftWrap(c.SoftWrap),
	}
	if rules != nil {
		opts = append(opts, wikimark.WithRules(rules))
	}
	return opts, nil
}

// PDFSettings returns the pdf renderer configuration.
func (c Config) PDFSettings() pdf.Config {
	cfg := pdf.DefaultConfig()
	cfg.PageSize = c.PDF.PageSize
	cfg.Margin = c.PDF.Margin
	cfg.FontFamily = c.PDF.FontFamily
	cfg.FontSize = c.PDF.FontSize
	cfg.LineHeight = c.PDF.LineHeight
	cfg.BackgroundEnabled = c.PDF.Background
	if !cfg.BackgroundEnabled {
		cfg.TextRGB = [3]int{}
	}
	return cfg
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Width < 0 {
		return fmt.Errorf("width must be >= 0, got %d", c.Width)
	}
	if _, ok := wikimark.ThemeByName(c.Theme); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", c.Theme, strings.Join(wikimark.AvailableThemes(), ", "))
	}
	format := strings.ToLower(strings.TrimSpace(c.Format))
	known := false
	for _, f := range Formats {
		if f == format {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unsupported format %q (expected %s)", c.Format, strings.Join(Formats, "|"))
	}
	if _, err := wikimark.ParseStrayPolicy(c.StrayClosers); err != nil {
		return err
	}
	if _, err := c.RuleTable(); err != nil {
		return err
	}
	return nil
}
