package pdf

// Config holds PDF rendering settings.
type Config struct {
	PageSize          string
	Margin            float64
	FontFamily        string
	FontSize          float64
	LineHeight        float64
	Title             string
	BackgroundEnabled bool
	Boring            bool
	BackgroundRGB     [3]int
	TextRGB           [3]int
}

// DefaultConfig returns a baseline configuration.
func DefaultConfig() Config {
	return Config{
		PageSize:          "A4",
		Margin:            36,
		FontFamily:        "Helvetica",
		FontSize:          12,
		LineHeight:        1.4,
		BackgroundEnabled: true,
		BackgroundRGB:     [3]int{0, 0, 0},
		TextRGB:           [3]int{220, 220, 220},
	}
}

// applyConfig copies the non-zero fields of in over cfg. The boolean
// switches are always taken from in. Without a background the text colour
// defaults to black unless in sets one.
func applyConfig(cfg *Config, in Config) {
	if in.PageSize != "" {
		cfg.PageSize = in.PageSize
	}
	if in.Margin > 0 {
		cfg.Margin = in.Margin
	}
	if in.FontFamily != "" {
		cfg.FontFamily = in.FontFamily
	}
	if in.FontSize > 0 {
		cfg.FontSize = in.FontSize
	}
	if in.LineHeight > 0 {
		cfg.LineHeight = in.LineHeight
	}
	if in.Title != "" {
		cfg.Title = in.Title
	}
	cfg.BackgroundEnabled = in.BackgroundEnabled
	cfg.Boring = in.Boring
	if in.BackgroundRGB != ([3]int{}) {
		cfg.BackgroundRGB = in.BackgroundRGB
	}
	switch {
	case in.TextRGB != ([3]int{}):
		cfg.TextRGB = in.TextRGB
	case !in.BackgroundEnabled:
		cfg.TextRGB = [3]int{}
	}
}
