package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/renameio"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"pkt.systems/wikimark/internal/appconfig"
)

const defaultWidth = 80

type parserFlags struct {
	stray       string
	frontMatter bool
}

type renderFlags struct {
	theme    string
	width    int
	format   string
	output   string
	softWrap bool
	boring   bool
}

func addParserFlags(fs *pflag.FlagSet, f *parserFlags) {
	fs.StringVar(&f.stray, "stray", "drop", "Unmatched closers: drop|literal")
	fs.BoolVar(&f.frontMatter, "front-matter", true, "Strip a leading YAML front matter block")
}

func addRenderFlags(fs *pflag.FlagSet, f *renderFlags) {
	fs.StringVarP(&f.theme, "theme", "t", "default", "Theme name")
	fs.IntVarP(&f.width, "width", "w", 0, "Output width override (0 uses terminal width if available)")
	fs.StringVarP(&f.format, "format", "f", "ansi", "Output format: "+strings.Join(appconfig.Formats, "|"))
	fs.StringVarP(&f.output, "output", "o", "", "Output file instead of stdout")
	fs.BoolVar(&f.softWrap, "soft-wrap", false, "Break words longer than the width")
	fs.BoolVarP(&f.boring, "boring", "b", false, "Generate non-ANSI output or boring PDF")
}

// loadConfig reads the config file and overlays every flag the user set
// explicitly.
func loadConfig(cmd *cobra.Command, cfgPath string, pf *parserFlags, rf *renderFlags) (appconfig.Config, error) {
	cfg, err := appconfig.Load(cfgPath)
	if err != nil {
		return appconfig.Config{}, fmt.Errorf("load config: %w", err)
	}
	fs := cmd.Flags()
	if pf != nil {
		if fs.Changed("stray") {
			cfg.StrayClosers = pf.stray
		}
		if fs.Changed("front-matter") {
			cfg.FrontMatter = pf.frontMatter
		}
	}
	if rf != nil {
		if fs.Changed("theme") {
			cfg.Theme = rf.theme
		}
		if fs.Changed("width") {
			cfg.Width = rf.width
		}
		if fs.Changed("format") {
			cfg.Format = strings.ToLower(strings.TrimSpace(rf.format))
		} else if strings.HasSuffix(strings.ToLower(rf.output), ".pdf") {
			cfg.Format = "pdf"
		}
		if fs.Changed("soft-wrap") {
			cfg.SoftWrap = rf.softWrap
		}
	}
	if err := cfg.Validate(); err != nil {
		return appconfig.Config{}, err
	}
	return cfg, nil
}

func resolveWidth(width int) int {
	if width > 0 {
		return width
	}
	return terminalWidth(defaultWidth)
}

func terminalWidth(fallback int) int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			return w
		}
	}
	if value := os.Getenv("COLUMNS"); value != "" {
		if w, err := strconv.Atoi(value); err == nil && w > 0 {
			return w
		}
	}
	return fallback
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// output is the destination of a command. Files are written to a temporary
// sibling and renamed into place on commit.
type output struct {
	io.Writer
	pending *renameio.PendingFile
}

func openOutput(cmd *cobra.Command, path string) (*output, error) {
	if strings.TrimSpace(path) == "" {
		return &output{Writer: cmd.OutOrStdout()}, nil
	}
	clean := normalizePath(path)
	if err := os.MkdirAll(filepath.Dir(clean), 0o755); err != nil {
		return nil, err
	}
	pending, err := renameio.TempFile("", clean)
	if err != nil {
		return nil, err
	}
	return &output{Writer: pending, pending: pending}, nil
}

func (o *output) commit() error {
	if o.pending == nil {
		return nil
	}
	return o.pending.CloseAtomicallyReplace()
}

func (o *output) cleanup() {
	if o.pending != nil {
		_ = o.pending.Cleanup()
	}
}
