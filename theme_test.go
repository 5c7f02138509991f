package wikimark

import (
	"sort"
	"strings"
	"testing"
)

func TestThemeByNameBuiltins(t *testing.T) {
	expected := []string{
		"default",
		"gruvbox",
		"gruvbox-light",
		"dracula",
		"nord",
		"solarized-dark",
		"solarized-light",
		"tokyo-night",
		"github-light",
		"boring",
	}
	for _, name := range expected {
		theme, ok := ThemeByName(name)
		if !ok {
			t.Fatalf("expected theme %q to be available", name)
		}
		if theme.Name() != name {
			t.Fatalf("theme %q reports name %q", name, theme.Name())
		}
	}

	available := AvailableThemes()
	if !sort.StringsAreSorted(available) {
		t.Fatalf("expected sorted theme list, got %v", available)
	}
	if len(available) != len(expected) {
		t.Fatalf("expected %d themes, got %v", len(expected), available)
	}
}

func TestThemeByNameNormalises(t *testing.T) {
	if theme, ok := ThemeByName("  Nord "); !ok || theme.Name() != "nord" {
		t.Fatalf("expected nord, got %v %v", theme, ok)
	}
	if theme, ok := ThemeByName(""); !ok || theme.Name() != "default" {
		t.Fatalf("expected default for empty name")
	}
	if _, ok := ThemeByName("neon"); ok {
		t.Fatalf("unexpected theme neon")
	}
}

func TestBuiltinThemesStyleEveryContext(t *testing.T) {
	for _, name := range AvailableThemes() {
		if name == "boring" {
			continue
		}
		theme, _ := ThemeByName(name)
		styles := theme.Styles()
		for _, s := range States() {
			if s == Text {
				continue
			}
			prefix := styles.For(s).Prefix
			if !strings.HasPrefix(prefix, "\x1b[") {
				t.Fatalf("%s: %s has no escape prefix: %q", name, s, prefix)
			}
		}
		if !strings.Contains(styles.Bold.Prefix, "\x1b[1m") {
			t.Fatalf("%s: bold style lacks bold attribute", name)
		}
		if !strings.Contains(styles.Link.Prefix, "\x1b[4m") {
			t.Fatalf("%s: link style lacks underline", name)
		}
	}
}

func TestBoringThemeHasNoEscapes(t *testing.T) {
	styles := BoringTheme().Styles()
	for _, s := range States() {
		if p := styles.For(s).Prefix; p != "" {
			t.Fatalf("%s: unexpected prefix %q", s, p)
		}
	}
}

func TestStylesForInvalidStateFallsBackToText(t *testing.T) {
	styles := Styles{Text: Style{Prefix: "T"}, Bold: Style{Prefix: "B"}}
	if got := styles.For(State(77)); got.Prefix != "T" {
		t.Fatalf("got %q", got.Prefix)
	}
}

func TestTokensCarryStyles(t *testing.T) {
	styles := Styles{Bold: Style{Prefix: "<b>"}, Link: Style{Prefix: "<a>"}}
	toks := Tokens(Parse("x '''y''' [[z]]"), styles)
	want := []Token{
		{Text: "x ", State: Text},
		{Text: "y", State: Bold, Style: Style{Prefix: "<b>"}},
		{Text: " ", State: Text},
		{Text: "z", State: Link, Style: Style{Prefix: "<a>"}},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %v", toks)
	}
	for i := range want {
		if toks[i] != want[i] {
			t.Fatalf("token %d: got %+v want %+v", i, toks[i], want[i])
		}
	}
}
