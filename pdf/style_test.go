package pdf

import (
	"testing"

	"pkt.systems/wikimark"
)

func TestParseANSIPrefix(t *testing.T) {
	attrs := parseANSIPrefix("\x1b[1;3;4;38;5;81m", [3]int{1, 2, 3})
	if !attrs.bold {
		t.Fatalf("expected bold")
	}
	if !attrs.italic {
		t.Fatalf("expected italic")
	}
	if !attrs.underline {
		t.Fatalf("expected underline")
	}
	want := [3]int{95, 215, 255}
	if attrs.color != want {
		t.Fatalf("unexpected color: %+v", attrs.color)
	}
}

func TestParseANSIPrefixResetRestoresDefault(t *testing.T) {
	def := [3]int{1, 2, 3}
	attrs := parseANSIPrefix("\x1b[1m\x1b[31m\x1b[0m", def)
	if attrs.bold || attrs.color != def {
		t.Fatalf("expected reset attributes, got %+v", attrs)
	}
}

func TestFontStyleFollowsState(t *testing.T) {
	cases := []struct {
		state wikimark.State
		want  string
	}{
		{wikimark.Text, ""},
		{wikimark.Bold, "B"},
		{wikimark.Italic, "I"},
		{wikimark.BoldItalic, "BI"},
		{wikimark.Link, "U"},
		{wikimark.Template, ""},
	}
	for _, tc := range cases {
		if got := fontStyle(tc.state, ansiAttrs{}); got != tc.want {
			t.Fatalf("%s: got %q want %q", tc.state, got, tc.want)
		}
	}
}

func TestStyleForUsesThemeColor(t *testing.T) {
	cfg := DefaultConfig()
	styles := wikimark.NewTheme("t", wikimark.Styles{
		Link: wikimark.Style{Prefix: "\x1b[4m\x1b[38;5;196m"},
	}).Styles()
	st := styleFor(wikimark.Link, styles, cfg)
	if st.fontStyle != "U" {
		t.Fatalf("unexpected font style %q", st.fontStyle)
	}
	if st.r != 255 || st.g != 0 || st.b != 0 {
		t.Fatalf("unexpected color %d,%d,%d", st.r, st.g, st.b)
	}
	text := styleFor(wikimark.Text, styles, cfg)
	if [3]int{text.r, text.g, text.b} != cfg.TextRGB {
		t.Fatalf("expected default text color, got %+v", text)
	}
}

func TestStyleForBoringIsBlack(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Boring = true
	st := styleFor(wikimark.Bold, wikimark.DefaultTheme().Styles(), cfg)
	if st.r != 0 || st.g != 0 || st.b != 0 {
		t.Fatalf("expected black text, got %+v", st)
	}
	if st.fontStyle != "B" {
		t.Fatalf("expected bold, got %q", st.fontStyle)
	}
}

func TestParseANSIPrefixSkipsUnusedCodes(t *testing.T) {
	def := [3]int{9, 9, 9}
	attrs := parseANSIPrefix("\x1b[31;2m\x1b[3m", def)
	if attrs.bold || !attrs.italic || attrs.color != def {
		t.Fatalf("unexpected attributes %+v", attrs)
	}
	if got := parseANSIPrefix("\x1b[1m\x1b[m", def); got.bold {
		t.Fatalf("empty SGR should reset, got %+v", got)
	}
}

func TestXterm256(t *testing.T) {
	cases := []struct {
		idx  int
		want [3]int
	}{
		{1, [3]int{205, 0, 0}},
		{12, [3]int{92, 92, 255}},
		{16, [3]int{0, 0, 0}},
		{81, [3]int{95, 215, 255}},
		{231, [3]int{255, 255, 255}},
		{232, [3]int{8, 8, 8}},
		{255, [3]int{238, 238, 238}},
		{300, [3]int{229, 229, 229}},
		{-1, [3]int{229, 229, 229}},
	}
	for _, tc := range cases {
		if got := xterm256(tc.idx); got != tc.want {
			t.Fatalf("xterm256(%d) = %v, want %v", tc.idx, got, tc.want)
		}
	}
}

func TestApplyConfigWithoutBackgroundUsesBlackText(t *testing.T) {
	cfg := DefaultConfig()
	applyConfig(&cfg, Config{})
	if cfg.BackgroundEnabled {
		t.Fatalf("expected background disabled")
	}
	if cfg.TextRGB != ([3]int{}) {
		t.Fatalf("expected black text on a white page, got %v", cfg.TextRGB)
	}
	text := styleFor(wikimark.Text, wikimark.DefaultTheme().Styles(), cfg)
	if text.r != 0 || text.g != 0 || text.b != 0 {
		t.Fatalf("expected black text style, got %+v", text)
	}

	cfg = DefaultConfig()
	applyConfig(&cfg, Config{TextRGB: [3]int{10, 20, 30}})
	if cfg.TextRGB != [3]int{10, 20, 30} {
		t.Fatalf("explicit text colour lost: %v", cfg.TextRGB)
	}

	cfg = DefaultConfig()
	applyConfig(&cfg, Config{BackgroundEnabled: true})
	if cfg.TextRGB != DefaultConfig().TextRGB {
		t.Fatalf("expected light text on the dark background, got %v", cfg.TextRGB)
	}
}
