package wikimark

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestParseAllocations(t *testing.T) {
	src, err := os.ReadFile("testdata/seed.wiki")
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	text := string(src)
	allocs := testing.AllocsPerRun(100, func() {
		_ = Parse(text)
	})
	if allocs > 64 {
		t.Fatalf("too many allocations per Parse: got %.2f", allocs)
	}
}

func TestRenderWrappedAllocations(t *testing.T) {
	src := []byte(strings.Repeat("This is ''italic'', '''bold''' and a [[Link]] to {{Template}}. ", 50))
	allocs := testing.AllocsPerRun(50, func() {
		var out bytes.Buffer
		_ = Render(RenderRequest{
			Reader: bytes.NewReader(src),
			Writer: &out,
			Width:  80,
			Theme:  DefaultTheme(),
		})
	})
	if allocs > 6000 {
		t.Fatalf("too many allocations per Render: got %.2f", allocs)
	}
}
