package pdf

import (
	"strconv"
	"strings"

	"pkt.systems/wikimark"
)

type pdfStyle struct {
	fontStyle string
	r         int
	g         int
	b         int
}

type ansiAttrs struct {
	bold      bool
	italic    bool
	underline bool
	color     [3]int
}

// parseANSIPrefix applies the SGR sequences the wikimark palettes emit:
// reset, bold, italic, underline and 256-colour foregrounds. Other
// parameters are skipped.
func parseANSIPrefix(prefix string, base [3]int) ansiAttrs {
	attrs := ansiAttrs{color: base}
	for {
		start := strings.Index(prefix, "\x1b[")
		if start < 0 {
			return attrs
		}
		prefix = prefix[start+2:]
		end := strings.IndexByte(prefix, 'm')
		if end < 0 {
			return attrs
		}
		params := strings.Split(prefix[:end], ";")
		prefix = prefix[end+1:]
		for i := 0; i < len(params); i++ {
			switch params[i] {
			case "", "0":
				attrs = ansiAttrs{color: base}
			case "1":
				attrs.bold = true
			case "3":
				attrs.italic = true
			case "4":
				attrs.underline = true
			case "38":
				if i+2 < len(params) && params[i+1] == "5" {
					if idx, err := strconv.Atoi(params[i+2]); err == nil {
						attrs.color = xterm256(idx)
					}
					i += 2
				}
			}
		}
	}
}

// xterm's default system colours, 0xRRGGBB.
var xtermSystem = [16]uint32{
	0x000000, 0xcd0000, 0x00cd00, 0xcdcd00, 0x0000ee, 0xcd00cd, 0x00cdcd, 0xe5e5e5,
	0x7f7f7f, 0xff0000, 0x00ff00, 0xffff00, 0x5c5cff, 0xff00ff, 0x00ffff, 0xffffff,
}

// xterm256 converts an xterm-256 colour index to RGB. Out of range indexes
// map to light grey.
func xterm256(idx int) [3]int {
	if idx < 0 || idx > 255 {
		idx = 7
	}
	switch {
	case idx < 16:
		c := xtermSystem[idx]
		return [3]int{int(c >> 16 & 0xff), int(c >> 8 & 0xff), int(c & 0xff)}
	case idx < 232:
		cube := idx - 16
		return [3]int{cubeLevel(cube / 36), cubeLevel(cube / 6 % 6), cubeLevel(cube % 6)}
	default:
		grey := 8 + (idx-232)*10
		return [3]int{grey, grey, grey}
	}
}

// cubeLevel maps a 0-5 colour cube coordinate to its channel value.
func cubeLevel(v int) int {
	if v == 0 {
		return 0
	}
	return 55 + 40*v
}

// fontStyle returns the fpdf style string for a context. The context's own
// meaning wins over the theme, so a boring theme still sets bold text in
// bold and links underlined.
func fontStyle(state wikimark.State, attrs ansiAttrs) string {
	bold, italic, underline := attrs.bold, attrs.italic, attrs.underline
	switch state {
	case wikimark.Bold:
		bold = true
	case wikimark.Italic:
		italic = true
	case wikimark.BoldItalic:
		bold, italic = true, true
	case wikimark.Link:
		underline = true
	case wikimark.Text, wikimark.Template:
	}
	var b strings.Builder
	if bold {
		b.WriteByte('B')
	}
	if italic {
		b.WriteByte('I')
	}
	if underline {
		b.WriteByte('U')
	}
	return b.String()
}

// styleFor resolves the PDF style of a context from the theme.
func styleFor(state wikimark.State, styles wikimark.Styles, cfg Config) pdfStyle {
	textRGB := cfg.TextRGB
	if cfg.Boring {
		textRGB = [3]int{0, 0, 0}
	}
	attrs := parseANSIPrefix(styles.For(state).Prefix, textRGB)
	color := attrs.color
	if cfg.Boring {
		color = textRGB
	}
	return pdfStyle{
		fontStyle: fontStyle(state, attrs),
		r:         color[0],
		g:         color[1],
		b:         color[2],
	}
}
