// Package palette holds the ANSI colour sets behind the built-in themes.
package palette

import "strconv"

// SGR attribute sequences.
const (
	Reset     = "\x1b[0m"
	Bold      = "\x1b[1m"
	Italic    = "\x1b[3m"
	Underline = "\x1b[4m"
)

// Palette assigns a foreground colour sequence to each formatting context.
// Empty fields leave the terminal default in place.
type Palette struct {
	Text       string
	Bold       string
	Italic     string
	BoldItalic string
	Link       string
	Template   string
}

// Fg returns the xterm-256 foreground sequence for idx.
func Fg(idx int) string {
	return "\x1b[38;5;" + strconv.Itoa(idx) + "m"
}

// Built-in palettes, named after the colour schemes they approximate.
var (
	PaletteDefault = Palette{
		Bold:       Fg(215),
		Italic:     Fg(152),
		BoldItalic: Fg(222),
		Link:       Fg(81),
		Template:   Fg(177),
	}
	PaletteGruvbox = Palette{
		Text:       Fg(223),
		Bold:       Fg(214),
		Italic:     Fg(108),
		BoldItalic: Fg(208),
		Link:       Fg(109),
		Template:   Fg(175),
	}
	PaletteGruvboxLight = Palette{
		Text:       Fg(237),
		Bold:       Fg(130),
		Italic:     Fg(66),
		BoldItalic: Fg(166),
		Link:       Fg(24),
		Template:   Fg(96),
	}
	PaletteDracula = Palette{
		Text:       Fg(255),
		Bold:       Fg(215),
		Italic:     Fg(228),
		BoldItalic: Fg(212),
		Link:       Fg(117),
		Template:   Fg(141),
	}
	PaletteNord = Palette{
		Text:       Fg(254),
		Bold:       Fg(222),
		Italic:     Fg(152),
		BoldItalic: Fg(180),
		Link:       Fg(110),
		Template:   Fg(139),
	}
	PaletteSolarizedDark = Palette{
		Text:       Fg(246),
		Bold:       Fg(136),
		Italic:     Fg(37),
		BoldItalic: Fg(166),
		Link:       Fg(33),
		Template:   Fg(125),
	}
	PaletteSolarizedLight = Palette{
		Text:       Fg(241),
		Bold:       Fg(136),
		Italic:     Fg(37),
		BoldItalic: Fg(166),
		Link:       Fg(33),
		Template:   Fg(61),
	}
	PaletteTokyoNight = Palette{
		Text:       Fg(189),
		Bold:       Fg(215),
		Italic:     Fg(158),
		BoldItalic: Fg(210),
		Link:       Fg(111),
		Template:   Fg(141),
	}
	PaletteGithubLight = Palette{
		Text:       Fg(235),
		Bold:       Fg(88),
		Italic:     Fg(22),
		BoldItalic: Fg(130),
		Link:       Fg(25),
		Template:   Fg(90),
	}
)
