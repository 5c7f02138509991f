package wikimark

import (
	"bytes"

	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// wrapANSI word-wraps styled text. With hard set, words longer than the
// limit are broken as well.
func wrapANSI(text []byte, limit int, hard bool) []byte {
	ww := wordwrap.NewWriter(limit)
	_, _ = ww.Write(text)
	_ = ww.Close()
	out := ww.Bytes()
	if !hard {
		return trimLineEnds(out)
	}
	hw := wrap.NewWriter(limit)
	hw.PreserveSpace = false
	_, _ = hw.Write(out)
	return trimLineEnds(hw.Bytes())
}

// trimLineEnds drops spaces left before line breaks by the word wrapper.
func trimLineEnds(b []byte) []byte {
	if !bytes.Contains(b, []byte(" \n")) {
		return b
	}
	lines := bytes.Split(b, []byte("\n"))
	for i, line := range lines {
		lines[i] = bytes.TrimRight(line, " ")
	}
	return bytes.Join(lines, []byte("\n"))
}
