package wikimark

import (
	"bytes"
	"io"

	"github.com/muesli/reflow/ansi"
)

const ansiReset = "\x1b[0m"

// StreamRenderer renders tokens to an io.Writer as styled terminal text.
// Output is buffered until Flush, where it is wrapped to the configured
// width. A width of zero disables wrapping.
type StreamRenderer struct {
	w        io.Writer
	width    int
	softWrap bool
	style    string
	buf      bytes.Buffer
}

// NewStreamRenderer creates a renderer writing to w.
func NewStreamRenderer(w io.Writer, width int, opts ...Option) *StreamRenderer {
	cfg := newConfig(opts)
	s := &StreamRenderer{}
	s.resetWithConfig(w, width, cfg)
	return s
}

// Reset clears renderer state for reuse with a new writer or width.
func (s *StreamRenderer) Reset(w io.Writer, width int) {
	s.resetWithConfig(w, width, config{softWrap: s.softWrap})
}

func (s *StreamRenderer) resetWithConfig(w io.Writer, width int, cfg config) {
	s.w = w
	s.width = width
	s.softWrap = cfg.softWrap
	s.style = ""
	s.buf.Reset()
}

// Width returns the configured wrap width.
func (s *StreamRenderer) Width() int {
	return s.width
}

// SetWidth updates the wrap width.
func (s *StreamRenderer) SetWidth(width int) {
	s.width = width
}

// WriteToken appends a token, switching styles when the token's style
// differs from the previous one.
func (s *StreamRenderer) WriteToken(tok Token) error {
	if tok.Text == "" {
		return nil
	}
	if tok.Style.Prefix != s.style {
		if s.style != "" {
			s.buf.WriteString(ansiReset)
		}
		s.buf.WriteString(tok.Style.Prefix)
		s.style = tok.Style.Prefix
	}
	s.buf.WriteString(tok.Text)
	return nil
}

// Flush resets the style, wraps the buffered text and writes it out with a
// trailing newline.
func (s *StreamRenderer) Flush() error {
	if s.style != "" {
		s.buf.WriteString(ansiReset)
		s.style = ""
	}
	out := s.buf.Bytes()
	if s.width > 0 {
		out = wrapANSI(out, s.width, s.softWrap)
	}
	s.buf.Reset()
	if len(out) == 0 {
		return nil
	}
	if _, err := s.w.Write(out); err != nil {
		return err
	}
	if out[len(out)-1] != '\n' {
		if _, err := io.WriteString(s.w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// PrintableWidth returns the display width of s ignoring escape sequences.
func PrintableWidth(s string) int {
	return ansi.PrintableRuneWidth(s)
}
