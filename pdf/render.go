package pdf

import (
	"fmt"
	"io"

	"codeberg.org/go-pdf/fpdf"

	"pkt.systems/wikimark"
)

// RenderRequest contains inputs for PDF rendering.
type RenderRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Theme   wikimark.Theme
	Config  Config
	Options []wikimark.Option
}

// Render converts wiki markup to a themed PDF.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("pdf render: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("pdf render: writer is nil")
	}
	doc, err := wikimark.ParseReader(wikimark.ParseRequest{Reader: req.Reader, Options: req.Options})
	if err != nil {
		return fmt.Errorf("pdf render: %w", err)
	}
	cfg := DefaultConfig()
	applyConfig(&cfg, req.Config)
	if cfg.Title == "" {
		if title, ok := doc.Meta["title"].(string); ok {
			cfg.Title = title
		}
	}
	return RenderTree(req.Writer, doc.Root, req.Theme, cfg)
}

// RenderTree writes an already parsed tree as a PDF.
func RenderTree(w io.Writer, root *wikimark.Node, theme wikimark.Theme, cfg Config) error {
	if w == nil {
		return fmt.Errorf("pdf render: writer is nil")
	}
	if cfg.FontFamily == "" || cfg.FontSize <= 0 || cfg.LineHeight <= 0 {
		return fmt.Errorf("pdf render: invalid font configuration")
	}
	if theme == nil {
		theme = wikimark.DefaultTheme()
	}
	styles := theme.Styles()

	doc := fpdf.New("P", "pt", cfg.PageSize, "")
	doc.SetMargins(cfg.Margin, cfg.Margin, cfg.Margin)
	doc.SetAutoPageBreak(true, cfg.Margin)
	doc.SetCreator("wikimark", true)
	if cfg.Title != "" {
		doc.SetTitle(cfg.Title, true)
	}
	if cfg.BackgroundEnabled && !cfg.Boring {
		doc.SetHeaderFunc(func() {
			pageW, pageH := doc.GetPageSize()
			doc.SetFillColor(cfg.BackgroundRGB[0], cfg.BackgroundRGB[1], cfg.BackgroundRGB[2])
			doc.Rect(0, 0, pageW, pageH, "F")
		})
	}
	doc.AddPage()

	translate := doc.UnicodeTranslatorFromDescriptor("")
	lineHeight := cfg.FontSize * cfg.LineHeight
	cache := make(map[wikimark.State]pdfStyle, 6)
	for _, tok := range wikimark.Tokens(root, styles) {
		st, ok := cache[tok.State]
		if !ok {
			st = styleFor(tok.State, styles, cfg)
			cache[tok.State] = st
		}
		doc.SetFont(cfg.FontFamily, st.fontStyle, cfg.FontSize)
		doc.SetTextColor(st.r, st.g, st.b)
		doc.Write(lineHeight, translate(tok.Text))
	}
	if err := doc.Error(); err != nil {
		return fmt.Errorf("pdf render: %w", err)
	}
	if err := doc.Output(w); err != nil {
		return fmt.Errorf("pdf render: %w", err)
	}
	return nil
}
