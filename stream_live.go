package wikimark

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"sync"
)

var streamRendererPool = sync.Pool{
	New: func() any {
		return &StreamRenderer{}
	},
}

var readerPool = sync.Pool{
	New: func() any {
		return bufio.NewReaderSize(nil, 4096)
	},
}

var bufferPool = sync.Pool{
	New: func() any {
		return new(bytes.Buffer)
	},
}

// Document is parsed input together with any front matter.
type Document struct {
	Meta map[string]any
	Root *Node
	// Bytes is the size of the markup body after front matter removal.
	Bytes int
}

// ParseRequest configures ParseReader.
type ParseRequest struct {
	Reader  io.Reader
	Options []Option
}

// RenderRequest configures Render.
type RenderRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Width   int
	Theme   Theme
	Options []Option
}

// ParseReader reads all markup from req.Reader and parses it. Invalid
// UTF-8 and binary input are rejected; control characters other than
// whitespace are dropped.
func ParseReader(req ParseRequest) (*Document, error) {
	if req.Reader == nil {
		return nil, fmt.Errorf("parse: reader is nil")
	}
	cfg := newConfig(req.Options)
	reader := readerPool.Get().(*bufio.Reader)
	reader.Reset(req.Reader)
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer func() {
		reader.Reset(nil)
		readerPool.Put(reader)
		buf.Reset()
		bufferPool.Put(buf)
	}()
	if _, err := buf.ReadFrom(reader); err != nil {
		return nil, fmt.Errorf("parse: read: %w", err)
	}
	src := buf.Bytes()
	if err := ValidateInput(src); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	src = stripControl(src)

	doc := &Document{}
	if cfg.frontMatter {
		meta, body := splitFrontMatter(src)
		if meta != nil {
			m, err := decodeFrontMatter(meta)
			if err != nil {
				return nil, fmt.Errorf("parse: %w", err)
			}
			doc.Meta = m
		}
		src = body
	}
	doc.Bytes = len(src)

	p := parserPool.Get().(*Parser)
	p.cfg = cfg
	doc.Root = p.Parse(string(src))
	p.cfg = config{}
	parserPool.Put(p)

	if cfg.log != nil {
		cfg.log.Debug("wikimark parsed", "bytes", doc.Bytes, "front_matter", doc.Meta != nil)
	}
	return doc, nil
}

// Render parses markup from req.Reader and writes styled terminal output.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("render: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	doc, err := ParseReader(ParseRequest{Reader: req.Reader, Options: req.Options})
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	stream := streamRendererPool.Get().(*StreamRenderer)
	stream.resetWithConfig(req.Writer, req.Width, newConfig(req.Options))
	err = Emit(doc.Root, req.Theme, stream)
	stream.Reset(io.Discard, 0)
	streamRendererPool.Put(stream)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
