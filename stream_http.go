package wikimark

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// DefaultHTTPMaxBytes caps the size of a page fetched by HTTPRender.
const DefaultHTTPMaxBytes = 8 << 20

// ErrTooLarge reports a remote page larger than the configured limit.
var ErrTooLarge = errors.New("input exceeds size limit")

// HTTPRenderRequest configures HTTPRender.
type HTTPRenderRequest struct {
	URL      string
	Client   *http.Client
	Writer   io.Writer
	Width    int
	Theme    Theme
	MaxBytes int64
	Options  []Option
}

// HTTPRender fetches raw wiki markup over HTTP(S) and renders it like Render.
func HTTPRender(ctx context.Context, req HTTPRenderRequest) error {
	if req.URL == "" {
		return fmt.Errorf("http render: URL is required")
	}
	if req.Writer == nil {
		return fmt.Errorf("http render: writer is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	client := req.Client
	if client == nil {
		client = http.DefaultClient
	}
	limit := req.MaxBytes
	if limit <= 0 {
		limit = DefaultHTTPMaxBytes
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return fmt.Errorf("http render: build request: %w", err)
	}
	if httpReq.URL.Scheme != "http" && httpReq.URL.Scheme != "https" {
		return fmt.Errorf("http render: unsupported scheme %q", httpReq.URL.Scheme)
	}
	httpReq.Header.Set("Accept", "text/x-wiki, text/plain;q=0.9, */*;q=0.1")
	resp, err := client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("http render: request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("http render: status %s", resp.Status)
	}
	if resp.ContentLength > limit {
		return fmt.Errorf("http render: %d bytes: %w", resp.ContentLength, ErrTooLarge)
	}
	body := &limitedReader{r: resp.Body, n: limit}
	cfg := newConfig(req.Options)
	if cfg.log != nil {
		cfg.log.Debug("wikimark fetch", "url", req.URL, "status", resp.StatusCode)
	}
	return Render(RenderRequest{
		Reader:  body,
		Writer:  req.Writer,
		Width:   req.Width,
		Theme:   req.Theme,
		Options: req.Options,
	})
}

// limitedReader fails instead of silently truncating once n bytes are read.
type limitedReader struct {
	r io.Reader
	n int64
}

func (l *limitedReader) Read(p []byte) (int, error) {
	if l.n <= 0 {
		var probe [1]byte
		if n, _ := l.r.Read(probe[:]); n > 0 {
			return 0, ErrTooLarge
		}
		return 0, io.EOF
	}
	if int64(len(p)) > l.n {
		p = p[:l.n]
	}
	n, err := l.r.Read(p)
	l.n -= int64(n)
	return n, err
}
