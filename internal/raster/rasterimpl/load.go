package rasterimpl

import (
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// loader opens a background from a local path, a file:// URI or http(s).
type loader struct {
	http *http.Client
}

func newLoader(timeout time.Duration) *loader {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &loader{http: &http.Client{Timeout: timeout}}
}

func (l *loader) load(ctx context.Context, uri string) (image.Image, error) {
	if uri == "" {
		return nil, fmt.Errorf("empty background uri")
	}

	rc, err := l.open(ctx, uri)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	img, _, err := image.Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", uri, err)
	}
	return img, nil
}

func (l *loader) open(ctx context.Context, uri string) (io.ReadCloser, error) {
	switch {
	case strings.HasPrefix(uri, "http://"), strings.HasPrefix(uri, "https://"):
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
		if err != nil {
			return nil, err
		}
		resp, err := l.http.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("fetch %s: status %d", uri, resp.StatusCode)
		}
		return resp.Body, nil
	case strings.HasPrefix(uri, "file://"):
		u, err := url.Parse(uri)
		if err != nil {
			return nil, err
		}
		return os.Open(u.Path)
	}
	return os.Open(uri)
}
