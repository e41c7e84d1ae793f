package rasterimpl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/orgball2608/story-studio/internal/domain"
	"github.com/orgball2608/story-studio/internal/raster"
	"github.com/orgball2608/story-studio/pkg/config"
	"github.com/orgball2608/story-studio/pkg/logger"
	"github.com/panjf2000/ants/v2"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

// RasterImpl renders compositions to JPEG files on a bounded worker pool.
type RasterImpl struct {
	pool      *ants.Pool
	exportDir string
	quality   int
	loader    *loader
	logger    logger.Logger
}

func New(opts Opts) (*RasterImpl, error) {
	workers := opts.Config.Editor.ExportWorkers
	if workers <= 0 {
		workers = 1
	}
	pool, err := ants.NewPool(workers, ants.WithPreAlloc(true))
	if err != nil {
		return nil, fmt.Errorf("failed to create export pool: %w", err)
	}

	dir := opts.Config.Editor.ExportDir
	if dir == "" {
		dir = filepath.Join(os.TempDir(), "story-studio")
	}

	quality := opts.Config.Editor.JpegQuality
	if quality <= 0 || quality > 100 {
		quality = 90
	}

	return &RasterImpl{
		pool:      pool,
		exportDir: dir,
		quality:   quality,
		loader:    newLoader(opts.Config.Backend.Timeout),
		logger:    opts.Logger.WithComponent("Rasterizer"),
	}, nil
}

var _ raster.Rasterizer = (*RasterImpl)(nil)

type result struct {
	path string
	err  error
}

// Rasterize waits for the export job or for ctx, whichever ends first. A
// cancelled job still finishes in the background and its file is removed.
func (r *RasterImpl) Rasterize(ctx context.Context, composition domain.Composition) (string, error) {
	done := make(chan result, 1)

	err := r.pool.Submit(func() {
		if ctx.Err() != nil {
			done <- result{err: ctx.Err()}
			return
		}
		path, err := r.export(ctx, composition)
		done <- result{path: path, err: err}
	})
	if err != nil {
		r.logger.Error("Failed to submit export job", "error", err)
		return "", fmt.Errorf("failed to submit export job: %w", err)
	}

	select {
	case res := <-done:
		return res.path, res.err
	case <-ctx.Done():
		go func() {
			if res := <-done; res.err == nil {
				_ = os.Remove(res.path)
			}
		}()
		return "", ctx.Err()
	}
}

func (r *RasterImpl) export(ctx context.Context, composition domain.Composition) (string, error) {
	bg, err := r.loader.load(ctx, composition.BackgroundURI)
	if err != nil {
		return "", fmt.Errorf("failed to load background: %w", err)
	}

	img := render(bg, composition)

	if err := os.MkdirAll(r.exportDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export dir: %w", err)
	}
	path := filepath.Join(r.exportDir, "story-"+uuid.NewString()+".jpg")
	if err := writeJPEG(path, img, r.quality); err != nil {
		return "", err
	}

	r.logger.Debug("Story exported", "path", path, "strokes", len(composition.Strokes), "overlays", len(composition.Overlays))
	return path, nil
}

// Close waits for running exports and stops the pool.
func (r *RasterImpl) Close() {
	r.pool.Release()
}
