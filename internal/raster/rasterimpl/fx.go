package rasterimpl

import (
	"context"

	"github.com/orgball2608/story-studio/internal/raster"
	"go.uber.org/fx"
)

var Module = fx.Module("raster",
	fx.Provide(
		New,
		func(r *RasterImpl) raster.Rasterizer { return r },
	),
	fx.Invoke(func(lc fx.Lifecycle, r *RasterImpl) {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				r.Close()
				return nil
			},
		})
	}),
)
