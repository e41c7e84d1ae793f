//go:generate go run go.uber.org/mock/mockgen -source=raster.go -destination=mocks/mock.go
package raster

import (
	"context"

	"github.com/orgball2608/story-studio/internal/domain"
)

// Rasterizer flattens a composition into one image file and returns its URI.
type Rasterizer interface {
	Rasterize(ctx context.Context, composition domain.Composition) (string, error)
}
