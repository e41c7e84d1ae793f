package composer

import (
	"time"

	"github.com/orgball2608/story-studio/internal/ratelimit"
	"go.uber.org/fx"
)

var Module = fx.Module("composer",
	fx.Provide(
		fx.Annotate(
			func() *ratelimit.InMemoryLimiter {
				return ratelimit.NewInMemoryLimiter(4, time.Second, 2)
			},
			fx.As(new(ratelimit.Limiter)),
		),
		New,
	),
)
