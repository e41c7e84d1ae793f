package posts

import (
	"github.com/orgball2608/story-studio/pkg/logger"
	"go.uber.org/fx"
)

var Module = fx.Provide(
	fx.Annotate(
		func(log logger.Logger) *Memory {
			return NewMemory(Seed(), log)
		},
		fx.As(new(Store)),
	),
)
