package unreadimpl

import (
	"context"

	"github.com/orgball2608/story-studio/internal/unread"
	"go.uber.org/fx"
)

var Module = fx.Module("unread",
	fx.Provide(
		fx.Annotate(
			New,
			fx.As(new(unread.Client)),
		),
	),
	fx.Invoke(func(lc fx.Lifecycle, client unread.Client) {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				return client.Start(ctx)
			},
			OnStop: func(ctx context.Context) error {
				return client.Stop()
			},
		})
	}),
)
