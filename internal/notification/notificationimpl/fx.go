package notificationimpl

import (
	"context"

	"github.com/orgball2608/story-studio/internal/notification"
	"go.uber.org/fx"
)

var Module = fx.Module("notification",
	fx.Provide(
		NewDispatcher,
		func(d *Dispatcher) notification.Transport { return d },
		NewSocket,
		func(s *Socket) ConnectionStatus { return s },
		NewCenter,
	),
	fx.Invoke(func(lc fx.Lifecycle, socket *Socket, center *Center) {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				center.Start()
				return socket.Start(ctx)
			},
			OnStop: func(ctx context.Context) error {
				center.Stop()
				return socket.Stop(ctx)
			},
		})
	}),
)
