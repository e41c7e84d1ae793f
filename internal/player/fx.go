package player

import "go.uber.org/fx"

var Module = fx.Provide(NewFactory)
