package gesture

import "go.uber.org/fx"

var Module = fx.Provide(NewFactory)
