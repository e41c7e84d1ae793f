package app

import (
	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/story-studio/internal/backend/backendimpl"
	"github.com/orgball2608/story-studio/internal/composer"
	"github.com/orgball2608/story-studio/internal/gesture"
	"github.com/orgball2608/story-studio/internal/highlights"
	"github.com/orgball2608/story-studio/internal/notification/notificationimpl"
	"github.com/orgball2608/story-studio/internal/player"
	"github.com/orgball2608/story-studio/internal/raster/rasterimpl"
	stores "github.com/orgball2608/story-studio/internal/store/fx"
	"github.com/orgball2608/story-studio/internal/unread/unreadimpl"
	"github.com/orgball2608/story-studio/pkg/config"
	"github.com/orgball2608/story-studio/pkg/logger"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		clockwork.NewRealClock,
	),
	stores.Module,
	backendimpl.Module,
	notificationimpl.Module,
	unreadimpl.Module,
	gesture.Module,
	player.Module,
	rasterimpl.Module,
	composer.Module,
	highlights.Module,
	fx.Invoke(runDebugServer),
)
