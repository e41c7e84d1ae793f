package player

import (
	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/story-studio/internal/store"
	"github.com/orgball2608/story-studio/pkg/config"
	"github.com/orgball2608/story-studio/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Clock  clockwork.Clock
	Logger logger.Logger
}

// Factory builds one Player per opened viewer.
type Factory struct {
	opts Opts
}

func NewFactory(opts Opts) *Factory {
	return &Factory{opts: opts}
}

// New returns an idle player. video may be nil for image-only stories.
func (f *Factory) New(video VideoSurface) *Player {
	return &Player{
		clock:        f.opts.Clock,
		defaultImage: f.opts.Config.Player.DefaultImageDuration,
		minImage:     f.opts.Config.Player.MinImageDuration,
		video:        video,
		logger:       f.opts.Logger.WithComponent("StoryPlayer"),
		snapshots:    store.NewObservable(Snapshot{}),
	}
}
