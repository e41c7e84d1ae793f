package composer

import (
	"context"

	"github.com/google/uuid"
	"github.com/orgball2608/story-studio/internal/backend"
	"github.com/orgball2608/story-studio/internal/domain"
	"github.com/orgball2608/story-studio/internal/ratelimit"
	"github.com/orgball2608/story-studio/internal/raster"
	"github.com/orgball2608/story-studio/internal/store/stories"
	"github.com/orgball2608/story-studio/pkg/config"
	"github.com/orgball2608/story-studio/pkg/logger"
	"go.uber.org/fx"
)

var SelfAuthor = domain.Author{Name: "You", AvatarURI: "https://i.pravatar.cc/160?img=1"}

type Opts struct {
	fx.In

	Config     *config.Config
	Logger     logger.Logger
	Backend    backend.Client
	Rasterizer raster.Rasterizer
	Stories    stories.Store
	Limiter    ratelimit.Limiter
}

// Service opens editor sessions and turns them into stories.
type Service struct {
	backend    backend.Client
	rasterizer raster.Rasterizer
	stories    stories.Store
	limiter    ratelimit.Limiter
	upload     bool
	logger     logger.Logger
}

func New(opts Opts) *Service {
	return &Service{
		backend:    opts.Backend,
		rasterizer: opts.Rasterizer,
		stories:    opts.Stories,
		limiter:    opts.Limiter,
		upload:     opts.Config.Editor.UploadStories,
		logger:     opts.Logger.WithComponent("Composer"),
	}
}

// NewSession opens an empty canvas of the given size.
func (svc *Service) NewSession(width, height float64, audio AudioPlayer) *Session {
	return &Session{
		id:       uuid.NewString(),
		width:    width,
		height:   height,
		audio:    audio,
		backend:  svc.backend,
		limiter:  svc.limiter,
		logger:   svc.logger.WithComponent("ComposerSession"),
		mode:     ModeNone,
		color:    Colors[0],
		brush:    DefaultBrush,
		font:     Fonts[0],
		tagCache: make(map[string][]domain.User),
	}
}

// Save flattens the session into a one-segment story and adds it to the
// story store. Without a background nothing happens and ok is false.
func (svc *Service) Save(ctx context.Context, session *Session) (domain.StoryItem, bool, error) {
	composition := session.Composition()
	if composition.BackgroundURI == "" {
		return domain.StoryItem{}, false, nil
	}

	uri, err := svc.rasterizer.Rasterize(ctx, composition)
	if err != nil {
		svc.logger.Error("Failed to rasterize story", "session_id", session.ID(), "error", err)
		return domain.StoryItem{}, false, err
	}

	caption := session.Caption()
	item := domain.StoryItem{
		ID:            uuid.NewString(),
		Author:        SelfAuthor,
		PostedAt:      "now",
		PostedAtHours: 0,
		Caption:       caption,
		CoverURI:      uri,
		Segments: []domain.StorySegment{
			{
				ID:         uuid.NewString(),
				MediaKind:  domain.MediaImage,
				SourceURI:  uri,
				DurationMs: domain.Millis(StoryDurationMs),
			},
		},
	}

	if err := svc.stories.Add(item); err != nil {
		svc.logger.Error("Failed to add story", "story_id", item.ID, "error", err)
		return domain.StoryItem{}, false, err
	}
	svc.logger.Info("Story saved", "story_id", item.ID, "uri", uri)

	if svc.upload {
		if _, err := svc.backend.CreateStoryWithImage(ctx, caption, uri); err != nil {
			svc.logger.Warn("Story kept locally, upload failed", "story_id", item.ID, "error", err)
		}
	}

	return item, true, nil
}
