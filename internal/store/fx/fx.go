package fx

import (
	"github.com/orgball2608/story-studio/internal/store/posts"
	"github.com/orgball2608/story-studio/internal/store/stories"
	"go.uber.org/fx"
)

var Module = fx.Options(
	posts.Module,
	stories.Module,
)
