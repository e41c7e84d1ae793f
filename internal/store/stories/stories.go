package stories

import (
	"github.com/orgball2608/story-studio/internal/domain"
	"github.com/orgball2608/story-studio/pkg/errors"
)

var ErrEmptyStory = errors.New("story has no segments")

// Store keeps stories newest-first.
type Store interface {
	Get() []domain.StoryItem
	GetStory(id string) (domain.StoryItem, bool)
	Add(item domain.StoryItem) error
	SetStories(next []domain.StoryItem)
	MarkViewed(id string) bool
	Recent(maxAgeHours float64) []domain.StoryItem
	Subscribe(listener func()) (unsubscribe func())
}
