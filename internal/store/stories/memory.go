package stories

import (
	"github.com/orgball2608/story-studio/internal/domain"
	"github.com/orgball2608/story-studio/internal/store"
	"github.com/orgball2608/story-studio/pkg/logger"
	"github.com/samber/lo"
)

type Memory struct {
	list   *store.Observable[[]domain.StoryItem]
	logger logger.Logger
}

func NewMemory(seed []domain.StoryItem, log logger.Logger) *Memory {
	return &Memory{
		list:   store.NewObservable(append([]domain.StoryItem(nil), seed...)),
		logger: log.WithComponent("StoryStore"),
	}
}

var _ Store = (*Memory)(nil)

func (m *Memory) Get() []domain.StoryItem {
	return m.list.Get()
}

func (m *Memory) GetStory(id string) (domain.StoryItem, bool) {
	return lo.Find(m.list.Get(), func(s domain.StoryItem) bool { return s.ID == id })
}

func (m *Memory) Add(item domain.StoryItem) error {
	if len(item.Segments) == 0 {
		return ErrEmptyStory
	}

	m.list.Update(func(current []domain.StoryItem) ([]domain.StoryItem, bool) {
		next := make([]domain.StoryItem, 0, len(current)+1)
		next = append(next, item)
		return append(next, current...), true
	})

	m.logger.Info("Story added", "story_id", item.ID, "segments", len(item.Segments))
	return nil
}

func (m *Memory) SetStories(next []domain.StoryItem) {
	m.list.Set(append([]domain.StoryItem(nil), next...))
}

// MarkViewed bumps the view counter of a story.
func (m *Memory) MarkViewed(id string) bool {
	return m.list.Update(func(current []domain.StoryItem) ([]domain.StoryItem, bool) {
		_, idx, ok := lo.FindIndexOf(current, func(s domain.StoryItem) bool { return s.ID == id })
		if !ok {
			return current, false
		}
		next := append([]domain.StoryItem(nil), current...)
		next[idx].ViewCount++
		return next, true
	})
}

// Recent returns stories posted at most maxAgeHours ago, keeping store order.
func (m *Memory) Recent(maxAgeHours float64) []domain.StoryItem {
	return lo.Filter(m.list.Get(), func(s domain.StoryItem, _ int) bool {
		return s.PostedAtHours <= maxAgeHours
	})
}

func (m *Memory) Subscribe(listener func()) func() {
	return m.list.Subscribe(listener)
}
