package highlights

import (
	"context"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/orgball2608/story-studio/internal/backend"
	"github.com/orgball2608/story-studio/internal/domain"
	"github.com/orgball2608/story-studio/internal/store"
	"github.com/orgball2608/story-studio/pkg/logger"
	"github.com/samber/lo"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Backend backend.Client
	Clock   clockwork.Clock
	Logger  logger.Logger
}

// Manager holds the profile highlights shown on the profile screen.
type Manager struct {
	list    *store.Observable[[]domain.Highlight]
	backend backend.Client
	clock   clockwork.Clock
	logger  logger.Logger
}

func NewManager(opts Opts) *Manager {
	return &Manager{
		list:    store.NewObservable([]domain.Highlight{}),
		backend: opts.Backend,
		clock:   opts.Clock,
		logger:  opts.Logger.WithComponent("Highlights"),
	}
}

func (m *Manager) List() []domain.Highlight {
	return m.list.Get()
}

func (m *Manager) Subscribe(listener func()) func() {
	return m.list.Subscribe(listener)
}

// Load replaces the list with the backend's highlights. On failure the
// current list is kept.
func (m *Manager) Load(ctx context.Context) error {
	hs, err := m.backend.GetHighlights(ctx)
	if err != nil {
		m.logger.Error("Failed to load highlights", "error", err)
		return err
	}
	m.list.Set(append([]domain.Highlight{}, hs...))
	m.logger.Debug("Highlights loaded", "count", len(hs))
	return nil
}

// Save validates the draft and inserts or replaces the matching highlight.
func (m *Manager) Save(d Draft) (domain.Highlight, error) {
	if err := d.Validate(); err != nil {
		return domain.Highlight{}, err
	}

	h := domain.Highlight{
		ID:        d.ID,
		Title:     strings.TrimSpace(d.Name),
		CoverURI:  d.Cover,
		Photos:    append([]string(nil), d.Photos...),
		CreatedAt: m.clock.Now(),
	}

	m.list.Update(func(current []domain.Highlight) ([]domain.Highlight, bool) {
		if h.ID != 0 {
			if existing, idx, ok := lo.FindIndexOf(current, func(x domain.Highlight) bool { return x.ID == h.ID }); ok {
				h.CreatedAt = existing.CreatedAt
				next := append([]domain.Highlight(nil), current...)
				next[idx] = h
				return next, true
			}
		} else {
			h.ID = nextID(current)
		}
		return append(append([]domain.Highlight(nil), current...), h), true
	})
	return h, nil
}

func (m *Manager) Delete(id int) bool {
	return m.list.Update(func(current []domain.Highlight) ([]domain.Highlight, bool) {
		_, idx, ok := lo.FindIndexOf(current, func(x domain.Highlight) bool { return x.ID == id })
		if !ok {
			return current, false
		}
		return Remove(current, idx), true
	})
}

// Reorder moves a highlight within the profile row.
func (m *Manager) Reorder(from, to int) {
	m.list.Update(func(current []domain.Highlight) ([]domain.Highlight, bool) {
		if from == to || from < 0 || to < 0 || from >= len(current) || to >= len(current) {
			return current, false
		}
		return Move(current, from, to), true
	})
}

func nextID(current []domain.Highlight) int {
	return lo.MaxBy(current, func(a, b domain.Highlight) bool { return a.ID > b.ID }).ID + 1
}

