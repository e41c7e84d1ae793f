package highlights

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	mock_backend "github.com/orgball2608/story-studio/internal/backend/mocks"
	"github.com/orgball2608/story-studio/internal/domain"
	"github.com/orgball2608/story-studio/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMove(t *testing.T) {
	items := []string{"a", "b", "c", "d"}

	assert.Equal(t, []string{"b", "c", "a", "d"}, Move(items, 0, 2))
	assert.Equal(t, []string{"d", "a", "b", "c"}, Move(items, 3, 0))
	assert.Equal(t, []string{"a", "b", "c", "d"}, Move(items, 1, 9))
	assert.Equal(t, []string{"a", "b", "c", "d"}, items, "input is never modified")

	moved := Move(items, 1, 1)
	moved[0] = "z"
	assert.Equal(t, "a", items[0], "result does not alias the input")
}

func TestMoveUpDown(t *testing.T) {
	items := []int{1, 2, 3}

	assert.Equal(t, []int{2, 1, 3}, MoveUp(items, 1))
	assert.Equal(t, []int{1, 2, 3}, MoveUp(items, 0))
	assert.Equal(t, []int{1, 3, 2}, MoveDown(items, 1))
	assert.Equal(t, []int{1, 2, 3}, MoveDown(items, 2))
}

func TestRemove(t *testing.T) {
	items := []int{1, 2, 3}

	assert.Equal(t, []int{1, 3}, Remove(items, 1))
	assert.Equal(t, []int{1, 2, 3}, Remove(items, 5))
	assert.Equal(t, []int{1, 2, 3}, items)
}

func TestDraft(t *testing.T) {
	d := Draft{}
	assert.ErrorIs(t, d.Validate(), ErrMissingName)
	d.Name = "Travel"
	assert.ErrorIs(t, d.Validate(), ErrMissingCover)
	d.Cover = "cover.jpg"
	assert.ErrorIs(t, d.Validate(), ErrNoPhotos)

	d.AddPhotos("a.jpg", "b.jpg", "c.jpg")
	before := d.Photos
	d.MovePhotoDown(0)
	d.RemovePhoto(2)

	assert.NoError(t, d.Validate())
	assert.Equal(t, []string{"b.jpg", "a.jpg"}, d.Photos)
	assert.Equal(t, []string{"a.jpg", "b.jpg", "c.jpg"}, before)
}

func newTestManager(t *testing.T) (*Manager, *mock_backend.MockClient, *clockwork.FakeClock) {
	t.Helper()
	be := mock_backend.NewMockClient(gomock.NewController(t))
	fc := clockwork.NewFakeClockAt(time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC))
	return NewManager(Opts{Backend: be, Clock: fc, Logger: logger.NewDiscard()}), be, fc
}

func TestManager_Load(t *testing.T) {
	m, be, _ := newTestManager(t)
	be.EXPECT().GetHighlights(gomock.Any()).Return([]domain.Highlight{{ID: 1, Title: "Travel"}}, nil)
	calls := 0
	m.Subscribe(func() { calls++ })

	require.NoError(t, m.Load(context.Background()))

	assert.Len(t, m.List(), 1)
	assert.Equal(t, 1, calls)
}

func TestManager_LoadFailureKeepsList(t *testing.T) {
	m, be, _ := newTestManager(t)
	be.EXPECT().GetHighlights(gomock.Any()).Return([]domain.Highlight{{ID: 1}}, nil)
	be.EXPECT().GetHighlights(gomock.Any()).Return(nil, assert.AnError)

	require.NoError(t, m.Load(context.Background()))
	assert.ErrorIs(t, m.Load(context.Background()), assert.AnError)
	assert.Len(t, m.List(), 1)
}

func TestManager_SaveInsertsAndReplaces(t *testing.T) {
	m, _, fc := newTestManager(t)

	created, err := m.Save(Draft{Name: " Food ", Cover: "c.jpg", Photos: []string{"a.jpg"}})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "Food", created.Title)
	assert.Equal(t, fc.Now(), created.CreatedAt)

	fc.Advance(time.Hour)
	d := DraftFrom(created)
	d.AddPhotos("b.jpg")
	updated, err := m.Save(d)
	require.NoError(t, err)

	require.Len(t, m.List(), 1)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, m.List()[0].Photos)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	_, err = m.Save(Draft{Name: "x"})
	assert.ErrorIs(t, err, ErrMissingCover)
}

func TestManager_ReorderAndDelete(t *testing.T) {
	m, _, _ := newTestManager(t)
	for _, name := range []string{"a", "b", "c"} {
		_, err := m.Save(Draft{Name: name, Cover: "c.jpg", Photos: []string{"p.jpg"}})
		require.NoError(t, err)
	}

	m.Reorder(2, 0)
	assert.Equal(t, []string{"c", "a", "b"}, titles(m.List()))

	assert.True(t, m.Delete(1))
	assert.False(t, m.Delete(1))
	assert.Equal(t, []string{"c", "b"}, titles(m.List()))
}

func titles(hs []domain.Highlight) []string {
	out := make([]string, 0, len(hs))
	for _, h := range hs {
		out = append(out, h.Title)
	}
	return out
}
