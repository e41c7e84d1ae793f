package posts

import (
	"testing"

	"github.com/orgball2608/story-studio/internal/domain"
	"github.com/orgball2608/story-studio/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(seed ...domain.Post) *Memory {
	return NewMemory(seed, logger.NewDiscard())
}

func TestAddPost_PrependsAndNotifiesOnce(t *testing.T) {
	s := newTestStore(domain.Post{ID: "1", Author: "Alice"})
	calls := 0
	s.Subscribe(func() { calls++ })

	post := s.AddPost("hello", "")

	require.Len(t, s.Get(), 2)
	assert.Equal(t, post.ID, s.Get()[0].ID)
	assert.Equal(t, DefaultAuthor, post.Author)
	assert.Equal(t, "hello", post.Content)
	assert.Zero(t, post.LikeCount)
	assert.False(t, post.Liked)
	assert.Empty(t, post.Comments)
	assert.Equal(t, 1, calls)
}

func TestAddPost_UniqueIDs(t *testing.T) {
	s := newTestStore()
	a := s.AddPost("a", "")
	b := s.AddPost("b", "")
	assert.NotEqual(t, a.ID, b.ID)
}

func TestToggleLike_RoundTrip(t *testing.T) {
	s := newTestStore(domain.Post{ID: "1", LikeCount: 12})

	require.True(t, s.ToggleLike("1"))
	p, _ := s.GetPost("1")
	assert.True(t, p.Liked)
	assert.Equal(t, 13, p.LikeCount)

	require.True(t, s.ToggleLike("1"))
	p, _ = s.GetPost("1")
	assert.False(t, p.Liked)
	assert.Equal(t, 12, p.LikeCount)
}

func TestToggleLike_FloorsAtZero(t *testing.T) {
	s := newTestStore(domain.Post{ID: "1", Liked: true, LikeCount: 0})

	s.ToggleLike("1")

	p, _ := s.GetPost("1")
	assert.False(t, p.Liked)
	assert.Zero(t, p.LikeCount)
}

func TestToggleLike_UnknownIDIsNoop(t *testing.T) {
	s := newTestStore(domain.Post{ID: "1"})
	calls := 0
	s.Subscribe(func() { calls++ })
	before := s.Get()

	assert.False(t, s.ToggleLike("missing"))
	assert.Equal(t, before, s.Get())
	assert.Zero(t, calls)
}

func TestToggleLike_PreviousSnapshotUnchanged(t *testing.T) {
	s := newTestStore(domain.Post{ID: "1", LikeCount: 3})
	before := s.Get()

	s.ToggleLike("1")

	assert.Equal(t, 3, before[0].LikeCount)
	assert.False(t, before[0].Liked)
}

func TestAddComment(t *testing.T) {
	s := newTestStore(domain.Post{ID: "1", Comments: []domain.Comment{{ID: "c1", Author: "Bruno", Text: "Awesome!"}}})

	c, ok := s.AddComment("1", "nice", "")
	require.True(t, ok)

	p, _ := s.GetPost("1")
	require.Len(t, p.Comments, 2)
	assert.Equal(t, c, p.Comments[1])
	assert.Equal(t, DefaultAuthor, c.Author)
	assert.Equal(t, "nice", c.Text)
}

func TestAddComment_UnknownPost(t *testing.T) {
	s := newTestStore()
	calls := 0
	s.Subscribe(func() { calls++ })

	_, ok := s.AddComment("nope", "hi", "Eva")

	assert.False(t, ok)
	assert.Zero(t, calls)
}

func TestSetPosts_ReplacesList(t *testing.T) {
	s := newTestStore(Seed()...)
	require.Len(t, s.Get(), 6)

	s.SetPosts([]domain.Post{{ID: "x"}})

	assert.Len(t, s.Get(), 1)
	_, ok := s.GetPost("1")
	assert.False(t, ok)
}
