package posts

import (
	"github.com/google/uuid"
	"github.com/orgball2608/story-studio/internal/domain"
	"github.com/orgball2608/story-studio/internal/store"
	"github.com/orgball2608/story-studio/pkg/logger"
	"github.com/samber/lo"
)

type Memory struct {
	list   *store.Observable[[]domain.Post]
	logger logger.Logger
}

func NewMemory(seed []domain.Post, log logger.Logger) *Memory {
	return &Memory{
		list:   store.NewObservable(append([]domain.Post(nil), seed...)),
		logger: log.WithComponent("PostStore"),
	}
}

var _ Store = (*Memory)(nil)

func (m *Memory) Get() []domain.Post {
	return m.list.Get()
}

func (m *Memory) GetPost(id string) (domain.Post, bool) {
	return lo.Find(m.list.Get(), func(p domain.Post) bool { return p.ID == id })
}

func (m *Memory) SetPosts(next []domain.Post) {
	m.list.Set(append([]domain.Post(nil), next...))
}

func (m *Memory) AddPost(content string, imageURI string) domain.Post {
	post := domain.Post{
		ID:       uuid.NewString(),
		Author:   DefaultAuthor,
		Content:  content,
		Time:     "now",
		ImageURI: imageURI,
		Comments: []domain.Comment{},
	}

	m.list.Update(func(current []domain.Post) ([]domain.Post, bool) {
		next := make([]domain.Post, 0, len(current)+1)
		next = append(next, post)
		return append(next, current...), true
	})

	m.logger.Debug("Post added", "post_id", post.ID)
	return post
}

func (m *Memory) ToggleLike(id string) bool {
	return m.list.Update(func(current []domain.Post) ([]domain.Post, bool) {
		_, idx, ok := lo.FindIndexOf(current, func(p domain.Post) bool { return p.ID == id })
		if !ok {
			return current, false
		}

		next := append([]domain.Post(nil), current...)
		p := next[idx]
		if p.Liked {
			p.LikeCount = max(p.LikeCount-1, 0)
		} else {
			p.LikeCount++
		}
		p.Liked = !p.Liked
		next[idx] = p
		return next, true
	})
}

func (m *Memory) AddComment(postID, text, author string) (domain.Comment, bool) {
	if author == "" {
		author = DefaultAuthor
	}
	comment := domain.Comment{
		ID:     uuid.NewString(),
		Author: author,
		Text:   text,
	}

	added := m.list.Update(func(current []domain.Post) ([]domain.Post, bool) {
		_, idx, ok := lo.FindIndexOf(current, func(p domain.Post) bool { return p.ID == postID })
		if !ok {
			return current, false
		}

		next := append([]domain.Post(nil), current...)
		p := next[idx]
		comments := make([]domain.Comment, 0, len(p.Comments)+1)
		p.Comments = append(append(comments, p.Comments...), comment)
		next[idx] = p
		return next, true
	})
	if !added {
		m.logger.Debug("Comment ignored, unknown post", "post_id", postID)
		return domain.Comment{}, false
	}
	return comment, true
}

func (m *Memory) Subscribe(listener func()) func() {
	return m.list.Subscribe(listener)
}
