package posts

import (
	"github.com/orgball2608/story-studio/internal/domain"
)

const DefaultAuthor = "You"

// Store is the in-memory feed. Every successful mutation replaces the list
// and notifies subscribers; mutations on unknown ids are no-ops.
type Store interface {
	Get() []domain.Post
	GetPost(id string) (domain.Post, bool)
	SetPosts(next []domain.Post)
	AddPost(content string, imageURI string) domain.Post
	ToggleLike(id string) bool
	AddComment(postID, text, author string) (domain.Comment, bool)
	Subscribe(listener func()) (unsubscribe func())
}
