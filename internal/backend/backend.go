//go:generate go run go.uber.org/mock/mockgen -source=backend.go -destination=mocks/mock.go
package backend

import (
	"context"

	"github.com/orgball2608/story-studio/internal/domain"
)

// Client is the remote API used by the editor, the highlight screen and the
// unread counters.
type Client interface {
	SearchUsers(ctx context.Context, query string) ([]domain.User, error)
	CreateStoryWithImage(ctx context.Context, content string, imagePath string) (domain.StoryUpload, error)
	GetHighlights(ctx context.Context) ([]domain.Highlight, error)

	UnreadNotificationsCount(ctx context.Context) (int, error)
	UnreadVisitsCount(ctx context.Context) (int, error)
	UnreadMessagesCount(ctx context.Context) (int, error)
}
