package backendimpl

import (
	"context"
	"net/url"
	"strings"

	"github.com/orgball2608/story-studio/internal/domain"
)

func (c *HTTPClient) SearchUsers(ctx context.Context, query string) ([]domain.User, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.User{}, nil
	}

	var users []domain.User
	path := queryPath("/users/search", url.Values{"q": {query}})
	if err := c.getJSON(ctx, "search users", path, &users); err != nil {
		return nil, err
	}
	return users, nil
}
