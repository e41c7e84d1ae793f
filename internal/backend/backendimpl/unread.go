package backendimpl

import (
	"context"
)

func (c *HTTPClient) UnreadNotificationsCount(ctx context.Context) (int, error) {
	var resp struct {
		UnreadCount int `json:"unread_count"`
	}
	if err := c.getJSON(ctx, "unread notifications", "/notifications/unread-count", &resp); err != nil {
		return 0, err
	}
	return resp.UnreadCount, nil
}

func (c *HTTPClient) UnreadVisitsCount(ctx context.Context) (int, error) {
	var resp struct {
		UnreadVisits int `json:"unread_visits"`
	}
	if err := c.getJSON(ctx, "unread visits", "/visits/unread-count", &resp); err != nil {
		return 0, err
	}
	return resp.UnreadVisits, nil
}

// UnreadMessagesCount sums the per-conversation counters.
func (c *HTTPClient) UnreadMessagesCount(ctx context.Context) (int, error) {
	var conversations []struct {
		ID          int `json:"id"`
		UnreadCount int `json:"unread_count"`
	}
	if err := c.getJSON(ctx, "unread messages", "/chat/conversations", &conversations); err != nil {
		return 0, err
	}

	total := 0
	for _, conv := range conversations {
		total += conv.UnreadCount
	}
	return total, nil
}
