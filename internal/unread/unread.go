package unread

import "context"

// Counts are the badge counters shown on the main tabs.
type Counts struct {
	Notifications int `json:"notifications"`
	Messages      int `json:"messages"`
	Visits        int `json:"visits"`
}

func (c Counts) Total() int {
	return c.Notifications + c.Messages + c.Visits
}

type Client interface {
	Counts() Counts
	Subscribe(listener func()) (unsubscribe func())

	MarkNotificationsRead()
	MarkMessagesRead()
	MarkVisitsRead()
	SetUnreadMessages(n int)
	SetUnreadVisits(n int)

	Refresh(ctx context.Context) error
	Start(ctx context.Context) error
	Stop() error
}
