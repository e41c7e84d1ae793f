package domain

import "time"

type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
)

// StorySegment is one playable unit of a story. DurationMs only applies to
// images; nil means the player default.
type StorySegment struct {
	ID         string    `json:"id"`
	MediaKind  MediaKind `json:"type"`
	SourceURI  string    `json:"uri"`
	DurationMs *int      `json:"durationMs,omitempty"`
}

// ImageDuration returns how long an image segment stays on screen.
func (s StorySegment) ImageDuration(def, floor time.Duration) time.Duration {
	d := def
	if s.DurationMs != nil {
		d = time.Duration(*s.DurationMs) * time.Millisecond
	}
	if d < floor {
		return floor
	}
	return d
}

type Author struct {
	Name      string `json:"name"`
	AvatarURI string `json:"avatar"`
}

type StoryItem struct {
	ID            string         `json:"id"`
	Author        Author         `json:"user"`
	PostedAt      string         `json:"postedAt"`
	PostedAtHours float64        `json:"postedAtHours"`
	Caption       string         `json:"caption"`
	CoverURI      string         `json:"cover"`
	ViewCount     int            `json:"views"`
	LikeCount     int            `json:"likes"`
	Segments      []StorySegment `json:"segments"`
	Category      string         `json:"category,omitempty"`
	IsPremium     bool           `json:"isPremium,omitempty"`
}

// Millis is a helper for optional segment durations.
func Millis(ms int) *int {
	return &ms
}
