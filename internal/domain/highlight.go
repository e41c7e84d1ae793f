package domain

import "time"

type Highlight struct {
	ID        int       `json:"id"`
	Title     string    `json:"name"`
	CoverURI  string    `json:"cover"`
	Photos    []string  `json:"photos"`
	CreatedAt time.Time `json:"created_at"`
}

// StoryUpload is the backend record returned after publishing a story image.
type StoryUpload struct {
	ID        int       `json:"id"`
	Content   string    `json:"content"`
	MediaURL  string    `json:"media_url"`
	CreatedAt time.Time `json:"created_at"`
}
