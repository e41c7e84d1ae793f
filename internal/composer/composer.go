//go:generate go run go.uber.org/mock/mockgen -source=composer.go -destination=mocks/mock.go
package composer

import "context"

type Mode string

const (
	ModeNone  Mode = "none"
	ModeDraw  Mode = "draw"
	ModeText  Mode = "text"
	ModeTag   Mode = "tag"
	ModeMusic Mode = "music"
)

const (
	TagColor     = "#3b82f6"
	TagFont      = "System"
	DefaultBrush = 6.0
	MinBrush     = 2.0
	MaxBrush     = 24.0

	StoryDurationMs = 5000
)

var Colors = []string{"#ffffff", "#000000", "#ef4444", "#f59e0b", "#10b981", "#3b82f6", "#8b5cf6"}

var Fonts = []string{"System", "serif", "monospace"}

type Track struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Artist string `json:"artist"`
	URI    string `json:"uri"`
}

var Tracks = []Track{
	{ID: "t1", Title: "SoundHelix 1", Artist: "SoundHelix", URI: "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-1.mp3"},
	{ID: "t2", Title: "SoundHelix 2", Artist: "SoundHelix", URI: "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-2.mp3"},
	{ID: "t3", Title: "SoundHelix 3", Artist: "SoundHelix", URI: "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-3.mp3"},
}

// AudioPlayer plays the background track of an editor session.
type AudioPlayer interface {
	Load(ctx context.Context, uri string, loop bool) error
	Stop() error
	Unload() error
}
