package highlights

import (
	"strings"

	"github.com/orgball2608/story-studio/internal/domain"
	"github.com/orgball2608/story-studio/pkg/errors"
)

var (
	ErrMissingName  = errors.New("highlight name is required")
	ErrMissingCover = errors.New("highlight cover is required")
	ErrNoPhotos     = errors.New("highlight needs at least one photo")
)

// Draft is a highlight being created or edited. Every photo operation
// replaces the photo list instead of mutating it.
type Draft struct {
	ID     int
	Name   string
	Cover  string
	Photos []string
}

func DraftFrom(h domain.Highlight) Draft {
	return Draft{
		ID:     h.ID,
		Name:   h.Title,
		Cover:  h.CoverURI,
		Photos: append([]string(nil), h.Photos...),
	}
}

func (d *Draft) AddPhotos(uris ...string) {
	photos := make([]string, 0, len(d.Photos)+len(uris))
	photos = append(photos, d.Photos...)
	d.Photos = append(photos, uris...)
}

func (d *Draft) RemovePhoto(index int) {
	d.Photos = Remove(d.Photos, index)
}

func (d *Draft) MovePhotoUp(index int) {
	d.Photos = MoveUp(d.Photos, index)
}

func (d *Draft) MovePhotoDown(index int) {
	d.Photos = MoveDown(d.Photos, index)
}

func (d Draft) Validate() error {
	switch {
	case strings.TrimSpace(d.Name) == "":
		return ErrMissingName
	case d.Cover == "":
		return ErrMissingCover
	case len(d.Photos) == 0:
		return ErrNoPhotos
	}
	return nil
}
