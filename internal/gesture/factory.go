package gesture

import (
	"github.com/orgball2608/story-studio/pkg/config"
)

// Factory builds mappers for the two photo editors.
type Factory struct {
	profile Frame
	cover   Frame
}

func NewFactory(cfg *config.Config) *Factory {
	return &Factory{
		profile: ProfileFrame(cfg.Editor.ProfileFrame),
		cover:   CoverFrame(cfg.Editor.CoverWidth, cfg.Editor.CoverHeight),
	}
}

func (f *Factory) Profile() *Mapper {
	return NewMapper(f.profile)
}

func (f *Factory) Cover() *Mapper {
	return NewMapper(f.cover)
}
