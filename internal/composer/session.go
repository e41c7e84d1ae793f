package composer

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/orgball2608/story-studio/internal/backend"
	"github.com/orgball2608/story-studio/internal/domain"
	"github.com/orgball2608/story-studio/internal/ratelimit"
	"github.com/orgball2608/story-studio/pkg/logger"
	"github.com/samber/lo"
)

var (
	textPosition = domain.Point{X: 40, Y: 120}
	tagPosition  = domain.Point{X: 40, Y: 80}
)

// Session is one story being edited: a background, freehand strokes and
// draggable text and tag overlays.
type Session struct {
	id      string
	width   float64
	height  float64
	audio   AudioPlayer
	backend backend.Client
	limiter ratelimit.Limiter
	logger  logger.Logger

	mu         sync.Mutex
	background string
	mode       Mode
	color      string
	brush      float64
	font       string
	strokes    []domain.Stroke
	active     *domain.Stroke
	overlays   []domain.Overlay
	selectedID string
	draggingID string
	music      *Track
	tagCache   map[string][]domain.User
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// SetMode switches tools. Leaving draw mode drops an unfinished stroke.
func (s *Session) SetMode(mode Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if mode != ModeDraw {
		s.active = nil
	}
	s.mode = mode
}

func (s *Session) SetBackground(uri string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.background = uri
}

func (s *Session) HasBackground() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.background != ""
}

func (s *Session) SetColor(color string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.color = color
}

func (s *Session) SetBrush(width float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.brush = min(max(width, MinBrush), MaxBrush)
}

func (s *Session) Brush() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.brush
}

func (s *Session) SetFont(font string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.font = font
}

func (s *Session) TouchStart(p domain.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != ModeDraw {
		return
	}
	s.active = &domain.Stroke{
		Color:  s.color,
		Width:  s.brush,
		Points: []domain.Point{p},
	}
}

func (s *Session) TouchMove(p domain.Point) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != ModeDraw || s.active == nil {
		return
	}
	s.active.Points = append(s.active.Points, p)
}

func (s *Session) TouchEnd() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode != ModeDraw || s.active == nil {
		return
	}
	s.strokes = append(s.strokes, *s.active)
	s.active = nil
}

// Undo removes the last stroke in draw mode, otherwise the selected overlay.
func (s *Session) Undo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode == ModeDraw {
		if len(s.strokes) == 0 {
			return false
		}
		s.strokes = s.strokes[:len(s.strokes)-1]
		return true
	}
	if s.selectedID == "" {
		return false
	}
	return s.removeOverlayLocked(s.selectedID)
}

// AddText places a text overlay at the default position and selects it.
// Blank text is ignored.
func (s *Session) AddText(text string) (domain.Overlay, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return domain.Overlay{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ov := domain.Overlay{
		ID:         uuid.NewString(),
		Kind:       domain.OverlayText,
		Text:       trimmed,
		Color:      s.color,
		FontFamily: s.font,
		X:          textPosition.X,
		Y:          textPosition.Y,
		Scale:      1,
	}
	s.overlays = append(s.overlays, ov)
	s.selectedID = ov.ID
	s.mode = ModeNone
	s.active = nil
	return ov, true
}

func (s *Session) AddTag(user domain.User) domain.Overlay {
	s.mu.Lock()
	defer s.mu.Unlock()

	ov := domain.Overlay{
		ID:         uuid.NewString(),
		Kind:       domain.OverlayTag,
		Text:       "@" + user.Handle(),
		Color:      TagColor,
		FontFamily: TagFont,
		X:          tagPosition.X,
		Y:          tagPosition.Y,
		Scale:      1,
	}
	s.overlays = append(s.overlays, ov)
	return ov
}

func (s *Session) Select(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.findOverlayLocked(id); !ok {
		return false
	}
	s.selectedID = id
	return true
}

func (s *Session) Selected() (domain.Overlay, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx, ok := s.findOverlayLocked(s.selectedID)
	if !ok {
		return domain.Overlay{}, false
	}
	return s.overlays[idx], true
}

// BeginDrag selects the overlay under the pointer and starts moving it.
func (s *Session) BeginDrag(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.findOverlayLocked(id); !ok {
		return false
	}
	s.selectedID = id
	s.draggingID = id
	return true
}

// DragMove adds an incremental pointer delta to the dragged overlay.
func (s *Session) DragMove(dx, dy float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx, ok := s.findOverlayLocked(s.draggingID)
	if !ok {
		return
	}
	s.overlays[idx].X += dx
	s.overlays[idx].Y += dy
}

func (s *Session) EndDrag() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draggingID = ""
}

func (s *Session) RemoveOverlay(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.removeOverlayLocked(id)
}

func (s *Session) Strokes() []domain.Stroke {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Stroke(nil), s.strokes...)
}

func (s *Session) Overlays() []domain.Overlay {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Overlay(nil), s.overlays...)
}

// Composition freezes what is currently visible. An unfinished stroke is
// not part of it.
func (s *Session) Composition() domain.Composition {
	s.mu.Lock()
	defer s.mu.Unlock()

	strokes := lo.Map(s.strokes, func(st domain.Stroke, _ int) domain.Stroke {
		st.Points = append([]domain.Point(nil), st.Points...)
		return st
	})
	return domain.Composition{
		BackgroundURI: s.background,
		Width:         s.width,
		Height:        s.height,
		Strokes:       strokes,
		Overlays:      append([]domain.Overlay(nil), s.overlays...),
	}
}

// Caption is the text of the first text overlay.
func (s *Session) Caption() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ov, _ := lo.Find(s.overlays, func(o domain.Overlay) bool { return o.Kind == domain.OverlayText })
	return ov.Text
}

// SearchTags looks up users to tag. Failures and throttled lookups yield
// the last known results for the query, or nothing.
func (s *Session) SearchTags(ctx context.Context, query string) []domain.User {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.User{}
	}

	s.mu.Lock()
	cached, hit := s.tagCache[query]
	s.mu.Unlock()

	if !s.limiter.Allow(s.id) {
		s.logger.Debug("Tag search throttled", "query", query)
		if hit {
			return cached
		}
		return []domain.User{}
	}

	users, err := s.backend.SearchUsers(ctx, query)
	if err != nil {
		s.logger.Warn("Tag search failed", "query", query, "error", err)
		return []domain.User{}
	}
	if users == nil {
		users = []domain.User{}
	}

	s.mu.Lock()
	s.tagCache[query] = users
	s.mu.Unlock()
	return users
}

// ToggleTrack plays track as looping background music, or stops it when it
// is already playing.
func (s *Session) ToggleTrack(ctx context.Context, track Track) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	playing := s.music != nil
	if playing {
		s.releaseAudioLocked()
	}
	if playing && s.music.ID == track.ID {
		s.music = nil
		return nil
	}
	s.music = nil

	if err := s.audio.Load(ctx, track.URI, true); err != nil {
		s.logger.Warn("Failed to load track", "track", track.ID, "error", err)
		return err
	}
	s.music = &track
	return nil
}

func (s *Session) Music() (Track, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.music == nil {
		return Track{}, false
	}
	return *s.music, true
}

// Close releases the background audio.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.music != nil {
		s.releaseAudioLocked()
		s.music = nil
	}
}

func (s *Session) releaseAudioLocked() {
	if err := s.audio.Stop(); err != nil {
		s.logger.Debug("Failed to stop track", "error", err)
	}
	if err := s.audio.Unload(); err != nil {
		s.logger.Debug("Failed to unload track", "error", err)
	}
}

func (s *Session) findOverlayLocked(id string) (int, bool) {
	if id == "" {
		return -1, false
	}
	_, idx, ok := lo.FindIndexOf(s.overlays, func(o domain.Overlay) bool { return o.ID == id })
	return idx, ok
}

func (s *Session) removeOverlayLocked(id string) bool {
	idx, ok := s.findOverlayLocked(id)
	if !ok {
		return false
	}
	s.overlays = append(s.overlays[:idx:idx], s.overlays[idx+1:]...)
	if s.selectedID == id {
		s.selectedID = ""
	}
	if s.draggingID == id {
		s.draggingID = ""
	}
	return true
}
