package gesture

import (
	"math"

	"github.com/orgball2608/story-studio/internal/domain"
)

// ZoomStep is the scale change applied by the zoom buttons.
const ZoomStep = 0.2

// Frame is the visible crop area the transformed image must always cover.
type Frame struct {
	Width  float64
	Height float64
}

// ProfileFrame is the square bounding box of the circular avatar crop.
func ProfileFrame(diameter float64) Frame {
	return Frame{Width: diameter, Height: diameter}
}

func CoverFrame(screenWidth, height float64) Frame {
	return Frame{Width: screenWidth, Height: height}
}

// state is the baseline captured when the current contact set began.
type state struct {
	active          bool
	touches         int
	initialDistance float64
	initialScale    float64
	startTouch      domain.Point
	initialOffsetX  float64
	initialOffsetY  float64
}

// Mapper turns a stream of one or two finger touches into a pan/zoom
// transform. It is not safe for concurrent use.
type Mapper struct {
	frame     Frame
	transform domain.Transform
	state     state
}

func NewMapper(frame Frame) *Mapper {
	return &Mapper{
		frame:     frame,
		transform: domain.IdentityTransform(),
	}
}

func (m *Mapper) Frame() Frame {
	return m.frame
}

func (m *Mapper) Transform() domain.Transform {
	return m.transform
}

// Begin records the baseline for the given contact points. Touches with
// non-finite coordinates leave the mapper idle until the next valid update.
func (m *Mapper) Begin(touches []domain.Point) {
	if !finite(touches) {
		m.state = state{}
		return
	}
	m.state = state{
		active:         true,
		touches:        len(touches),
		initialScale:   m.transform.Scale,
		initialOffsetX: m.transform.OffsetX,
		initialOffsetY: m.transform.OffsetY,
	}

	switch len(touches) {
	case 1:
		m.state.startTouch = touches[0]
	case 2:
		m.state.initialDistance = distance(touches[0], touches[1])
	}
}

// Move applies one touch update. A change in the number of contact points
// re-baselines instead of moving, so the image never jumps.
func (m *Mapper) Move(touches []domain.Point) domain.Transform {
	if !finite(touches) {
		return m.transform
	}
	if !m.state.active || len(touches) != m.state.touches {
		m.Begin(touches)
		return m.transform
	}

	switch len(touches) {
	case 1:
		m.pan(touches[0])
	case 2:
		m.pinch(touches[0], touches[1])
	}
	return m.transform
}

func (m *Mapper) End() {
	m.state = state{}
}

func (m *Mapper) pinch(a, b domain.Point) {
	current := distance(a, b)
	if m.state.initialDistance == 0 {
		m.state.initialDistance = current
		return
	}

	m.setScale(m.state.initialScale * current / m.state.initialDistance)
}

func (m *Mapper) pan(p domain.Point) {
	if m.transform.Scale <= domain.MinScale {
		return
	}

	boundX, boundY := m.bounds(m.transform.Scale)
	m.transform.OffsetX = clamp(m.state.initialOffsetX+(p.X-m.state.startTouch.X), -boundX, boundX)
	m.transform.OffsetY = clamp(m.state.initialOffsetY+(p.Y-m.state.startTouch.Y), -boundY, boundY)
}

func (m *Mapper) setScale(scale float64) {
	scale = clamp(scale, domain.MinScale, domain.MaxScale)
	m.transform.Scale = scale
	if scale <= domain.MinScale {
		m.transform.OffsetX, m.transform.OffsetY = 0, 0
		return
	}

	boundX, boundY := m.bounds(scale)
	m.transform.OffsetX = clamp(m.transform.OffsetX, -boundX, boundX)
	m.transform.OffsetY = clamp(m.transform.OffsetY, -boundY, boundY)
}

func (m *Mapper) ZoomIn() domain.Transform {
	m.setScale(m.transform.Scale + ZoomStep)
	m.rebaseline()
	return m.transform
}

func (m *Mapper) ZoomOut() domain.Transform {
	m.setScale(m.transform.Scale - ZoomStep)
	m.rebaseline()
	return m.transform
}

func (m *Mapper) CanReset() bool {
	return !m.transform.IsIdentity()
}

// Reset returns to identity. It reports false when there was nothing to reset.
func (m *Mapper) Reset() bool {
	if !m.CanReset() {
		return false
	}
	m.transform = domain.IdentityTransform()
	m.rebaseline()
	return true
}

// rebaseline keeps a gesture in progress continuous after a programmatic change.
func (m *Mapper) rebaseline() {
	if !m.state.active {
		return
	}
	m.state.initialScale = m.transform.Scale
	m.state.initialOffsetX = m.transform.OffsetX
	m.state.initialOffsetY = m.transform.OffsetY
	m.state.active = false
}

func (m *Mapper) bounds(scale float64) (float64, float64) {
	return m.frame.Width * (scale - 1) / 2, m.frame.Height * (scale - 1) / 2
}

func distance(a, b domain.Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

func finite(touches []domain.Point) bool {
	for _, p := range touches {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return false
		}
	}
	return true
}

// clamp maps NaN to lo.
func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
