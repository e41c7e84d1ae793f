package gesture

import (
	"math"
	"math/rand"
	"testing"

	"github.com/orgball2608/story-studio/internal/domain"
	"github.com/orgball2608/story-studio/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pt(x, y float64) domain.Point {
	return domain.Point{X: x, Y: y}
}

// pinchTo spreads two fingers from 100px apart to the given distance.
func pinchTo(m *Mapper, dist float64) domain.Transform {
	m.Begin([]domain.Point{pt(100, 100), pt(200, 100)})
	t := m.Move([]domain.Point{pt(100, 100), pt(100+dist, 100)})
	m.End()
	return t
}

func TestPinch_Scales(t *testing.T) {
	m := NewMapper(ProfileFrame(280))

	tr := pinchTo(m, 200)
	assert.InDelta(t, 2.0, tr.Scale, 1e-9)

	tr = pinchTo(m, 125)
	assert.InDelta(t, 2.5, tr.Scale, 1e-9, "pinch is relative to the scale at gesture start")
}

func TestPinch_ScaleClamped(t *testing.T) {
	m := NewMapper(ProfileFrame(280))
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 500; i++ {
		m.Begin([]domain.Point{pt(100, 100), pt(200, 100)})
		for j := 0; j < 5; j++ {
			d := 1 + rng.Float64()*600
			tr := m.Move([]domain.Point{pt(100, 100), pt(100+d, 100)})
			require.GreaterOrEqual(t, tr.Scale, domain.MinScale)
			require.LessOrEqual(t, tr.Scale, domain.MaxScale)
			if tr.Scale == domain.MinScale {
				require.Zero(t, tr.OffsetX)
				require.Zero(t, tr.OffsetY)
			}
		}
		m.End()
	}
}

func TestPinch_BackToMinimumCentersImage(t *testing.T) {
	m := NewMapper(ProfileFrame(280))
	pinchTo(m, 200)

	m.Begin([]domain.Point{pt(0, 0)})
	m.Move([]domain.Point{pt(60, -40)})
	m.End()
	require.NotZero(t, m.Transform().OffsetX)

	tr := pinchTo(m, 10)

	assert.Equal(t, domain.IdentityTransform(), tr)
}

func TestPan_ClampedToFrame(t *testing.T) {
	m := NewMapper(CoverFrame(375, 200))
	pinchTo(m, 200) // scale 2 -> bounds 187.5 x 100

	m.Begin([]domain.Point{pt(10, 10)})
	tr := m.Move([]domain.Point{pt(1000, -1000)})

	assert.InDelta(t, 187.5, tr.OffsetX, 1e-9)
	assert.InDelta(t, -100, tr.OffsetY, 1e-9)
}

func TestPan_RelativeToGestureStart(t *testing.T) {
	m := NewMapper(ProfileFrame(280))
	pinchTo(m, 300)

	m.Begin([]domain.Point{pt(50, 50)})
	m.Move([]domain.Point{pt(60, 55)})
	tr := m.Move([]domain.Point{pt(70, 60)})

	assert.InDelta(t, 20, tr.OffsetX, 1e-9)
	assert.InDelta(t, 10, tr.OffsetY, 1e-9)
}

func TestPan_BoundHoldsForRandomInput(t *testing.T) {
	frame := CoverFrame(375, 200)
	m := NewMapper(frame)
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 300; i++ {
		if rng.Intn(3) == 0 {
			m.Begin([]domain.Point{pt(100, 100), pt(200, 100)})
			m.Move([]domain.Point{pt(100, 100), pt(100+rng.Float64()*300, 100)})
		} else {
			m.Begin([]domain.Point{pt(0, 0)})
			m.Move([]domain.Point{pt(rng.Float64()*2000-1000, rng.Float64()*2000-1000)})
		}
		m.End()

		tr := m.Transform()
		if tr.Scale > 1 {
			require.LessOrEqual(t, math.Abs(tr.OffsetX), frame.Width*(tr.Scale-1)/2+1e-9)
			require.LessOrEqual(t, math.Abs(tr.OffsetY), frame.Height*(tr.Scale-1)/2+1e-9)
		}
	}
}

func TestPan_DisabledAtMinimumScale(t *testing.T) {
	m := NewMapper(ProfileFrame(280))

	m.Begin([]domain.Point{pt(0, 0)})
	tr := m.Move([]domain.Point{pt(120, 80)})

	assert.Equal(t, domain.IdentityTransform(), tr)
}

func TestFingerCountChangeRebaselines(t *testing.T) {
	m := NewMapper(ProfileFrame(280))
	pinchTo(m, 200)

	m.Begin([]domain.Point{pt(0, 0)})
	m.Move([]domain.Point{pt(30, 0)})
	before := m.Transform()

	// second finger lands far away: no jump
	tr := m.Move([]domain.Point{pt(30, 0), pt(230, 0)})
	assert.Equal(t, before, tr)

	// spreading from the new baseline doubles the scale at that moment, capped at 3
	tr = m.Move([]domain.Point{pt(30, 0), pt(430, 0)})
	assert.InDelta(t, 3.0, tr.Scale, 1e-9)

	// lifting back to one finger does not jump either
	tr = m.Move([]domain.Point{pt(430, 0)})
	assert.Equal(t, 3.0, tr.Scale)
	assert.InDelta(t, 30, tr.OffsetX, 1e-9)
}

func TestZoomButtons(t *testing.T) {
	m := NewMapper(ProfileFrame(280))

	assert.InDelta(t, 1.2, m.ZoomIn().Scale, 1e-9)
	for i := 0; i < 20; i++ {
		m.ZoomIn()
	}
	assert.Equal(t, domain.MaxScale, m.Transform().Scale)

	for i := 0; i < 20; i++ {
		m.ZoomOut()
	}
	assert.Equal(t, domain.IdentityTransform(), m.Transform())
}

func TestZoomOutReclampsOffsets(t *testing.T) {
	m := NewMapper(ProfileFrame(280))
	pinchTo(m, 300) // scale 3, bound 280

	m.Begin([]domain.Point{pt(0, 0)})
	m.Move([]domain.Point{pt(500, 500)})
	m.End()
	require.InDelta(t, 280, m.Transform().OffsetX, 1e-9)

	tr := m.ZoomOut() // 2.8 -> bound 252

	assert.InDelta(t, 252, tr.OffsetX, 1e-9)
	assert.InDelta(t, 252, tr.OffsetY, 1e-9)
}

func TestReset(t *testing.T) {
	m := NewMapper(ProfileFrame(280))
	assert.False(t, m.CanReset())
	assert.False(t, m.Reset(), "no-op at identity")

	pinchTo(m, 150)
	assert.True(t, m.CanReset())
	assert.True(t, m.Reset())
	assert.Equal(t, domain.IdentityTransform(), m.Transform())
}

func TestFactoryFrames(t *testing.T) {
	cfg := &config.Config{}
	cfg.Editor.ProfileFrame = 280
	cfg.Editor.CoverWidth = 375
	cfg.Editor.CoverHeight = 200

	f := NewFactory(cfg)

	assert.Equal(t, Frame{Width: 280, Height: 280}, f.Profile().Frame())
	assert.Equal(t, Frame{Width: 375, Height: 200}, f.Cover().Frame())
}

func TestNonFiniteTouchesIgnored(t *testing.T) {
	m := NewMapper(ProfileFrame(280))
	before := pinchTo(m, 200)

	m.Begin([]domain.Point{pt(100, 100), pt(200, 100)})
	tr := m.Move([]domain.Point{pt(100, 100), pt(math.NaN(), 100)})
	assert.Equal(t, before, tr)

	m.Begin([]domain.Point{pt(math.Inf(1), 0)})
	tr = m.Move([]domain.Point{pt(10, 10)})
	m.End()
	assert.False(t, math.IsNaN(tr.OffsetX))
	assert.False(t, math.IsNaN(tr.OffsetY))
	assert.InDelta(t, 2.0, tr.Scale, 1e-9)

	m.Begin([]domain.Point{pt(0, 0), pt(0, 0)})
	tr = m.Move([]domain.Point{pt(0, 0), pt(50, 0)})
	m.End()
	assert.False(t, math.IsNaN(tr.Scale))
}

func TestClampNaN(t *testing.T) {
	assert.Equal(t, 1.0, clamp(math.NaN(), 1, 3))
	assert.Equal(t, 3.0, clamp(5, 1, 3))
	assert.Equal(t, 2.0, clamp(2, 1, 3))
}
