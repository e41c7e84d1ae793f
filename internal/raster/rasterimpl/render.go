package rasterimpl

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/orgball2608/story-studio/internal/domain"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

func render(bg image.Image, c domain.Composition) *image.RGBA {
	b := bg.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), bg, b.Min, draw.Src)

	sx, sy := 1.0, 1.0
	if c.Width > 0 && c.Height > 0 {
		sx = float64(b.Dx()) / c.Width
		sy = float64(b.Dy()) / c.Height
	}

	for _, st := range c.Strokes {
		drawStroke(dst, st, sx, sy)
	}
	for _, ov := range c.Overlays {
		drawText(dst, ov, sx, sy)
	}
	return dst
}

// drawStroke stamps round brush tips along each segment of the stroke.
func drawStroke(dst *image.RGBA, st domain.Stroke, sx, sy float64) {
	if len(st.Points) == 0 {
		return
	}
	col := parseHex(st.Color)
	radius := math.Max(st.Width*(sx+sy)/4, 0.5)
	step := math.Max(radius/2, 0.5)

	prev := st.Points[0]
	stamp(dst, prev.X*sx, prev.Y*sy, radius, col)
	for _, p := range st.Points[1:] {
		x0, y0 := prev.X*sx, prev.Y*sy
		x1, y1 := p.X*sx, p.Y*sy
		n := int(math.Ceil(math.Hypot(x1-x0, y1-y0) / step))
		for i := 1; i <= n; i++ {
			t := float64(i) / float64(n)
			stamp(dst, x0+(x1-x0)*t, y0+(y1-y0)*t, radius, col)
		}
		prev = p
	}
}

func stamp(dst *image.RGBA, cx, cy, r float64, col color.RGBA) {
	bounds := dst.Bounds()
	minX := max(int(math.Floor(cx-r)), bounds.Min.X)
	maxX := min(int(math.Ceil(cx+r)), bounds.Max.X-1)
	minY := max(int(math.Floor(cy-r)), bounds.Min.Y)
	maxY := min(int(math.Ceil(cy+r)), bounds.Max.Y-1)

	r2 := r * r
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			if dx*dx+dy*dy <= r2 {
				dst.SetRGBA(x, y, col)
			}
		}
	}
}

// drawText places the overlay's top-left corner at its canvas position and
// applies Scale and Rotation around the centre of the text box.
func drawText(dst *image.RGBA, ov domain.Overlay, sx, sy float64) {
	face := basicfont.Face7x13
	x, y := int(ov.X*sx), int(ov.Y*sy)

	scale := ov.Scale
	if scale <= 0 {
		scale = 1
	}
	if scale == 1 && math.Mod(ov.Rotation, 360) == 0 {
		d := font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(parseHex(ov.Color)),
			Face: face,
			Dot:  fixed.P(x, y+face.Ascent),
		}
		d.DrawString(ov.Text)
		return
	}

	w := font.MeasureString(face, ov.Text).Ceil()
	h := face.Metrics().Height.Ceil()
	if w == 0 || h == 0 {
		return
	}
	label := image.NewRGBA(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  label,
		Src:  image.NewUniform(parseHex(ov.Color)),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(ov.Text)

	theta := ov.Rotation * math.Pi / 180
	cos, sin := scale*math.Cos(theta), scale*math.Sin(theta)
	srcCX, srcCY := float64(w)/2, float64(h)/2
	dstCX, dstCY := float64(x)+srcCX, float64(y)+srcCY

	m := f64.Aff3{
		cos, -sin, dstCX - (cos*srcCX - sin*srcCY),
		sin, cos, dstCY - (sin*srcCX + cos*srcCY),
	}
	draw.BiLinear.Transform(dst, m, label, label.Bounds(), draw.Over, nil)
}

// parseHex reads #rgb or #rrggbb. Anything else renders white.
func parseHex(s string) color.RGBA {
	s = strings.TrimPrefix(s, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}

func writeJPEG(path string, img image.Image, quality int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: quality}); err != nil {
		f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("failed to encode story: %w", err)
	}
	return f.Close()
}
