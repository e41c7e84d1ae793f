package domain

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type Stroke struct {
	Color  string  `json:"color"`
	Width  float64 `json:"width"`
	Points []Point `json:"points"`
}

type OverlayKind string

const (
	OverlayText OverlayKind = "text"
	OverlayTag  OverlayKind = "tag"
)

type Overlay struct {
	ID         string      `json:"id"`
	Kind       OverlayKind `json:"type"`
	Text       string      `json:"text"`
	Color      string      `json:"color"`
	FontFamily string      `json:"fontFamily,omitempty"`
	X          float64     `json:"x"`
	Y          float64     `json:"y"`
	Scale      float64     `json:"scale"`
	// Rotation is in degrees, clockwise, around the overlay's centre.
	Rotation float64 `json:"rotation"`
}

// Composition is the frozen visual state of an editor session handed to the
// rasterizer. Coordinates are in canvas space (Width x Height).
type Composition struct {
	BackgroundURI string
	Width         float64
	Height        float64
	Strokes       []Stroke
	Overlays      []Overlay
}
