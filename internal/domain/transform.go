package domain

const (
	MinScale = 1.0
	MaxScale = 3.0
)

type Transform struct {
	Scale   float64 `json:"scale"`
	OffsetX float64 `json:"offsetX"`
	OffsetY float64 `json:"offsetY"`
}

func IdentityTransform() Transform {
	return Transform{Scale: MinScale}
}

func (t Transform) IsIdentity() bool {
	return t.Scale <= MinScale && t.OffsetX == 0 && t.OffsetY == 0
}
