package models

// Piste represents a stored ski piste extracted from OpenStreetMap data
type Piste struct {
	ID         string `json:"id" db:"id"`
	Name       string `json:"name" db:"name"`
	Source     string `json:"source" db:"source"` // e.g. "overpass"
	PointCount int    `json:"pointCount" db:"point_count"`
	CreatedAt  string `json:"createdAt,omitempty" db:"created_at"`
}

// PisteWithPoints is a piste together with its full track
type PisteWithPoints struct {
	Piste
	Points Track `json:"points"`
}

// PisteListResponse represents a list of stored pistes
type PisteListResponse struct {
	Data  []Piste `json:"data"`
	Total int     `json:"total"`
}

// ExtractRequest represents parameters for extracting the nearest downhill
// piste around a location
type ExtractRequest struct {
	Lat      float64 `json:"lat" binding:"required"`
	Lon      float64 `json:"lon" binding:"required"`
	RadiusKm float64 `json:"radiusKm"`
}

// PisteStats summarizes a piste track for display
type PisteStats struct {
	LengthM  float64 `json:"lengthM"`
	VertM    float64 `json:"vertM"`
	MinElev  float64 `json:"minElev"`
	MaxElev  float64 `json:"maxElev"`
}
