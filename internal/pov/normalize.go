package pov

import (
	"github.com/telemark-pro/pov-backend-go/internal/models"
)

// MaxDisplayHeight is the upper bound of the normalized path height, an
// arbitrary visual unit rather than meters.
const MaxDisplayHeight = 200.0

// NormalizePath rescales track elevations into the [0, MaxDisplayHeight]
// display range and returns one [lon, lat, height] vertex per point, in
// track order. The elevation span is floored at 1.0, so single-point and
// flat tracks map every height to 0 instead of dividing by zero.
func NormalizePath(track models.Track) [][3]float64 {
	if len(track) == 0 {
		return nil
	}

	min, max := track.MinMaxElev()
	span := max - min
	if span < 1.0 {
		span = 1.0
	}

	path := make([][3]float64, len(track))
	for i, p := range track {
		height := (p.Elev - min) / span * MaxDisplayHeight
		path[i] = [3]float64{p.Lon, p.Lat, height}
	}
	return path
}
