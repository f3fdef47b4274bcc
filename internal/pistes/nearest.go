package pistes

import (
	"math"

	"github.com/telemark-pro/pov-backend-go/internal/spatial"
)

// Nearest returns the index of the polyline with the vertex closest to
// the given location, together with that distance in meters. Returns -1
// when lines is empty.
func Nearest(lat, lon float64, lines []Polyline) (int, float64) {
	best := -1
	bestDist := math.Inf(1)

	for i, line := range lines {
		for _, p := range line.Points {
			d := spatial.HaversineDistance(lat, lon, p.Lat, p.Lon)
			if d < bestDist {
				bestDist = d
				best = i
			}
		}
	}
	return best, bestDist
}
