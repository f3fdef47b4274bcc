// Package profile computes distance and elevation summaries of a piste
// track and renders the altitude profile chart.
package profile

import (
	"github.com/telemark-pro/pov-backend-go/internal/models"
	"github.com/telemark-pro/pov-backend-go/internal/spatial"
)

// CumulativeDistance returns the running distance in meters along the
// track, one entry per point, starting at 0. Nil for an empty track.
func CumulativeDistance(track models.Track) []float64 {
	if len(track) == 0 {
		return nil
	}

	dist := make([]float64, len(track))
	for i := 1; i < len(track); i++ {
		a, b := track[i-1], track[i]
		seg := spatial.HaversineDistance(a.Lat, a.Lon, b.Lat, b.Lon)
		dist[i] = dist[i-1] + seg
	}
	return dist
}

// ComputeStats summarizes a track: total length, vertical drop and the
// elevation extremes. All zero for an empty track.
func ComputeStats(track models.Track) models.PisteStats {
	var stats models.PisteStats
	if len(track) == 0 {
		return stats
	}

	dist := CumulativeDistance(track)
	stats.LengthM = dist[len(dist)-1]

	stats.MinElev, stats.MaxElev = track.MinMaxElev()
	stats.VertM = stats.MaxElev - stats.MinElev
	return stats
}
