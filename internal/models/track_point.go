package models

// TrackPoint represents one sample along a piste track
type TrackPoint struct {
	Lat  float64 `json:"lat" db:"lat"`
	Lon  float64 `json:"lon" db:"lon"`
	Elev float64 `json:"elev" db:"elev"` // meters above sea level, 0 when unknown upstream
}

// Track is an ordered sequence of track points; insertion order is the
// traversal order of the piste. An empty track is valid input for rendering
// and means "nothing to draw".
type Track []TrackPoint

// MinMaxElev returns the minimum and maximum elevation over the track.
// Both are 0 for an empty track.
func (t Track) MinMaxElev() (min, max float64) {
	if len(t) == 0 {
		return 0, 0
	}
	min, max = t[0].Elev, t[0].Elev
	for _, p := range t[1:] {
		if p.Elev < min {
			min = p.Elev
		}
		if p.Elev > max {
			max = p.Elev
		}
	}
	return min, max
}

// Midpoint returns the point at the middle index of the track (len/2).
// Callers must check for an empty track first.
func (t Track) Midpoint() TrackPoint {
	return t[len(t)/2]
}
