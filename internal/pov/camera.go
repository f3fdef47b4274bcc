package pov

import (
	"github.com/telemark-pro/pov-backend-go/internal/models"
	"github.com/telemark-pro/pov-backend-go/internal/scene"
)

// Fixed camera parameters: a consistent oblique angle over the piste
// regardless of track shape.
const (
	ViewZoom    = 13.0
	ViewPitch   = 60.0
	ViewBearing = -45.0
)

// TrackView centers the camera on the point at the middle index of the
// track. The middle index is a deterministic proxy for "center of track";
// no centroid is computed. Callers must pass a non-empty track.
func TrackView(track models.Track) scene.ViewState {
	mid := track.Midpoint()
	return scene.ViewState{
		Latitude:  mid.Lat,
		Longitude: mid.Lon,
		Zoom:      ViewZoom,
		Pitch:     ViewPitch,
		Bearing:   ViewBearing,
	}
}
