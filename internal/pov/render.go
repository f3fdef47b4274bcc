package pov

import (
	"log"

	"github.com/telemark-pro/pov-backend-go/internal/models"
	"github.com/telemark-pro/pov-backend-go/internal/scene"
)

// Context keys the renderer reads from the host application context
const (
	TrackKey    = "pov_piste_points"
	NameKey     = "pov_piste_name"
	AltNameKey  = "selected_piste_name"
	DefaultName = "Pista"
)

// Fixed layer styling for the POV scene
var (
	pathColor  = scene.Color{255, 69, 0} // orange-red ribbon along the piste
	startColor = scene.Color{0, 255, 0}  // green start marker
)

const (
	pathWidthScale    = 10.0
	startMarkerRadius = 30.0
)

// RenderContext is the host application context mapping. A render call
// passes it through unchanged.
type RenderContext map[string]any

// Track extracts the piste track stored under TrackKey, or nil when the
// context carries none.
func (rc RenderContext) Track() models.Track {
	switch v := rc[TrackKey].(type) {
	case models.Track:
		return v
	case []models.TrackPoint:
		return v
	default:
		return nil
	}
}

// PisteName returns the display name of the piste, preferring NameKey over
// AltNameKey and defaulting to DefaultName.
func (rc RenderContext) PisteName() string {
	for _, key := range []string{NameKey, AltNameKey} {
		if s, ok := rc[key].(string); ok && s != "" {
			return s
		}
	}
	return DefaultName
}

// Renderer draws a piste track as an oblique 3D scene through a scene
// builder. It is a side-effecting renderer, not a data transformer: every
// render recomputes everything and retains no state.
type Renderer struct {
	Builder scene.Builder
	Tokens  TokenSource

	// Infof receives user-facing notices (missing data, basemap caption).
	// Defaults to log.Printf.
	Infof func(format string, args ...any)
}

// Render composes the POV scene for the track carried by the context and
// returns the context unchanged. An empty track is a no-op, not an error;
// token registration and scene composition failures degrade to notices.
// No error ever propagates out of a render call.
func (r *Renderer) Render(rc RenderContext) RenderContext {
	track := rc.Track()
	if len(track) == 0 {
		r.infof("Nessuna pista disponibile per il POV 3D in questa località.")
		return rc
	}

	choice := ResolveStyle(r.Builder, r.Tokens)

	path := NormalizePath(track)
	view := TrackView(track)

	layers := []scene.Layer{
		r.Builder.BuildPathLayer("piste-path", path, pathColor, pathWidthScale),
		r.Builder.BuildPointLayer("piste-start", path[0], startColor, startMarkerRadius),
	}

	if err := r.Builder.ComposeScene(layers, view, choice.Style, rc.PisteName()); err != nil {
		r.infof("POV 3D non disponibile: %v", err)
		return rc
	}

	r.infof("%s", choice.Caption())
	return rc
}

func (r *Renderer) infof(format string, args ...any) {
	if r.Infof != nil {
		r.Infof(format, args...)
		return
	}
	log.Printf(format, args...)
}
