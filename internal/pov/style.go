package pov

import (
	"fmt"
	"log"
	"strings"

	"github.com/telemark-pro/pov-backend-go/internal/scene"
)

// Map style identifiers. The satellite style requires a Mapbox token; the
// Carto positron style is keyless and always available.
const (
	SatelliteStyle = "mapbox://styles/mapbox/satellite-v9"
	BaseStyle      = "https://basemaps.cartocdn.com/gl/positron-gl-style/style.json"
)

// maskedTokenPlaceholder replaces the token prefix in captions when the
// token is too short to slice.
const maskedTokenPlaceholder = "•••"

// TokenSource supplies an optional map API token. It returns "" when no
// token is configured.
type TokenSource func() string

// StyleChoice is the outcome of token and style resolution
type StyleChoice struct {
	Style     string
	Satellite bool

	token string
}

// ResolveStyle picks the basemap style for a render. When the token source
// yields a token it is registered with the builder and the satellite style
// is selected; a missing token or a failed registration falls back to the
// keyless base style. This never fails the render.
func ResolveStyle(b scene.Builder, tokens TokenSource) StyleChoice {
	base := StyleChoice{Style: BaseStyle}
	if tokens == nil {
		return base
	}

	token := strings.TrimSpace(tokens())
	if token == "" {
		return base
	}

	if err := b.RegisterToken(token); err != nil {
		log.Printf("[pov] map token rejected, falling back to base style: %v", err)
		return base
	}
	return StyleChoice{Style: SatelliteStyle, Satellite: true, token: token}
}

// Caption describes the active basemap in user-facing form, masking all
// but a short prefix of the token.
func (c StyleChoice) Caption() string {
	if !c.Satellite {
		return "Mappa base senza sfondo satellite (nessun token Mapbox)."
	}
	return fmt.Sprintf("Sfondo satellite attivo (token %s).", maskToken(c.token))
}

func maskToken(token string) string {
	if len(token) < 3 {
		return maskedTokenPlaceholder + "…"
	}
	return token[:3] + "…"
}
