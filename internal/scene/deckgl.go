package scene

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"strings"
	"unicode"
)

// DeckGL composes scenes into a standalone HTML page built around deck.gl,
// with an optional Mapbox basemap when a token is registered.
type DeckGL struct {
	title   string
	token   string
	caption string
	scene   *Scene
}

// NewDeckGL creates a deck.gl page composer with the given page title
func NewDeckGL(title string) *DeckGL {
	return &DeckGL{title: title}
}

// RegisterToken installs a Mapbox access token for satellite basemaps.
// Tokens containing whitespace or control characters are rejected so they
// can never break out of the generated page.
func (d *DeckGL) RegisterToken(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("empty map token")
	}
	for _, r := range token {
		if unicode.IsSpace(r) || unicode.IsControl(r) || r == '"' || r == '\\' {
			return fmt.Errorf("map token contains invalid character %q", r)
		}
	}
	d.token = token
	return nil
}

// BuildPathLayer implements Builder
func (d *DeckGL) BuildPathLayer(id string, path [][3]float64, color Color, widthScale float64) Layer {
	return Layer{
		Type:           PathLayerType,
		ID:             id,
		Path:           path,
		Color:          color,
		WidthScale:     widthScale,
		WidthMinPixels: 3,
		Pickable:       false,
	}
}

// BuildPointLayer implements Builder
func (d *DeckGL) BuildPointLayer(id string, position [3]float64, color Color, radius float64) Layer {
	return Layer{
		Type:     ScatterLayerType,
		ID:       id,
		Position: position,
		Color:    color,
		Radius:   radius,
		Pickable: false,
	}
}

// ComposeScene implements Builder by retaining the composed scene for
// WriteHTML / Scene
func (d *DeckGL) ComposeScene(layers []Layer, view ViewState, style, tooltip string) error {
	d.scene = &Scene{
		Layers:  layers,
		View:    view,
		Style:   style,
		Tooltip: tooltip,
		Caption: d.caption,
	}
	return nil
}

// SetCaption sets the caption line shown under the map
func (d *DeckGL) SetCaption(caption string) {
	d.caption = caption
	if d.scene != nil {
		d.scene.Caption = caption
	}
}

// Scene returns the last composed scene, or nil when nothing was composed
func (d *DeckGL) Scene() *Scene {
	return d.scene
}

// WriteHTML renders the composed scene as a standalone HTML page
func (d *DeckGL) WriteHTML(w io.Writer) error {
	if d.scene == nil {
		return fmt.Errorf("no scene composed")
	}

	sceneJSON, err := json.Marshal(d.scene)
	if err != nil {
		return fmt.Errorf("failed to marshal scene: %w", err)
	}

	data := deckPageData{
		Title:   d.title,
		Token:   d.token,
		Caption: d.scene.Caption,
		Scene:   template.JS(sceneJSON),
	}
	if err := deckPageTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render POV page: %w", err)
	}
	return nil
}

type deckPageData struct {
	Title   string
	Token   string
	Caption string
	Scene   template.JS
}

var deckPageTmpl = template.Must(template.New("pov3d").Parse(`<!DOCTYPE html>
<html lang="it">
<head>
<meta charset="utf-8" />
<title>{{.Title}} &ndash; POV 3D</title>
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<script src="https://unpkg.com/deck.gl@8.9.35/dist.min.js"></script>
<script src="https://api.mapbox.com/mapbox-gl-js/v2.15.0/mapbox-gl.js"></script>
<link href="https://api.mapbox.com/mapbox-gl-js/v2.15.0/mapbox-gl.css" rel="stylesheet" />
<style>
html, body { margin: 0; padding: 0; height: 100%; background: #000; }
#map { position: absolute; top: 0; bottom: 22px; width: 100%; }
#caption {
  position: absolute; bottom: 0; height: 22px; width: 100%;
  color: #9ca3af; font-size: 12px; text-align: center;
  font-family: system-ui, sans-serif; background: #111;
}
</style>
</head>
<body>
<div id="map"></div>
<div id="caption">{{.Caption}}</div>
<script>
var scene = {{.Scene}};

function toDeckLayer(l) {
  if (l.type === "PathLayer") {
    return new deck.PathLayer({
      id: l.id,
      data: [{ path: l.path }],
      getPath: function (d) { return d.path; },
      getColor: l.color,
      widthScale: l.widthScale,
      widthMinPixels: l.widthMinPixels,
      pickable: l.pickable
    });
  }
  return new deck.ScatterplotLayer({
    id: l.id,
    data: [{ position: l.position }],
    getPosition: function (d) { return d.position; },
    getFillColor: l.color,
    getRadius: l.radius,
    pickable: l.pickable
  });
}

new deck.DeckGL({
  container: "map",
  mapStyle: scene.style,
  mapboxApiAccessToken: "{{.Token}}",
  initialViewState: {
    latitude: scene.view.latitude,
    longitude: scene.view.longitude,
    zoom: scene.view.zoom,
    pitch: scene.view.pitch,
    bearing: scene.view.bearing
  },
  controller: true,
  layers: scene.layers.map(toDeckLayer),
  getTooltip: function () { return scene.tooltip; }
});
</script>
</body>
</html>
`))
