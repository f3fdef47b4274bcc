package scene

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"

	"github.com/telemark-pro/pov-backend-go/internal/models"
)

// Flythrough animation timing: the marker traverses the whole track in
// about eight seconds, never stepping faster than once per 20ms.
const (
	flythroughTotalMs  = 8000
	flythroughMinStep  = 20
)

// WriteFlythrough2D renders a standalone Leaflet page that animates a
// marker along the track, a keyless 2D counterpart of the 3D POV view.
func WriteFlythrough2D(w io.Writer, track models.Track, name string) error {
	if len(track) == 0 {
		_, err := io.WriteString(w, "<html><body><h3>Nessun dato POV</h3></body></html>")
		return err
	}

	pts := make([][2]float64, len(track))
	for i, p := range track {
		pts[i] = [2]float64{p.Lat, p.Lon}
	}
	ptsJSON, err := json.Marshal(pts)
	if err != nil {
		return fmt.Errorf("failed to marshal track points: %w", err)
	}

	stepMs := flythroughTotalMs / len(track)
	if stepMs < flythroughMinStep {
		stepMs = flythroughMinStep
	}

	if name == "" {
		name = "Pista"
	}

	data := flythroughPageData{
		Name:     name,
		Points:   template.JS(ptsJSON),
		StartLat: track[0].Lat,
		StartLon: track[0].Lon,
		StepMs:   stepMs,
	}
	if err := flythroughTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render flythrough page: %w", err)
	}
	return nil
}

type flythroughPageData struct {
	Name     string
	Points   template.JS
	StartLat float64
	StartLon float64
	StepMs   int
}

var flythroughTmpl = template.Must(template.New("pov2d").Parse(`<!DOCTYPE html>
<html lang="it">
<head>
<meta charset="utf-8" />
<title>POV 2D &ndash; {{.Name}}</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css" />
<style>
html, body, #map { margin: 0; padding: 0; height: 100%; background: #000; }
</style>
</head>
<body>
<div id="map"></div>
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<script>
var pts = {{.Points}};
var map = L.map('map').setView([{{.StartLat}}, {{.StartLon}}], 15);
L.tileLayer('https://tile.openstreetmap.org/{z}/{x}/{y}.png').addTo(map);
var line = L.polyline(pts, { color: '#38bdf8', weight: 4 }).addTo(map);
map.fitBounds(line.getBounds());
var marker = L.marker(pts[0]).addTo(map);

var idx = 0;
var maxIdx = pts.length - 1;
var stepMs = {{.StepMs}};

function move() {
  idx += 1;
  if (idx > maxIdx) { return; }
  var p = pts[idx];
  marker.setLatLng(p);
  map.panTo(p, { animate: true, duration: stepMs / 1000 });
  if (idx < maxIdx) { setTimeout(move, stepMs); }
}
setTimeout(move, 400);
</script>
</body>
</html>
`))
