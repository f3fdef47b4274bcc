package scene

import (
	"bytes"
	"strings"
	"testing"

	"github.com/telemark-pro/pov-backend-go/internal/models"
)

func TestRegisterTokenValidation(t *testing.T) {
	cases := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{"valid token", "pk.ABCDEFG", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"embedded space", "pk.AB CD", true},
		{"embedded quote", `pk."x`, true},
		{"embedded newline", "pk.AB\nCD", true},
		{"surrounding whitespace trimmed", "  pk.ABCDEFG  ", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDeckGL("test")
			err := d.RegisterToken(tc.token)
			if tc.wantErr && err == nil {
				t.Errorf("RegisterToken(%q) = nil, want error", tc.token)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("RegisterToken(%q) = %v, want nil", tc.token, err)
			}
		})
	}
}

func TestWriteHTMLBeforeCompose(t *testing.T) {
	d := NewDeckGL("test")
	if d.Scene() != nil {
		t.Error("Scene() should be nil before composing")
	}
	if err := d.WriteHTML(&bytes.Buffer{}); err == nil {
		t.Error("WriteHTML should fail before a scene is composed")
	}
}

func TestComposeAndWriteHTML(t *testing.T) {
	d := NewDeckGL("Gran Pista")
	if err := d.RegisterToken("pk.ABCDEFG"); err != nil {
		t.Fatalf("RegisterToken failed: %v", err)
	}

	path := [][3]float64{{7.0, 45.0, 0}, {7.1, 45.1, 200}}
	layers := []Layer{
		d.BuildPathLayer("piste-path", path, Color{255, 69, 0}, 10),
		d.BuildPointLayer("piste-start", path[0], Color{0, 255, 0}, 30),
	}
	view := ViewState{Latitude: 45.1, Longitude: 7.1, Zoom: 13, Pitch: 60, Bearing: -45}

	if err := d.ComposeScene(layers, view, "mapbox://styles/mapbox/satellite-v9", "Gran Pista"); err != nil {
		t.Fatalf("ComposeScene failed: %v", err)
	}
	d.SetCaption("Sfondo satellite attivo (token pk.…).")

	sc := d.Scene()
	if sc == nil {
		t.Fatal("Scene() returned nil after composing")
	}
	if len(sc.Layers) != 2 {
		t.Fatalf("composed %d layers, want 2", len(sc.Layers))
	}
	if sc.Layers[0].Pickable || sc.Layers[1].Pickable {
		t.Error("POV layers must not be pickable")
	}
	if sc.Caption == "" {
		t.Error("caption not propagated to the composed scene")
	}

	var buf bytes.Buffer
	if err := d.WriteHTML(&buf); err != nil {
		t.Fatalf("WriteHTML failed: %v", err)
	}
	page := buf.String()

	for _, want := range []string{
		"deck.gl",
		"satellite-v9",
		"pk.ABCDEFG",
		"PathLayer",
		"Gran Pista",
		"token pk.…",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("rendered page missing %q", want)
		}
	}
}

func TestWriteFlythrough2DEmptyTrack(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteFlythrough2D(&buf, nil, "Pista"); err != nil {
		t.Fatalf("WriteFlythrough2D failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Nessun dato POV") {
		t.Errorf("empty track page should carry the no-data notice, got %q", buf.String())
	}
}

func TestWriteFlythrough2D(t *testing.T) {
	track := models.Track{
		{Lat: 45.0, Lon: 7.0},
		{Lat: 45.1, Lon: 7.1},
		{Lat: 45.2, Lon: 7.2},
	}

	var buf bytes.Buffer
	if err := WriteFlythrough2D(&buf, track, "Gran Pista"); err != nil {
		t.Fatalf("WriteFlythrough2D failed: %v", err)
	}
	page := buf.String()

	for _, want := range []string{"leaflet", "Gran Pista", "45.1", "panTo"} {
		if !strings.Contains(page, want) {
			t.Errorf("flythrough page missing %q", want)
		}
	}
}
