package pov

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telemark-pro/pov-backend-go/internal/models"
	"github.com/telemark-pro/pov-backend-go/internal/scene"
)

// fakeBuilder records every builder call so tests can inspect what the
// renderer composed without a real rendering backend
type fakeBuilder struct {
	registered  []string
	rejectToken bool
	composeErr  error

	layers  []scene.Layer
	view    scene.ViewState
	style   string
	tooltip string
	calls   int
}

func (f *fakeBuilder) RegisterToken(token string) error {
	if f.rejectToken {
		return errors.New("registration refused")
	}
	f.registered = append(f.registered, token)
	return nil
}

func (f *fakeBuilder) BuildPathLayer(id string, path [][3]float64, color scene.Color, widthScale float64) scene.Layer {
	return scene.Layer{Type: scene.PathLayerType, ID: id, Path: path, Color: color, WidthScale: widthScale}
}

func (f *fakeBuilder) BuildPointLayer(id string, position [3]float64, color scene.Color, radius float64) scene.Layer {
	return scene.Layer{Type: scene.ScatterLayerType, ID: id, Position: position, Color: color, Radius: radius}
}

func (f *fakeBuilder) ComposeScene(layers []scene.Layer, view scene.ViewState, style, tooltip string) error {
	f.calls++
	f.layers = layers
	f.view = view
	f.style = style
	f.tooltip = tooltip
	return f.composeErr
}

func testTrack() models.Track {
	return models.Track{
		{Lat: 45.0, Lon: 7.0, Elev: 1000},
		{Lat: 45.1, Lon: 7.1, Elev: 1500},
		{Lat: 45.2, Lon: 7.2, Elev: 1200},
	}
}

func newTestRenderer(b *fakeBuilder, tokens TokenSource, notices *[]string) *Renderer {
	return &Renderer{
		Builder: b,
		Tokens:  tokens,
		Infof: func(format string, args ...any) {
			*notices = append(*notices, fmt.Sprintf(format, args...))
		},
	}
}

func TestRenderEmptyTrack(t *testing.T) {
	b := &fakeBuilder{}
	var notices []string
	r := newTestRenderer(b, nil, &notices)

	rc := RenderContext{"unrelated": 42}
	out := r.Render(rc)

	assert.Equal(t, 0, b.calls, "no scene must be composed for an empty track")
	assert.Empty(t, b.registered)
	require.Len(t, notices, 1)
	assert.Contains(t, notices[0], "Nessuna pista")
	assert.Equal(t, rc, out)
	assert.Equal(t, 42, out["unrelated"])
}

func TestRenderWithoutToken(t *testing.T) {
	b := &fakeBuilder{}
	var notices []string
	r := newTestRenderer(b, func() string { return "" }, &notices)

	rc := RenderContext{TrackKey: testTrack()}
	out := r.Render(rc)

	assert.Equal(t, rc, out)
	assert.Equal(t, BaseStyle, b.style)
	assert.Empty(t, b.registered)

	// camera centered on the middle point
	assert.Equal(t, 45.1, b.view.Latitude)
	assert.Equal(t, 7.1, b.view.Longitude)
	assert.Equal(t, ViewZoom, b.view.Zoom)
	assert.Equal(t, ViewPitch, b.view.Pitch)
	assert.Equal(t, ViewBearing, b.view.Bearing)

	require.Len(t, b.layers, 2)
	path := b.layers[0]
	assert.Equal(t, scene.PathLayerType, path.Type)
	assert.Equal(t, scene.Color{255, 69, 0}, path.Color)
	assert.False(t, path.Pickable)
	require.Len(t, path.Path, 3)
	assert.Equal(t, [3]float64{7.1, 45.1, 200}, path.Path[1])

	start := b.layers[1]
	assert.Equal(t, scene.ScatterLayerType, start.Type)
	assert.Equal(t, scene.Color{0, 255, 0}, start.Color)
	assert.Equal(t, [3]float64{7.0, 45.0, 0}, start.Position)
	assert.False(t, start.Pickable)

	assert.Equal(t, DefaultName, b.tooltip)

	require.Len(t, notices, 1)
	assert.Contains(t, notices[0], "senza sfondo satellite")
}

func TestRenderWithToken(t *testing.T) {
	b := &fakeBuilder{}
	var notices []string
	r := newTestRenderer(b, func() string { return "pk.ABCDEFG" }, &notices)

	r.Render(RenderContext{TrackKey: testTrack(), NameKey: "Gran Pista"})

	assert.Equal(t, SatelliteStyle, b.style)
	assert.Equal(t, []string{"pk.ABCDEFG"}, b.registered)
	assert.Equal(t, "Gran Pista", b.tooltip)

	require.Len(t, notices, 1)
	assert.Contains(t, notices[0], "pk.…")
	assert.NotContains(t, notices[0], "ABCDEFG", "caption must not leak the full token")
}

func TestRenderTokenRegistrationFailure(t *testing.T) {
	b := &fakeBuilder{rejectToken: true}
	var notices []string
	r := newTestRenderer(b, func() string { return "pk.ABCDEFG" }, &notices)

	r.Render(RenderContext{TrackKey: testTrack()})

	assert.Equal(t, BaseStyle, b.style, "registration failure must degrade to the base style")
	assert.Equal(t, 1, b.calls, "the render itself must still happen")
	require.Len(t, notices, 1)
	assert.Contains(t, notices[0], "senza sfondo satellite")
}

func TestRenderComposeFailureDoesNotPropagate(t *testing.T) {
	b := &fakeBuilder{composeErr: errors.New("sink unavailable")}
	var notices []string
	r := newTestRenderer(b, nil, &notices)

	rc := RenderContext{TrackKey: testTrack()}
	out := r.Render(rc)

	assert.Equal(t, rc, out)
	require.Len(t, notices, 1)
	assert.Contains(t, notices[0], "sink unavailable")
}

func TestRenderContextPisteName(t *testing.T) {
	cases := []struct {
		name string
		rc   RenderContext
		want string
	}{
		{"both keys set", RenderContext{NameKey: "A", AltNameKey: "B"}, "A"},
		{"alternate key only", RenderContext{AltNameKey: "B"}, "B"},
		{"empty primary falls through", RenderContext{NameKey: "", AltNameKey: "B"}, "B"},
		{"neither key", RenderContext{}, DefaultName},
		{"non-string value", RenderContext{NameKey: 7}, DefaultName},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.rc.PisteName())
		})
	}
}

func TestRenderContextTrack(t *testing.T) {
	track := testTrack()

	assert.Equal(t, track, RenderContext{TrackKey: track}.Track())
	assert.Equal(t, track, RenderContext{TrackKey: []models.TrackPoint(track)}.Track())
	assert.Nil(t, RenderContext{TrackKey: "not a track"}.Track())
	assert.Nil(t, RenderContext{}.Track())
}

func TestRenderIsIdempotent(t *testing.T) {
	tokens := func() string { return "pk.ABCDEFG" }
	rc := RenderContext{TrackKey: testTrack()}

	b1 := &fakeBuilder{}
	b2 := &fakeBuilder{}
	var n1, n2 []string
	newTestRenderer(b1, tokens, &n1).Render(rc)
	newTestRenderer(b2, tokens, &n2).Render(rc)

	assert.Equal(t, b1.layers, b2.layers)
	assert.Equal(t, b1.view, b2.view)
	assert.Equal(t, b1.style, b2.style)
	assert.Equal(t, n1, n2)
}
