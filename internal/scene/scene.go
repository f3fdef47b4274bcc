package scene

// Layer types understood by the composers
const (
	PathLayerType    = "PathLayer"
	ScatterLayerType = "ScatterplotLayer"
)

// Color is an RGB triple in the 0-255 range
type Color [3]int

// Layer is one visual layer of a composed scene
type Layer struct {
	Type           string       `json:"type"`
	ID             string       `json:"id"`
	Path           [][3]float64 `json:"path,omitempty"`     // PathLayer: [lon, lat, height] per vertex
	Position       [3]float64   `json:"position,omitempty"` // ScatterplotLayer: [lon, lat, height]
	Color          Color        `json:"color"`
	WidthScale     float64      `json:"widthScale,omitempty"`
	WidthMinPixels int          `json:"widthMinPixels,omitempty"`
	Radius         float64      `json:"radius,omitempty"`
	Pickable       bool         `json:"pickable"`
}

// ViewState is the initial camera placed over the scene
type ViewState struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Zoom      float64 `json:"zoom"`
	Pitch     float64 `json:"pitch"`
	Bearing   float64 `json:"bearing"`
}

// Scene is a fully composed 3D map scene ready for a rendering backend
type Scene struct {
	Layers  []Layer   `json:"layers"`
	View    ViewState `json:"view"`
	Style   string    `json:"style"`
	Tooltip string    `json:"tooltip"`
	Caption string    `json:"caption,omitempty"`
}

// Builder is the narrow interface the POV renderer drives. Implementations
// own the actual output (HTML page, JSON payload, test recorder) and are
// treated as opaque sinks by the renderer.
type Builder interface {
	// RegisterToken installs a map provider API token. A failed
	// registration leaves the builder usable with keyless styles.
	RegisterToken(token string) error

	// BuildPathLayer builds a non-interactive line geometry along the
	// given [lon, lat, height] vertices.
	BuildPathLayer(id string, path [][3]float64, color Color, widthScale float64) Layer

	// BuildPointLayer builds a non-interactive marker at the given
	// [lon, lat, height] position.
	BuildPointLayer(id string, position [3]float64, color Color, radius float64) Layer

	// ComposeScene assembles layers, camera, style and tooltip template
	// into the final scene.
	ComposeScene(layers []Layer, view ViewState, style, tooltip string) error
}
