// Package pistes discovers downhill ski pistes from OpenStreetMap data
// through the Overpass API.
package pistes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/telemark-pro/pov-backend-go/internal/models"
)

// DefaultRadiusKm is the search radius used when a request does not
// specify one.
const DefaultRadiusKm = 10.0

// Polyline is one downhill piste with its display name (may be empty)
type Polyline struct {
	Name   string
	Points models.Track
}

// Client queries an Overpass API endpoint
type Client struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
}

// NewClient creates an Overpass client for the given interpreter URL
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:   baseURL,
		UserAgent: "telemark-pov-backend/1.0",
		HTTPClient: &http.Client{
			Timeout: 25 * time.Second,
		},
	}
}

// overpassElement mirrors the subset of the Overpass JSON output we read
type overpassElement struct {
	Type    string            `json:"type"`
	ID      int64             `json:"id"`
	Lat     float64           `json:"lat"`
	Lon     float64           `json:"lon"`
	Nodes   []int64           `json:"nodes"`
	Members []overpassMember  `json:"members"`
	Tags    map[string]string `json:"tags"`
}

type overpassMember struct {
	Type string `json:"type"`
	Ref  int64  `json:"ref"`
}

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

// FetchDownhill returns the downhill pistes (ways and relations) within
// radiusKm of the given location, each as an ordered polyline of points.
// Elevation is not part of the Overpass output and defaults to 0.
func (c *Client) FetchDownhill(ctx context.Context, lat, lon, radiusKm float64) ([]Polyline, error) {
	if radiusKm <= 0 {
		radiusKm = DefaultRadiusKm
	}
	radiusM := int(radiusKm * 1000)

	query := fmt.Sprintf(`[out:json][timeout:25];
(
  way["piste:type"="downhill"](around:%d,%f,%f);
  relation["piste:type"="downhill"](around:%d,%f,%f);
);
(._;>;);
out body;`, radiusM, lat, lon, radiusM, lat, lon)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, strings.NewReader(query))
	if err != nil {
		return nil, fmt.Errorf("failed to build overpass request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("overpass request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("overpass returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read overpass response: %w", err)
	}

	var parsed overpassResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode overpass response: %w", err)
	}

	return assemblePolylines(parsed.Elements), nil
}

// assemblePolylines joins ways and relations into piste polylines,
// resolving node references and dropping coordinates outside the Alpine
// bounding box (Overpass occasionally returns stray nodes).
func assemblePolylines(elements []overpassElement) []Polyline {
	nodes := make(map[int64]overpassElement)
	ways := make(map[int64]overpassElement)
	for _, el := range elements {
		switch el.Type {
		case "node":
			nodes[el.ID] = el
		case "way":
			ways[el.ID] = el
		}
	}

	var lines []Polyline
	for _, el := range elements {
		if el.Type != "way" && el.Type != "relation" {
			continue
		}
		if el.Tags["piste:type"] != "downhill" {
			continue
		}

		var pts models.Track
		switch el.Type {
		case "way":
			pts = resolveWayPoints(el, nodes)
		case "relation":
			for _, mem := range el.Members {
				if mem.Type != "way" {
					continue
				}
				way, ok := ways[mem.Ref]
				if !ok {
					continue
				}
				pts = append(pts, resolveWayPoints(way, nodes)...)
			}
		}

		if len(pts) < 2 {
			continue
		}
		lines = append(lines, Polyline{Name: pisteName(el.Tags), Points: pts})
	}
	return lines
}

func resolveWayPoints(way overpassElement, nodes map[int64]overpassElement) models.Track {
	var pts models.Track
	for _, nid := range way.Nodes {
		nd, ok := nodes[nid]
		if !ok {
			continue
		}
		if !validAlpine(nd.Lat, nd.Lon) {
			continue
		}
		pts = append(pts, models.TrackPoint{Lat: nd.Lat, Lon: nd.Lon})
	}
	return pts
}

// validAlpine bounds coordinates to the Alpine region served by the app
func validAlpine(lat, lon float64) bool {
	return lat > 35 && lat < 48 && lon > 5 && lon < 14
}

// pisteName extracts a display name from OSM tags, preferring the piste
// specific name over the generic one
func pisteName(tags map[string]string) string {
	for _, key := range []string{"piste:name", "name", "ref"} {
		if v := strings.TrimSpace(tags[key]); v != "" {
			return v
		}
	}
	return ""
}
