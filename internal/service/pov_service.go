package service

import (
	"fmt"
	"io"

	"github.com/telemark-pro/pov-backend-go/internal/models"
	"github.com/telemark-pro/pov-backend-go/internal/pov"
	"github.com/telemark-pro/pov-backend-go/internal/profile"
	"github.com/telemark-pro/pov-backend-go/internal/scene"
)

// POVService renders stored pistes as POV views
type POVService struct {
	pistes *PisteService
	tokens pov.TokenSource
}

// NewPOVService creates a new POV service. tokens may be nil when no map
// token is configured anywhere.
func NewPOVService(pistes *PisteService, tokens pov.TokenSource) *POVService {
	return &POVService{pistes: pistes, tokens: tokens}
}

// render composes the POV scene of a piste into a fresh deck.gl builder
func (s *POVService) render(id string) (*scene.DeckGL, error) {
	p, err := s.pistes.Get(id)
	if err != nil {
		return nil, err
	}

	deck := scene.NewDeckGL(p.Name)

	var caption string
	renderer := &pov.Renderer{
		Builder: deck,
		Tokens:  s.tokens,
		Infof: func(format string, args ...any) {
			caption = fmt.Sprintf(format, args...)
		},
	}

	renderer.Render(pov.RenderContext{
		pov.TrackKey: p.Points,
		pov.NameKey:  p.Name,
	})

	if deck.Scene() == nil {
		return nil, fmt.Errorf("piste %s has no renderable track", id)
	}
	deck.SetCaption(caption)
	return deck, nil
}

// SceneHTML writes the POV 3D page for a stored piste
func (s *POVService) SceneHTML(id string, w io.Writer) error {
	deck, err := s.render(id)
	if err != nil {
		return err
	}
	return deck.WriteHTML(w)
}

// SceneJSON returns the composed POV scene for a stored piste
func (s *POVService) SceneJSON(id string) (*scene.Scene, error) {
	deck, err := s.render(id)
	if err != nil {
		return nil, err
	}
	return deck.Scene(), nil
}

// Flythrough2D writes the animated 2D POV page for a stored piste
func (s *POVService) Flythrough2D(id string, w io.Writer) error {
	p, err := s.pistes.Get(id)
	if err != nil {
		return err
	}
	return scene.WriteFlythrough2D(w, p.Points, p.Name)
}

// ProfileChart writes the altitude profile chart for a stored piste
func (s *POVService) ProfileChart(id string, w io.Writer) error {
	p, err := s.pistes.Get(id)
	if err != nil {
		return err
	}
	return profile.WriteAltitudeChart(w, p.Points, p.Name)
}

// Stats returns length and elevation statistics for a stored piste
func (s *POVService) Stats(id string) (*models.PisteStats, error) {
	p, err := s.pistes.Get(id)
	if err != nil {
		return nil, err
	}
	stats := profile.ComputeStats(p.Points)
	return &stats, nil
}
