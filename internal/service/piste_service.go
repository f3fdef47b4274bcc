package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/telemark-pro/pov-backend-go/internal/models"
	"github.com/telemark-pro/pov-backend-go/internal/pistes"
	"github.com/telemark-pro/pov-backend-go/internal/repository"
)

// ErrNoPiste is returned when no downhill piste exists around a location
var ErrNoPiste = errors.New("no downhill piste found")

// PisteService handles business logic for piste discovery and storage
type PisteService struct {
	repo     *repository.PisteRepository
	overpass *pistes.Client
}

// NewPisteService creates a new piste service
func NewPisteService(repo *repository.PisteRepository, overpass *pistes.Client) *PisteService {
	return &PisteService{repo: repo, overpass: overpass}
}

// Extract finds the downhill piste nearest to the requested location via
// Overpass and persists it
func (s *PisteService) Extract(ctx context.Context, req models.ExtractRequest) (*models.PisteWithPoints, error) {
	lines, err := s.overpass.FetchDownhill(ctx, req.Lat, req.Lon, req.RadiusKm)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pistes: %w", err)
	}

	idx, _ := pistes.Nearest(req.Lat, req.Lon, lines)
	if idx < 0 {
		return nil, ErrNoPiste
	}

	line := lines[idx]
	name := line.Name
	if name == "" {
		name = "Pista"
	}

	p := &models.PisteWithPoints{
		Piste: models.Piste{
			ID:     uuid.NewString(),
			Name:   name,
			Source: "overpass",
		},
		Points: line.Points,
	}

	if err := s.repo.Save(p); err != nil {
		return nil, fmt.Errorf("failed to save piste: %w", err)
	}
	return p, nil
}

// List returns all stored pistes
func (s *PisteService) List() ([]models.Piste, error) {
	return s.repo.List()
}

// Get returns a stored piste with its track points
func (s *PisteService) Get(id string) (*models.PisteWithPoints, error) {
	return s.repo.GetByID(id)
}

// Delete removes a stored piste
func (s *PisteService) Delete(id string) error {
	return s.repo.Delete(id)
}
