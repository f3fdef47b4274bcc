package repository

import (
	"database/sql"
	"fmt"

	"github.com/telemark-pro/pov-backend-go/internal/models"
)

// PisteRepository handles database operations for stored pistes
type PisteRepository struct {
	db *sql.DB
}

// NewPisteRepository creates a new piste repository
func NewPisteRepository(db *sql.DB) *PisteRepository {
	return &PisteRepository{db: db}
}

// Save stores a piste and its ordered track points in one transaction
func (r *PisteRepository) Save(p *models.PisteWithPoints) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO pistes (id, name, source, point_count) VALUES (?, ?, ?, ?)",
		p.ID, p.Name, p.Source, len(p.Points),
	)
	if err != nil {
		return fmt.Errorf("failed to insert piste: %w", err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO piste_points (piste_id, seq, lat, lon, elev) VALUES (?, ?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("failed to prepare point insert: %w", err)
	}
	defer stmt.Close()

	for i, pt := range p.Points {
		if _, err := stmt.Exec(p.ID, i, pt.Lat, pt.Lon, pt.Elev); err != nil {
			return fmt.Errorf("failed to insert piste point %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit piste: %w", err)
	}

	p.PointCount = len(p.Points)
	return nil
}

// List returns all stored pistes, most recent first, without their points
func (r *PisteRepository) List() ([]models.Piste, error) {
	rows, err := r.db.Query(`
		SELECT id, name, source, point_count, created_at
		FROM pistes
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query pistes: %w", err)
	}
	defer rows.Close()

	var pistes []models.Piste
	for rows.Next() {
		var p models.Piste
		if err := rows.Scan(&p.ID, &p.Name, &p.Source, &p.PointCount, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan piste: %w", err)
		}
		pistes = append(pistes, p)
	}

	return pistes, rows.Err()
}

// GetByID returns a piste and its track points in traversal order
func (r *PisteRepository) GetByID(id string) (*models.PisteWithPoints, error) {
	var p models.PisteWithPoints
	err := r.db.QueryRow(`
		SELECT id, name, source, point_count, created_at
		FROM pistes WHERE id = ?
	`, id).Scan(&p.ID, &p.Name, &p.Source, &p.PointCount, &p.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("piste %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query piste: %w", err)
	}

	rows, err := r.db.Query(`
		SELECT lat, lon, elev
		FROM piste_points
		WHERE piste_id = ?
		ORDER BY seq
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query piste points: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var pt models.TrackPoint
		if err := rows.Scan(&pt.Lat, &pt.Lon, &pt.Elev); err != nil {
			return nil, fmt.Errorf("failed to scan piste point: %w", err)
		}
		p.Points = append(p.Points, pt)
	}

	return &p, rows.Err()
}

// Delete removes a piste and, via the foreign key cascade, its points
func (r *PisteRepository) Delete(id string) error {
	res, err := r.db.Exec("DELETE FROM pistes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete piste: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("piste %s not found", id)
	}
	return nil
}
