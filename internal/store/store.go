package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var (
	ErrPositionNotFound = errors.New("position not found")
	ErrSoftwareNotFound = errors.New("software not found")
)

// Position is a rate-card row: a role and its hourly-cost range.
type Position struct {
	ID            int64   `db:"id" json:"id"`
	Title         string  `db:"title" json:"title"`
	Department    string  `db:"department" json:"department"`
	HourlyCostMin float64 `db:"hourly_cost_min" json:"hourly_cost_min"`
	HourlyCostMax float64 `db:"hourly_cost_max" json:"hourly_cost_max"`
}

// Software is a subscription whose monthly cost can be allocated to products.
type Software struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Description string  `db:"description" json:"description"`
	MonthlyCost float64 `db:"monthly_cost" json:"monthly_cost"`
}

// Store reads the rate card.
type Store struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListPositions(ctx context.Context) ([]Position, error) {
	positions := []Position{}
	if err := s.db.SelectContext(ctx, &positions, `
		SELECT id, title, department, hourly_cost_min, hourly_cost_max
		FROM positions
		ORDER BY department, title
	`); err != nil {
		return nil, fmt.Errorf("list positions: %w", err)
	}
	return positions, nil
}

func (s *Store) ListSoftware(ctx context.Context) ([]Software, error) {
	software := []Software{}
	if err := s.db.SelectContext(ctx, &software, `
		SELECT id, name, description, monthly_cost
		FROM software_costs
		ORDER BY name
	`); err != nil {
		return nil, fmt.Errorf("list software: %w", err)
	}
	return software, nil
}

// PositionsByID loads the given positions keyed by id. Any missing id is
// reported as ErrPositionNotFound.
func (s *Store) PositionsByID(ctx context.Context, ids []int64) (map[int64]Position, error) {
	out := make(map[int64]Position, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	query, args, err := sqlx.In(`
		SELECT id, title, department, hourly_cost_min, hourly_cost_max
		FROM positions
		WHERE id IN (?)
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("build positions query: %w", err)
	}

	var rows []Position
	if err := s.db.SelectContext(ctx, &rows, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("load positions: %w", err)
	}
	for _, p := range rows {
		out[p.ID] = p
	}
	for _, id := range ids {
		if _, ok := out[id]; !ok {
			return nil, fmt.Errorf("position %d: %w", id, ErrPositionNotFound)
		}
	}
	return out, nil
}

// SoftwareByID loads the given software rows keyed by id. Any missing id is
// reported as ErrSoftwareNotFound.
func (s *Store) SoftwareByID(ctx context.Context, ids []int64) (map[int64]Software, error) {
	out := make(map[int64]Software, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	query, args, err := sqlx.In(`
		SELECT id, name, description, monthly_cost
		FROM software_costs
		WHERE id IN (?)
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("build software query: %w", err)
	}

	var rows []Software
	if err := s.db.SelectContext(ctx, &rows, s.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("load software: %w", err)
	}
	for _, sw := range rows {
		out[sw.ID] = sw
	}
	for _, id := range ids {
		if _, ok := out[id]; !ok {
			return nil, fmt.Errorf("software %d: %w", id, ErrSoftwareNotFound)
		}
	}
	return out, nil
}
