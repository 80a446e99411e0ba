package seed

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Position is a default rate-card entry.
type Position struct {
	Title         string
	Department    string
	HourlyCostMin float64
	HourlyCostMax float64
}

// Software is a default software subscription.
type Software struct {
	Name        string
	Description string
	MonthlyCost float64
}

// DefaultPositions is the rate card installed on a fresh database.
var DefaultPositions = []Position{
	{Title: "Software Engineer", Department: "Engineering", HourlyCostMin: 55, HourlyCostMax: 95},
	{Title: "Senior Software Engineer", Department: "Engineering", HourlyCostMin: 75, HourlyCostMax: 125},
	{Title: "Product Manager", Department: "Product", HourlyCostMin: 60, HourlyCostMax: 110},
	{Title: "UX Designer", Department: "Design", HourlyCostMin: 50, HourlyCostMax: 90},
	{Title: "QA Analyst", Department: "Engineering", HourlyCostMin: 40, HourlyCostMax: 70},
	{Title: "Data Analyst", Department: "Analytics", HourlyCostMin: 45, HourlyCostMax: 80},
}

// DefaultSoftware is the software list installed on a fresh database.
var DefaultSoftware = []Software{
	{Name: "Cloud Hosting", Description: "Shared compute and storage", MonthlyCost: 1200},
	{Name: "CI/CD", Description: "Build and deploy pipelines", MonthlyCost: 300},
	{Name: "Issue Tracker", Description: "Planning and task tracking", MonthlyCost: 150},
}

// Stats contains seed operation counters.
type Stats struct {
	Inserts int
}

// Run executes the startup seed in an idempotent way.
func Run(db *sqlx.DB) (Stats, error) {
	tx, err := db.Beginx()
	if err != nil {
		return Stats{}, fmt.Errorf("begin seed transaction: %w", err)
	}

	stats := Stats{}

	for _, p := range DefaultPositions {
		if err := ensurePosition(tx, p, &stats); err != nil {
			_ = tx.Rollback()
			return Stats{}, err
		}
	}
	for _, s := range DefaultSoftware {
		if err := ensureSoftware(tx, s, &stats); err != nil {
			_ = tx.Rollback()
			return Stats{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return Stats{}, fmt.Errorf("commit seed transaction: %w", err)
	}

	return stats, nil
}

func ensurePosition(tx *sqlx.Tx, p Position, stats *Stats) error {
	var exists bool
	if err := tx.Get(&exists, `SELECT EXISTS(SELECT 1 FROM positions WHERE title = ? LIMIT 1)`, p.Title); err != nil {
		return fmt.Errorf("check position %q existence: %w", p.Title, err)
	}
	if exists {
		return nil
	}

	if _, err := tx.Exec(`
		INSERT INTO positions (title, department, hourly_cost_min, hourly_cost_max)
		VALUES (?, ?, ?, ?)
	`, p.Title, p.Department, p.HourlyCostMin, p.HourlyCostMax); err != nil {
		return fmt.Errorf("insert position %q: %w", p.Title, err)
	}
	stats.Inserts++
	return nil
}

func ensureSoftware(tx *sqlx.Tx, s Software, stats *Stats) error {
	var exists bool
	if err := tx.Get(&exists, `SELECT EXISTS(SELECT 1 FROM software_costs WHERE name = ? LIMIT 1)`, s.Name); err != nil {
		return fmt.Errorf("check software %q existence: %w", s.Name, err)
	}
	if exists {
		return nil
	}

	if _, err := tx.Exec(`
		INSERT INTO software_costs (name, description, monthly_cost)
		VALUES (?, ?, ?)
	`, s.Name, s.Description, s.MonthlyCost); err != nil {
		return fmt.Errorf("insert software %q: %w", s.Name, err)
	}
	stats.Inserts++
	return nil
}
