package seeder

import (
	"context"
	"fmt"

	"skill-bridge/internal/database"
)

type JobListingsSeeder struct{}

func (JobListingsSeeder) Name() string { return "job_listings" }

func (JobListingsSeeder) Run(ctx context.Context, db database.DB) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		Title    string
		Company  string
		Location string
	}{
		{Title: "Junior Backend Engineer", Company: "Northwind Labs", Location: "Remote"},
		{Title: "Data Analyst Intern", Company: "Brightline Analytics", Location: "Austin, TX"},
		{Title: "Frontend Developer", Company: "Lumen Studio", Location: "Berlin"},
		{Title: "Site Reliability Engineer", Company: "Cloudhaven", Location: "Remote"},
		{Title: "ML Engineer", Company: "Vantage AI", Location: "London"},
	}

	for _, it := range items {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO job_listings (title, company, location) VALUES ($1, $2, $3) ON CONFLICT (title, company) DO NOTHING`,
			it.Title,
			it.Company,
			it.Location,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
