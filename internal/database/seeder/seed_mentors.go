package seeder

import (
	"context"
	"fmt"

	"skill-bridge/internal/database"
)

type MentorsSeeder struct{}

func (MentorsSeeder) Name() string { return "mentors" }

func (MentorsSeeder) Run(ctx context.Context, db database.DB) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		Name      string
		Expertise string
	}{
		{Name: "Priya Nair", Expertise: "Machine Learning"},
		{Name: "Daniel Okafor", Expertise: "Cloud Computing"},
		{Name: "Mei Chen", Expertise: "Data Science"},
		{Name: "Tomás Silva", Expertise: "DevOps"},
		{Name: "Sarah Whitfield", Expertise: "Cybersecurity"},
	}

	for _, it := range items {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO mentors (name, expertise) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING`,
			it.Name,
			it.Expertise,
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
