package postgres

import (
	"context"

	"skill-bridge/internal/database"
	"skill-bridge/internal/domain/recommendation"
)

type RecommendationRepository struct {
	db database.DB
}

func NewRecommendationRepository(db database.DB) *RecommendationRepository {
	return &RecommendationRepository{db: db}
}

func (r *RecommendationRepository) ListMentors(ctx context.Context) ([]recommendation.Mentor, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, expertise, avatar_url FROM mentors ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	mentors := []recommendation.Mentor{}
	for rows.Next() {
		var m recommendation.Mentor
		if err := rows.Scan(&m.ID, &m.Name, &m.Expertise, &m.AvatarURL); err != nil {
			return nil, err
		}
		mentors = append(mentors, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return mentors, nil
}

func (r *RecommendationRepository) ListJobListings(ctx context.Context) ([]recommendation.JobListing, error) {
	rows, err := r.db.Query(ctx, `SELECT id, title, company, location, url FROM job_listings ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []recommendation.JobListing{}
	for rows.Next() {
		var j recommendation.JobListing
		if err := rows.Scan(&j.ID, &j.Title, &j.Company, &j.Location, &j.URL); err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return jobs, nil
}
