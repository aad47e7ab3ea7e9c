package recommendation

import (
	"context"
	"errors"
	"time"

	"skill-bridge/internal/domain/recommendation"
)

var ErrStorage = errors.New("storage error")

const (
	mentorsCacheKey = "recommendations:mentors"
	jobsCacheKey    = "recommendations:jobs"
)

// Cache is satisfied by the Redis JSON cache. A nil Cache disables caching.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type Service struct {
	mentors recommendation.MentorRepository
	jobs    recommendation.JobListingRepository
	cache   Cache
	ttl     time.Duration
}

func NewService(mentors recommendation.MentorRepository, jobs recommendation.JobListingRepository, cache Cache, ttl time.Duration) *Service {
	return &Service{mentors: mentors, jobs: jobs, cache: cache, ttl: ttl}
}

func (s *Service) Mentors(ctx context.Context) ([]recommendation.Mentor, error) {
	if s.cache != nil {
		var cached []recommendation.Mentor
		if hit, err := s.cache.GetJSON(ctx, mentorsCacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	mentors, err := s.mentors.ListMentors(ctx)
	if err != nil {
		return nil, ErrStorage
	}
	if mentors == nil {
		mentors = []recommendation.Mentor{}
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, mentorsCacheKey, mentors, s.ttl)
	}
	return mentors, nil
}

func (s *Service) Jobs(ctx context.Context) ([]recommendation.JobListing, error) {
	if s.cache != nil {
		var cached []recommendation.JobListing
		if hit, err := s.cache.GetJSON(ctx, jobsCacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	jobs, err := s.jobs.ListJobListings(ctx)
	if err != nil {
		return nil, ErrStorage
	}
	if jobs == nil {
		jobs = []recommendation.JobListing{}
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, jobsCacheKey, jobs, s.ttl)
	}
	return jobs, nil
}
