package recommendation

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"skill-bridge/internal/domain/recommendation"
)

type mockMentorRepo struct {
	items []recommendation.Mentor
	err   error
	calls int
}

func (m *mockMentorRepo) ListMentors(context.Context) ([]recommendation.Mentor, error) {
	m.calls++
	return m.items, m.err
}

type mockJobRepo struct {
	items []recommendation.JobListing
	err   error
}

func (m *mockJobRepo) ListJobListings(context.Context) ([]recommendation.JobListing, error) {
	return m.items, m.err
}

type mockCache struct {
	store map[string][]byte
	sets  int
}

func newMockCache() *mockCache {
	return &mockCache{store: map[string][]byte{}}
}

func (c *mockCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (c *mockCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.store[key] = b
	c.sets++
	return nil
}

func TestMentorsCacheMissThenHit(t *testing.T) {
	repo := &mockMentorRepo{items: []recommendation.Mentor{{ID: 1, Name: "Priya Nair", Expertise: "Machine Learning"}}}
	cache := newMockCache()
	svc := NewService(repo, &mockJobRepo{}, cache, time.Minute)

	first, err := svc.Mentors(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(first) != 1 || repo.calls != 1 || cache.sets != 1 {
		t.Fatalf("miss path: items=%d calls=%d sets=%d", len(first), repo.calls, cache.sets)
	}

	second, err := svc.Mentors(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(second) != 1 {
		t.Fatalf("expected cached item")
	}
	if repo.calls != 1 {
		t.Fatalf("repo hit on cached read, calls=%d", repo.calls)
	}
}

func TestMentorsNilCache(t *testing.T) {
	repo := &mockMentorRepo{}
	svc := NewService(repo, &mockJobRepo{}, nil, time.Minute)

	mentors, err := svc.Mentors(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if mentors == nil {
		t.Fatalf("expected empty slice, got nil")
	}
}

func TestJobsStorageFault(t *testing.T) {
	svc := NewService(&mockMentorRepo{}, &mockJobRepo{err: errors.New("down")}, nil, time.Minute)

	_, err := svc.Jobs(context.Background())
	if !errors.Is(err, ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
}

func TestJobsSuccess(t *testing.T) {
	jobs := []recommendation.JobListing{
		{ID: 1, Title: "Junior Backend Engineer", Company: "Northwind Labs"},
		{ID: 2, Title: "Data Analyst Intern", Company: "Brightline Analytics"},
	}
	svc := NewService(&mockMentorRepo{}, &mockJobRepo{items: jobs}, newMockCache(), time.Minute)

	got, err := svc.Jobs(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 || got[0].Title != "Junior Backend Engineer" {
		t.Fatalf("unexpected jobs: %+v", got)
	}
}
