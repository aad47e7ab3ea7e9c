package recommendation

import "context"

// Mentor and JobListing are the rows behind the read-only recommendation
// endpoints. How they are ranked or matched to a member is outside this
// service; it only serves what the seeded tables contain.
type Mentor struct {
	ID        int64
	Name      string
	Expertise string
	AvatarURL string
}

type JobListing struct {
	ID       int64
	Title    string
	Company  string
	Location string
	URL      string
}

type MentorRepository interface {
	ListMentors(ctx context.Context) ([]Mentor, error)
}

type JobListingRepository interface {
	ListJobListings(ctx context.Context) ([]JobListing, error)
}
