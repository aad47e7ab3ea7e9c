package dto

import "skill-bridge/internal/domain/recommendation"

type MentorResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Expertise string `json:"expertise"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

type JobListingResponse struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	URL      string `json:"url,omitempty"`
}

func NewMentorResponses(mentors []recommendation.Mentor) []MentorResponse {
	out := make([]MentorResponse, 0, len(mentors))
	for _, m := range mentors {
		out = append(out, MentorResponse{ID: m.ID, Name: m.Name, Expertise: m.Expertise, AvatarURL: m.AvatarURL})
	}
	return out
}

func NewJobListingResponses(jobs []recommendation.JobListing) []JobListingResponse {
	out := make([]JobListingResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, JobListingResponse{ID: j.ID, Title: j.Title, Company: j.Company, Location: j.Location, URL: j.URL})
	}
	return out
}
