package postgres

import "encoding/json"

// Skills are stored as a JSON-encoded array of strings in a single text
// column. A missing or empty stored value decodes to an empty slice, never
// nil: once an account exists its skills always round-trip as a list.

func encodeSkills(skills []string) (string, error) {
	if skills == nil {
		skills = []string{}
	}
	b, err := json.Marshal(skills)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeSkills(stored string) ([]string, error) {
	if stored == "" {
		return []string{}, nil
	}
	var skills []string
	if err := json.Unmarshal([]byte(stored), &skills); err != nil {
		return nil, err
	}
	if skills == nil {
		skills = []string{}
	}
	return skills, nil
}
