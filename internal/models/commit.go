package models

import "time"

// Commit is the subset of the repos/{owner}/{repo}/commits payload the analyzer reads.
// The author date stays a raw string so a single malformed entry cannot fail the
// whole response.
type Commit struct {
	SHA     string `json:"sha"`
	HTMLURL string `json:"html_url"`
	Commit  struct {
		Message string `json:"message"`
		Author  struct {
			Name  string `json:"name"`
			Email string `json:"email"`
			Date  string `json:"date"`
		} `json:"author"`
	} `json:"commit"`
}

// AuthoredAt parses the author date. ok is false when the date is missing or malformed.
func (c Commit) AuthoredAt() (t time.Time, ok bool) {
	if c.Commit.Author.Date == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, c.Commit.Author.Date)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// CommitDayBucket is one calendar day of a commit activity series.
type CommitDayBucket struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}
