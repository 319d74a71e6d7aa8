package models

import "time"

// Repository is a public repository as returned by the users/{login}/repos endpoint.
type Repository struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	FullName        string    `json:"full_name"`
	Description     *string   `json:"description"`
	URL             string    `json:"html_url"`
	Language        *string   `json:"language"`
	ForksCount      int       `json:"forks_count"`
	StarsCount      int       `json:"stargazers_count"`
	WatchersCount   int       `json:"watchers_count"`
	OpenIssuesCount int       `json:"open_issues_count"`
	Fork            bool      `json:"fork"`
	Topics          []string  `json:"topics"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	PushedAt        time.Time `json:"pushed_at"`
}

// PrimaryLanguage returns the repository language, or "" when GitHub reports none.
func (r Repository) PrimaryLanguage() string {
	if r.Language == nil {
		return ""
	}
	return *r.Language
}

// DescriptionText returns the description, or "" when it is null.
func (r Repository) DescriptionText() string {
	if r.Description == nil {
		return ""
	}
	return *r.Description
}
