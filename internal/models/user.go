package models

import "time"

// UserProfile is a public GitHub account as returned by the users/{login} endpoint.
type UserProfile struct {
	Login       string    `json:"login"`
	Name        string    `json:"name"`
	Bio         string    `json:"bio"`
	AvatarURL   string    `json:"avatar_url"`
	URL         string    `json:"html_url"`
	Location    string    `json:"location"`
	Company     string    `json:"company"`
	Email       string    `json:"email"`
	Blog        string    `json:"blog"`
	PublicRepos int       `json:"public_repos"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	CreatedAt   time.Time `json:"created_at"`
}

// DisplayName returns the profile name, falling back to the login.
func (u *UserProfile) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Login
}
