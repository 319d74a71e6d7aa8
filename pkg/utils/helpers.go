package utils

import (
	"fmt"
	"net/url"
	"strings"
)

// ParseProfileURL extracts the login from a GitHub profile URL such as
// https://github.com/octocat. Repository URLs yield their owner.
func ParseProfileURL(profileURL string) (string, error) {
	u, err := url.Parse(profileURL)
	if err != nil {
		return "", err
	}
	if !strings.EqualFold(strings.TrimPrefix(u.Hostname(), "www."), "github.com") {
		return "", fmt.Errorf("not a GitHub URL")
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) < 1 || parts[0] == "" {
		return "", fmt.Errorf("invalid GitHub profile URL")
	}

	return parts[0], nil
}

// NormalizeUsername trims input, strips a leading @ and accepts profile URLs.
// It returns "" when nothing usable is left.
func NormalizeUsername(input string) string {
	s := strings.TrimSpace(input)
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "github.com/") {
		if !strings.Contains(s, "://") {
			s = "https://" + s
		}
		login, err := ParseProfileURL(s)
		if err != nil {
			return ""
		}
		s = login
	}
	return strings.TrimSpace(strings.TrimPrefix(s, "@"))
}
