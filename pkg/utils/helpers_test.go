package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeUsername(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"octocat", "octocat"},
		{"  octocat\t", "octocat"},
		{"@octocat", "octocat"},
		{"https://github.com/octocat", "octocat"},
		{"https://github.com/octocat/", "octocat"},
		{"https://www.github.com/octocat/hello-world", "octocat"},
		{"github.com/octocat", "octocat"},
		{"https://gitlab.com/octocat", ""},
		{"https://github.com/", ""},
		{"", ""},
		{"   ", ""},
		{"@", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeUsername(tt.input))
		})
	}
}

func TestParseProfileURL(t *testing.T) {
	login, err := ParseProfileURL("https://github.com/torvalds")
	assert.NoError(t, err)
	assert.Equal(t, "torvalds", login)

	_, err = ParseProfileURL("https://example.com/torvalds")
	assert.Error(t, err)

	_, err = ParseProfileURL("://bad")
	assert.Error(t, err)
}
