package stats

import (
	"sort"
	"strings"

	"github.com/Kamar-Folarin/github-analyzer/internal/models"
)

// RepositorySort names an ordering for the repository list.
type RepositorySort string

const (
	SortByStars   RepositorySort = "stars"
	SortByUpdated RepositorySort = "updated"
	SortByName    RepositorySort = "name"
	SortByCreated RepositorySort = "created"
)

// ParseRepositorySort maps a query value onto a sort order. Empty or unknown values
// fall back to SortByUpdated.
func ParseRepositorySort(s string) RepositorySort {
	switch RepositorySort(strings.ToLower(strings.TrimSpace(s))) {
	case SortByStars:
		return SortByStars
	case SortByName:
		return SortByName
	case SortByCreated:
		return SortByCreated
	default:
		return SortByUpdated
	}
}

// FilterAndSort returns a new slice holding the repositories whose name or description
// contains query (case-insensitive), ordered by by. repos is not modified.
func FilterAndSort(repos []models.Repository, query string, by RepositorySort) []models.Repository {
	query = strings.ToLower(strings.TrimSpace(query))

	result := make([]models.Repository, 0, len(repos))
	for _, repo := range repos {
		if query == "" ||
			strings.Contains(strings.ToLower(repo.Name), query) ||
			strings.Contains(strings.ToLower(repo.DescriptionText()), query) {
			result = append(result, repo)
		}
	}

	var less func(a, b models.Repository) bool
	switch by {
	case SortByStars:
		less = func(a, b models.Repository) bool { return a.StarsCount > b.StarsCount }
	case SortByName:
		less = func(a, b models.Repository) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
	case SortByCreated:
		less = func(a, b models.Repository) bool { return a.CreatedAt.After(b.CreatedAt) }
	default:
		less = func(a, b models.Repository) bool { return a.UpdatedAt.After(b.UpdatedAt) }
	}
	sort.SliceStable(result, func(i, j int) bool {
		return less(result[i], result[j])
	})
	return result
}
