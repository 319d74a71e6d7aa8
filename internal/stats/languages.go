package stats

import (
	"sort"

	"github.com/Kamar-Folarin/github-analyzer/internal/models"
)

// LanguageTable counts repositories per primary language. Repositories without a
// language are left out. Rows are ordered by count, highest first; equal counts keep
// the order in which the language was first seen.
func LanguageTable(repos []models.Repository) []models.LanguageStat {
	index := make(map[string]int)
	table := make([]models.LanguageStat, 0)

	for _, repo := range repos {
		lang := repo.PrimaryLanguage()
		if lang == "" {
			continue
		}
		if i, ok := index[lang]; ok {
			table[i].Count++
			continue
		}
		index[lang] = len(table)
		table = append(table, models.LanguageStat{Name: lang, Count: 1})
	}

	sort.SliceStable(table, func(i, j int) bool {
		return table[i].Count > table[j].Count
	})
	return table
}
