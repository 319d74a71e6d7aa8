package models

import "time"

// LanguageStat counts the repositories whose primary language is Name.
type LanguageStat struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TimeWindow names the period covered by a commit activity series.
type TimeWindow string

const (
	WindowLast30Days  TimeWindow = "30days"
	WindowLast3Months TimeWindow = "3months"
	WindowLastYear    TimeWindow = "1year"
)

// Valid reports whether w is one of the named windows.
func (w TimeWindow) Valid() bool {
	switch w {
	case WindowLast30Days, WindowLast3Months, WindowLastYear:
		return true
	}
	return false
}

// Summary holds the headline numbers shown above the charts.
// TotalCommits is left at 0 when the activity series is placeholder data and
// TotalCommitsSynthetic is set instead.
type Summary struct {
	TotalStars            int  `json:"total_stars"`
	TotalForks            int  `json:"total_forks"`
	RepositoryCount       int  `json:"repository_count"`
	Followers             int  `json:"followers"`
	Following             int  `json:"following"`
	TotalCommits          int  `json:"total_commits"`
	TotalCommitsSynthetic bool `json:"total_commits_synthetic"`
}

// BatchProgress records how a settle-all fan-out finished.
type BatchProgress struct {
	Total     int           `json:"total"`
	Succeeded int           `json:"succeeded"`
	Failed    int           `json:"failed"`
	Errors    []error       `json:"-"`
	StartTime time.Time     `json:"start_time"`
	Duration  time.Duration `json:"duration"`
}
