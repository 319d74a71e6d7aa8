package stats

import "github.com/Kamar-Folarin/github-analyzer/internal/models"

// Summarize derives the headline numbers for a user. A nil user leaves the follower
// counts at zero. A synthetic series is not counted: TotalCommits stays 0 and
// TotalCommitsSynthetic is set.
func Summarize(user *models.UserProfile, repos []models.Repository, series []models.CommitDayBucket, synthetic bool) models.Summary {
	summary := models.Summary{RepositoryCount: len(repos), TotalCommitsSynthetic: synthetic}
	if user != nil {
		summary.Followers = user.Followers
		summary.Following = user.Following
	}
	for _, repo := range repos {
		summary.TotalStars += repo.StarsCount
		summary.TotalForks += repo.ForksCount
	}
	if synthetic {
		return summary
	}
	for _, bucket := range series {
		summary.TotalCommits += bucket.Count
	}
	return summary
}
