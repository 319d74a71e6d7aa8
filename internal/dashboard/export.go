package dashboard

import (
	"fmt"
	"time"

	apperrors "github.com/Kamar-Folarin/github-analyzer/internal/errors"
	"github.com/Kamar-Folarin/github-analyzer/internal/models"
)

// ExportDocument is the downloadable snapshot of a search.
type ExportDocument struct {
	User           *models.UserProfile      `json:"user"`
	Repositories   []models.Repository      `json:"repositories"`
	CommitActivity []models.CommitDayBucket `json:"commitActivity"`
	LanguageStats  []models.LanguageStat    `json:"languageStats"`
	ExportDate     string                   `json:"exportDate"`
	// CommitActivitySynthetic is true when the dashboard showed placeholder activity;
	// CommitActivity is then empty.
	CommitActivitySynthetic bool `json:"commitActivitySynthetic"`
}

// ExportFilename returns github-data-<login>-<YYYY-MM-DD>.json
func ExportFilename(login string, at time.Time) string {
	return fmt.Sprintf("github-data-%s-%s.json", login, at.UTC().Format("2006-01-02"))
}

// Export builds the export document for the current user and emits an
// "Export Complete" notification. It fails with NOT_FOUND when no user is loaded.
func (o *Orchestrator) Export() (*ExportDocument, string, error) {
	state := o.Snapshot()
	if state.User == nil {
		return nil, "", apperrors.NewNotFoundError("No user data to export", nil)
	}

	now := o.now()
	doc := &ExportDocument{
		User:                    state.User,
		Repositories:            state.Repositories,
		CommitActivity:          state.CommitActivity,
		LanguageStats:           state.LanguageStats,
		ExportDate:              now.UTC().Format(time.RFC3339Nano),
		CommitActivitySynthetic: state.CommitActivitySynthetic,
	}
	if doc.Repositories == nil {
		doc.Repositories = []models.Repository{}
	}
	if doc.LanguageStats == nil {
		doc.LanguageStats = []models.LanguageStat{}
	}
	if doc.CommitActivitySynthetic || doc.CommitActivity == nil {
		doc.CommitActivity = []models.CommitDayBucket{}
	}

	o.notify(LevelSuccess, "Export Complete", "Your GitHub data has been exported successfully")
	o.logger.WithField("login", state.User.Login).Info("Exported dashboard data")

	return doc, ExportFilename(state.User.Login, now), nil
}
