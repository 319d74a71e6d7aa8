package dashboard

import (
	"time"

	"github.com/Kamar-Folarin/github-analyzer/internal/models"
)

// Phase is the lifecycle stage of the dashboard.
type Phase string

const (
	PhaseIdle               Phase = "idle"
	PhaseSearching          Phase = "searching"
	PhaseReady              Phase = "ready"
	PhaseSearchFailed       Phase = "search_failed"
	PhaseRecomputingCommits Phase = "recomputing_commits"
)

// Loading reports which parts of the dashboard are being fetched.
type Loading struct {
	Profile   bool `json:"profile"`
	Commits   bool `json:"commits"`
	Languages bool `json:"languages"`
}

// State is everything the presentation layer renders.
type State struct {
	Phase          Phase                    `json:"phase"`
	Username       string                   `json:"username"`
	Window         models.TimeWindow        `json:"window"`
	User           *models.UserProfile      `json:"user"`
	Repositories   []models.Repository      `json:"repositories"`
	CommitActivity []models.CommitDayBucket `json:"commit_activity"`
	// CommitActivitySynthetic marks CommitActivity as placeholder data.
	CommitActivitySynthetic bool                  `json:"commit_activity_synthetic"`
	LanguageStats           []models.LanguageStat `json:"language_stats"`
	Loading                 Loading               `json:"loading"`
	LastError               string                `json:"last_error,omitempty"`
	UpdatedAt               time.Time             `json:"updated_at"`
}

func (s State) clone() State {
	out := s
	if s.User != nil {
		user := *s.User
		out.User = &user
	}
	out.Repositories = append([]models.Repository(nil), s.Repositories...)
	out.CommitActivity = append([]models.CommitDayBucket(nil), s.CommitActivity...)
	out.LanguageStats = append([]models.LanguageStat(nil), s.LanguageStats...)
	return out
}

// Level is the severity of a notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification is a transient, user-facing message.
type Notification struct {
	ID          string    `json:"id"`
	Level       Level     `json:"level"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// EventType distinguishes state updates from notifications.
type EventType string

const (
	EventState        EventType = "state"
	EventNotification EventType = "notification"
)

// Event is delivered to subscribers. Exactly one of State and Notification is set.
type Event struct {
	Type         EventType     `json:"type"`
	State        *State        `json:"state,omitempty"`
	Notification *Notification `json:"notification,omitempty"`
}
