package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kamar-Folarin/github-analyzer/internal/dashboard"
	apperrors "github.com/Kamar-Folarin/github-analyzer/internal/errors"
	"github.com/Kamar-Folarin/github-analyzer/internal/models"
)

func newFakeGitHub(t *testing.T) *httptest.Server {
	t.Helper()

	pushed := time.Now().UTC().Add(-48 * time.Hour).Format(time.RFC3339)
	committed := time.Now().UTC().Add(-24 * time.Hour).Format(time.RFC3339)

	mux := http.NewServeMux()
	mux.HandleFunc("/users/octocat", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"login":"octocat","name":"The Octocat","bio":"Mascot","html_url":"https://github.com/octocat",
			"public_repos":2,"followers":10,"following":1,"created_at":"2011-01-25T18:44:36Z"}`)
	})
	mux.HandleFunc("/users/octocat/repos", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `[
			{"id":1,"name":"hello-world","language":"Go","stargazers_count":7,"forks_count":2,
			 "created_at":"2020-01-01T00:00:00Z","updated_at":"%[1]s","pushed_at":"%[1]s"},
			{"id":2,"name":"spoon-knife","language":null,"stargazers_count":3,"forks_count":1,
			 "created_at":"2019-01-01T00:00:00Z","updated_at":"2021-01-01T00:00:00Z","pushed_at":"2021-01-01T00:00:00Z"}
		]`, pushed)
	})
	mux.HandleFunc("/repos/octocat/hello-world/commits", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `[{"sha":"a","commit":{"author":{"date":"%[1]s"}}},{"sha":"b","commit":{"author":{"date":"%[1]s"}}}]`, committed)
	})
	mux.HandleFunc("/repos/octocat/spoon-knife/commits", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	})

	mux.HandleFunc("/users/empty", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"login":"empty","public_repos":0,"created_at":"2015-01-01T00:00:00Z"}`)
	})
	mux.HandleFunc("/users/empty/repos", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[]`)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func runCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(args, "--no-color", "--history-backend", "none"))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestSearchCommand(t *testing.T) {
	srv := newFakeGitHub(t)

	t.Run("renders the dashboard", func(t *testing.T) {
		stdout, stderr, err := runCommand(t, "search", "@octocat", "--api-url", srv.URL)
		require.NoError(t, err)

		assert.Contains(t, stdout, "The Octocat (@octocat)")
		assert.Contains(t, stdout, "Mascot")
		assert.Contains(t, stdout, "hello-world")
		assert.Contains(t, stdout, "spoon-knife")
		assert.Contains(t, stdout, "Go")
		assert.Contains(t, stdout, "Commit activity (30days)")
		assert.Contains(t, stdout, "[OK] Success:")
		assert.NotContains(t, stderr, "illustrative")
	})

	t.Run("json output", func(t *testing.T) {
		stdout, _, err := runCommand(t, "search", "octocat", "--api-url", srv.URL, "--json", "--window", "3months")
		require.NoError(t, err)

		var doc dashboard.ExportDocument
		require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
		require.NotNil(t, doc.User)
		assert.Equal(t, "octocat", doc.User.Login)
		assert.Len(t, doc.Repositories, 2)
		assert.False(t, doc.CommitActivitySynthetic)
		assert.Equal(t, []models.LanguageStat{{Name: "Go", Count: 1}}, doc.LanguageStats)

		total := 0
		for _, b := range doc.CommitActivity {
			total += b.Count
		}
		assert.Equal(t, 2, total)
		assert.GreaterOrEqual(t, len(doc.CommitActivity), 89)
	})

	t.Run("export to a directory", func(t *testing.T) {
		dir := t.TempDir()
		stdout, _, err := runCommand(t, "search", "octocat", "--api-url", srv.URL, "--export", dir)
		require.NoError(t, err)

		path := filepath.Join(dir, dashboard.ExportFilename("octocat", time.Now()))
		assert.Contains(t, stdout, "Exported to "+path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"commitActivity"`)
	})

	t.Run("placeholder activity is not totalled", func(t *testing.T) {
		stdout, _, err := runCommand(t, "search", "empty", "--api-url", srv.URL, "--json")
		require.NoError(t, err)

		var doc dashboard.ExportDocument
		require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
		assert.True(t, doc.CommitActivitySynthetic)
		assert.Empty(t, doc.CommitActivity)

		stdout, stderr, err := runCommand(t, "search", "empty", "--api-url", srv.URL)
		require.NoError(t, err)
		assert.Contains(t, stderr, "illustrative")
		assert.Contains(t, stderr, "No repositories found to analyze commits")
		assert.Contains(t, stdout, "No repositories")
	})

	t.Run("unknown user", func(t *testing.T) {
		_, _, err := runCommand(t, "search", "ghost", "--api-url", srv.URL)
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("invalid window", func(t *testing.T) {
		_, _, err := runCommand(t, "search", "octocat", "--api-url", srv.URL, "--window", "fortnight")
		require.Error(t, err)
		assert.True(t, apperrors.IsInvalidInput(err))
		assert.Contains(t, apperrors.MessageOf(err), "fortnight")
	})

	t.Run("requires a username", func(t *testing.T) {
		_, _, err := runCommand(t, "search")
		assert.Error(t, err)
	})
}

func TestHistoryCommand_Empty(t *testing.T) {
	stdout, _, err := runCommand(t, "history")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No recent searches")
}

func TestWeeklyRows(t *testing.T) {
	series := make([]models.CommitDayBucket, 10)
	for i := range series {
		series[i] = models.CommitDayBucket{Date: fmt.Sprintf("2024-03-%02d", i+1), Count: 1}
	}
	series[0].Count = 8

	rows := weeklyRows(series)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"2024-03-01", "14"}, rows[0][:2])
	assert.Equal(t, []string{"2024-03-08", "3"}, rows[1][:2])
	assert.Len(t, rows[0][2], maxBarWidth)
	assert.Len(t, rows[1][2], 9)

	assert.Empty(t, weeklyRows(nil))
}

func TestLanguageRows(t *testing.T) {
	rows := languageRows([]models.LanguageStat{{Name: "Go", Count: 3}, {Name: "Rust", Count: 1}})
	assert.Equal(t, [][]string{{"Go", "3", "75.0%"}, {"Rust", "1", "25.0%"}}, rows)
}

func TestPrinter_NoColor(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut, false)

	p.Success("done %d", 1)
	p.Warning("careful")
	p.Error("failed")
	p.Header("Title")

	assert.Contains(t, out.String(), "[OK] done 1")
	assert.Contains(t, out.String(), "Title\n-----")
	assert.Contains(t, errOut.String(), "[WARN] careful")
	assert.Contains(t, errOut.String(), "[ERROR] failed")
	assert.Equal(t, "plain", p.Bold("plain"))
}

func TestCommitTotal(t *testing.T) {
	assert.Equal(t, "12", commitTotal(models.Summary{TotalCommits: 12}))
	assert.Equal(t, "-", commitTotal(models.Summary{TotalCommitsSynthetic: true}))
}

func TestLoadSettings(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		s, err := loadSettings(viper.New(), "")
		require.NoError(t, err)

		assert.Zero(t, s.githubConfig().Timeout)
		assert.Equal(t, 5, s.analysisConfig().MaxActiveRepos)
		assert.Equal(t, "none", s.History.Backend)
	})

	t.Run("non-positive repository limit is rejected", func(t *testing.T) {
		t.Setenv("ANALYZER_ANALYSIS_MAX_ACTIVE_REPOS", "0")

		_, err := loadSettings(viper.New(), "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_active_repos")
	})

	t.Run("non-positive worker count is rejected", func(t *testing.T) {
		t.Setenv("ANALYZER_ANALYSIS_WORKERS", "-1")

		_, err := loadSettings(viper.New(), "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "workers")
	})
}
