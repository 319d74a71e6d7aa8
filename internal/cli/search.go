package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Kamar-Folarin/github-analyzer/internal/activity"
	"github.com/Kamar-Folarin/github-analyzer/internal/dashboard"
	apperrors "github.com/Kamar-Folarin/github-analyzer/internal/errors"
	"github.com/Kamar-Folarin/github-analyzer/internal/github"
	"github.com/Kamar-Folarin/github-analyzer/internal/models"
	"github.com/Kamar-Folarin/github-analyzer/internal/stats"
)

const maxBarWidth = 40

type searchOptions struct {
	window string
	sort   string
	filter string
	limit  int
	export string
	asJSON bool
}

func newSearchCommand(a *app) *cobra.Command {
	opts := &searchOptions{}

	cmd := &cobra.Command{
		Use:   "search <username>",
		Short: "Show the profile, repositories and commit activity of a user",
		Long: `Search a GitHub user by login or profile URL.

Commit activity covers the five most recently pushed repositories over the
selected window: 30days, 3months or 1year.`,
		Example: `  analyzer search octocat
  analyzer search https://github.com/octocat --window 1year
  analyzer search octocat --sort stars --limit 5 --export .`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSearch(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.window, "window", "w", "", "commit activity window: 30days, 3months or 1year")
	cmd.Flags().StringVarP(&opts.sort, "sort", "s", string(stats.SortByUpdated), "repository order: stars, updated, name or created")
	cmd.Flags().StringVarP(&opts.filter, "filter", "f", "", "only list repositories whose name or description contains this text")
	cmd.Flags().IntVarP(&opts.limit, "limit", "n", 10, "maximum repositories to list (0 for all)")
	cmd.Flags().StringVarP(&opts.export, "export", "e", "", "write the JSON export to this file or directory")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the JSON export instead of tables")

	_ = a.v.BindPFlag("analysis.window", cmd.Flags().Lookup("window"))

	return cmd
}

func (a *app) runSearch(cmd *cobra.Command, username string, opts *searchOptions) error {
	ctx := cmd.Context()

	analysisCfg := a.settings.analysisConfig()
	if opts.window != "" && !models.TimeWindow(opts.window).Valid() {
		return apperrors.NewValidationError(fmt.Sprintf("invalid time window %q (use 30days, 3months or 1year)", opts.window), nil)
	}

	client := github.NewClient(a.settings.githubConfig(), a.logger)
	aggregator := activity.NewAggregator(client, analysisCfg, a.logger)
	recent, closer := a.openHistory(ctx)
	defer closer.Close()

	orchestrator := dashboard.NewOrchestrator(client, aggregator, recent, analysisCfg, a.logger)

	if !opts.asJSON {
		a.printer.Info("Searching %s...", strings.TrimSpace(username))
	}
	if err := orchestrator.Search(ctx, username); err != nil {
		return err
	}

	if opts.asJSON {
		doc, _, err := orchestrator.Export()
		if err != nil {
			return err
		}
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(doc)
	}

	state := orchestrator.Snapshot()
	if err := a.renderDashboard(state, opts); err != nil {
		return err
	}

	if opts.export != "" {
		path, err := a.writeExport(orchestrator, opts.export)
		if err != nil {
			return err
		}
		a.printer.Success("Exported to %s", path)
	}

	a.renderNotifications(orchestrator.Notifications())

	rate := client.RateLimit()
	if rate.Limit > 0 {
		a.logger.WithField("remaining", rate.Remaining).WithField("limit", rate.Limit).Debug("GitHub rate limit")
	}
	return nil
}

func (a *app) renderDashboard(state dashboard.State, opts *searchOptions) error {
	p := a.printer
	user := state.User

	p.Header(fmt.Sprintf("%s (@%s)", user.DisplayName(), user.Login))
	if user.Bio != "" {
		p.Print("%s", user.Bio)
	}
	for _, field := range []struct{ label, value string }{
		{"Location", user.Location},
		{"Company", user.Company},
		{"Blog", user.Blog},
		{"Profile", user.URL},
	} {
		if field.value != "" {
			p.Print("%-9s %s", field.label+":", field.value)
		}
	}
	if !user.CreatedAt.IsZero() {
		p.Print("%-9s %s", "Joined:", user.CreatedAt.UTC().Format("January 2, 2006"))
	}

	summary := stats.Summarize(state.User, state.Repositories, state.CommitActivity, state.CommitActivitySynthetic)
	p.Header("Summary")
	if err := p.Table([]string{"Repositories", "Stars", "Forks", "Followers", "Following", "Commits"}, [][]string{{
		strconv.Itoa(summary.RepositoryCount),
		strconv.Itoa(summary.TotalStars),
		strconv.Itoa(summary.TotalForks),
		strconv.Itoa(summary.Followers),
		strconv.Itoa(summary.Following),
		commitTotal(summary),
	}}); err != nil {
		return err
	}

	p.Header("Languages")
	if len(state.LanguageStats) == 0 {
		p.Print("No language data")
	} else if err := p.Table([]string{"Language", "Repositories", "Share"}, languageRows(state.LanguageStats)); err != nil {
		return err
	}

	repos := stats.FilterAndSort(state.Repositories, opts.filter, stats.ParseRepositorySort(opts.sort))
	p.Header(fmt.Sprintf("Repositories (%d)", len(repos)))
	if len(repos) == 0 {
		p.Print("No repositories")
	} else {
		shown := repos
		if opts.limit > 0 && len(shown) > opts.limit {
			shown = shown[:opts.limit]
		}
		if err := p.Table([]string{"Name", "Language", "Stars", "Forks", "Updated"}, repositoryRows(shown)); err != nil {
			return err
		}
		if len(shown) < len(repos) {
			p.Print("... %d more", len(repos)-len(shown))
		}
	}

	p.Header(fmt.Sprintf("Commit activity (%s)", state.Window))
	if state.CommitActivitySynthetic {
		p.Warning("Commit activity could not be fetched; the chart below is illustrative")
	}
	return p.Table([]string{"Week of", "Commits", ""}, weeklyRows(state.CommitActivity))
}

func (a *app) renderNotifications(notifications []dashboard.Notification) {
	// Notifications are newest first; print them in the order they happened.
	for i := len(notifications) - 1; i >= 0; i-- {
		n := notifications[i]
		switch n.Level {
		case dashboard.LevelSuccess:
			a.printer.Success("%s: %s", n.Title, n.Description)
		case dashboard.LevelWarning:
			a.printer.Warning("%s: %s", n.Title, n.Description)
		default:
			a.printer.Error("%s: %s", n.Title, n.Description)
		}
	}
}

func (a *app) writeExport(orchestrator *dashboard.Orchestrator, target string) (string, error) {
	doc, filename, err := orchestrator.Export()
	if err != nil {
		return "", err
	}

	path := target
	if info, statErr := os.Stat(target); statErr == nil && info.IsDir() {
		path = filepath.Join(target, filename)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode export: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	return path, nil
}

func languageRows(languages []models.LanguageStat) [][]string {
	total := 0
	for _, l := range languages {
		total += l.Count
	}

	rows := make([][]string, 0, len(languages))
	for _, l := range languages {
		share := 0.0
		if total > 0 {
			share = float64(l.Count) * 100 / float64(total)
		}
		rows = append(rows, []string{l.Name, strconv.Itoa(l.Count), fmt.Sprintf("%.1f%%", share)})
	}
	return rows
}

func repositoryRows(repos []models.Repository) [][]string {
	rows := make([][]string, 0, len(repos))
	for _, r := range repos {
		language := r.PrimaryLanguage()
		if language == "" {
			language = "-"
		}
		rows = append(rows, []string{
			r.Name,
			language,
			strconv.Itoa(r.StarsCount),
			strconv.Itoa(r.ForksCount),
			r.UpdatedAt.UTC().Format(activity.DayLayout),
		})
	}
	return rows
}

// weeklyRows folds a daily series into 7-day rows starting at the first day.
func weeklyRows(series []models.CommitDayBucket) [][]string {
	type week struct {
		start string
		count int
	}

	var weeks []week
	for i, bucket := range series {
		if i%7 == 0 {
			weeks = append(weeks, week{start: bucket.Date})
		}
		weeks[len(weeks)-1].count += bucket.Count
	}

	peak := 0
	for _, w := range weeks {
		if w.count > peak {
			peak = w.count
		}
	}

	rows := make([][]string, 0, len(weeks))
	for _, w := range weeks {
		width := 0
		if peak > 0 {
			width = (w.count*maxBarWidth + peak - 1) / peak
		}
		rows = append(rows, []string{w.start, strconv.Itoa(w.count), strings.Repeat("#", width)})
	}
	return rows
}

func commitTotal(summary models.Summary) string {
	if summary.TotalCommitsSynthetic {
		return "-"
	}
	return strconv.Itoa(summary.TotalCommits)
}
