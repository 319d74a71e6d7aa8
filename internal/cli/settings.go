package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/Kamar-Folarin/github-analyzer/internal/config"
)

// Settings is the CLI configuration, read from flags, ANALYZER_* variables and
// an optional .analyzer.yaml.
type Settings struct {
	GitHub   GitHubSettings   `mapstructure:"github"`
	Analysis AnalysisSettings `mapstructure:"analysis"`
	History  HistorySettings  `mapstructure:"history"`
	Output   OutputSettings   `mapstructure:"output"`
	LogLevel string           `mapstructure:"log_level"`
}

type GitHubSettings struct {
	APIBaseURL     string `mapstructure:"api_base_url"`
	UserAgent      string `mapstructure:"user_agent"`
	PerPage        int    `mapstructure:"per_page"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type AnalysisSettings struct {
	MaxActiveRepos int    `mapstructure:"max_active_repos"`
	Workers        int    `mapstructure:"workers"`
	Window         string `mapstructure:"window"`
}

type HistorySettings struct {
	Backend     string `mapstructure:"backend"`
	Key         string `mapstructure:"key"`
	Limit       int    `mapstructure:"limit"`
	DatabaseURL string `mapstructure:"database_url"`
	RedisURL    string `mapstructure:"redis_url"`
}

type OutputSettings struct {
	Colors bool `mapstructure:"colors"`
}

func setDefaults(v *viper.Viper) {
	gh := config.DefaultGitHubConfig()
	analysis := config.DefaultAnalysisConfig()
	history := config.DefaultHistoryConfig()

	v.SetDefault("github.api_base_url", gh.APIBaseURL)
	v.SetDefault("github.user_agent", gh.UserAgent)
	v.SetDefault("github.per_page", gh.PerPage)
	v.SetDefault("github.timeout_seconds", 0)
	v.SetDefault("analysis.max_active_repos", analysis.MaxActiveRepos)
	v.SetDefault("analysis.workers", analysis.Batch.Workers)
	v.SetDefault("analysis.window", analysis.DefaultWindow)
	v.SetDefault("history.backend", "none")
	v.SetDefault("history.key", history.Key)
	v.SetDefault("history.limit", history.Limit)
	v.SetDefault("history.database_url", "")
	v.SetDefault("history.redis_url", "redis://localhost:6379/0")
	v.SetDefault("output.colors", true)
	v.SetDefault("log_level", "warn")
}

// loadSettings reads configuration into Settings. A missing config file is not an error.
func loadSettings(v *viper.Viper, cfgFile string) (*Settings, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".analyzer")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/analyzer")
	}

	v.SetEnvPrefix("ANALYZER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if s.Analysis.MaxActiveRepos <= 0 {
		return nil, fmt.Errorf("analysis.max_active_repos must be positive, got %d", s.Analysis.MaxActiveRepos)
	}
	if s.Analysis.Workers <= 0 {
		return nil, fmt.Errorf("analysis.workers must be positive, got %d", s.Analysis.Workers)
	}
	return &s, nil
}

func (s *Settings) githubConfig() *config.GitHubConfig {
	return &config.GitHubConfig{
		APIBaseURL: s.GitHub.APIBaseURL,
		UserAgent:  s.GitHub.UserAgent,
		PerPage:    s.GitHub.PerPage,
		Timeout:    time.Duration(s.GitHub.TimeoutSeconds) * time.Second,
	}
}

func (s *Settings) analysisConfig() *config.AnalysisConfig {
	return &config.AnalysisConfig{
		MaxActiveRepos: s.Analysis.MaxActiveRepos,
		DefaultWindow:  s.Analysis.Window,
		Batch:          config.BatchConfig{Workers: s.Analysis.Workers},
	}
}

func (s *Settings) historyConfig() *config.HistoryConfig {
	return &config.HistoryConfig{
		Backend: s.History.Backend,
		Key:     s.History.Key,
		Limit:   s.History.Limit,
	}
}
