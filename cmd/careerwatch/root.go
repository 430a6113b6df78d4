package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"go-career-watcher/internal/config"
	"go-career-watcher/internal/scraper"
	"go-career-watcher/internal/scraper/workday"
)

var (
	flagQuery    string
	flagLocation string
	flagLevel    string
	flagSource   string
	flagJobsPath string
)

var rootCmd = &cobra.Command{
	Use:   "careerwatch",
	Short: "Career-page watcher — crawl, score, and rank job listings",
	Long: "careerwatch pages through a career site, diffs the listings against the\n" +
		"previous crawl, scores them against your resume, and keeps jobs.json current.",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagQuery, "query", "q", "", "search query (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&flagLocation, "location", "l", "", "location filter (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLevel, "level", "", "experience level, e.g. EARLY or MID (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagSource, "source", "google", "listing source: google or workday")
	rootCmd.PersistentFlags().StringVar(&flagJobsPath, "jobs", "", "path to jobs.json (overrides config)")

	rootCmd.AddCommand(crawlCmd)
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(sortCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig reads config.yaml/.env and applies CLI flag overrides.
func loadConfig() *config.Config {
	cfg := config.Load()

	if flagQuery != "" {
		cfg.Query = flagQuery
	}
	if flagLocation != "" {
		cfg.Location = flagLocation
	}
	if flagLevel != "" {
		cfg.Level = flagLevel
	}
	if flagJobsPath != "" {
		cfg.JobsPath = flagJobsPath
	}
	return cfg
}

// newWorkdaySource builds the API-backed source from config.
func newWorkdaySource(cfg *config.Config) scraper.Source {
	return workday.NewScraper(cfg.Workday.Endpoint, cfg.Workday.SiteBase, cfg.Workday.Facets)
}

func validateSourceFlag() error {
	switch flagSource {
	case "google", "workday":
		return nil
	default:
		return fmt.Errorf("unknown source %q (want google or workday)", flagSource)
	}
}
