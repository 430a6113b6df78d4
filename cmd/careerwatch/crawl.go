package main

import (
	"context"
	"log"
	"time"

	"github.com/spf13/cobra"

	"go-career-watcher/internal/browser"
	"go-career-watcher/internal/config"
	"go-career-watcher/internal/pipeline"
	"go-career-watcher/internal/scraper/google"
	"go-career-watcher/internal/store"
)

var crawlCmd = &cobra.Command{
	Use:   "crawl",
	Short: "Crawl the listing source, diff against the last run, update jobs.json",
	RunE:  runCrawl,
}

func runCrawl(cmd *cobra.Command, args []string) error {
	if err := validateSourceFlag(); err != nil {
		return err
	}
	cfg := loadConfig()
	log.Printf("🔧 Config loaded. Query: %q, Location: %q, Level: %q", cfg.Query, cfg.Location, cfg.Level)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
	defer cancel()

	_, err := crawlOnce(ctx, cfg)
	if err != nil {
		return err
	}

	log.Println("🏁 Crawl finished.")
	return nil
}

// crawlOnce runs one full cycle with a fresh browser when the source needs
// one. Shared by the crawl command and the watch loop.
func crawlOnce(ctx context.Context, cfg *config.Config) (*pipeline.Result, error) {
	st := store.New(cfg.JobsPath)

	if flagSource == "workday" {
		return pipeline.RunCrawl(ctx, newWorkdaySource(cfg), st)
	}

	mgr, err := browser.NewManager()
	if err != nil {
		return nil, err
	}
	defer mgr.Close()

	page, err := mgr.NewPage()
	if err != nil {
		return nil, err
	}
	log.Println("✅ Browser initialized successfully!")

	return pipeline.RunCrawl(ctx, google.NewScraper(cfg, page), st)
}
