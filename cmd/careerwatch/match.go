package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"go-career-watcher/internal/ai"
	"go-career-watcher/internal/enrich"
	"go-career-watcher/internal/report"
	"go-career-watcher/internal/resume"
	"go-career-watcher/internal/store"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score every unscored listing against the resume",
	RunE:  runMatch,
}

func runMatch(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	cfg.RequireScoring()

	resumeText, err := resume.ExtractText(cfg.ResumePath)
	if err != nil {
		return err
	}
	if resumeText == "" {
		log.Fatalf("❌ Resume %s produced no text (scanned PDF?)", cfg.ResumePath)
	}
	log.Printf("📄 Resume loaded: %d characters", len(resumeText))

	st := store.New(cfg.JobsPath)
	collection, err := st.Load()
	if err != nil {
		return err
	}
	if len(collection) == 0 {
		log.Println("ℹ️ Nothing to score, run crawl first.")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	client := ai.NewOpenAIClient(cfg.OpenAIKey, cfg.Model)
	enricher := enrich.New(client, resumeText)

	updated, scored, failed := enricher.Run(ctx, collection)
	log.Printf("🤖 Scoring done: %d scored, %d failed, %d already had scores",
		scored, failed, len(collection)-scored-failed)

	if err := st.Save(updated); err != nil {
		return err
	}

	report.RenderMatches(os.Stdout, "Resume ↔ Job Matches", updated)
	return nil
}
