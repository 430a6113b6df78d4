package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"go-career-watcher/internal/report"
	"go-career-watcher/internal/sorter"
	"go-career-watcher/internal/store"
)

var sortCmd = &cobra.Command{
	Use:   "sort",
	Short: "Write jobs_sorted.json, best matches first",
	RunE:  runSort,
}

func runSort(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	collection, err := store.New(cfg.JobsPath).Load()
	if err != nil {
		return err
	}
	if len(collection) == 0 {
		log.Println("ℹ️ Nothing to sort, run crawl first.")
		return nil
	}

	sorted := sorter.ByRecommend(collection)

	// jobs_sorted.json is a derived artifact, never read back as input
	if err := store.New(cfg.SortedPath).Save(sorted); err != nil {
		return err
	}

	report.RenderRanking(os.Stdout, sorted)
	log.Printf("🎯 Sorted listings written to %s", cfg.SortedPath)
	return nil
}
