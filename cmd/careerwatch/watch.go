package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"go-career-watcher/internal/config"
	"go-career-watcher/internal/history"
	"go-career-watcher/internal/models"
	"go-career-watcher/internal/telegram"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Crawl on a randomized interval and push digests to Telegram",
	RunE:  runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	if err := validateSourceFlag(); err != nil {
		return err
	}
	cfg := loadConfig()
	cfg.RequireTelegram()

	bot, err := telegram.NewBot(cfg.TelegramToken, cfg.TelegramChatID)
	if err != nil {
		return err
	}
	log.Println("🤖 Telegram bot initialized.")

	announced := history.NewLog(cfg.HistoryPath)

	if err := bot.SendStatus(fmt.Sprintf("👀 Watching %q in %s", cfg.Query, cfg.Location)); err != nil {
		log.Printf("⚠️ Failed to send startup status: %v", err)
	}

	for {
		runWatchCycle(cfg, bot, announced)

		interval := randomInterval(cfg.MinIntervalMin, cfg.MaxIntervalMin)
		log.Printf("😴 Next crawl in %v", interval)
		time.Sleep(interval)
	}
}

// runWatchCycle does one crawl and announces whatever is genuinely new.
// Any failure only skips this cycle; the watcher keeps running.
func runWatchCycle(cfg *config.Config, bot *telegram.Bot, announced *history.Log) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
	defer cancel()

	result, err := crawlOnce(ctx, cfg)
	if err != nil {
		log.Printf("❌ Crawl cycle failed: %v", err)
		return
	}

	//announce only listings that were never sent before
	var fresh models.Collection
	for _, l := range result.Diff.Added {
		if !announced.IsAnnounced(l.ID) {
			fresh = append(fresh, l)
		}
	}

	if len(fresh) == 0 && len(result.Diff.Removed) == 0 {
		log.Println("ℹ️ No changes to announce.")
		return
	}

	if err := bot.SendDigest(cfg.Query, fresh, result.Diff.Removed); err != nil {
		log.Printf("⚠️ Failed to send digest: %v", err)
		return
	}

	//only mark after a successful send, so a failed send retries next cycle
	announced.Add(fresh.IDs())
	log.Printf("📣 Announced %d new and %d removed listings", len(fresh), len(result.Diff.Removed))
}

func randomInterval(minMinutes, maxMinutes int) time.Duration {
	if maxMinutes <= minMinutes {
		return time.Duration(minMinutes) * time.Minute
	}
	spread := rand.Intn((maxMinutes - minMinutes) * 60)
	return time.Duration(minMinutes)*time.Minute + time.Duration(spread)*time.Second
}
