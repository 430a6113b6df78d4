// One crawl cycle: crawl, diff, detail-fetch, merge, persist.

package pipeline

import (
	"context"
	"fmt"
	"log"

	mapset "github.com/deckarep/golang-set/v2"

	"go-career-watcher/internal/crawler"
	"go-career-watcher/internal/diff"
	"go-career-watcher/internal/models"
	"go-career-watcher/internal/scraper"
	"go-career-watcher/internal/store"
)

// Result is the outcome of one crawl cycle.
type Result struct {
	Diff   diff.Result
	Merged models.Collection
}

// RunCrawl executes the full cycle against one source. A fetch failure
// aborts before anything is written, so the previous jobs.json stays
// authoritative. Detail-fetch failures only cost that listing its sections.
func RunCrawl(ctx context.Context, src scraper.Source, st *store.Store) (*Result, error) {
	previous, err := st.Load()
	if err != nil {
		return nil, err
	}

	current, err := crawler.New(src).Crawl(ctx)
	if err != nil {
		return nil, err
	}

	result := diff.Compute(previous, current)

	log.Printf("✅ New listings: %d", len(result.Added))
	for _, l := range result.Added {
		log.Printf(" + %s — %s\n   %s", l.ID, l.Title, l.Link)
	}
	log.Printf("✅ Removed listings: %d", len(result.Removed))
	for _, l := range result.Removed {
		log.Printf(" - %s — %s", l.ID, l.Title)
	}

	//fetch detail sections for the new listings only
	if ds, ok := src.(scraper.DetailSource); ok && len(result.Added) > 0 {
		addedIDs := mapset.NewSet[string](result.Added.IDs()...)
		for i := range current {
			if !addedIDs.Contains(current[i].ID) {
				continue
			}
			sections, err := ds.FetchDetail(ctx, current[i].Link)
			if err != nil {
				log.Printf("  ⚠️ Detail fetch failed for %s, keeping bare listing: %v", current[i].ID, err)
				continue
			}
			current[i].MinimumQualifications = sections.MinimumQualifications
			current[i].PreferredQualifications = sections.PreferredQualifications
			current[i].AboutTheJob = sections.AboutTheJob
			current[i].Responsibilities = sections.Responsibilities
		}
	}

	merged := store.Merge(previous, current)
	if err := st.Save(merged); err != nil {
		return nil, fmt.Errorf("failed to persist crawl result: %w", err)
	}

	return &Result{Diff: result, Merged: merged}, nil
}
