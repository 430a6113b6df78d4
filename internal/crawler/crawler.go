package crawler

import (
	"context"
	"fmt"
	"log"

	mapset "github.com/deckarep/golang-set/v2"

	"go-career-watcher/internal/models"
	"go-career-watcher/internal/scraper"
)

// Crawler drives one Source across increasing page indices until a page
// yields zero parsed listings. That empty page is the only stopping
// condition; a fetch error aborts the whole crawl.
type Crawler struct {
	source scraper.Source
}

func New(source scraper.Source) *Crawler {
	return &Crawler{source: source}
}

// Crawl accumulates every page into one collection, page-major, keeping
// within-page source order. Duplicate ids across pages are kept once.
func (c *Crawler) Crawl(ctx context.Context) (models.Collection, error) {
	var all models.Collection
	seen := mapset.NewSet[string]()

	for page := 1; ; page++ {
		fragments, err := c.source.FetchPage(ctx, page)
		if err != nil {
			return nil, fmt.Errorf("crawl %s page %d: %w", c.source.Name(), page, err)
		}

		parsed := 0
		for _, fragment := range fragments {
			listing, ok := c.source.Parse(fragment)
			if !ok {
				log.Printf("    ⚠️ Dropping unrecognized fragment: %.80s", fragment)
				continue
			}
			parsed++

			if seen.Contains(listing.ID) {
				continue
			}
			seen.Add(listing.ID)
			all = append(all, listing)
		}

		if parsed == 0 {
			log.Printf("  🛑 Page %d empty, stopping pagination", page)
			break
		}
	}

	log.Printf("  📦 Crawl finished: %d listings from %s", len(all), c.source.Name())
	return all, nil
}
