package enrich

import (
	"context"
	"log"

	"go-career-watcher/internal/ai"
	"go-career-watcher/internal/models"
)

// Enricher walks a collection and fills in recommend/analysis for every
// listing that does not have them yet.
type Enricher struct {
	client     ai.Client
	resumeText string
}

func New(client ai.Client, resumeText string) *Enricher {
	return &Enricher{client: client, resumeText: resumeText}
}

// Run scores listings sequentially. A failed scoring call skips that one
// listing and keeps going; its enrichment fields stay absent so the next
// run retries it. Returns the updated collection and how many listings
// were scored and skipped.
func (e *Enricher) Run(ctx context.Context, collection models.Collection) (models.Collection, int, int) {
	scored, failed := 0, 0

	out := make(models.Collection, len(collection))
	copy(out, collection)

	for i := range out {
		if out[i].Enriched() {
			continue
		}

		log.Printf("  🤖 Scoring %s — %s", out[i].ID, out[i].Title)
		result, err := e.client.ScoreListing(ctx, e.resumeText, out[i])
		if err != nil {
			log.Printf("  ⚠️ Scoring failed for %s, skipping: %v", out[i].ID, err)
			failed++
			continue
		}

		recommend := result.Recommend
		analysis := result.Analysis
		out[i].Recommend = &recommend
		out[i].Analysis = &analysis
		scored++
	}

	return out, scored, failed
}
