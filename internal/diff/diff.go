// Identity-based set comparison between two crawls.

package diff

import (
	mapset "github.com/deckarep/golang-set/v2"

	"go-career-watcher/internal/models"
)

// Result partitions a fresh crawl against the previous one by listing id.
type Result struct {
	Added   models.Collection
	Removed models.Collection
}

// Compute returns added = current − previous and removed = previous − current.
// Output order follows the input order of the owning collection.
func Compute(previous, current models.Collection) Result {
	prevIDs := mapset.NewSet[string](previous.IDs()...)
	currIDs := mapset.NewSet[string](current.IDs()...)

	addedIDs := currIDs.Difference(prevIDs)
	removedIDs := prevIDs.Difference(currIDs)

	var res Result
	for _, l := range current {
		if addedIDs.Contains(l.ID) {
			res.Added = append(res.Added, l)
		}
	}
	for _, l := range previous {
		if removedIDs.Contains(l.ID) {
			res.Removed = append(res.Removed, l)
		}
	}
	return res
}
