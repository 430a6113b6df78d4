package sorter

import (
	"sort"

	"go-career-watcher/internal/models"
)

// ByRecommend orders a collection descending by recommend score. Listings
// without a score sort last; ties keep their input order (stable).
func ByRecommend(collection models.Collection) models.Collection {
	sorted := make(models.Collection, len(collection))
	copy(sorted, collection)

	sort.SliceStable(sorted, func(i, j int) bool {
		return scoreOf(sorted[i]) > scoreOf(sorted[j])
	})
	return sorted
}

// scoreOf treats an unscored listing as below every real score, including 0.
func scoreOf(l models.Listing) int {
	if l.Recommend == nil {
		return -1
	}
	return *l.Recommend
}
