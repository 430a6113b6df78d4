// Define an interface for all listing sources
// Ensure consistency

package scraper

import (
	"context"

	"go-career-watcher/internal/models"
)

// Sections holds the labeled blocks of a listing detail page.
type Sections struct {
	MinimumQualifications   []string
	PreferredQualifications []string
	AboutTheJob             []string
	Responsibilities        []string
}

// Source is a paged listing source. FetchPage returns the raw fragments of
// page n (1-based); Parse turns one fragment into a Listing. A fragment the
// source cannot recognize is dropped by the caller.
type Source interface {
	//Name is the source name (GoogleCareers, Workday, ...)
	Name() string

	//FetchPage retrieves page n and returns its raw link fragments
	FetchPage(ctx context.Context, n int) ([]string, error)

	//Parse extracts a normalized listing from one raw fragment
	Parse(fragment string) (models.Listing, bool)
}

// DetailSource is implemented by sources that can also fetch the full
// detail sections for a single listing.
type DetailSource interface {
	FetchDetail(ctx context.Context, link string) (Sections, error)
}
