package models

// Listing is a single job posting, identified by the stable id extracted
// from its detail-page URL. Detail sections and enrichment fields are
// filled in by later passes and stay empty until then.
type Listing struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Link  string `json:"link"`

	MinimumQualifications   []string `json:"minimum_qualifications,omitempty"`
	PreferredQualifications []string `json:"preferred_qualifications,omitempty"`
	AboutTheJob             []string `json:"about_the_job,omitempty"`
	Responsibilities        []string `json:"responsibilities,omitempty"`

	// Set by the matcher, preserved across re-crawls.
	Recommend *int    `json:"recommend,omitempty"`
	Analysis  *string `json:"analysis,omitempty"`
}

// Enriched reports whether the listing already carries a score and analysis.
func (l Listing) Enriched() bool {
	return l.Recommend != nil && l.Analysis != nil && *l.Analysis != ""
}

// HasDetail reports whether any detail section has been fetched.
func (l Listing) HasDetail() bool {
	return len(l.MinimumQualifications) > 0 || len(l.PreferredQualifications) > 0 ||
		len(l.AboutTheJob) > 0 || len(l.Responsibilities) > 0
}

// Collection is the persisted set of listings, ordered by crawl order.
type Collection []Listing

// IDs returns the listing ids in collection order.
func (c Collection) IDs() []string {
	ids := make([]string, 0, len(c))
	for _, l := range c {
		ids = append(ids, l.ID)
	}
	return ids
}

// ByID indexes the collection by listing id. Later entries win on duplicate
// ids, which the crawler never produces.
func (c Collection) ByID() map[string]Listing {
	m := make(map[string]Listing, len(c))
	for _, l := range c {
		m[l.ID] = l
	}
	return m
}
