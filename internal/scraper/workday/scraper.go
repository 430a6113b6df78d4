package workday

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"go-career-watcher/internal/models"
	"go-career-watcher/internal/scraper"
)

const pageSize = 20

// Scraper reads a Workday-hosted career site through its JSON search
// endpoint. No browser involved; the site serves postings as data.
type Scraper struct {
	endpoint   string
	siteBase   string
	facets     map[string][]string
	httpClient *http.Client
}

// NewScraper targets one Workday tenant. endpoint is the cxs jobs URL,
// siteBase the public career-site prefix external paths hang off, and
// facets the applied search filters (location hierarchy, job family...).
func NewScraper(endpoint, siteBase string, facets map[string][]string) *Scraper {
	return &Scraper{
		endpoint:   endpoint,
		siteBase:   siteBase,
		facets:     facets,
		httpClient: &http.Client{},
	}
}

func (s *Scraper) Name() string {
	return "Workday"
}

type searchRequest struct {
	AppliedFacets map[string][]string `json:"appliedFacets"`
	Limit         int                 `json:"limit"`
	Offset        int                 `json:"offset"`
	SearchText    string              `json:"searchText"`
}

type posting struct {
	Title         string   `json:"title"`
	ExternalPath  string   `json:"externalPath"`
	LocationsText string   `json:"locationsText"`
	PostedOn      string   `json:"postedOn"`
	BulletFields  []string `json:"bulletFields"`
}

type searchResponse struct {
	Total       int       `json:"total"`
	JobPostings []posting `json:"jobPostings"`
}

func (s *Scraper) FetchPage(ctx context.Context, n int) ([]string, error) {
	reqBody := searchRequest{
		AppliedFacets: s.facets,
		Limit:         pageSize,
		Offset:        (n - 1) * pageSize,
		SearchText:    "",
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("workday API returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var searchResp searchResponse
	if err := json.Unmarshal(bodyBytes, &searchResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	log.Printf("  🔍 Workday page %d: %d postings (total %d)", n, len(searchResp.JobPostings), searchResp.Total)

	fragments := make([]string, 0, len(searchResp.JobPostings))
	for _, p := range searchResp.JobPostings {
		raw, err := json.Marshal(p)
		if err != nil {
			continue
		}
		fragments = append(fragments, string(raw))
	}
	return fragments, nil
}

func (s *Scraper) Parse(fragment string) (models.Listing, bool) {
	var p posting
	if err := json.Unmarshal([]byte(fragment), &p); err != nil {
		return models.Listing{}, false
	}

	//postings with blanked-out attributes are tombstones of deleted jobs
	if p.Title == "" || p.ExternalPath == "" || p.LocationsText == "" || p.PostedOn == "" {
		return models.Listing{}, false
	}

	id := ""
	if len(p.BulletFields) > 0 {
		id = p.BulletFields[0]
	}
	if id == "" {
		segs := strings.Split(p.ExternalPath, "_")
		id = segs[len(segs)-1]
	}
	if id == "" {
		return models.Listing{}, false
	}

	return models.Listing{
		ID:    id,
		Title: scraper.NormalizeTitle(p.Title),
		Link:  s.siteBase + p.ExternalPath,
	}, true
}
