package crawler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-career-watcher/internal/models"
	"go-career-watcher/internal/scraper"
)

// stubSource serves canned pages of "<id>:<title>" fragments and records
// how many pages were requested.
type stubSource struct {
	pages   [][]string
	fetched int
	failOn  int
}

var _ scraper.Source = (*stubSource)(nil)

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) FetchPage(ctx context.Context, n int) ([]string, error) {
	s.fetched++
	if s.failOn != 0 && n == s.failOn {
		return nil, errors.New("browser crashed")
	}
	if n > len(s.pages) {
		return nil, nil
	}
	return s.pages[n-1], nil
}

func (s *stubSource) Parse(fragment string) (models.Listing, bool) {
	for i := 0; i < len(fragment); i++ {
		if fragment[i] == ':' {
			id, title := fragment[:i], fragment[i+1:]
			return models.Listing{ID: id, Title: title, Link: "https://example.com/" + id}, true
		}
	}
	return models.Listing{}, false
}

func TestCrawlStopsOnEmptyPage(t *testing.T) {
	src := &stubSource{pages: [][]string{
		{"1:alpha", "2:beta", "3:gamma"},
		{"4:delta", "5:epsilon"},
		{},
	}}

	got, err := New(src).Crawl(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, src.fetched, "should stop right after the first empty page")
	assert.Equal(t, []string{"1", "2", "3", "4", "5"}, got.IDs())
}

func TestCrawlKeepsFirstOccurrenceOfDuplicateID(t *testing.T) {
	src := &stubSource{pages: [][]string{
		{"1:alpha", "2:beta"},
		{"2:beta", "3:gamma"},
	}}

	got, err := New(src).Crawl(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, got.IDs())
}

func TestCrawlDropsUnparsableFragments(t *testing.T) {
	src := &stubSource{pages: [][]string{
		{"1:alpha", "garbage", "2:beta"},
	}}

	got, err := New(src).Crawl(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, got.IDs())
}

func TestCrawlPropagatesFetchFailure(t *testing.T) {
	src := &stubSource{
		pages:  [][]string{{"1:alpha"}, {"2:beta"}},
		failOn: 2,
	}

	_, err := New(src).Crawl(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page 2")
}

func TestCrawlAllDuplicatePageStillTerminatesLater(t *testing.T) {
	//a page of only already-seen ids still counts as parsed, so pagination
	//continues until a truly empty page
	src := &stubSource{pages: [][]string{
		{"1:alpha"},
		{"1:alpha"},
	}}

	got, err := New(src).Crawl(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, src.fetched)
	assert.Equal(t, []string{"1"}, got.IDs())
}
