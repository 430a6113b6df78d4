package pipeline

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-career-watcher/internal/models"
	"go-career-watcher/internal/scraper"
	"go-career-watcher/internal/store"
)

// stubSource serves "<id>:<title>" fragments and canned detail sections.
type stubSource struct {
	pages      [][]string
	failFetch  bool
	detailed   []string
	failDetail bool
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) FetchPage(ctx context.Context, n int) ([]string, error) {
	if s.failFetch {
		return nil, errors.New("network down")
	}
	if n > len(s.pages) {
		return nil, nil
	}
	return s.pages[n-1], nil
}

func (s *stubSource) Parse(fragment string) (models.Listing, bool) {
	parts := strings.SplitN(fragment, ":", 2)
	if len(parts) != 2 {
		return models.Listing{}, false
	}
	return models.Listing{ID: parts[0], Title: parts[1], Link: "https://example.com/" + parts[0]}, true
}

func (s *stubSource) FetchDetail(ctx context.Context, link string) (scraper.Sections, error) {
	s.detailed = append(s.detailed, link)
	if s.failDetail {
		return scraper.Sections{}, errors.New("detail page gone")
	}
	return scraper.Sections{Responsibilities: []string{"ship features"}}, nil
}

func TestRunCrawlFirstRun(t *testing.T) {
	st := store.New(filepath.Join(t.TempDir(), "jobs.json"))
	src := &stubSource{pages: [][]string{{"1:alpha", "2:beta"}, {}}}

	res, err := RunCrawl(context.Background(), src, st)
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2"}, res.Diff.Added.IDs())
	assert.Empty(t, res.Diff.Removed)

	//new listings got their detail sections
	assert.Len(t, src.detailed, 2)
	persisted, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"ship features"}, persisted[0].Responsibilities)
}

func TestRunCrawlCarriesEnrichmentAcrossRuns(t *testing.T) {
	st := store.New(filepath.Join(t.TempDir(), "jobs.json"))

	rec := 8
	analysis := "great fit"
	require.NoError(t, st.Save(models.Collection{
		{ID: "1", Title: "alpha", Link: "https://example.com/1", Recommend: &rec, Analysis: &analysis},
		{ID: "9", Title: "stale", Link: "https://example.com/9"},
	}))

	src := &stubSource{pages: [][]string{{"1:alpha", "2:beta"}, {}}}
	res, err := RunCrawl(context.Background(), src, st)
	require.NoError(t, err)

	assert.Equal(t, []string{"2"}, res.Diff.Added.IDs())
	assert.Equal(t, []string{"9"}, res.Diff.Removed.IDs())

	//only the genuinely new listing gets a detail fetch
	assert.Equal(t, []string{"https://example.com/2"}, src.detailed)

	persisted, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, persisted.IDs())
	require.NotNil(t, persisted[0].Recommend)
	assert.Equal(t, 8, *persisted[0].Recommend)
}

func TestRunCrawlFetchFailureLeavesFileUntouched(t *testing.T) {
	st := store.New(filepath.Join(t.TempDir(), "jobs.json"))
	require.NoError(t, st.Save(models.Collection{{ID: "1", Title: "alpha", Link: "l1"}}))

	src := &stubSource{failFetch: true}
	_, err := RunCrawl(context.Background(), src, st)
	require.Error(t, err)

	persisted, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, persisted.IDs(), "previous file stays authoritative")
}

func TestRunCrawlDetailFailureKeepsBareListing(t *testing.T) {
	st := store.New(filepath.Join(t.TempDir(), "jobs.json"))
	src := &stubSource{pages: [][]string{{"1:alpha"}, {}}, failDetail: true}

	res, err := RunCrawl(context.Background(), src, st)
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, res.Merged.IDs())
	assert.Empty(t, res.Merged[0].Responsibilities)
}
