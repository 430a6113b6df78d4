package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-career-watcher/internal/models"
)

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func TestLoadMissingFileIsEmptyCollection(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "jobs.json"))

	got, err := st.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadMalformedFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jobs.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := New(path).Load()
	assert.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "jobs.json"))

	collection := models.Collection{
		{
			ID:                    "1",
			Title:                 "software-engineer",
			Link:                  "https://example.com/1",
			MinimumQualifications: []string{"Bachelor's degree", "2 years experience"},
			Recommend:             intPtr(7),
			Analysis:              strPtr("good fit"),
		},
		{ID: "2", Title: "site-reliability-engineer", Link: "https://example.com/2"},
	}

	require.NoError(t, st.Save(collection))

	got, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, collection, got)
}

func TestSaveOverwritesWholesale(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "jobs.json"))

	require.NoError(t, st.Save(models.Collection{{ID: "1", Title: "a", Link: "l1"}, {ID: "2", Title: "b", Link: "l2"}}))
	require.NoError(t, st.Save(models.Collection{{ID: "3", Title: "c", Link: "l3"}}))

	got, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, got.IDs())
}

func TestMergeCarriesEnrichmentForward(t *testing.T) {
	previous := models.Collection{
		{ID: "1", Title: "old-title", Link: "old-link", Recommend: intPtr(7), Analysis: strPtr("good fit")},
	}
	current := models.Collection{
		{ID: "1", Title: "x", Link: "new-link"},
		{ID: "2", Title: "y", Link: "l2"},
	}

	merged := Merge(previous, current)

	require.Len(t, merged, 2)

	//id 1 keeps enrichment but takes the fresh identity fields
	assert.Equal(t, "x", merged[0].Title)
	assert.Equal(t, "new-link", merged[0].Link)
	require.NotNil(t, merged[0].Recommend)
	assert.Equal(t, 7, *merged[0].Recommend)
	require.NotNil(t, merged[0].Analysis)
	assert.Equal(t, "good fit", *merged[0].Analysis)

	//id 2 is brand new and has no enrichment
	assert.Nil(t, merged[1].Recommend)
	assert.Nil(t, merged[1].Analysis)
}

func TestMergeDropsDelistedIDs(t *testing.T) {
	previous := models.Collection{
		{ID: "1", Title: "a", Link: "l1", Recommend: intPtr(9)},
		{ID: "2", Title: "b", Link: "l2"},
	}
	current := models.Collection{{ID: "2", Title: "b", Link: "l2"}}

	merged := Merge(previous, current)
	assert.Equal(t, []string{"2"}, merged.IDs())
}

func TestMergeIsIdempotent(t *testing.T) {
	collection := models.Collection{
		{ID: "1", Title: "a", Link: "l1", Recommend: intPtr(5), Analysis: strPtr("ok")},
		{ID: "2", Title: "b", Link: "l2"},
	}

	assert.Equal(t, collection, Merge(collection, collection))
}

func TestMergeKeepsPreviousDetailSections(t *testing.T) {
	previous := models.Collection{
		{ID: "1", Title: "a", Link: "l1", Responsibilities: []string{"build things"}},
	}
	current := models.Collection{{ID: "1", Title: "a", Link: "l1"}}

	merged := Merge(previous, current)
	assert.Equal(t, []string{"build things"}, merged[0].Responsibilities)
}
