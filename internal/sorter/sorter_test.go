package sorter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-career-watcher/internal/models"
)

func scored(id string, score int) models.Listing {
	return models.Listing{ID: id, Title: "job-" + id, Recommend: &score}
}

func unscored(id string) models.Listing {
	return models.Listing{ID: id, Title: "job-" + id}
}

func TestByRecommend(t *testing.T) {
	tests := []struct {
		name  string
		input models.Collection
		want  []string
	}{
		{
			name:  "ties keep input order, unscored sorts last",
			input: models.Collection{scored("1", 5), unscored("2"), scored("3", 5)},
			want:  []string{"1", "3", "2"},
		},
		{
			name:  "descending by score",
			input: models.Collection{scored("1", 2), scored("2", 9), scored("3", 6)},
			want:  []string{"2", "3", "1"},
		},
		{
			name:  "zero score still beats unscored",
			input: models.Collection{unscored("1"), scored("2", 0)},
			want:  []string{"2", "1"},
		},
		{
			name:  "empty collection",
			input: models.Collection{},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ByRecommend(tt.input)
			assert.Equal(t, tt.want, got.IDs())
		})
	}
}

func TestByRecommendDoesNotMutateInput(t *testing.T) {
	input := models.Collection{scored("1", 1), scored("2", 9)}
	_ = ByRecommend(input)
	assert.Equal(t, []string{"1", "2"}, input.IDs())
}
