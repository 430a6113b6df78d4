package telegram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunkLines(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		limit int
		want  []string
	}{
		{
			name:  "everything fits in one message",
			lines: []string{"a", "b", "c"},
			limit: 100,
			want:  []string{"a\nb\nc"},
		},
		{
			name:  "split at the limit",
			lines: []string{"aaaa", "bbbb", "cccc"},
			limit: 9,
			want:  []string{"aaaa\nbbbb", "cccc"},
		},
		{
			name:  "oversized line goes out alone",
			lines: []string{"a", strings.Repeat("x", 20), "b"},
			limit: 10,
			want:  []string{"a", strings.Repeat("x", 20), "b"},
		},
		{
			name:  "no lines, no messages",
			lines: nil,
			limit: 10,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := chunkLines(tt.lines, tt.limit)
			assert.Equal(t, tt.want, got)
		})
	}
}
