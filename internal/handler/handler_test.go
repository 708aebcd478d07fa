package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractDomain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		referer string
		want    string
	}{
		{"empty referer", "", "direct"},
		{"full url", "https://news.ycombinator.com/item?id=1", "news.ycombinator.com"},
		{"with port", "http://localhost:3000/page", "localhost:3000"},
		{"no host", "/relative/path", "unknown"},
		{"garbage", "://nope", "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractDomain(tt.referer))
		})
	}
}
