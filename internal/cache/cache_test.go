package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deeplinker/internal/cache"
	"deeplinker/internal/domain"
)

func TestNew_ValidSize(t *testing.T) {
	c, err := cache.New(10, 300) // 2^10 = 1KB
	require.NoError(t, err)
	require.NotNil(t, c)
	defer c.Close()
}

func TestNew_ZeroSize(t *testing.T) {
	c, err := cache.New(0, 300) // 2^0 = 1 byte (min)
	require.NoError(t, err)
	require.NotNil(t, c)
	defer c.Close()
}

func TestGet_MissingSlug(t *testing.T) {
	c, err := cache.New(10, 300)
	require.NoError(t, err)
	defer c.Close()

	link, found := c.Get("nonexistent")
	assert.False(t, found)
	assert.Empty(t, link)
}

func TestSetThenGet(t *testing.T) {
	c, err := cache.New(20, 300) // 2^20 = 1MB
	require.NoError(t, err)
	defer c.Close()

	link := domain.Link{
		ID:          1,
		Slug:        "abc123",
		OriginalURL: "https://example.com/very/long/path",
		IsActive:    true,
	}

	c.Set(link)
	time.Sleep(10 * time.Millisecond) // Ristretto needs time to process

	got, found := c.Get("abc123")
	assert.True(t, found)
	assert.Equal(t, link, got)
}

func TestSet_UpdateExisting(t *testing.T) {
	c, err := cache.New(20, 300)
	require.NoError(t, err)
	defer c.Close()

	first := domain.Link{ID: 1, Slug: "abc123", OriginalURL: "https://example.com/first", IsActive: true}
	second := first
	second.IsActive = false

	c.Set(first)
	time.Sleep(10 * time.Millisecond)

	c.Set(second)
	time.Sleep(10 * time.Millisecond)

	got, found := c.Get("abc123")
	assert.True(t, found)
	assert.False(t, got.IsActive)
}

func TestSet_MultipleSlugs(t *testing.T) {
	c, err := cache.New(20, 300)
	require.NoError(t, err)
	defer c.Close()

	links := []domain.Link{
		{ID: 1, Slug: "code1", OriginalURL: "https://example.com/1", IsActive: true},
		{ID: 2, Slug: "code2", OriginalURL: "https://example.com/2", IsActive: true},
		{ID: 3, Slug: "code3", OriginalURL: "https://example.com/3", IsActive: true},
	}

	for _, link := range links {
		c.Set(link)
	}
	time.Sleep(10 * time.Millisecond)

	for _, link := range links {
		got, found := c.Get(link.Slug)
		assert.True(t, found, "slug %s not cached", link.Slug)
		assert.Equal(t, link, got)
	}
}

func TestStats(t *testing.T) {
	c, err := cache.New(20, 300)
	require.NoError(t, err)
	defer c.Close()

	c.Set(domain.Link{ID: 1, Slug: "abc123", OriginalURL: "https://example.com", IsActive: true})
	time.Sleep(10 * time.Millisecond)

	c.Get("abc123")
	c.Get("missing")

	hits, misses, _ := c.Stats()
	assert.GreaterOrEqual(t, hits, uint64(1))
	assert.GreaterOrEqual(t, misses, uint64(1))
}
