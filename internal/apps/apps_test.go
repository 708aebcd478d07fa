package apps_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deeplinker/internal/apps"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want apps.ID
	}{
		// Video
		{"youtube watch", "https://www.youtube.com/watch?v=abc123", apps.YouTube},
		{"youtube mobile subdomain", "https://m.youtube.com/watch?v=abc123", apps.YouTube},
		{"youtube short domain", "https://youtu.be/abc123", apps.YouTube},
		{"youtube uppercase host", "https://WWW.YOUTUBE.COM/watch?v=abc123", apps.YouTube},

		// Photo
		{"instagram profile", "https://instagram.com/someuser", apps.Instagram},
		{"instagram www", "https://www.instagram.com/someuser", apps.Instagram},

		// Social
		{"tiktok user", "https://www.tiktok.com/@someuser", apps.TikTok},
		{"twitter", "https://twitter.com/someuser", apps.Twitter},
		{"x.com alias", "https://x.com/someuser", apps.Twitter},
		{"x.com subdomain", "https://mobile.x.com/someuser", apps.Twitter},
		{"facebook", "https://www.facebook.com/somepage", apps.Facebook},
		{"fb.com alias", "https://fb.com/somepage", apps.Facebook},
		{"linkedin", "https://www.linkedin.com/in/someone", apps.LinkedIn},

		// Music
		{"spotify track", "https://open.spotify.com/track/3n3Ppam7vgaVa1iaRUc9Lp", apps.Spotify},

		// Unrecognized
		{"plain site", "https://example.com/page", apps.None},
		{"empty host lookalike", "https://notyoutu.example.com/", apps.None},
		{"netflix is not twitter", "https://www.netflix.com/title/1", apps.None},
		{"box is not twitter", "https://app.box.com/folder/0", apps.None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.want, apps.Classify(u))
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	u, err := url.Parse("https://www.youtube.com/watch?v=abc123")
	require.NoError(t, err)

	first := apps.Classify(u)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, apps.Classify(u))
	}
}

func TestClassifyRaw_Unparsable(t *testing.T) {
	assert.Equal(t, apps.None, apps.ClassifyRaw("://not a url"))
}

func TestID_String(t *testing.T) {
	assert.Equal(t, "youtube", apps.YouTube.String())
	assert.Equal(t, "none", apps.None.String())
	assert.Equal(t, "spotify", apps.Spotify.String())
}
