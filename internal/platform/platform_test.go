package platform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"deeplinker/internal/platform"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		ua   string
		want platform.Platform
	}{
		{
			name: "android phone",
			ua:   "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Mobile Safari/537.36",
			want: platform.Android,
		},
		{
			name: "iphone",
			ua:   "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1",
			want: platform.IOS,
		},
		{
			name: "ipad",
			ua:   "Mozilla/5.0 (iPad; CPU OS 16_6 like Mac OS X) AppleWebKit/605.1.15",
			want: platform.IOS,
		},
		{
			name: "ipod",
			ua:   "Mozilla/5.0 (iPod touch; CPU iPhone OS 15_0 like Mac OS X)",
			want: platform.IOS,
		},
		{
			name: "desktop chrome",
			ua:   "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Chrome/120.0 Safari/537.36",
			want: platform.Other,
		},
		{
			name: "desktop mac",
			ua:   "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15",
			want: platform.Other,
		},
		{
			name: "empty user agent",
			ua:   "",
			want: platform.Other,
		},
		{
			name: "case insensitive",
			ua:   "MOZILLA/5.0 (LINUX; ANDROID 13)",
			want: platform.Android,
		},
		{
			// Both markers never co-occur in real traffic; android wins
			// as the documented tie-break.
			name: "pathological both markers",
			ua:   "Something Android iPhone",
			want: platform.Android,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, platform.Detect(tt.ua))
		})
	}
}

func TestPlatform_String(t *testing.T) {
	assert.Equal(t, "android", platform.Android.String())
	assert.Equal(t, "ios", platform.IOS.String())
	assert.Equal(t, "other", platform.Other.String())
}
