// Package platform classifies requesting clients by mobile OS from their
// user-agent string.
package platform

import "strings"

// Platform is the requesting client's runtime platform. The zero value is
// Other, which is what a missing or unrecognized user agent resolves to.
type Platform int

const (
	Other Platform = iota
	Android
	IOS
)

func (p Platform) String() string {
	switch p {
	case Android:
		return "android"
	case IOS:
		return "ios"
	default:
		return "other"
	}
}

var iosMarkers = []string{"iphone", "ipad", "ipod"}

// Detect classifies a user-agent string. Android is checked first: the two
// marker sets are mutually exclusive in real traffic, and Android is the
// documented tie-break if a pathological UA carries both. An empty string
// (server-rendered request without headers) is Other.
func Detect(userAgent string) Platform {
	ua := strings.ToLower(userAgent)

	if strings.Contains(ua, "android") {
		return Android
	}
	for _, m := range iosMarkers {
		if strings.Contains(ua, m) {
			return IOS
		}
	}
	return Other
}
