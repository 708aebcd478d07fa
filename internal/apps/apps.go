// Package apps classifies destination URLs by the mobile application able
// to open them natively.
package apps

import (
	"net/url"
	"strings"
)

// ID identifies a supported destination app. The zero value is None.
type ID int

const (
	None ID = iota
	YouTube
	Instagram
	TikTok
	Twitter
	Facebook
	Spotify
	LinkedIn
)

func (id ID) String() string {
	switch id {
	case YouTube:
		return "youtube"
	case Instagram:
		return "instagram"
	case TikTok:
		return "tiktok"
	case Twitter:
		return "twitter"
	case Facebook:
		return "facebook"
	case Spotify:
		return "spotify"
	case LinkedIn:
		return "linkedin"
	default:
		return "none"
	}
}

type hostRule struct {
	marker string
	app    ID
	// exact restricts the rule to the marker domain itself or its
	// subdomains. Short alias domains need this: plain substring matching
	// would make "x.com" match netflix.com.
	exact bool
}

// Ordered host rules. First match wins; adding an app is one row here plus
// its synthesis rule. Substring matching makes www. and regional subdomains
// (m., de., etc.) match for free.
var hostRules = []hostRule{
	{marker: "youtube", app: YouTube},
	{marker: "youtu.be", app: YouTube, exact: true},
	{marker: "instagram", app: Instagram},
	{marker: "tiktok", app: TikTok},
	{marker: "twitter", app: Twitter},
	{marker: "x.com", app: Twitter, exact: true},
	{marker: "facebook", app: Facebook},
	{marker: "fb.com", app: Facebook, exact: true},
	{marker: "spotify", app: Spotify},
	{marker: "linkedin", app: LinkedIn},
}

// Classify returns the app a URL targets, or None for unrecognized hosts.
// Classification only looks at the hostname; the caller is expected to pass
// a URL that already passed creation-time validation.
func Classify(u *url.URL) ID {
	host := strings.ToLower(u.Hostname())
	for _, r := range hostRules {
		if r.matches(host) {
			return r.app
		}
	}
	return None
}

// ClassifyRaw is Classify for a raw URL string. Unparsable input yields None.
func ClassifyRaw(raw string) ID {
	u, err := url.Parse(raw)
	if err != nil {
		return None
	}
	return Classify(u)
}

func (r hostRule) matches(host string) bool {
	if r.exact {
		return host == r.marker || strings.HasSuffix(host, "."+r.marker)
	}
	return strings.Contains(host, r.marker)
}
