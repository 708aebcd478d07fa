// Package deeplink synthesizes native-app URIs from destination URLs.
//
// Synthesis is best-effort by contract: every failure path (unknown app,
// desktop platform, unexpected URL shape) degrades to the original URL and
// never produces an error or a malformed URI.
package deeplink

import (
	"fmt"
	"net/url"
	"strings"

	"deeplinker/internal/apps"
	"deeplinker/internal/platform"
)

// rule ties one app's fragment extraction to its per-platform URI formats.
// The format strings are configuration data: each takes exactly one
// fragment and adding an app never touches the dispatch below.
type rule struct {
	extract func(*url.URL) (string, bool)
	formats map[platform.Platform]string
}

var rules = map[apps.ID]rule{
	apps.YouTube: {
		extract: youtubeVideoID,
		formats: map[platform.Platform]string{
			platform.IOS:     "youtube://watch?v=%s",
			platform.Android: "intent://www.youtube.com/watch?v=%s#Intent;package=com.google.android.youtube;scheme=https;end",
		},
	},
	apps.Instagram: {
		extract: instagramUsername,
		formats: map[platform.Platform]string{
			platform.IOS:     "instagram://user?username=%s",
			platform.Android: "intent://www.instagram.com/%s#Intent;package=com.instagram.android;scheme=https;end",
		},
	},
	apps.TikTok: {
		extract: tiktokUsername,
		formats: map[platform.Platform]string{
			platform.IOS:     "tiktok://user?username=%s",
			platform.Android: "intent://www.tiktok.com/@%s#Intent;package=com.zhiliaoapp.musically;scheme=https;end",
		},
	},
	apps.Twitter: {
		extract: twitterScreenName,
		formats: map[platform.Platform]string{
			platform.IOS:     "twitter://user?screen_name=%s",
			platform.Android: "intent://twitter.com/%s#Intent;package=com.twitter.android;scheme=https;end",
		},
	},
	apps.Facebook: {
		extract: escapedSelf,
		formats: map[platform.Platform]string{
			platform.IOS:     "fb://facewebmodal/f?href=%s",
			platform.Android: "fb://facewebmodal/f?href=%s",
		},
	},
	apps.Spotify: {
		extract: spotifyResource,
		formats: map[platform.Platform]string{
			platform.IOS:     "spotify:%s",
			platform.Android: "spotify:%s",
		},
	},
	apps.LinkedIn: {
		extract: linkedinProfile,
		formats: map[platform.Platform]string{
			platform.IOS:     "linkedin://in/%s",
			platform.Android: "linkedin://in/%s",
		},
	},
}

// Synthesize returns the best native URI for the given URL, app, and
// platform, or the URL unchanged when no synthesis rule applies.
func Synthesize(raw string, p platform.Platform, app apps.ID) string {
	if app == apps.None || p == platform.Other {
		return raw
	}

	r, ok := rules[app]
	if !ok {
		return raw
	}

	format, ok := r.formats[p]
	if !ok {
		return raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	fragment, ok := r.extract(u)
	if !ok {
		return raw
	}

	return fmt.Sprintf(format, fragment)
}

func pathSegments(u *url.URL) []string {
	var segs []string
	for _, s := range strings.Split(u.EscapedPath(), "/") {
		if s != "" {
			segs = append(segs, s)
		}
	}
	return segs
}

// youtubeVideoID handles watch URLs (?v=), the youtu.be alias, and
// /shorts/ and /embed/ paths.
func youtubeVideoID(u *url.URL) (string, bool) {
	if v := u.Query().Get("v"); v != "" {
		return v, true
	}

	segs := pathSegments(u)
	host := strings.ToLower(u.Hostname())

	if strings.HasSuffix(host, "youtu.be") && len(segs) > 0 {
		return segs[0], true
	}

	if len(segs) >= 2 && (segs[0] == "shorts" || segs[0] == "embed" || segs[0] == "live") {
		return segs[1], true
	}

	return "", false
}

var instagramReserved = map[string]bool{
	"p":        true,
	"reel":     true,
	"reels":    true,
	"tv":       true,
	"stories":  true,
	"explore":  true,
	"accounts": true,
}

func instagramUsername(u *url.URL) (string, bool) {
	segs := pathSegments(u)
	if len(segs) == 0 || instagramReserved[strings.ToLower(segs[0])] {
		return "", false
	}
	return segs[0], true
}

func tiktokUsername(u *url.URL) (string, bool) {
	segs := pathSegments(u)
	if len(segs) == 0 || !strings.HasPrefix(segs[0], "@") {
		return "", false
	}
	name := strings.TrimPrefix(segs[0], "@")
	if name == "" {
		return "", false
	}
	return name, true
}

var twitterReserved = map[string]bool{
	"i":        true,
	"home":     true,
	"search":   true,
	"explore":  true,
	"hashtag":  true,
	"intent":   true,
	"settings": true,
}

func twitterScreenName(u *url.URL) (string, bool) {
	segs := pathSegments(u)
	if len(segs) == 0 || twitterReserved[strings.ToLower(segs[0])] {
		return "", false
	}
	return segs[0], true
}

// escapedSelf passes the whole URL through, escaped for embedding in a
// query parameter.
func escapedSelf(u *url.URL) (string, bool) {
	return url.QueryEscape(u.String()), true
}

var spotifyKinds = map[string]bool{
	"track":    true,
	"album":    true,
	"artist":   true,
	"playlist": true,
	"show":     true,
	"episode":  true,
}

// spotifyResource turns /track/ID into the track:ID form the spotify:
// scheme expects.
func spotifyResource(u *url.URL) (string, bool) {
	segs := pathSegments(u)
	if len(segs) < 2 || !spotifyKinds[strings.ToLower(segs[0])] {
		return "", false
	}
	return segs[0] + ":" + segs[1], true
}

func linkedinProfile(u *url.URL) (string, bool) {
	segs := pathSegments(u)
	if len(segs) < 2 || strings.ToLower(segs[0]) != "in" {
		return "", false
	}
	return segs[1], true
}
