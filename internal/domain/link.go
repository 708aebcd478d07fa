package domain

import "time"

// Link is one shortening of an original destination. The redirect path
// treats records as read-only; creation happens once through the API and
// deactivation is an administrative action.
type Link struct {
	ID          uint
	Slug        string
	OriginalURL string
	// Operator-supplied overrides for platform-specific native targets.
	// Empty means "let the synthesizer compute one".
	AndroidURL  string
	IOSURL      string
	FallbackURL string
	IsActive    bool
	ExpiresAt   *time.Time
	CreatedAt   time.Time
}

// Fallback returns the explicit browser fallback, defaulting to the
// original URL when none was supplied.
func (l Link) Fallback() string {
	if l.FallbackURL != "" {
		return l.FallbackURL
	}
	return l.OriginalURL
}

// Expired reports whether the link is past its expiry at the given instant.
// Links without an expiry never expire.
func (l Link) Expired(now time.Time) bool {
	return l.ExpiresAt != nil && now.After(*l.ExpiresAt)
}

// ClickEvent is one observed attempt to follow a link. Write-only from the
// redirect engine's perspective.
type ClickEvent struct {
	LinkID    uint
	ClickedAt time.Time
	IPAddress string
	UserAgent string
	Referrer  string
	Device    string
	App       string
}

type CreateLinkRequest struct {
	URL         string     `json:"url" validate:"required,url"`
	Slug        string     `json:"slug,omitempty"`
	AndroidURL  string     `json:"android_url,omitempty"`
	IOSURL      string     `json:"ios_url,omitempty"`
	FallbackURL string     `json:"fallback_url,omitempty"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

type LinkResponse struct {
	Slug        string     `json:"slug"`
	ShortURL    string     `json:"short_url"`
	OriginalURL string     `json:"original_url"`
	IsActive    bool       `json:"is_active"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
