package validation

import (
	"net/url"
	"regexp"
	"strings"
)

var blockedProtocols = map[string]bool{
	"javascript": true,
	"data":       true,
	"file":       true,
	"vbscript":   true,
	"about":      true,
	"blob":       true,
}

var allowedProtocols = map[string]bool{
	"http":  true,
	"https": true,
}

var slugPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// URLValidator gates link creation. Destination URLs are validated here
// exactly once; the redirect path trusts already-persisted records.
type URLValidator struct {
	maxLength       int
	maxSlugLength   int
	allowPrivateIPs bool
	ipValidator     *IPValidator
}

func NewURLValidator(maxLength, maxSlugLength int, allowPrivateIPs bool) *URLValidator {
	return &URLValidator{
		maxLength:       maxLength,
		maxSlugLength:   maxSlugLength,
		allowPrivateIPs: allowPrivateIPs,
		ipValidator:     NewIPValidator(),
	}
}

func (v *URLValidator) ValidateURL(rawURL string) error {
	if strings.TrimSpace(rawURL) == "" {
		return ErrEmptyURL
	}

	if len(rawURL) > v.maxLength {
		return ErrURLTooLong
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ErrInvalidURLFormat
	}

	scheme := strings.ToLower(parsed.Scheme)
	if blockedProtocols[scheme] {
		return ErrUnsafeProtocol
	}
	if !allowedProtocols[scheme] {
		return ErrInvalidURLFormat
	}

	if parsed.Host == "" {
		return ErrInvalidURLFormat
	}

	if !v.allowPrivateIPs {
		if err := v.ipValidator.ValidateHost(parsed.Host); err != nil {
			return err
		}
	}

	return nil
}

// ValidateSlug checks an operator-supplied custom slug. An empty slug is
// fine: it means the service generates one.
func (v *URLValidator) ValidateSlug(slug string) error {
	if slug == "" {
		return nil
	}

	if len(slug) > v.maxSlugLength {
		return ErrSlugTooLong
	}

	if !slugPattern.MatchString(slug) {
		return ErrInvalidSlug
	}

	return nil
}
