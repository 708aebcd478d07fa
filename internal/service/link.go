package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"deeplinker/internal/apps"
	"deeplinker/internal/deeplink"
	"deeplinker/internal/domain"
	"deeplinker/internal/platform"
)

var (
	ErrLinkNotFound    = errors.New("link not found")
	ErrLinkDeactivated = errors.New("link deactivated")
	ErrLinkExpired     = errors.New("link expired")
	ErrSlugTaken       = errors.New("slug already in use")
)

type LinkService struct {
	repo      Repository
	shortener CodeGenerator
	cache     Cache
	baseURL   string
}

func NewLinkService(repo Repository, shortener CodeGenerator, cache Cache, baseURL string) *LinkService {
	return &LinkService{
		repo:      repo,
		shortener: shortener,
		cache:     cache,
		baseURL:   baseURL,
	}
}

func (s *LinkService) CreateLink(ctx context.Context, req domain.CreateLinkRequest) (domain.Link, error) {
	id, err := s.repo.NextID(ctx)
	if err != nil {
		return domain.Link{}, fmt.Errorf("failed to get next id: %w", err)
	}

	slug := req.Slug
	if slug == "" {
		slug, err = s.shortener.Generate(id)
		if err != nil {
			return domain.Link{}, fmt.Errorf("failed to generate slug: %w", err)
		}
	} else {
		taken, err := s.repo.SlugExists(ctx, slug)
		if err != nil {
			return domain.Link{}, fmt.Errorf("failed to check slug: %w", err)
		}
		if taken {
			return domain.Link{}, ErrSlugTaken
		}
	}

	link := domain.Link{
		ID:          id,
		Slug:        slug,
		OriginalURL: req.URL,
		AndroidURL:  req.AndroidURL,
		IOSURL:      req.IOSURL,
		FallbackURL: req.FallbackURL,
		IsActive:    true,
		ExpiresAt:   req.ExpiresAt,
		CreatedAt:   time.Now(),
	}

	if err := s.repo.Create(ctx, link); err != nil {
		return domain.Link{}, fmt.Errorf("failed to create link: %w", err)
	}

	s.cache.Set(link)

	return link, nil
}

// Resolve maps a slug to its link record, enforcing the activation and
// expiry invariants. Deactivation is checked before expiry: a link that is
// both disabled and past its expiry reports as deactivated. Read-only.
func (s *LinkService) Resolve(ctx context.Context, slug string) (domain.Link, error) {
	if link, found := s.cache.Get(slug); found {
		return link, s.checkResolvable(link)
	}

	link, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Link{}, ErrLinkNotFound
		}
		return domain.Link{}, fmt.Errorf("failed to find link: %w", err)
	}

	s.cache.Set(link)

	return link, s.checkResolvable(link)
}

func (s *LinkService) checkResolvable(link domain.Link) error {
	if !link.IsActive {
		return ErrLinkDeactivated
	}
	if link.Expired(time.Now()) {
		return ErrLinkExpired
	}
	return nil
}

// GetLink returns a link record without the activation/expiry gate; the
// metadata endpoint shows deactivated and expired links as they are.
func (s *LinkService) GetLink(ctx context.Context, slug string) (domain.Link, error) {
	link, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Link{}, ErrLinkNotFound
		}
		return domain.Link{}, fmt.Errorf("failed to find link: %w", err)
	}
	return link, nil
}

// TargetFor computes the navigation target for a resolved link on the given
// platform. Operator overrides win over synthesis; synthesis degrades to
// the browser fallback; non-mobile platforms get the fallback directly.
func (s *LinkService) TargetFor(link domain.Link, p platform.Platform) string {
	switch p {
	case platform.Android:
		if link.AndroidURL != "" {
			return link.AndroidURL
		}
	case platform.IOS:
		if link.IOSURL != "" {
			return link.IOSURL
		}
	default:
		return link.Fallback()
	}

	app := apps.ClassifyRaw(link.OriginalURL)
	if target := deeplink.Synthesize(link.OriginalURL, p, app); target != link.OriginalURL {
		return target
	}
	return link.Fallback()
}

// ShortURL builds the absolute short link for a slug.
func (s *LinkService) ShortURL(slug string) string {
	return fmt.Sprintf("%s/r/%s", s.baseURL, slug)
}
