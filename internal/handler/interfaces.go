package handler

//go:generate go tool mockery

import (
	"context"

	"deeplinker/internal/domain"
	"deeplinker/internal/platform"
)

type LinkService interface {
	CreateLink(ctx context.Context, req domain.CreateLinkRequest) (domain.Link, error)
	GetLink(ctx context.Context, slug string) (domain.Link, error)
	Resolve(ctx context.Context, slug string) (domain.Link, error)
	TargetFor(link domain.Link, p platform.Platform) string
	ShortURL(slug string) string
}

type URLValidator interface {
	ValidateURL(url string) error
	ValidateSlug(slug string) error
}

type Tracker interface {
	Track(e domain.ClickEvent)
}
