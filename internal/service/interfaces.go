package service

//go:generate go tool mockery

import (
	"context"

	"deeplinker/internal/domain"
)

type Repository interface {
	NextID(ctx context.Context) (uint, error)
	Create(ctx context.Context, link domain.Link) error
	FindBySlug(ctx context.Context, slug string) (domain.Link, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
}

type Cache interface {
	Get(slug string) (domain.Link, bool)
	Set(link domain.Link)
}

type CodeGenerator interface {
	Generate(id uint) (string, error)
}
