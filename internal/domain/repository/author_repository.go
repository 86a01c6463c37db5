package repository

import (
	"context"

	"github.com/hybridge/blog-api/internal/domain/entity"
)

// AuthorPatch carries optional field updates; nil means leave unchanged.
type AuthorPatch struct {
	Name *string
}

// AuthorRepository is a plain resource repository: no domain logic beyond
// existence checks. Every id-based operation returns ErrNotFound when the
// id is absent.
type AuthorRepository interface {
	Create(ctx context.Context, a *entity.Author) error
	List(ctx context.Context) ([]entity.Author, error)
	GetByID(ctx context.Context, id int64) (*entity.Author, error)
	Update(ctx context.Context, id int64, patch AuthorPatch) (*entity.Author, error)
	Delete(ctx context.Context, id int64) error
}
