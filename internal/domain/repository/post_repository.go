package repository

import (
	"context"

	"github.com/hybridge/blog-api/internal/domain/entity"
)

// PostPatch carries optional field updates; nil means leave unchanged.
type PostPatch struct {
	Title    *string
	Content  *string
	AuthorID *int64
}

// PostRepository mirrors AuthorRepository for posts.
type PostRepository interface {
	Create(ctx context.Context, p *entity.Post) error
	List(ctx context.Context) ([]entity.Post, error)
	GetByID(ctx context.Context, id int64) (*entity.Post, error)
	Update(ctx context.Context, id int64, patch PostPatch) (*entity.Post, error)
	Delete(ctx context.Context, id int64) error
}
