package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/hybridge/blog-api/internal/domain/entity"
	"github.com/hybridge/blog-api/internal/domain/repository"
)

// AuthorRepository implements repository.AuthorRepository on Postgres.
type AuthorRepository struct {
	db Querier
}

func NewAuthorRepository(db Querier) *AuthorRepository {
	return &AuthorRepository{db: db}
}

func (r *AuthorRepository) Create(ctx context.Context, a *entity.Author) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO authors (name)
		VALUES ($1)
		RETURNING id, created_at, updated_at
	`, a.Name)
	return row.Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

func (r *AuthorRepository) List(ctx context.Context) ([]entity.Author, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, created_at, updated_at
		FROM authors
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	authors := []entity.Author{}
	for rows.Next() {
		var a entity.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		authors = append(authors, a)
	}
	return authors, rows.Err()
}

func (r *AuthorRepository) GetByID(ctx context.Context, id int64) (*entity.Author, error) {
	a := &entity.Author{}
	row := r.db.QueryRow(ctx, `
		SELECT id, name, created_at, updated_at
		FROM authors
		WHERE id = $1
	`, id)
	if err := row.Scan(&a.ID, &a.Name, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *AuthorRepository) Update(ctx context.Context, id int64, patch repository.AuthorPatch) (*entity.Author, error) {
	a := &entity.Author{}
	row := r.db.QueryRow(ctx, `
		UPDATE authors
		SET name = COALESCE($2, name), updated_at = now()
		WHERE id = $1
		RETURNING id, name, created_at, updated_at
	`, id, patch.Name)
	if err := row.Scan(&a.ID, &a.Name, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return a, nil
}

func (r *AuthorRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.AuthorRepository = (*AuthorRepository)(nil)
