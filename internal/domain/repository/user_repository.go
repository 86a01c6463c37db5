package repository

import (
	"context"

	"github.com/hybridge/blog-api/internal/domain/entity"
)

// UserRepository is the credential store. All lookups used for
// authentication exclude soft-deleted rows.
type UserRepository interface {
	// Create persists a new user and fills in ID and timestamps.
	// Returns ErrEmailTaken when a live user already holds the email.
	Create(ctx context.Context, u *entity.User) error

	// GetByEmail looks up a live user by login email.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// GetByID looks up a live user by primary identity.
	GetByID(ctx context.Context, id int64) (*entity.User, error)

	// SoftDelete marks the user inactive without erasing the row.
	SoftDelete(ctx context.Context, id int64) error
}
