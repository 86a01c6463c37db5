package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"github.com/hybridge/blog-api/internal/domain/entity"
	repo "github.com/hybridge/blog-api/internal/domain/repository"
	"github.com/hybridge/blog-api/pkg/helpers"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password;
	// callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
)

// dummyPasswordHash is verified when the email is unknown so that login
// takes the same time whether or not the account exists. It is a bcrypt
// digest of a throwaway string, not a credential.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService orchestrates signup, login, and protected-access resolution
// over the credential store, the password hasher, and the token manager.
type AuthService struct {
	Repo   repo.UserRepository
	Hasher helpers.PasswordHasher
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(r repo.UserRepository, h helpers.PasswordHasher, jwtm *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Repo: r, Hasher: h, JWT: jwtm, Logger: logger}
}

// Signup hashes the password and creates the user. The plaintext password
// never reaches the repository. Returns repo.ErrEmailTaken when a live
// account already holds the email.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (*entity.User, error) {
	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &entity.User{Name: name, Email: email, PasswordHash: hash}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrEmailTaken) {
			return nil, err
		}
		s.Logger.WithError(err).Error("create user failed")
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"user_id": u.ID}).Info("user signed up")
	return u, nil
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password return the same error; a dummy digest is verified in the
// unknown-email case to keep response timing uniform.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	digest := dummyPasswordHash
	var user *entity.User

	u, err := s.Repo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		user = u
		digest = u.PasswordHash
	case errors.Is(err, repo.ErrNotFound):
		// fall through with the dummy digest
	default:
		s.Logger.WithError(err).Error("lookup user by email failed")
		return "", time.Time{}, err
	}

	ok, verr := s.Hasher.Verify(password, digest)
	if verr != nil {
		// Malformed stored digest; deny rather than reveal anything.
		s.Logger.WithError(verr).Warn("password digest verification failed")
		return "", time.Time{}, ErrInvalidCredentials
	}
	if user == nil || !ok {
		return "", time.Time{}, ErrInvalidCredentials
	}

	token, exp, err := s.JWT.Generate(user.ID)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", user.ID).Error("generate token failed")
		return "", time.Time{}, err
	}
	return token, exp, nil
}

// Authorize resolves a presented bearer token to a live user. Every
// failure mode (malformed, forged, expired, subject gone) denies access;
// the causes are distinguished only in logs.
func (s *AuthService) Authorize(ctx context.Context, token string) (*entity.User, error) {
	claims, err := s.JWT.Parse(token)
	if err != nil {
		s.Logger.WithField("reason", tokenFailureReason(err)).Debug("token rejected")
		return nil, ErrInvalidCredentials
	}
	u, err := s.Repo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			// Soft-deleted or removed after issuance.
			s.Logger.WithField("user_id", claims.UserID).Debug("token subject no longer exists")
			return nil, ErrInvalidCredentials
		}
		s.Logger.WithError(err).Error("lookup user by id failed")
		return nil, err
	}
	return u, nil
}

// GetProfile returns the live user for a previously authorized id.
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func tokenFailureReason(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "expired"
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "signature"
	case errors.Is(err, jwt.ErrTokenMalformed):
		return "malformed"
	default:
		return "invalid"
	}
}
