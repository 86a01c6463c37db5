package application

import (
	"context"
	"sync"
	"testing"
	"time"

	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hybridge/blog-api/internal/domain/entity"
	repo "github.com/hybridge/blog-api/internal/domain/repository"
	"github.com/hybridge/blog-api/pkg/helpers"
)

// memUserRepo is an in-memory credential store. The mutex plays the role
// of the database's atomic uniqueness check.
type memUserRepo struct {
	mu    sync.Mutex
	seq   int64
	users map[int64]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[int64]*entity.User{}}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, ex := range r.users {
		if ex.Email == u.Email && ex.DeletedAt == nil {
			return repo.ErrEmailTaken
		}
	}
	r.seq++
	u.ID = r.seq
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email && u.DeletedAt == nil {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r *memUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok || u.DeletedAt != nil {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) SoftDelete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok || u.DeletedAt != nil {
		return repo.ErrNotFound
	}
	now := time.Now()
	u.DeletedAt = &now
	return nil
}

func newTestService(t *testing.T) (*AuthService, *memUserRepo) {
	t.Helper()
	logger, _ := logrustest.NewNullLogger()
	store := newMemUserRepo()
	svc := NewAuthService(store, helpers.NewBcryptHasher(), helpers.NewJWTManager("test-secret", time.Hour), logger)
	return svc, store
}

func TestAuthService_Signup(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	u, err := svc.Signup(ctx, "Ana", "a@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, "a@x.com", u.Email)
	assert.NotEqual(t, "secret1", u.PasswordHash)
	assert.NotContains(t, u.PasswordHash, "secret1")
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "Ana", "a@x.com", "secret1")
	require.NoError(t, err)

	_, err = svc.Signup(ctx, "Other", "a@x.com", "different")
	assert.ErrorIs(t, err, repo.ErrEmailTaken)
}

func TestAuthService_Signup_ConcurrentDuplicates(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	const n = 8
	errs := make(chan error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Signup(ctx, "Ana", "race@x.com", "secret1")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, repo.ErrEmailTaken)
		}
	}
	assert.Equal(t, 1, succeeded)
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	u, err := svc.Signup(ctx, "Ana", "a@x.com", "secret1")
	require.NoError(t, err)

	token, exp, err := svc.Login(ctx, "a@x.com", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.True(t, exp.After(time.Now()))

	resolved, err := svc.Authorize(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, resolved.ID)
}

func TestAuthService_Login_DenialIsUniform(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "Ana", "a@x.com", "secret1")
	require.NoError(t, err)

	_, _, wrongPwdErr := svc.Login(ctx, "a@x.com", "wrong-password")
	_, _, unknownErr := svc.Login(ctx, "nobody@x.com", "secret1")

	// Unknown email and wrong password must be indistinguishable.
	assert.ErrorIs(t, wrongPwdErr, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.Equal(t, wrongPwdErr.Error(), unknownErr.Error())
}

func TestAuthService_Login_CorruptedDigestDenies(t *testing.T) {
	t.Parallel()
	svc, store := newTestService(t)
	ctx := context.Background()

	u := &entity.User{Name: "Ana", Email: "a@x.com", PasswordHash: "not-a-bcrypt-digest"}
	require.NoError(t, store.Create(ctx, u))

	_, _, err := svc.Login(ctx, "a@x.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Authorize_TokenFailures(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)
	ctx := context.Background()

	u, err := svc.Signup(ctx, "Ana", "a@x.com", "secret1")
	require.NoError(t, err)

	t.Run("malformed", func(t *testing.T) {
		_, err := svc.Authorize(ctx, "garbage")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("expired", func(t *testing.T) {
		expired := helpers.NewJWTManager("test-secret", -time.Minute)
		token, _, err := expired.Generate(u.ID)
		require.NoError(t, err)
		_, err = svc.Authorize(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("forged", func(t *testing.T) {
		forged := helpers.NewJWTManager("attacker-secret", time.Hour)
		token, _, err := forged.Generate(u.ID)
		require.NoError(t, err)
		_, err = svc.Authorize(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_Authorize_SoftDeletedSubject(t *testing.T) {
	t.Parallel()
	svc, store := newTestService(t)
	ctx := context.Background()

	u, err := svc.Signup(ctx, "Ana", "a@x.com", "secret1")
	require.NoError(t, err)
	token, _, err := svc.Login(ctx, "a@x.com", "secret1")
	require.NoError(t, err)

	// Deleting the account invalidates outstanding tokens at resolution time.
	require.NoError(t, store.SoftDelete(ctx, u.ID))
	_, err = svc.Authorize(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_GetProfile_NotFound(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t)

	_, err := svc.GetProfile(context.Background(), 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
