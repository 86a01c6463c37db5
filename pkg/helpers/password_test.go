package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher()

	digest, err := h.Hash("secret1")
	require.NoError(t, err)
	require.NotEmpty(t, digest)
	assert.NotContains(t, digest, "secret1")

	ok, err := h.Verify("secret1", digest)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBcryptHasher_WrongPasswordIsNotAnError(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher()
	digest, err := h.Hash("secret1")
	require.NoError(t, err)

	ok, err := h.Verify("wrong-password", digest)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_SaltedDigestsDiffer(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher()
	d1, err := h.Hash("secret1")
	require.NoError(t, err)
	d2, err := h.Hash("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, d1, d2)
}

func TestBcryptHasher_MalformedDigest(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher()
	ok, err := h.Verify("secret1", "corrupted-digest")
	require.Error(t, err)
	assert.False(t, ok)
}

func TestBcryptHasher_EmptyPassword(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher()
	_, err := h.Hash("")
	assert.ErrorIs(t, err, ErrEmptyPassword)
}
