package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("abcd123!")
	require.NoError(t, err)

	assert.NotEqual(t, "abcd123!", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))
	assert.NoError(t, h.Compare(hash, "abcd123!"))
	assert.ErrorIs(t, h.Compare(hash, "abcd123?"), bcrypt.ErrMismatchedHashAndPassword)

	other, err := h.Hash("abcd123!")
	require.NoError(t, err)
	assert.NotEqual(t, hash, other, "hashes are salted")
}

func TestNewBcryptHasherClampsCost(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(bcrypt.MaxCost+1).cost)
	assert.Equal(t, 12, NewBcryptHasher(12).cost)
}
