package auth

import (
	"strings"
	"testing"

	"meuapp/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	password := "secret1"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)
	assert.NotContains(t, hash, password)

	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("secret1")
	require.NoError(t, err)
	second, err := hasher.Hash("secret1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("secret1", first))
	assert.True(t, hasher.Check("secret1", second))
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)
	password := "secret1"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
	}{
		{name: "correct password", password: password, hash: hash, want: true},
		{name: "wrong password", password: "secret2", hash: hash, want: false},
		{name: "case differs", password: "Secret1", hash: hash, want: false},
		{name: "empty password", password: "", hash: hash, want: false},
		{name: "malformed hash", password: password, hash: "invalid_hash", want: false},
		{name: "empty hash", password: password, hash: "", want: false},
		{name: "plaintext as hash", password: password, hash: password, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasher.Check(tt.password, tt.hash))
		})
	}
}

func TestBcryptHasher_CheckDistinctPasswords(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	pairs := [][2]string{
		{"a", "b"},
		{"secret1", "secret1 "},
		{"pässwörd", "passwort"},
		{"12345678", "123456789"},
	}

	for _, p := range pairs {
		hash, err := hasher.Hash(p[0])
		require.NoError(t, err)
		assert.False(t, hasher.Check(p[1], hash), "%q must not verify against hash of %q", p[1], p[0])
	}
}

func TestBcryptHasher_TooLong(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	_, err := hasher.Hash(strings.Repeat("a", 73))
	require.Error(t, err)
	assert.True(t, errors.Is(err, bcrypt.ErrPasswordTooLong))
}

func TestBcryptHasher_CheckRejectsInputPastLimit(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)
	p1 := strings.Repeat("a", 72)

	hash, err := hasher.Hash(p1)
	require.NoError(t, err)

	assert.True(t, hasher.Check(p1, hash))
	assert.False(t, hasher.Check(p1+"x", hash), "bytes past 72 must not be ignored")
	assert.False(t, hasher.Check(p1+"-different-suffix", hash))
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	customCost := 6 // Lower cost for faster testing
	hasher := NewBcryptHasherWithCost(customCost)

	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, customCost, cost)
}

func TestNewBcryptHasher_FromConfig(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 5}}

	hash, err := NewBcryptHasher(cfg).Hash("secret1")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)

	// Out of range costs are clamped.
	hash, err = NewBcryptHasherWithCost(1).Hash("secret1")
	require.NoError(t, err)
	cost, err = bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}
