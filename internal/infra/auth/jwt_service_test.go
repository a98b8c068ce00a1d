package auth

import (
	"testing"
	"time"

	"meuapp/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(t *testing.T, secret string) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Session = secret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(t, "test_session_secret_key_very_long_for_testing")

	sessionID := uuid.New()
	expiresAt := time.Now().Add(time.Hour).Truncate(time.Second)

	token, err := svc.GenerateSessionToken(42, sessionID, expiresAt)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.CredentialID)
	assert.Equal(t, sessionID, claims.SessionID)
	assert.Equal(t, "42", claims.Subject)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, expiresAt.Equal(claims.ExpiresAt.Time))
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc := newTestJWTService(t, "test_session_secret")

	claims, err := svc.ValidateSessionToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse session token")
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer := newTestJWTService(t, "secret-one")
	verifier := newTestJWTService(t, "secret-two")

	token, err := issuer.GenerateSessionToken(1, uuid.New(), time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = verifier.ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestJWTService_Expired(t *testing.T) {
	svc := newTestJWTService(t, "test_session_secret")

	token, err := svc.GenerateSessionToken(1, uuid.New(), time.Now().Add(-time.Minute))
	require.NoError(t, err)

	_, err = svc.ValidateSessionToken(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_RejectsForeignTokens(t *testing.T) {
	secret := "test_session_secret"
	svc := newTestJWTService(t, secret)
	exp := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name   string
		method jwt.SigningMethod
		claims jwt.MapClaims
	}{
		{
			name:   "wrong type",
			method: jwt.SigningMethodHS256,
			claims: jwt.MapClaims{"sub": "1", "sid": uuid.NewString(), "exp": exp, "iat": exp, "type": "access"},
		},
		{
			name:   "missing sid",
			method: jwt.SigningMethodHS256,
			claims: jwt.MapClaims{"sub": "1", "exp": exp, "iat": exp, "type": "session"},
		},
		{
			name:   "non numeric subject",
			method: jwt.SigningMethodHS256,
			claims: jwt.MapClaims{"sub": "abc", "sid": uuid.NewString(), "exp": exp, "iat": exp, "type": "session"},
		},
		{
			name:   "missing expiry",
			method: jwt.SigningMethodHS256,
			claims: jwt.MapClaims{"sub": "1", "sid": uuid.NewString(), "type": "session"},
		},
		{
			name:   "other hmac algorithm",
			method: jwt.SigningMethodHS512,
			claims: jwt.MapClaims{"sub": "1", "sid": uuid.NewString(), "exp": exp, "iat": exp, "type": "session"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwt.NewWithClaims(tt.method, tt.claims).SignedString([]byte(secret))
			require.NoError(t, err)

			_, err = svc.ValidateSessionToken(token)
			assert.Error(t, err)
		})
	}
}
