package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"meuapp/config"
	"meuapp/internal/domain/service"
	"meuapp/internal/errors"
)

const sessionTokenType = "session"

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Session),
		now:    time.Now,
	}, nil
}

// GenerateSessionToken creates a signed HS256 token identifying the session and its credential.
func (s *jwtService) GenerateSessionToken(credentialID uint, sessionID uuid.UUID, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":  strconv.FormatUint(uint64(credentialID), 10), // Subject (who the token is for)
		"sid":  sessionID.String(),                           // Server-side session record
		"iat":  s.now().Unix(),                               // Issued At
		"exp":  expiresAt.Unix(),                             // Expiration Time
		"type": sessionTokenType,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign session token")
	}

	return signed, nil
}

// ValidateSessionToken checks the signature, expiry and shape of a session token.
func (s *jwtService) ValidateSessionToken(tokenString string) (*service.SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse session token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid session token claims")
	}

	if tokenType, _ := mapClaims["type"].(string); tokenType != sessionTokenType {
		return nil, errors.Errorf("unexpected token type %q", tokenType)
	}

	subject, err := mapClaims.GetSubject()
	if err != nil {
		return nil, errors.Wrap(err, "read subject")
	}
	credentialID, err := strconv.ParseUint(subject, 10, 64)
	if err != nil || credentialID == 0 {
		return nil, errors.Errorf("invalid subject %q", subject)
	}

	rawSID, _ := mapClaims["sid"].(string)
	sessionID, err := uuid.Parse(rawSID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid session id")
	}

	expiresAt, err := mapClaims.GetExpirationTime()
	if err != nil {
		return nil, errors.Wrap(err, "read expiration")
	}
	issuedAt, err := mapClaims.GetIssuedAt()
	if err != nil {
		return nil, errors.Wrap(err, "read issued at")
	}

	return &service.SessionClaims{
		CredentialID: uint(credentialID),
		SessionID:    sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ID:        rawSID,
			ExpiresAt: expiresAt,
			IssuedAt:  issuedAt,
		},
	}, nil
}
