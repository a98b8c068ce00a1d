package util

import (
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"strings"
)

// HashToken returns the hex-encoded SHA-256 digest of a token.
// Only this digest is persisted, so a leaked sessions table cannot be replayed.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

// SafeRedirectPath returns next when it is a local absolute path, otherwise fallback.
// Anything that a browser could resolve to another origin is rejected: schemes,
// hosts, protocol-relative "//" prefixes and backslashes.
func SafeRedirectPath(next, fallback string) string {
	if next == "" || !strings.HasPrefix(next, "/") {
		return fallback
	}
	if strings.HasPrefix(next, "//") || strings.ContainsAny(next, "\\\r\n\t") {
		return fallback
	}

	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" || u.User != nil {
		return fallback
	}

	return next
}
