// Package auth gives the caller layer a typed encoding for session claims:
// signed tokens carrying the account identifier and the login time. The
// vault itself stores no sessions and only judges claim freshness, so the
// token is purely the caller's way of holding a claim between requests.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/UdayAnalyst/visual-news/internal/vault"
)

// Claims extends the registered JWT claims with the account identifier.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
}

// IssueSessionToken signs an HS256 token for userID, stamped with the
// current time. The expiry mirrors vault.MaxSessionAge for the benefit of
// generic JWT middleware, but freshness decisions belong to the vault.
func IssueSessionToken(userID string, secretKey []byte, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(vault.MaxSessionAge)),
		},
		UserID: userID,
	})

	signed, err := token.SignedString(secretKey)
	if err != nil {
		return "", fmt.Errorf("signing session token: %w", err)
	}

	return signed, nil
}

// ParseSessionToken verifies tokenString and converts it back into the
// plain claim the vault understands. Tampered or mis-signed tokens are
// rejected here; stale-but-genuine tokens are left for the vault to judge,
// so claim validation (including exp) is deliberately skipped.
func ParseSessionToken(tokenString string, secretKey []byte) (vault.SessionClaim, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secretKey, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil {
		return vault.SessionClaim{}, fmt.Errorf("parsing session token: %w", err)
	}
	if !token.Valid {
		return vault.SessionClaim{}, fmt.Errorf("invalid session token")
	}

	claim := vault.SessionClaim{UserID: claims.UserID}
	if claims.IssuedAt != nil {
		claim.CreatedAt = claims.IssuedAt.Time.UTC().Format(time.RFC3339)
	}
	return claim, nil
}
