// Package vault implements the credential and session core of the
// visual-news application: the encrypted-at-rest user store, password
// hashing and verification, registration input validation, brute-force
// lockout, and session-claim freshness checks.
//
// The vault is the single owner of user records. The surrounding web layer
// (route handlers, news pages, admin export) talks to it through plain Go
// values and treats every failure as an error value; nothing in this
// package panics across the boundary.
package vault

import "time"

// Topic identifiers users can subscribe to. The vocabulary is fixed;
// preferences outside it are rejected wholesale.
var validTopics = map[string]struct{}{
	"inflation":   {},
	"technology":  {},
	"politics":    {},
	"health":      {},
	"business":    {},
	"science":     {},
	"sports":      {},
	"environment": {},
}

// ValidTopic reports whether t belongs to the fixed topic vocabulary.
func ValidTopic(t string) bool {
	_, ok := validTopics[t]
	return ok
}

// Topics returns the fixed topic vocabulary in stable order.
func Topics() []string {
	return []string{
		"inflation", "technology", "politics", "health",
		"business", "science", "sports", "environment",
	}
}

// UserRecord is a stored account. Records are keyed by an opaque random
// identifier and persisted only inside the encrypted store blob; the
// password is kept as an irreversible bcrypt hash and must never be logged.
type UserRecord struct {
	Name          string         `json:"name"`
	Phone         string         `json:"phone"`
	PasswordHash  string         `json:"password_hash"`
	Preferences   []string       `json:"preferences"`
	CreatedAt     time.Time      `json:"created_at"`
	LastLogin     *time.Time     `json:"last_login"`
	LoginAttempts int            `json:"login_attempts"`
	LockedUntil   *time.Time     `json:"locked_until"`
	LikedTopics   map[string]int `json:"liked_topics"`
	PassedTopics  map[string]int `json:"passed_topics"`
}

// SessionClaim is the caller-held session state: who logged in and when.
// The vault keeps no server-side session table; it can judge whether a
// presented claim is still fresh, but cannot revoke one early. CreatedAt is
// an RFC 3339 timestamp; an unparsable value makes the claim stale.
type SessionClaim struct {
	UserID    string `json:"user_id"`
	CreatedAt string `json:"created_at"`
}
