package vault

import "time"

// MaxSessionAge is how long a session claim stays fresh after login.
const MaxSessionAge = 24 * time.Hour

// SessionIsFresh judges whether a caller-held session claim is still
// usable. Both fields must be present, created_at must parse as RFC 3339,
// and the claim must be no older than MaxSessionAge. The check is a pure
// function of the claim: the vault stores no sessions server-side, so a
// session cannot be revoked before it ages out — the caller can only
// discard the claim.
func (v *Vault) SessionIsFresh(claim SessionClaim) bool {
	if claim.UserID == "" || claim.CreatedAt == "" {
		return false
	}
	created, err := time.Parse(time.RFC3339, claim.CreatedAt)
	if err != nil {
		return false
	}
	return v.now().Sub(created) <= MaxSessionAge
}
