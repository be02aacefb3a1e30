package cli

import (
	"context"
	"fmt"

	"github.com/UdayAnalyst/visual-news/internal/auth"
)

// SessionStatus checks whether the held session token still represents a
// fresh claim. A session cannot be revoked server-side; once it ages past
// the vault's limit the only remedy is logging in again.
func (a *App) SessionStatus(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("No session: not logged in")
		return nil
	}

	claim, err := auth.ParseSessionToken(a.sessionToken, []byte(a.config.SecretKey))
	if err != nil {
		fmt.Println("Session token unreadable, log in again")
		return nil
	}

	if a.vault.SessionIsFresh(claim) {
		fmt.Printf("Session fresh (user %s, since %s)\n", claim.UserID, claim.CreatedAt)
	} else {
		fmt.Println("Session expired, log in again")
	}
	return nil
}
