package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// ListUsers prints every stored account for the operator: identifier,
// display fields, preference topics, lockout state and engagement totals.
// Password hashes are never printed.
func (a *App) ListUsers(ctx context.Context) error {
	users := a.vault.Users(ctx)
	if len(users) == 0 {
		fmt.Println("No accounts")
		return nil
	}

	ids := make([]string, 0, len(users))
	for id := range users {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		rec := users[id]

		lastLogin := "never"
		if rec.LastLogin != nil {
			lastLogin = rec.LastLogin.Format("2006-01-02 15:04")
		}

		status := ""
		if rec.LockedUntil != nil {
			status = fmt.Sprintf(" [locked until %s]", rec.LockedUntil.Format("15:04"))
		}

		liked, passed := 0, 0
		for _, n := range rec.LikedTopics {
			liked += n
		}
		for _, n := range rec.PassedTopics {
			passed += n
		}

		fmt.Printf("%s  %s (%s)%s\n", id, rec.Name, rec.Phone, status)
		fmt.Printf("    topics: %s\n", strings.Join(rec.Preferences, ", "))
		fmt.Printf("    last login: %s, liked: %d, passed: %d\n", lastLogin, liked, passed)
	}

	return nil
}
