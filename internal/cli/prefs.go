package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/UdayAnalyst/visual-news/internal/vault"
)

// Preferences shows the logged-in account's current topics and optionally
// replaces them. The vault applies whole-request semantics: one bad topic
// rejects the entire update.
func (a *App) Preferences(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Log in first")
		return nil
	}

	if rec, ok := a.vault.Users(ctx)[a.userID]; ok {
		fmt.Printf("Current topics: %s\n", strings.Join(rec.Preferences, ", "))
	}

	topics, err := getTopics(a.reader, "Choose new topics", vault.Topics(), os.Stdout)
	if err != nil {
		return err
	}

	if err := a.vault.UpdatePreferences(ctx, a.userID, topics); err != nil {
		log.Printf("Update unsuccessful: %s", err.Error())
		return err
	}

	fmt.Println("Preferences updated")
	return nil
}
