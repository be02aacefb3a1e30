package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/UdayAnalyst/visual-news/internal/auth"
	"github.com/UdayAnalyst/visual-news/internal/common"
	"github.com/UdayAnalyst/visual-news/internal/vault"
)

// getSimpleText, getPassword and getTopics are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getTopics = GetTopics

// Register prompts for the account details and creates the account through
// the vault. The password byte slice is wiped before returning. Validation
// failures are reported with the vault's own reason strings.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter display name", os.Stdout)
	if err != nil {
		return err
	}

	phone, err := getSimpleText(a.reader, "Enter phone number", os.Stdout)
	if err != nil {
		return err
	}

	topics, err := getTopics(a.reader, "Pick your topics", vault.Topics(), os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	userID, err := a.vault.CreateAccount(ctx, name, phone, string(password), topics)
	if err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	fmt.Printf("Account created. Your user id: %s\n", userID)
	return nil
}

// Login prompts for phone and password, authenticates against the vault,
// and on success keeps a signed session token in memory. The token is the
// only session state there is; "logout" simply discards it.
func (a *App) Login(ctx context.Context) error {
	phone, err := getSimpleText(a.reader, "Enter phone number", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	userID, record, err := a.vault.Authenticate(ctx, phone, string(password))
	if err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	token, err := auth.IssueSessionToken(userID, []byte(a.config.SecretKey), time.Now())
	if err != nil {
		log.Printf("Could not issue session token: %s", err.Error())
		return err
	}

	a.userID = userID
	a.userName = record.Name
	a.sessionToken = token

	log.Printf("Login successful")
	return nil
}

// Logout discards the held session token. The vault keeps no server-side
// session state, so this is all a logout can do.
func (a *App) Logout(ctx context.Context) error {
	a.userID = ""
	a.userName = ""
	a.sessionToken = ""
	return nil
}
