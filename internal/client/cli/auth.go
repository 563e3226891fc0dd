package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/daynu/herejpg/internal/client/api"
	"github.com/daynu/herejpg/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a name, an email and a password and attempts to
// create a new account. On success it prints a confirmation; the account is
// not logged in automatically. The password byte slice is wiped before
// returning.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.client.Register(ctx, name, email, string(password)); err != nil {
		log.Printf("Registration unsuccessful: %s", err.Error())
		return err
	}

	fmt.Println("Success! You can log in now.")
	return nil
}

// Login prompts for credentials and authenticates against the server.
//
// On success the session cookie is stored in the client's jar and the
// viewer's identity is fetched once and cached on the App; the photo list
// is reloaded so ownership controls reflect the new viewer. The password
// is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.client.Login(ctx, email, string(password)); err != nil {
		if errors.Is(err, api.ErrNotFound) {
			log.Printf("No account with that email")
		} else {
			log.Printf("Login unsuccessful: %s", err.Error())
		}
		return err
	}

	identity, err := a.client.CurrentUser(ctx)
	if err != nil {
		log.Printf("Could not fetch identity: %s", err.Error())
		return err
	}
	a.identity = identity
	log.Printf("Login successful")

	if err := a.sync.Load(ctx); err != nil {
		log.Printf("could not reload photos: %s", err.Error())
	}
	return nil
}

// Logout clears the session on the server and drops the cached identity.
func (a *App) Logout(ctx context.Context) error {
	if err := a.client.Logout(ctx); err != nil {
		log.Printf("Logout unsuccessful: %s", err.Error())
		return err
	}
	a.identity = nil
	log.Printf("Logged out")
	return nil
}

// Whoami prints the cached identity, if any.
func (a *App) Whoami(ctx context.Context) error {
	if a.identity == nil {
		fmt.Println("Not logged in")
		return nil
	}
	fmt.Printf("%s <%s> (%s)\n", a.identity.Name, a.identity.ID, a.identity.Role)
	return nil
}
