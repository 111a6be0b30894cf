package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/aroma/internal/client/services"
	"github.com/dmitrijs2005/aroma/internal/common"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

// Login prompts for a username and password and opens a session on success.
// The password is wiped before returning. Wrong credentials are reported
// with a single generic message.
func (a *App) Login(ctx context.Context) error {
	if a.user != nil {
		a.println("Ești deja autentificat ca " + a.user.Username + ".")
		return nil
	}

	userName, err := getSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		if errors.Is(err, ErrEmptyPassword) {
			a.notify(ctx, services.LevelError, "Username sau parolă incorectă!")
		}
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.authService.Login(ctx, userName, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			a.notify(ctx, services.LevelError, "Username sau parolă incorectă!")
		} else {
			a.log.Error(ctx, "login failed", "error", err)
		}
		return err
	}

	a.user = &u
	a.println("Bun venit, " + u.Username + "!")
	return nil
}

// Logout ends the session. Logging out twice is harmless.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		a.log.Error(ctx, "logout failed", "error", err)
		return err
	}
	a.user = nil
	a.println("Te-ai deconectat.")
	return nil
}
