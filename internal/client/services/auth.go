// Package services contains the application services of the Aroma client.
// This file defines the session service: default credential seeding, login,
// logout and the single active session slot.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/aroma/internal/client/models"
	"github.com/dmitrijs2005/aroma/internal/client/storage"
	"github.com/dmitrijs2005/aroma/internal/logging"
)

// ErrInvalidCredentials is returned for any failed login. Unknown usernames
// and wrong passwords are deliberately reported the same way.
var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService defines session operations for the CLI.
//
// Contract:
//   - EnsureDefaultCredentials: seed the two built-in accounts into an empty store.
//   - ActiveSession: return the logged-in user, or nil.
//   - Login: exact match on username and password; on success the user becomes
//     the active session, on failure state is left untouched.
//   - Logout: drop the active session.
type AuthService interface {
	EnsureDefaultCredentials(ctx context.Context) error
	ActiveSession(ctx context.Context) (*models.User, error)
	Login(ctx context.Context, username string, password []byte) (models.User, error)
	Logout(ctx context.Context) error
}

type authService struct {
	store *storage.Store
	log   logging.Logger
}

// NewAuthService constructs an AuthService over the given store.
func NewAuthService(store *storage.Store, log logging.Logger) AuthService {
	return &authService{store: store, log: log.With("component", "auth")}
}

// EnsureDefaultCredentials writes models.DefaultUsers when no credential list
// exists. An existing list, even an empty one, is kept as is.
func (a *authService) EnsureDefaultCredentials(ctx context.Context) error {
	seeded := false
	_, err := storage.UpdateJSON(ctx, a.store, storage.KeyUsers, func(cur []models.User, found bool) ([]models.User, error) {
		if found {
			return cur, nil
		}
		seeded = true
		return models.DefaultUsers(), nil
	})
	if err != nil {
		return fmt.Errorf("seed credentials: %w", err)
	}
	if seeded {
		a.log.Info(ctx, "seeded default credentials")
	}
	return nil
}

func (a *authService) ActiveSession(ctx context.Context) (*models.User, error) {
	var u models.User
	found, err := a.store.GetJSON(ctx, storage.KeyCurrentUser, &u)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &u, nil
}

func (a *authService) Login(ctx context.Context, username string, password []byte) (models.User, error) {
	var users []models.User
	if _, err := a.store.GetJSON(ctx, storage.KeyUsers, &users); err != nil {
		return models.User{}, fmt.Errorf("read credentials: %w", err)
	}

	for _, u := range users {
		if u.Matches(username, password) {
			if err := a.store.SetJSON(ctx, storage.KeyCurrentUser, u); err != nil {
				return models.User{}, fmt.Errorf("write session: %w", err)
			}
			a.log.Info(ctx, "user logged in", "user", u.Username)
			return u, nil
		}
	}

	a.log.Warn(ctx, "login rejected", "user", username)
	return models.User{}, ErrInvalidCredentials
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.Remove(ctx, storage.KeyCurrentUser); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
