// Package models defines the records persisted by the Aroma client and the
// pure state transitions over them.
package models

import "crypto/subtle"

// User is a credential record. Passwords are stored and compared verbatim.
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

// Matches reports an exact, case-sensitive match on both username and password.
func (u User) Matches(username string, password []byte) bool {
	return u.Username == username && subtle.ConstantTimeCompare([]byte(u.Password), password) == 1
}

// DefaultUsers is the credential list seeded into an empty store.
func DefaultUsers() []User {
	return []User{
		{Username: "admin", Password: "admin123", Email: "admin@cafeneaaroma.ro"},
		{Username: "user", Password: "user123", Email: "user@cafeneaaroma.ro"},
	}
}
