// Package models defines the client-side data models exchanged with the
// records backend and kept in the local session.
package models

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// UserProfile is the user as returned by the backend and cached in the
// session store under the "user" key.
type UserProfile struct {
	ID        int64  `json:"id,omitempty"`
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Email     string `json:"email"`
	// CPF is 11 digits with no punctuation.
	CPF string `json:"cpf,omitempty"`
	// Phone is "+" followed by digits.
	Phone string `json:"phone,omitempty"`
}

// Initials returns the upper-cased first letters of the first and last
// names, e.g. "AS" for Ana Souza. Missing names contribute nothing.
func (u *UserProfile) Initials() string {
	if u == nil {
		return ""
	}
	return firstUpper(u.FirstName) + firstUpper(u.LastName)
}

func firstUpper(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	r, _ := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r))
}

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the login response body.
type LoginResult struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

// UserPayload is the body of the register and update-profile requests.
type UserPayload struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	CPF       string `json:"cpf,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// PasswordChange is the body of the update-password request.
type PasswordChange struct {
	Password           string `json:"password"`
	NewPassword        string `json:"newPassword"`
	ConfirmNewPassword string `json:"confirmNewPassword"`
}
