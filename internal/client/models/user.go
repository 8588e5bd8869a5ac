// Package models defines client-side data shapes for the Hubbub API:
// users, events, questions, and the form/wire conversions between them.
package models

// User is an authenticated identity: the principal decoded from the
// credential, and the profile resource returned by the API.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Bio      string `json:"bio,omitempty"`
}

// SignUpForm is the sign-up request body.
type SignUpForm struct {
	Username             string `json:"username"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
	Bio                  string `json:"bio,omitempty"`
}

// SignInForm is the sign-in request body.
type SignInForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
