package cli

import (
	"context"
	"fmt"

	"github.com/hubbub-app/hubbub-cli/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in
// tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for the sign-up form and creates an account. Field-level
// validation errors from the server are printed next to their field names.
func (a *App) Register(ctx context.Context) error {
	form, err := a.promptSignUpForm()
	if err != nil {
		return err
	}

	user, err := a.auth.SignUp(ctx, form)
	if err != nil {
		a.log.Warn(ctx, "sign up failed", "error", err)
		a.printAPIError(err, "Failed to sign up. Please try again later.")
		return nil
	}

	fmt.Fprintf(a.out, "Welcome, %s! You can now log in.\n", user.Username)
	return nil
}

// Login prompts for credentials, authenticates, and reports the identity
// now proven by the stored credential.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	principal, err := a.auth.SignIn(ctx, username, password)
	if err != nil {
		a.log.Warn(ctx, "sign in failed", "error", err)
		a.printAPIError(err, "Sign in unsuccessful.")
		return nil
	}
	if principal == nil {
		fmt.Fprintln(a.out, "Sign in unsuccessful.")
		return nil
	}

	fmt.Fprintf(a.out, "Signed in as %s.\n", principal.Username)
	return nil
}

// Logout discards the stored credential.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.SignOut(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}

// Profile shows the authenticated profile.
func (a *App) Profile(ctx context.Context) error {
	if !a.isSignedIn(ctx) {
		fmt.Fprintln(a.out, "Sign in to see your profile.")
		return nil
	}

	user, err := a.auth.Profile(ctx)
	if err != nil {
		a.log.Warn(ctx, "profile fetch failed", "error", err)
		fmt.Fprintln(a.out, "Failed to fetch data. Please try again later.")
		return nil
	}

	fmt.Fprintf(a.out, "%s <%s>\n", user.Username, user.Email)
	if user.Bio != "" {
		fmt.Fprintln(a.out, user.Bio)
	}
	return nil
}

func (a *App) promptSignUpForm() (models.SignUpForm, error) {
	var form models.SignUpForm
	var err error

	if form.Username, err = getSimpleText(a.reader, "Enter username", a.out); err != nil {
		return form, err
	}
	if form.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return form, err
	}
	if form.Password, err = getPassword(a.out); err != nil {
		return form, err
	}
	fmt.Fprintln(a.out, "Confirm password.")
	if form.PasswordConfirmation, err = getPassword(a.out); err != nil {
		return form, err
	}
	if form.Bio, err = getSimpleText(a.reader, "Enter bio (optional)", a.out); err != nil {
		return form, err
	}
	return form, nil
}
