package cli

import (
	"context"

	"github.com/authdesk/authdesk/internal/forms"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials, feeds them to the login form controller,
// and submits. On success the controller navigates to the dashboard, which
// is then rendered. I/O errors are returned; a rejected login is not an
// error (the controller already notified the user).
func (a *App) Login(ctx context.Context) error {
	form := forms.NewLoginForm(a.store, a.notifier(), a, a.config.SubmitDelay, a.log)

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	form.SetEmail(email)

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	form.SetPassword(password)

	if !form.Submit(ctx) {
		printFieldErrors(a.out, form.Email, form.Password)
		return nil
	}

	if a.screen == forms.ScreenDashboard {
		return a.Dashboard(ctx)
	}
	return nil
}

// Register walks the four registration fields, rendering the strength meter
// after the password is entered, and submits the form. On success the
// controller navigates back to the login screen.
func (a *App) Register(ctx context.Context) error {
	form := forms.NewRegisterForm(a.store, a.notifier(), a, a.config.SubmitDelay, a.log)

	name, err := getSimpleText(a.reader, "Enter full name", a.out)
	if err != nil {
		return err
	}
	form.SetName(name)

	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	form.SetEmail(email)

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	form.SetPassword(password)
	renderStrengthMeter(a.out, password, form.Strength)

	confirm, err := getPassword("Confirm password", a.out)
	if err != nil {
		return err
	}
	form.SetConfirm(confirm)

	if !form.Submit(ctx) {
		printFieldErrors(a.out, form.Name, form.Email, form.Password, form.Confirm)
	}
	return nil
}

// Logout clears the persisted session and returns to the login screen.
func (a *App) Logout(ctx context.Context) error {
	if err := a.store.LogoutUser(ctx); err != nil {
		return err
	}
	a.notifier().Success("Logged out", "You have been successfully logged out.")
	a.NavigateTo(forms.ScreenLogin)
	return nil
}
