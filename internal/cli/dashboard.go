package cli

import (
	"context"
	"fmt"

	"github.com/authdesk/authdesk/internal/forms"
)

// Dashboard renders the authenticated area. Without a session it sends the
// user back to the login screen instead.
func (a *App) Dashboard(ctx context.Context) error {
	user, err := a.store.GetCurrentUser(ctx)
	if err != nil {
		return err
	}
	if user == nil {
		fmt.Fprintln(a.out, "You are not logged in. Use 'login' first.")
		a.NavigateTo(forms.ScreenLogin)
		return nil
	}

	a.NavigateTo(forms.ScreenDashboard)
	renderDashboard(a.out, user)
	return nil
}

// Whoami prints a short summary of the session user.
func (a *App) Whoami(ctx context.Context) error {
	user, err := a.store.GetCurrentUser(ctx)
	if err != nil {
		return err
	}
	if user == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	fmt.Fprintf(a.out, "%s <%s>\n", user.Name, user.Email)
	return nil
}
