package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/authdesk/authdesk/internal/forms"
	"github.com/authdesk/authdesk/internal/models"
	"github.com/authdesk/authdesk/internal/validation"
)

// toastNotifier renders form notifications as one-line toasts.
type toastNotifier struct {
	w io.Writer
}

func (n toastNotifier) Success(title, description string) {
	fmt.Fprintf(n.w, "[ok] %s %s\n", title, description)
}

func (n toastNotifier) Error(title, description string) {
	fmt.Fprintf(n.w, "[error] %s: %s\n", title, description)
}

// printFieldErrors lists the inline errors of the given fields, one per
// line, skipping fields without an error.
func printFieldErrors(w io.Writer, fields ...forms.Field) {
	for _, f := range fields {
		if f.Error != "" {
			fmt.Fprintf(w, "  - %s\n", f.Error)
		}
	}
}

const meterSegments = 10

// renderStrengthMeter draws the password strength bar, its label, and the
// requirement checklist. The checklist is shown only when the password is
// non-empty, matching the on-screen meter of the app.
func renderStrengthMeter(w io.Writer, password string, strength int) {
	filled := strength * meterSegments / validation.MaxStrength
	bar := strings.Repeat("#", filled) + strings.Repeat("-", meterSegments-filled)
	fmt.Fprintf(w, "Password strength: [%s] %s\n", bar, validation.StrengthLabel(strength))

	if password == "" {
		return
	}

	fmt.Fprintln(w, "Password requirements:")
	for _, r := range validation.Requirements(password) {
		mark := " "
		if r.Met {
			mark = "x"
		}
		fmt.Fprintf(w, "  [%s] %s\n", mark, r.Label)
	}
}

// dashboardCards are the static feature cards of the dashboard screen.
var dashboardCards = []struct {
	Title       string
	Description string
}{
	{"Profile", "Manage your account settings and preferences"},
	{"Security", "Update your password and security settings"},
	{"Notifications", "Control what notifications you receive"},
	{"Billing", "View your billing history and payment methods"},
}

// renderDashboard draws the post-login dashboard for the given user.
func renderDashboard(w io.Writer, user *models.User) {
	fmt.Fprintf(w, "\nWelcome, %s!\n", user.Name)
	fmt.Fprintf(w, "This is your dashboard. You are now signed in with %s.\n", user.Email)
	fmt.Fprintf(w, "Member since: %s\n\n", user.CreatedAt)

	for _, card := range dashboardCards {
		fmt.Fprintf(w, "  %-15s %s\n", card.Title, card.Description)
	}
	fmt.Fprintln(w)
}
