package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/authdesk/authdesk/internal/forms"
	"github.com/authdesk/authdesk/internal/models"
)

func TestToastNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := toastNotifier{w: &buf}

	n.Success("Welcome back!", "You've successfully logged in as Alice")
	n.Error("Login failed", "Invalid email or password. Please try again.")

	out := buf.String()
	require.Contains(t, out, "[ok] Welcome back! You've successfully logged in as Alice")
	require.Contains(t, out, "[error] Login failed: Invalid email or password. Please try again.")
}

func TestRenderStrengthMeter_EmptyPassword(t *testing.T) {
	var buf bytes.Buffer
	renderStrengthMeter(&buf, "", 0)

	out := buf.String()
	require.Contains(t, out, "[----------] No password")
	require.NotContains(t, out, "Password requirements", "checklist is hidden for an empty password")
}

func TestRenderStrengthMeter_StrongPassword(t *testing.T) {
	var buf bytes.Buffer
	renderStrengthMeter(&buf, "Abc12345!", 4)

	out := buf.String()
	require.Contains(t, out, "[##########] Strong")
	require.Contains(t, out, "Password requirements:")
	require.Equal(t, 5, strings.Count(out, "[x]"), "all five requirements are met")
}

func TestRenderStrengthMeter_PartialBar(t *testing.T) {
	var buf bytes.Buffer
	renderStrengthMeter(&buf, "abcdefgh", 2)

	out := buf.String()
	require.Contains(t, out, "[#####-----] Fair")
	require.Contains(t, out, "[x] At least 8 characters")
	require.Contains(t, out, "[x] At least one lowercase letter")
	require.Contains(t, out, "[ ] At least one uppercase letter")
	require.Contains(t, out, "[ ] At least one number")
	require.Contains(t, out, "[ ] At least one special character")
}

func TestRenderDashboard(t *testing.T) {
	var buf bytes.Buffer
	renderDashboard(&buf, &models.User{
		Name:      "Alice",
		Email:     "alice@gmail.com",
		CreatedAt: "2024-05-01T12:00:00Z",
	})

	out := buf.String()
	require.Contains(t, out, "Welcome, Alice!")
	require.Contains(t, out, "You are now signed in with alice@gmail.com.")
	require.Contains(t, out, "Member since: 2024-05-01T12:00:00Z")
	for _, card := range []string{"Profile", "Security", "Notifications", "Billing"} {
		require.Contains(t, out, card)
	}
}

func TestPrintFieldErrors(t *testing.T) {
	var buf bytes.Buffer
	printFieldErrors(&buf,
		forms.Field{Error: "Name is required"},
		forms.Field{Value: "ok"},
		forms.Field{Error: "Password is required"},
	)

	out := buf.String()
	require.Contains(t, out, "- Name is required")
	require.Contains(t, out, "- Password is required")
	require.Equal(t, 2, strings.Count(out, "- "), "fields without errors are skipped")
}
