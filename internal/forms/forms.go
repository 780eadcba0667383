// Package forms implements the login and registration form controllers:
// transient field state, the submit state machine, and the orchestration
// of validation and the user store. Presentation is delegated to the
// Notifier and Navigator ports.
package forms

import (
	"context"
	"time"

	"github.com/authdesk/authdesk/internal/models"
	"github.com/authdesk/authdesk/internal/services"
)

// Field is the transient state of a single input: its current value, the
// inline error to display, and whether the user has interacted with it.
// Fields are never persisted.
type Field struct {
	Value   string
	Error   string
	Touched bool
}

// State is the submit state machine position of a form.
//
// Editing -> Validating -> Submitting -> {Success, Failed}; a failed form
// returns to Editing on any field edit.
type State string

const (
	StateEditing    State = "editing"
	StateValidating State = "validating"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateFailed     State = "failed"
)

// Screen identifies a navigation target.
type Screen string

const (
	ScreenLogin     Screen = "login"
	ScreenRegister  Screen = "register"
	ScreenDashboard Screen = "dashboard"
)

// Notifier presents transient notifications. Implemented by the CLI.
type Notifier interface {
	Success(title, description string)
	Error(title, description string)
}

// Navigator switches between screens. Implemented by the CLI.
type Navigator interface {
	NavigateTo(screen Screen)
}

// UserStore is the subset of the user store the forms need.
type UserStore interface {
	SaveUser(ctx context.Context, n services.NewUser) (*models.User, error)
	LoginUser(ctx context.Context, email, password string) (*models.User, error)
}

// sleep is a test seam for the simulated request latency.
var sleep = time.Sleep

// Notification texts. Matching the on-screen wording of the app.
const (
	titleWelcome     = "Welcome back!"
	titleLoginFailed = "Login failed"
	titleRegistered  = "Registration successful!"
	titleError       = "Error"

	msgLoginFailed = "Invalid email or password. Please try again."
	msgRegistered  = "Your account has been created. You can now log in."
	msgGeneric     = "Something went wrong. Please try again."
)
