package forms

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/authdesk/authdesk/internal/common"
	"github.com/authdesk/authdesk/internal/logging"
	"github.com/authdesk/authdesk/internal/validation"
)

// LoginForm orchestrates the login screen: two fields, validation on
// submit, one store call, one notification, one navigation.
type LoginForm struct {
	Email    Field
	Password Field

	state    State
	store    UserStore
	notifier Notifier
	nav      Navigator
	delay    time.Duration
	log      logging.Logger
}

func NewLoginForm(store UserStore, notifier Notifier, nav Navigator, delay time.Duration, log logging.Logger) *LoginForm {
	return &LoginForm{
		state:    StateEditing,
		store:    store,
		notifier: notifier,
		nav:      nav,
		delay:    delay,
		log:      log.With("form", "login"),
	}
}

func (f *LoginForm) State() State { return f.state }

// SetEmail records a keystroke in the email field and returns the form to
// the editing state.
func (f *LoginForm) SetEmail(value string) {
	f.Email.Value = value
	f.Email.Touched = true
	f.Email.Error = ""
	f.state = StateEditing
}

// SetPassword records a keystroke in the password field.
func (f *LoginForm) SetPassword(value string) {
	f.Password.Value = value
	f.Password.Touched = true
	f.Password.Error = ""
	f.state = StateEditing
}

// Reset discards all transient field state.
func (f *LoginForm) Reset() {
	f.Email = Field{}
	f.Password = Field{}
	f.state = StateEditing
}

// Validate runs both field validators, populating inline errors. The form
// proceeds to submitting only when both fields pass.
func (f *LoginForm) Validate() bool {
	f.state = StateValidating
	valid := true

	if res := validation.ValidateEmail(f.Email.Value); !res.IsValid {
		f.Email.Error = res.Error
		f.Email.Touched = true
		valid = false
	} else {
		f.Email.Error = ""
	}

	if res := validation.ValidatePassword(f.Password.Value); !res.IsValid {
		f.Password.Error = res.Error
		f.Password.Touched = true
		valid = false
	} else {
		f.Password.Error = ""
	}

	if !valid {
		f.state = StateEditing
	}
	return valid
}

// Submit validates, waits the simulated request latency, and attempts the
// login. Returns true on success. A form that is already submitting
// rejects the attempt.
func (f *LoginForm) Submit(ctx context.Context) bool {
	if f.state == StateSubmitting {
		return false
	}

	if !f.Validate() {
		return false
	}

	f.state = StateSubmitting
	sleep(f.delay)

	user, err := f.store.LoginUser(ctx, f.Email.Value, f.Password.Value)
	switch {
	case err == nil:
		f.state = StateSuccess
		f.notifier.Success(titleWelcome, fmt.Sprintf("You've successfully logged in as %s", user.Name))
		f.nav.NavigateTo(ScreenDashboard)
		return true

	case errors.Is(err, common.ErrUserNotFound):
		f.state = StateFailed
		f.notifier.Error(titleLoginFailed, msgLoginFailed)
		return false

	default:
		f.log.Error(ctx, "login submit failed", "error", err)
		f.state = StateFailed
		f.notifier.Error(titleError, msgGeneric)
		return false
	}
}
