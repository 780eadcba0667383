package forms

import (
	"context"
	"errors"
	"time"

	"github.com/authdesk/authdesk/internal/common"
	"github.com/authdesk/authdesk/internal/logging"
	"github.com/authdesk/authdesk/internal/services"
	"github.com/authdesk/authdesk/internal/validation"
)

// RegisterForm orchestrates the registration screen. Password keystrokes
// keep the strength score current, and once a confirm value exists the
// match flag tracks both password fields.
type RegisterForm struct {
	Name     Field
	Email    Field
	Password Field
	Confirm  Field

	Strength       int
	PasswordsMatch bool

	state    State
	store    UserStore
	notifier Notifier
	nav      Navigator
	delay    time.Duration
	log      logging.Logger
}

func NewRegisterForm(store UserStore, notifier Notifier, nav Navigator, delay time.Duration, log logging.Logger) *RegisterForm {
	return &RegisterForm{
		state:    StateEditing,
		store:    store,
		notifier: notifier,
		nav:      nav,
		delay:    delay,
		log:      log.With("form", "register"),
	}
}

func (f *RegisterForm) State() State { return f.state }

func (f *RegisterForm) SetName(value string) {
	f.Name.Value = value
	f.Name.Touched = true
	f.Name.Error = ""
	f.state = StateEditing
}

func (f *RegisterForm) SetEmail(value string) {
	f.Email.Value = value
	f.Email.Touched = true
	f.Email.Error = ""
	f.state = StateEditing
}

// SetPassword records a password keystroke, recomputing the strength score
// and, when a confirm value is already present, the match flag.
func (f *RegisterForm) SetPassword(value string) {
	f.Password.Value = value
	f.Password.Touched = true
	f.Password.Error = ""
	f.state = StateEditing

	f.Strength = validation.ValidatePassword(value).Strength
	if f.Confirm.Value != "" {
		f.PasswordsMatch = value == f.Confirm.Value
	}
}

// SetConfirm records a confirm-password keystroke and recomputes the match
// flag.
func (f *RegisterForm) SetConfirm(value string) {
	f.Confirm.Value = value
	f.Confirm.Touched = true
	f.Confirm.Error = ""
	f.state = StateEditing

	f.PasswordsMatch = value == f.Password.Value
}

// Reset discards all transient state of the form.
func (f *RegisterForm) Reset() {
	f.Name = Field{}
	f.Email = Field{}
	f.Password = Field{}
	f.Confirm = Field{}
	f.Strength = 0
	f.PasswordsMatch = false
	f.state = StateEditing
}

// Validate checks all four fields, populating inline errors. Submission
// proceeds only when every field passes.
func (f *RegisterForm) Validate() bool {
	f.state = StateValidating
	valid := true

	if res := validation.ValidateName(f.Name.Value); !res.IsValid {
		f.Name.Error = res.Error
		f.Name.Touched = true
		valid = false
	} else {
		f.Name.Error = ""
	}

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

	if res := validation.ValidateConfirmPassword(f.Password.Value, f.Confirm.Value); !res.IsValid {
		f.Confirm.Error = res.Error
		f.Confirm.Touched = true
		valid = false
	} else {
		f.Confirm.Error = ""
	}

	if !valid {
		f.state = StateEditing
	}
	return valid
}

// Submit validates, waits the simulated request latency, and attempts the
// registration. On success the user is sent to the login screen.
func (f *RegisterForm) Submit(ctx context.Context) bool {
	if f.state == StateSubmitting {
		return false
	}

	if !f.Validate() {
		return false
	}

	f.state = StateSubmitting
	sleep(f.delay)

	_, err := f.store.SaveUser(ctx, services.NewUser{
		Name:     f.Name.Value,
		Email:    f.Email.Value,
		Password: f.Password.Value,
	})
	switch {
	case err == nil:
		f.state = StateSuccess
		f.notifier.Success(titleRegistered, msgRegistered)
		f.nav.NavigateTo(ScreenLogin)
		return true

	case errors.Is(err, common.ErrEmailAlreadyRegistered):
		// Known conflict: surface the store's own message.
		f.state = StateFailed
		f.notifier.Error(titleError, err.Error())
		return false

	default:
		f.log.Error(ctx, "register submit failed", "error", err)
		f.state = StateFailed
		f.notifier.Error(titleError, msgGeneric)
		return false
	}
}
