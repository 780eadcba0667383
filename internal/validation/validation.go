// Package validation contains the pure credential validation rules:
// email shape and domain policy, password strength scoring, and the
// confirm-password match check. Functions here are deterministic and
// have no side effects.
package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Error messages surfaced as inline field errors.
const (
	MsgEmailFormat      = "Please enter a valid email address"
	MsgEmailDomain      = "Only gmail.com email addresses are allowed"
	MsgPasswordRequired = "Password is required"
	MsgPasswordTooShort = "Password must be at least 6 characters"
	MsgPasswordMismatch = "Passwords do not match"
	MsgNameRequired     = "Name is required"
)

// MaxStrength is the cap of the password strength score. Five criteria
// contribute to the score, but it never exceeds 4.
const MaxStrength = 4

// emailAtom is one character of the local part, domain, or TLD. Unicode
// space separators (U+00A0, the Zs block, line/paragraph separators, BOM)
// count as whitespace here, not just the ASCII class.
const emailAtom = `[^\s@\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]`

var (
	emailShapeRe = regexp.MustCompile(`^` + emailAtom + `+@` + emailAtom + `+\.` + emailAtom + `+$`)

	lowerRe   = regexp.MustCompile(`[a-z]`)
	upperRe   = regexp.MustCompile(`[A-Z]`)
	digitRe   = regexp.MustCompile(`[0-9]`)
	specialRe = regexp.MustCompile(`[^A-Za-z0-9]`)
)

type EmailResult struct {
	IsValid bool
	Error   string
}

// ValidateEmail checks the minimal local@domain.tld shape first, then the
// gmail.com domain policy. Checks run in order and the first failure wins.
func ValidateEmail(email string) EmailResult {
	if !emailShapeRe.MatchString(email) {
		return EmailResult{Error: MsgEmailFormat}
	}

	if !strings.HasSuffix(strings.ToLower(email), "@gmail.com") {
		return EmailResult{Error: MsgEmailDomain}
	}

	return EmailResult{IsValid: true}
}

type PasswordResult struct {
	IsValid  bool
	Strength int
	Error    string
}

// ValidatePassword rejects empty and too-short passwords and scores the
// rest on a 0–4 scale.
//
// A password shorter than 6 characters always reports strength 1. This is
// a fixed fallback, not a computed score.
func ValidatePassword(password string) PasswordResult {
	if password == "" {
		return PasswordResult{Strength: 0, Error: MsgPasswordRequired}
	}

	// Length rules count characters, not bytes.
	length := utf8.RuneCountInString(password)

	if length < 6 {
		return PasswordResult{Strength: 1, Error: MsgPasswordTooShort}
	}

	strength := 0
	if length >= 8 {
		strength++
	}
	if lowerRe.MatchString(password) {
		strength++
	}
	if upperRe.MatchString(password) {
		strength++
	}
	if digitRe.MatchString(password) {
		strength++
	}
	if specialRe.MatchString(password) {
		strength++
	}

	// Five criteria, capped at MaxStrength.
	if strength > MaxStrength {
		strength = MaxStrength
	}

	return PasswordResult{IsValid: true, Strength: strength}
}

type ConfirmResult struct {
	IsValid bool
	Error   string
}

// ValidateConfirmPassword reports a mismatch unless the two strings are
// exactly equal. Two empty strings are a valid match.
func ValidateConfirmPassword(password, confirm string) ConfirmResult {
	if password != confirm {
		return ConfirmResult{Error: MsgPasswordMismatch}
	}
	return ConfirmResult{IsValid: true}
}

type NameResult struct {
	IsValid bool
	Error   string
}

// ValidateName requires a non-empty display name after trimming whitespace.
func ValidateName(name string) NameResult {
	if strings.TrimSpace(name) == "" {
		return NameResult{Error: MsgNameRequired}
	}
	return NameResult{IsValid: true}
}

// StrengthLabel maps a strength score to its human-readable label.
func StrengthLabel(strength int) string {
	switch strength {
	case 0:
		return "No password"
	case 1:
		return "Weak"
	case 2:
		return "Fair"
	case 3:
		return "Good"
	case 4:
		return "Strong"
	default:
		return ""
	}
}

// Requirement is one row of the password requirement checklist.
type Requirement struct {
	Label string
	Met   bool
}

// Requirements reports which of the five strength criteria the password
// satisfies, in presentation order.
func Requirements(password string) []Requirement {
	return []Requirement{
		{Label: "At least 8 characters", Met: utf8.RuneCountInString(password) >= 8},
		{Label: "At least one lowercase letter", Met: lowerRe.MatchString(password)},
		{Label: "At least one uppercase letter", Met: upperRe.MatchString(password)},
		{Label: "At least one number", Met: digitRe.MatchString(password)},
		{Label: "At least one special character", Met: specialRe.MatchString(password)},
	}
}
