package models

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
)

const (
	// MinPasswordLength is the minimum accepted password length.
	MinPasswordLength = 6

	// MaxRegistrationsPerDay caps new accounts per calendar day across
	// the whole store (anti-abuse throttle).
	MaxRegistrationsPerDay = 10

	// SpinCooldownDays is the wait between wheel spins.
	SpinCooldownDays = 3
)

// AllowedEmailDomains is the fixed registration allow-list.
var AllowedEmailDomains = []string{"gmail.com", "hotmail.com", "outlook.com"}

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// SpinRecord is one entry in an account's wheel history.
type SpinRecord struct {
	Date        time.Time `json:"date"`
	Prize       string    `json:"prize"`
	Description string    `json:"description"`
}

// Account is a locally registered wheel participant. Email is the
// unique key across the account store and is always kept normalized.
type Account struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	// PasswordHash lands in the persisted snapshot; handlers never
	// echo the Account struct itself.
	PasswordHash     string       `json:"password_hash"`
	RegistrationDate time.Time    `json:"registration_date"`
	LastSpin         *time.Time   `json:"last_spin,omitempty"`
	SpinHistory      []SpinRecord `json:"spin_history"`
	Domain           string       `json:"domain"`
}

// CanSpin reports whether the cooldown has elapsed. Elapsed time is
// rounded up to whole days before comparing against the cooldown, so
// exactly 72 hours since the last spin is enough.
func (a *Account) CanSpin(now time.Time) bool {
	if a.LastSpin == nil {
		return true
	}
	elapsed := now.Sub(*a.LastSpin)
	days := int(math.Ceil(elapsed.Hours() / 24))
	return days >= SpinCooldownDays
}

// NextSpinAt returns the end of the cooldown window. The second return
// is false when the account has never spun.
func (a *Account) NextSpinAt() (time.Time, bool) {
	if a.LastSpin == nil {
		return time.Time{}, false
	}
	return a.LastSpin.Add(SpinCooldownDays * 24 * time.Hour), true
}

// RegisterRequest carries the data needed to create a new account.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks field presence, password length, email syntax and
// the domain allow-list. Uniqueness and the daily registration cap
// need the backing store and are checked by the account service.
func (r *RegisterRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return &ValidationError{Field: "name", Reason: "is required"}
	}
	email := NormalizeEmail(r.Email)
	if email == "" {
		return &ValidationError{Field: "email", Reason: "is required"}
	}
	if r.Password == "" {
		return &ValidationError{Field: "password", Reason: "is required"}
	}
	if len(r.Password) < MinPasswordLength {
		return &ValidationError{
			Field:  "password",
			Reason: fmt.Sprintf("must be at least %d characters", MinPasswordLength),
		}
	}
	if !emailRegex.MatchString(email) {
		return &ValidationError{Field: "email", Reason: "format is invalid"}
	}
	if !DomainAllowed(email) {
		return &ValidationError{Field: "email", Reason: "domain is not accepted for registration"}
	}
	return nil
}

// NormalizeEmail lowercases and trims an address. The account store
// only ever compares emails in this form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// EmailDomain returns the part after the last @, or "".
func EmailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return email[at+1:]
}

// DomainAllowed reports whether the address belongs to one of the
// allow-listed providers.
func DomainAllowed(email string) bool {
	domain := EmailDomain(NormalizeEmail(email))
	for _, d := range AllowedEmailDomains {
		if domain == d {
			return true
		}
	}
	return false
}
