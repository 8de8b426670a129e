// Package account owns the wheel's locally registered accounts: the
// account list, the current-session pointer and the spin bookkeeping,
// all persisted as snapshots in the local store.
package account

import (
	"fmt"
	"time"

	"vapextuc-storefront/internal/models"
	"vapextuc-storefront/internal/storage"
	"vapextuc-storefront/internal/utils"
)

// Service handles registration, login and spin bookkeeping.
type Service struct {
	store storage.Snapshots
	now   func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates an account service over the snapshot store.
func NewService(store storage.Snapshots, options ...Option) *Service {
	s := &Service{store: store, now: time.Now}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// Register validates the request, enforces email uniqueness and the
// daily registration cap, then stores the account and logs it in.
func (s *Service) Register(req *models.RegisterRequest) (*models.Account, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	accounts, err := s.loadAccounts()
	if err != nil {
		return nil, err
	}

	email := models.NormalizeEmail(req.Email)
	for _, a := range accounts {
		if a.Email == email {
			return nil, models.ErrDuplicateEmail
		}
	}

	now := s.now()
	registeredToday := 0
	for _, a := range accounts {
		if sameDay(a.RegistrationDate, now) {
			registeredToday++
		}
	}
	if registeredToday >= models.MaxRegistrationsPerDay {
		return nil, &models.QuotaError{
			Resource: "registrations today",
			Limit:    models.MaxRegistrationsPerDay,
		}
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	acct := &models.Account{
		Name:             req.Name,
		Email:            email,
		PasswordHash:     hash,
		RegistrationDate: now,
		SpinHistory:      []models.SpinRecord{},
		Domain:           models.EmailDomain(email),
	}

	accounts = append(accounts, acct)
	if err := s.saveAccounts(accounts); err != nil {
		return nil, err
	}
	if err := s.setCurrent(acct); err != nil {
		return nil, err
	}
	return acct, nil
}

// Login matches email and password against the stored account list and
// makes the matching account current.
func (s *Service) Login(email, password string) (*models.Account, error) {
	accounts, err := s.loadAccounts()
	if err != nil {
		return nil, err
	}

	email = models.NormalizeEmail(email)
	for _, a := range accounts {
		if a.Email != email {
			continue
		}
		ok, err := utils.VerifyPassword(password, a.PasswordHash)
		if err != nil {
			return nil, fmt.Errorf("failed to verify password: %w", err)
		}
		if !ok {
			return nil, models.ErrInvalidLogin
		}
		if err := s.setCurrent(a); err != nil {
			return nil, err
		}
		return a, nil
	}
	return nil, models.ErrInvalidLogin
}

// Logout drops the current-session pointer. The account itself stays
// in the store.
func (s *Service) Logout() error {
	return s.store.Delete(storage.KeyCurrentUser)
}

// Current returns the logged-in account, refreshed from the backing
// list. A current account that no longer exists in the list is logged
// out, so a store reset cannot leave a ghost session behind.
func (s *Service) Current() (*models.Account, error) {
	var current models.Account
	ok, err := storage.GetJSON(s.store, storage.KeyCurrentUser, &current)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, models.ErrNotLoggedIn
	}

	accounts, err := s.loadAccounts()
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		if a.Email == current.Email {
			if err := s.setCurrent(a); err != nil {
				return nil, err
			}
			return a, nil
		}
	}

	if err := s.Logout(); err != nil {
		return nil, err
	}
	return nil, models.ErrNotLoggedIn
}

// RecordSpin stamps the outcome of a wheel spin into the current
// account: last-spin timestamp plus one history entry, persisted in
// both the account list and the current snapshot.
func (s *Service) RecordSpin(rec models.SpinRecord) error {
	current, err := s.Current()
	if err != nil {
		return err
	}

	accounts, err := s.loadAccounts()
	if err != nil {
		return err
	}
	for _, a := range accounts {
		if a.Email != current.Email {
			continue
		}
		spun := rec.Date
		a.LastSpin = &spun
		a.SpinHistory = append(a.SpinHistory, rec)
		if err := s.saveAccounts(accounts); err != nil {
			return err
		}
		return s.setCurrent(a)
	}
	return models.ErrNotLoggedIn
}

// Reset wipes every account and the session pointer.
func (s *Service) Reset() error {
	if err := s.store.Delete(storage.KeyAccounts); err != nil {
		return err
	}
	return s.store.Delete(storage.KeyCurrentUser)
}

func (s *Service) loadAccounts() ([]*models.Account, error) {
	var accounts []*models.Account
	if _, err := storage.GetJSON(s.store, storage.KeyAccounts, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (s *Service) saveAccounts(accounts []*models.Account) error {
	return storage.PutJSON(s.store, storage.KeyAccounts, accounts)
}

func (s *Service) setCurrent(a *models.Account) error {
	return storage.PutJSON(s.store, storage.KeyCurrentUser, a)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.In(b.Location()).Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
