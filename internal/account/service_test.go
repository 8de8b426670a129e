package account

import (
	"fmt"
	"testing"
	"time"

	"vapextuc-storefront/internal/models"
	"vapextuc-storefront/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, now time.Time) (*Service, *storage.Memory) {
	t.Helper()
	store := storage.NewMemory()
	svc := NewService(store, WithClock(func() time.Time { return now }))
	return svc, store
}

func register(t *testing.T, svc *Service, name, email, password string) *models.Account {
	t.Helper()
	acct, err := svc.Register(&models.RegisterRequest{Name: name, Email: email, Password: password})
	require.NoError(t, err)
	return acct
}

func TestRegisterLogsAccountIn(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc, _ := newTestService(t, now)

	acct := register(t, svc, "Ana", "Ana@Gmail.com", "secret1")
	assert.Equal(t, "ana@gmail.com", acct.Email, "emails are stored normalized")
	assert.Equal(t, "gmail.com", acct.Domain)
	assert.NotEqual(t, "secret1", acct.PasswordHash, "passwords are never stored in the clear")

	current, err := svc.Current()
	require.NoError(t, err)
	assert.Equal(t, "ana@gmail.com", current.Email)
}

func TestRegisterRejectsDisallowedDomain(t *testing.T) {
	svc, _ := newTestService(t, time.Now())

	_, err := svc.Register(&models.RegisterRequest{Name: "Ana", Email: "user@yahoo.com", Password: "secret1"})
	var ve *models.ValidationError
	require.ErrorAs(t, err, &ve)

	_, err = svc.Current()
	assert.ErrorIs(t, err, models.ErrNotLoggedIn, "failed registration mutates nothing")
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t, time.Now())

	register(t, svc, "Ana", "ana@gmail.com", "secret1")
	_, err := svc.Register(&models.RegisterRequest{Name: "Otra", Email: "ANA@gmail.com", Password: "secret2"})
	assert.ErrorIs(t, err, models.ErrDuplicateEmail)
}

func TestRegisterDailyQuota(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc, store := newTestService(t, now)

	for i := 0; i < models.MaxRegistrationsPerDay; i++ {
		register(t, svc, "User", fmt.Sprintf("user%d@gmail.com", i), "secret1")
	}

	_, err := svc.Register(&models.RegisterRequest{Name: "Ana", Email: "late@gmail.com", Password: "secret1"})
	var qe *models.QuotaError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, models.MaxRegistrationsPerDay, qe.Limit)

	// The quota is per calendar day: the next day registration works.
	nextDay := NewService(store, WithClock(func() time.Time { return now.Add(24 * time.Hour) }))
	_, err = nextDay.Register(&models.RegisterRequest{Name: "Ana", Email: "late@gmail.com", Password: "secret1"})
	assert.NoError(t, err)
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService(t, time.Now())
	register(t, svc, "Ana", "ana@gmail.com", "secret1")
	require.NoError(t, svc.Logout())

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login("ana@gmail.com", "not-it")
		assert.ErrorIs(t, err, models.ErrInvalidLogin)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login("nadie@gmail.com", "secret1")
		assert.ErrorIs(t, err, models.ErrInvalidLogin)
	})

	t.Run("success sets the session pointer", func(t *testing.T) {
		acct, err := svc.Login("ANA@gmail.com", "secret1")
		require.NoError(t, err)
		assert.Equal(t, "ana@gmail.com", acct.Email)

		current, err := svc.Current()
		require.NoError(t, err)
		assert.Equal(t, "ana@gmail.com", current.Email)
	})
}

func TestCurrentRefreshesFromBackingList(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	svc, store := newTestService(t, now)
	register(t, svc, "Ana", "ana@gmail.com", "secret1")

	// A spin recorded through a different service instance must be
	// visible to the session pointer on the next read.
	other := NewService(store, WithClock(func() time.Time { return now }))
	require.NoError(t, other.RecordSpin(models.SpinRecord{Date: now, Prize: "Envío gratis", Description: "Próximo envío gratuito"}))

	current, err := svc.Current()
	require.NoError(t, err)
	require.NotNil(t, current.LastSpin)
	require.Len(t, current.SpinHistory, 1)
	assert.Equal(t, "Envío gratis", current.SpinHistory[0].Prize)
}

func TestCurrentLogsOutDeletedAccount(t *testing.T) {
	svc, store := newTestService(t, time.Now())
	register(t, svc, "Ana", "ana@gmail.com", "secret1")

	// The account list is wiped behind the session pointer's back.
	require.NoError(t, store.Delete(storage.KeyAccounts))

	_, err := svc.Current()
	assert.ErrorIs(t, err, models.ErrNotLoggedIn)

	_, ok, err := store.Get(storage.KeyCurrentUser)
	require.NoError(t, err)
	assert.False(t, ok, "the stale pointer is dropped")
}

func TestRecordSpinRequiresLogin(t *testing.T) {
	svc, _ := newTestService(t, time.Now())
	err := svc.RecordSpin(models.SpinRecord{Date: time.Now(), Prize: "Sin recompensa"})
	assert.ErrorIs(t, err, models.ErrNotLoggedIn)
}

func TestReset(t *testing.T) {
	svc, store := newTestService(t, time.Now())
	register(t, svc, "Ana", "ana@gmail.com", "secret1")

	require.NoError(t, svc.Reset())

	_, err := svc.Current()
	assert.ErrorIs(t, err, models.ErrNotLoggedIn)

	_, ok, err := store.Get(storage.KeyAccounts)
	require.NoError(t, err)
	assert.False(t, ok)
}
