package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRegisterRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr bool
	}{
		{
			name:    "valid gmail registration",
			req:     RegisterRequest{Name: "Ana", Email: "ana@gmail.com", Password: "secret1"},
			wantErr: false,
		},
		{
			name:    "valid outlook registration",
			req:     RegisterRequest{Name: "Ana", Email: "Ana@Outlook.com", Password: "123456"},
			wantErr: false,
		},
		{
			name:    "missing name",
			req:     RegisterRequest{Name: "  ", Email: "ana@gmail.com", Password: "secret1"},
			wantErr: true,
		},
		{
			name:    "missing email",
			req:     RegisterRequest{Name: "Ana", Password: "secret1"},
			wantErr: true,
		},
		{
			name:    "missing password",
			req:     RegisterRequest{Name: "Ana", Email: "ana@gmail.com"},
			wantErr: true,
		},
		{
			name:    "password too short",
			req:     RegisterRequest{Name: "Ana", Email: "ana@gmail.com", Password: "12345"},
			wantErr: true,
		},
		{
			name:    "malformed email",
			req:     RegisterRequest{Name: "Ana", Email: "not-an-email", Password: "secret1"},
			wantErr: true,
		},
		{
			name:    "domain not allow-listed",
			req:     RegisterRequest{Name: "Ana", Email: "user@yahoo.com", Password: "secret1"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				var ve *ValidationError
				assert.ErrorAs(t, err, &ve)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDomainAllowed(t *testing.T) {
	assert.True(t, DomainAllowed("user@gmail.com"))
	assert.True(t, DomainAllowed("USER@HOTMAIL.COM"))
	assert.True(t, DomainAllowed(" user@outlook.com "))
	assert.False(t, DomainAllowed("user@yahoo.com"))
	assert.False(t, DomainAllowed("user@gmail.com.ar"))
	assert.False(t, DomainAllowed("no-at-sign"))
}

func TestAccountCanSpin(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("never spun", func(t *testing.T) {
		a := &Account{}
		assert.True(t, a.CanSpin(now))
	})

	t.Run("immediately after a spin", func(t *testing.T) {
		spun := now
		a := &Account{LastSpin: &spun}
		assert.False(t, a.CanSpin(now))
	})

	t.Run("one day elapsed", func(t *testing.T) {
		spun := now.Add(-24 * time.Hour)
		a := &Account{LastSpin: &spun}
		assert.False(t, a.CanSpin(now))
	})

	t.Run("exactly two days elapsed", func(t *testing.T) {
		spun := now.Add(-48 * time.Hour)
		a := &Account{LastSpin: &spun}
		assert.False(t, a.CanSpin(now))
	})

	t.Run("boundary at exactly 72 hours", func(t *testing.T) {
		spun := now.Add(-72 * time.Hour)
		a := &Account{LastSpin: &spun}
		assert.True(t, a.CanSpin(now))
	})

	t.Run("well past the cooldown", func(t *testing.T) {
		spun := now.Add(-100 * time.Hour)
		a := &Account{LastSpin: &spun}
		assert.True(t, a.CanSpin(now))
	})
}

func TestAccountNextSpinAt(t *testing.T) {
	a := &Account{}
	_, ok := a.NextSpinAt()
	assert.False(t, ok)

	spun := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	a.LastSpin = &spun
	next, ok := a.NextSpinAt()
	assert.True(t, ok)
	assert.Equal(t, spun.Add(72*time.Hour), next)
}
