package wheel

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"vapextuc-storefront/internal/models"
	"vapextuc-storefront/internal/notify"

	"github.com/google/logger"
)

// Accounts is the slice of the account service the wheel needs: who is
// logged in, and where to stamp the outcome.
type Accounts interface {
	Current() (*models.Account, error)
	RecordSpin(models.SpinRecord) error
}

// Frame is one animation step of a spin.
type Frame struct {
	Angle    float64 `json:"angle"`
	Progress float64 `json:"progress"`
}

// SpinResult is the outcome of a completed spin.
type SpinResult struct {
	Index  int               `json:"index"`
	Prize  models.Prize      `json:"prize"`
	Angle  float64           `json:"angle"`
	Frames int               `json:"frames"`
	Record models.SpinRecord `json:"record"`
}

// Wheel drives spins against a prize table: eligibility checks, the
// eased rotation towards the drawn prize, and the account bookkeeping
// once the wheel stops.
type Wheel struct {
	mu       sync.Mutex
	spinning bool

	table    *Table
	accounts Accounts
	notifier notify.Notifier

	rng *rand.Rand
	now func() time.Time

	duration      time.Duration
	frameInterval time.Duration
	rotations     int
}

// Option configures a Wheel.
type Option func(*Wheel)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(w *Wheel) { w.now = now }
}

// WithRand overrides the draw source, for tests.
func WithRand(rng *rand.Rand) Option {
	return func(w *Wheel) { w.rng = rng }
}

// WithTiming overrides the spin duration and the frame interval.
func WithTiming(duration, frameInterval time.Duration) Option {
	return func(w *Wheel) {
		w.duration = duration
		w.frameInterval = frameInterval
	}
}

// WithRotations overrides the number of full turns before the wheel
// settles on the prize.
func WithRotations(n int) Option {
	return func(w *Wheel) { w.rotations = n }
}

// New creates a wheel over the given prize table and account service.
func New(table *Table, accounts Accounts, notifier notify.Notifier, options ...Option) *Wheel {
	w := &Wheel{
		table:         table,
		accounts:      accounts,
		notifier:      notifier,
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
		now:           time.Now,
		duration:      4 * time.Second,
		frameInterval: 16 * time.Millisecond,
		rotations:     5,
	}
	for _, opt := range options {
		opt(w)
	}
	return w
}

// Table returns the wheel's prize table.
func (w *Wheel) Table() *Table { return w.table }

// Spinning reports whether a spin is currently running.
func (w *Wheel) Spinning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.spinning
}

// Spin runs one full spin: it checks login and cooldown, draws a
// prize, animates the rotation through onFrame, records the outcome on
// the account and returns it. onFrame may be nil. Only one spin runs
// at a time.
func (w *Wheel) Spin(ctx context.Context, onFrame func(Frame)) (*SpinResult, error) {
	acct, err := w.accounts.Current()
	if err != nil {
		w.notifier.Error("Debes iniciar sesión para girar la ruleta")
		return nil, err
	}
	if !acct.CanSpin(w.now()) {
		w.notifier.Error("Debes esperar 3 días entre cada giro")
		return nil, &models.QuotaError{
			Resource: "spin cooldown",
			Limit:    models.SpinCooldownDays,
			Unit:     "days",
		}
	}

	if err := w.acquire(); err != nil {
		return nil, err
	}
	defer w.release()

	index, prize := w.table.SelectPrize(w.rng)
	logger.Infof("Premio seleccionado: %s (índice: %d)", prize.Name, index)

	// Several full turns for effect, then settle with the prize under
	// the pointer.
	target := w.table.AngleForPrize(index) - float64(w.rotations)*2*math.Pi

	frames, err := w.animate(ctx, target, onFrame)
	if err != nil {
		return nil, err
	}

	record := models.SpinRecord{
		Date:        w.now(),
		Prize:       prize.Name,
		Description: prize.Description,
	}
	if err := w.accounts.RecordSpin(record); err != nil {
		return nil, err
	}

	w.notifier.Success(fmt.Sprintf("%s %s", prize.Icon, prize.Name))
	return &SpinResult{
		Index:  index,
		Prize:  prize,
		Angle:  target,
		Frames: frames,
		Record: record,
	}, nil
}

// animate paces the rotation from 0 to target over the configured
// duration, easing out so the wheel starts fast and settles slowly.
// The final frame always lands exactly on target.
func (w *Wheel) animate(ctx context.Context, target float64, onFrame func(Frame)) (int, error) {
	ticker := time.NewTicker(w.frameInterval)
	defer ticker.Stop()

	frames := 0
	elapsed := time.Duration(0)
	for elapsed < w.duration {
		select {
		case <-ctx.Done():
			return frames, ctx.Err()
		case <-ticker.C:
		}
		elapsed += w.frameInterval
		progress := float64(elapsed) / float64(w.duration)
		if progress > 1 {
			progress = 1
		}
		eased := 1 - (1-progress)*(1-progress)*(1-progress)
		frames++
		if onFrame != nil {
			onFrame(Frame{Angle: target * eased, Progress: progress})
		}
	}
	if onFrame != nil {
		onFrame(Frame{Angle: target, Progress: 1})
		frames++
	}
	return frames, nil
}

func (w *Wheel) acquire() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.spinning {
		return models.ErrSpinInProgress
	}
	w.spinning = true
	return nil
}

func (w *Wheel) release() {
	w.mu.Lock()
	w.spinning = false
	w.mu.Unlock()
}
