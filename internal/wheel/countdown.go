package wheel

import (
	"context"
	"fmt"
	"time"
)

// Remaining is the time left until the next allowed spin, broken down
// the way the countdown displays it. Hours is the full remainder, not
// capped at 24.
type Remaining struct {
	Hours   int  `json:"hours"`
	Minutes int  `json:"minutes"`
	Seconds int  `json:"seconds"`
	Done    bool `json:"done"`
}

func (r Remaining) String() string {
	if r.Done {
		return "¡Ya puedes girar la ruleta!"
	}
	return fmt.Sprintf("Podrás girar nuevamente en %dh %dm %ds", r.Hours, r.Minutes, r.Seconds)
}

// RemainingUntil breaks down the time from now until next.
func RemainingUntil(now, next time.Time) Remaining {
	diff := next.Sub(now)
	if diff <= 0 {
		return Remaining{Done: true}
	}
	return Remaining{
		Hours:   int(diff / time.Hour),
		Minutes: int(diff % time.Hour / time.Minute),
		Seconds: int(diff % time.Minute / time.Second),
	}
}

// Countdown returns the cooldown remaining for the logged-in account.
// An account that has never spun, or whose cooldown already elapsed,
// gets a done countdown.
func (w *Wheel) Countdown() (Remaining, error) {
	acct, err := w.accounts.Current()
	if err != nil {
		return Remaining{}, err
	}
	if acct.CanSpin(w.now()) {
		return Remaining{Done: true}, nil
	}
	next, ok := acct.NextSpinAt()
	if !ok {
		return Remaining{Done: true}, nil
	}
	return RemainingUntil(w.now(), next), nil
}

// WatchCountdown recomputes the countdown every interval and hands it
// to fn, stopping once the cooldown completes or ctx is cancelled.
func (w *Wheel) WatchCountdown(ctx context.Context, interval time.Duration, fn func(Remaining)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		remaining, err := w.Countdown()
		if err != nil {
			return err
		}
		fn(remaining)
		if remaining.Done {
			return nil
		}
	}
}
