// Package engine orchestrates stage transitions, timer expiry sweeps,
// match refreshes, and alert delivery.
package engine

import (
	"log/slog"
	"time"

	"github.com/mpoirier/dealflow/internal/notify"
	"github.com/mpoirier/dealflow/internal/store"
	"github.com/mpoirier/dealflow/pkg/stagetimer"
)

const (
	defaultAlertThreshold = 70
	defaultMatchLimit     = 20
	defaultAlertCooldown  = 24 * time.Hour
)

// Engine orchestrates the deal pipeline against the store and notifier.
type Engine struct {
	store    store.Store
	notifier notify.Notifier
	log      *slog.Logger

	timers         stagetimer.Timers
	alertThreshold int
	matchLimit     int
	alertCooldown  time.Duration
	nowFunc        func() time.Time
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(
	s store.Store,
	n notify.Notifier,
	opts ...EngineOption,
) *Engine {
	eng := &Engine{
		store:          s,
		notifier:       n,
		log:            slog.Default(),
		timers:         stagetimer.DefaultTimers(),
		alertThreshold: defaultAlertThreshold,
		matchLimit:     defaultMatchLimit,
		alertCooldown:  defaultAlertCooldown,
		nowFunc:        time.Now,
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithTimers overrides the default stage timer durations.
func WithTimers(t stagetimer.Timers) EngineOption {
	return func(e *Engine) {
		e.timers = t
	}
}

// WithAlertThreshold sets the minimum score for a match to fire an alert.
func WithAlertThreshold(threshold int) EngineOption {
	return func(e *Engine) {
		e.alertThreshold = threshold
	}
}

// WithMatchLimit caps the number of matches examined per buyer during refresh.
func WithMatchLimit(limit int) EngineOption {
	return func(e *Engine) {
		e.matchLimit = limit
	}
}

// WithAlertCooldown sets how long a notified (buyer, listing) pair is
// suppressed before a new alert can fire.
func WithAlertCooldown(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.alertCooldown = d
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) EngineOption {
	return func(e *Engine) {
		e.nowFunc = f
	}
}

// Timers returns the engine's effective stage timer configuration.
func (eng *Engine) Timers() stagetimer.Timers {
	return eng.timers
}
