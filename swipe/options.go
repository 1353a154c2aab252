package swipe

import (
	"time"

	"github.com/rs/zerolog"
)

// DefaultSlideDuration is how long an animated open or close takes.
const DefaultSlideDuration = 200 * time.Millisecond

type settings struct {
	density          float64
	slideDuration    time.Duration
	settleDelay      time.Duration
	openBeforeLayout bool
	openOnlyOne      bool
	logger           zerolog.Logger
}

func defaultSettings() settings {
	return settings{
		density:       1,
		slideDuration: DefaultSlideDuration,
		settleDelay:   SettleDelay,
		logger:        zerolog.Nop(),
	}
}

// Option configures a Row or a Coordinator. Options that do not apply to
// the value being built are ignored.
type Option func(*settings)

// WithDensity sets how many host units make one density-independent unit.
// Release velocities are divided by it before the fling check.
func WithDensity(d float64) Option {
	return func(s *settings) {
		if d > 0 {
			s.density = d
		}
	}
}

// WithSlideDuration sets the duration of animated opens and closes.
func WithSlideDuration(d time.Duration) Option {
	return func(s *settings) {
		if d >= 0 {
			s.slideDuration = d
		}
	}
}

// WithSettleDelay overrides SettleDelay for full swipes.
func WithSettleDelay(d time.Duration) Option {
	return func(s *settings) {
		if d >= 0 {
			s.settleDelay = d
		}
	}
}

// OpenBeforeLayout makes a new row start open.
func OpenBeforeLayout() Option {
	return func(s *settings) { s.openBeforeLayout = true }
}

// WithOpenOnlyOne sets the coordinator's initial open-only-one policy.
func WithOpenOnlyOne(on bool) Option {
	return func(s *settings) { s.openOnlyOne = on }
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *settings) { s.logger = l }
}

func buildSettings(opts []Option) settings {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
