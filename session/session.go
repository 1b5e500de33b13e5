package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/katalvlaran/biocycle/activity"
	"github.com/katalvlaran/biocycle/biorhythm"
	"github.com/katalvlaran/biocycle/calendar"
	"github.com/katalvlaran/biocycle/cycle"
	"github.com/katalvlaran/biocycle/pattern"
	"github.com/katalvlaran/biocycle/sampler"
	"go.uber.org/zap"
)

// Session is one user's working state. mu guards birth and hasBirth; the
// registry carries its own lock.
type Session struct {
	mu       sync.RWMutex
	birth    time.Time
	hasBirth bool

	registry  *activity.Registry
	epsilon   float64
	threshold float64
	logger    *zap.Logger
}

// ActivityPeriods pairs an activity with its favorable periods in a window.
type ActivityPeriods struct {
	Activity activity.Activity
	Periods  []pattern.Period
}

// New creates a Session without a birth date.
func New(opts ...Option) *Session {
	s := &Session{
		epsilon:   defaultEpsilon,
		threshold: activity.DefaultThreshold,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = activity.NewRegistry(activity.WithLogger(s.logger))
	}

	return s
}

// SetBirthDate stores the normalized birth date and reports whether it
// differs from the previous one. The first call always reports true.
func (s *Session) SetBirthDate(birth time.Time) bool {
	birth = calendar.Normalize(birth)

	s.mu.Lock()
	changed := !s.hasBirth || !s.birth.Equal(birth)
	s.birth, s.hasBirth = birth, true
	s.mu.Unlock()

	if changed {
		s.logger.Debug("birth date set", zap.String("birth", calendar.Format(birth)))
	}

	return changed
}

// BirthDate returns the birth date and whether one is set.
func (s *Session) BirthDate() (time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.birth, s.hasBirth
}

// Registry returns the session's activity registry.
func (s *Session) Registry() *activity.Registry { return s.registry }

// DefaultThreshold returns the threshold "add" uses when none is given.
func (s *Session) DefaultThreshold() float64 { return s.threshold }

// Epsilon returns the critical-day tolerance in use.
func (s *Session) Epsilon() float64 { return s.epsilon }

// Today returns the three readings for day.
func (s *Session) Today(day time.Time) ([]biorhythm.Reading, error) {
	birth, err := s.requireBirth()
	if err != nil {
		return nil, err
	}

	return biorhythm.ReadingFor(birth, day), nil
}

// Series samples c over [from, to].
func (s *Session) Series(c cycle.Cycle, from, to time.Time) (sampler.Series, error) {
	birth, err := s.requireBirth()
	if err != nil {
		return sampler.Series{}, err
	}

	return sampler.Sample(birth, c, from, to)
}

// CriticalDays samples c over [from, to] and returns its critical dates
// using the session epsilon.
func (s *Session) CriticalDays(c cycle.Cycle, from, to time.Time) ([]time.Time, error) {
	series, err := s.Series(c, from, to)
	if err != nil {
		return nil, err
	}

	return pattern.CriticalDays(series, pattern.WithEpsilon(s.epsilon))
}

// FavorablePeriods samples c over [from, to] and returns the runs at or
// above threshold.
func (s *Session) FavorablePeriods(c cycle.Cycle, threshold float64, from, to time.Time) ([]pattern.Period, error) {
	series, err := s.Series(c, from, to)
	if err != nil {
		return nil, err
	}

	return pattern.FavorablePeriods(series, threshold)
}

// ActivityPeriods joins every registered activity to its favorable periods
// over [from, to], in registry order. Each cycle is sampled at most once.
func (s *Session) ActivityPeriods(from, to time.Time) ([]ActivityPeriods, error) {
	birth, err := s.requireBirth()
	if err != nil {
		return nil, err
	}

	acts := s.registry.List()
	out := make([]ActivityPeriods, 0, len(acts))
	series := make(map[cycle.Cycle]sampler.Series, len(cycle.All()))
	for _, a := range acts {
		sr, ok := series[a.Category]
		if !ok {
			if sr, err = sampler.Sample(birth, a.Category, from, to); err != nil {
				return nil, err
			}
			series[a.Category] = sr
		}

		periods, err := s.registry.FavorablePeriodsFor(a, sr)
		if err != nil {
			return nil, fmt.Errorf("activity %s: %w", a.ID, err)
		}
		out = append(out, ActivityPeriods{Activity: a, Periods: periods})
	}

	return out, nil
}

func (s *Session) requireBirth() (time.Time, error) {
	birth, ok := s.BirthDate()
	if !ok {
		return time.Time{}, ErrNoBirthDate
	}

	return birth, nil
}
