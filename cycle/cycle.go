package cycle

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCycle indicates that a text label does not name any Cycle.
var ErrUnknownCycle = errors.New("cycle: unknown cycle")

// Cycle enumerates the three biorhythm cycles.
// The zero value is Physical.
type Cycle int

const (
	// Physical covers energy, strength and coordination. Period: 23 days.
	Physical Cycle = iota

	// Emotional covers mood and sensitivity. Period: 28 days.
	Emotional

	// Intellectual covers memory and reasoning. Period: 33 days.
	Intellectual
)

// Periods in days, indexed by Cycle.
const (
	PhysicalPeriod     = 23
	EmotionalPeriod    = 28
	IntellectualPeriod = 33
)

var (
	periods = [...]int{PhysicalPeriod, EmotionalPeriod, IntellectualPeriod}
	names   = [...]string{"Physical", "Emotional", "Intellectual"}
)

// aliases maps lower-cased labels to cycles. The French labels are the
// category names used by earlier releases of the activity form.
var aliases = map[string]Cycle{
	"physical":     Physical,
	"emotional":    Emotional,
	"intellectual": Intellectual,
	"physique":     Physical,
	"émotionnel":   Emotional,
	"emotionnel":   Emotional,
	"intellectuel": Intellectual,
}

// All returns every cycle in declaration order.
func All() []Cycle {
	return []Cycle{Physical, Emotional, Intellectual}
}

// Valid reports whether c is one of the declared cycles.
func (c Cycle) Valid() bool {
	return c >= Physical && c <= Intellectual
}

// Period returns the cycle length in days, or 0 for an invalid Cycle.
func (c Cycle) Period() int {
	if !c.Valid() {
		return 0
	}

	return periods[c]
}

// String returns the canonical English name.
func (c Cycle) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Cycle(%d)", int(c))
	}

	return names[c]
}

// Parse resolves a case-insensitive label to a Cycle.
// Surrounding whitespace is ignored.
func Parse(label string) (Cycle, error) {
	key := strings.ToLower(strings.TrimSpace(label))
	if c, ok := aliases[key]; ok {
		return c, nil
	}

	return 0, fmt.Errorf("%q: %w", label, ErrUnknownCycle)
}

// MarshalText implements encoding.TextMarshaler.
func (c Cycle) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%d: %w", int(c), ErrUnknownCycle)
	}

	return []byte(strings.ToLower(names[c])), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via Parse.
func (c *Cycle) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed

	return nil
}
