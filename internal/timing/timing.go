// Package timing measures the phases of a search run.
package timing

import (
	"fmt"
	"strings"
	"time"

	"github.com/NikitaCOEUR/wsfind/internal/logger"
)

// Timer records the duration of consecutive phases
type Timer struct {
	start  time.Time
	last   time.Time
	phases map[string]time.Duration
	order  []string
}

// NewTimer creates a new timer
func NewTimer() *Timer {
	now := time.Now()
	return &Timer{
		start:  now,
		last:   now,
		phases: make(map[string]time.Duration),
	}
}

// Mark closes the current phase under label and returns its duration.
// Marking the same label twice accumulates.
func (t *Timer) Mark(label string) time.Duration {
	now := time.Now()
	d := now.Sub(t.last)
	t.last = now

	if _, seen := t.phases[label]; !seen {
		t.order = append(t.order, label)
	}
	t.phases[label] += d
	return d
}

// Elapsed returns total elapsed time since timer creation
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Get returns the duration recorded for a phase
func (t *Timer) Get(label string) (time.Duration, bool) {
	d, ok := t.phases[label]
	return d, ok
}

// Fields attaches every phase and the total to a log entry
func (t *Timer) Fields(e *logger.Entry) *logger.Entry {
	for _, label := range t.order {
		e = e.Dur(label, t.phases[label])
	}
	return e.Dur("total", t.Elapsed())
}

// Summary returns a formatted summary of all phases
func (t *Timer) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total: %.3fms", ms(t.Elapsed()))

	if len(t.order) > 0 {
		b.WriteString(" (")
		for i, label := range t.order {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%s: %.3fms", label, ms(t.phases[label]))
		}
		b.WriteString(")")
	}

	return b.String()
}

func ms(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000.0
}
