// Package countdown models the remaining time of a single run. A
// Countdown only ever counts down: once the remaining time reaches zero
// it stays there until the process exits.
package countdown

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Countdown tracks remaining time against the configured total.
type Countdown struct {
	remaining time.Duration
	total     time.Duration
}

// New creates a countdown over the given total duration.
func New(total time.Duration) *Countdown {
	if total < 0 {
		total = 0
	}
	return &Countdown{remaining: total, total: total}
}

// Tick advances the countdown by step, flooring the remaining time at zero.
func (c *Countdown) Tick(step time.Duration) {
	if step <= 0 {
		return
	}
	c.remaining -= step
	if c.remaining < 0 {
		c.remaining = 0
	}
}

// Remaining returns the time left on the countdown.
func (c *Countdown) Remaining() time.Duration {
	return c.remaining
}

// Total returns the configured total duration.
func (c *Countdown) Total() time.Duration {
	return c.total
}

// Done reports whether the countdown has reached zero.
func (c *Countdown) Done() bool {
	return c.remaining == 0
}

// Percent returns the elapsed fraction in [0, 1] for the progress bar.
func (c *Countdown) Percent() float64 {
	if c.total == 0 {
		return 1
	}
	p := 1 - c.remaining.Seconds()/c.total.Seconds()
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Format renders the remaining time as MM:SS, hours folded into minutes.
func (c *Countdown) Format() string {
	secs := int(c.remaining.Seconds())
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// ParseTokens sums human countdown tokens such as "1h", "2m" or "30s".
// An empty token list yields a zero duration, meaning no countdown.
func ParseTokens(tokens []string) (time.Duration, error) {
	var total time.Duration

	for _, token := range tokens {
		if len(token) < 2 {
			return 0, fmt.Errorf("invalid time argument %q: want a value with 'h', 'm' or 's' suffix", token)
		}

		value, unit := token[:len(token)-1], token[len(token)-1:]
		n, err := strconv.ParseUint(strings.TrimSpace(value), 10, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid time amount %q in %q", value, token)
		}

		switch unit {
		case "h":
			total += time.Duration(n) * time.Hour
		case "m":
			total += time.Duration(n) * time.Minute
		case "s":
			total += time.Duration(n) * time.Second
		default:
			return 0, fmt.Errorf("invalid time unit %q in %q: want 'h', 'm' or 's'", unit, token)
		}
	}

	return total, nil
}
