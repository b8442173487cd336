package widget

import (
	"context"
	"fmt"
	"time"

	"github.com/visalkrishnan/shopify-product-countdown-timer/model"
)

const (
	millisPerDay    = 86400000
	millisPerHour   = 3600000
	millisPerMinute = 60000
	millisPerSecond = 1000
)

// Breakdown of the remaining time
type Breakdown struct {
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
}

// Decompose floors each unit, the remainder goes to the next smaller unit
func Decompose(remaining time.Duration) Breakdown {
	ms := remaining.Milliseconds()

	days := ms / millisPerDay
	ms %= millisPerDay

	hours := ms / millisPerHour
	ms %= millisPerHour

	minutes := ms / millisPerMinute
	ms %= millisPerMinute

	return Breakdown{
		Days:    days,
		Hours:   hours,
		Minutes: minutes,
		Seconds: ms / millisPerSecond,
	}
}

func (b Breakdown) String() string {
	return fmt.Sprintf("%dd %dh %dm %ds", b.Days, b.Hours, b.Minutes, b.Seconds)
}

// State of a countdown clock
type State int

const (
	// StateRunning ...
	StateRunning State = iota + 1

	// StateExpired is terminal
	StateExpired
)

// Frame is what the widget shows after one tick
type Frame struct {
	State     State
	Remaining time.Duration
	Breakdown Breakdown

	UrgencyActive bool
	Color         string
	Pulse         bool
	Banner        bool
}

// Evaluate computes the frame at now. Urgency is evaluated from scratch on every call,
// so a skipped tick or a clock moved backwards is corrected on the next one.
func Evaluate(expiry time.Time, now time.Time, display model.Display, urgency model.Urgency) Frame {
	remaining := expiry.Sub(now)
	if remaining <= 0 {
		return Frame{State: StateExpired}
	}

	frame := Frame{
		State:     StateRunning,
		Remaining: remaining,
		Breakdown: Decompose(remaining),
		Color:     display.Color,
	}

	if urgency.Type == model.UrgencyTypeNone || urgency.Type == "" {
		return frame
	}

	if urgencyActive(remaining, urgency.TriggerMinutes) {
		frame.UrgencyActive = true
		frame.Color = urgency.Color
		frame.Pulse = urgency.Type == model.UrgencyTypePulse
		frame.Banner = urgency.Type == model.UrgencyTypeBanner
	}
	return frame
}

// urgencyActive compares at millisecond precision, so 15m01s left is above a 15 minute threshold.
// A zero threshold covers the last minute.
func urgencyActive(remaining time.Duration, triggerMinutes int64) bool {
	if triggerMinutes == 0 {
		return remaining < time.Minute
	}
	return remaining <= time.Duration(triggerMinutes)*time.Minute
}

// Renderer is the display of one widget, only called from the clock goroutine
type Renderer interface {
	Render(frame Frame)

	// Hide is called once, when the countdown expires
	Hide()
}

// Ticker ...
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

type timeTicker struct {
	ticker *time.Ticker
}

func (t timeTicker) C() <-chan time.Time {
	return t.ticker.C
}

func (t timeTicker) Stop() {
	t.ticker.Stop()
}

// ClockOptions ...
type ClockOptions struct {
	Display model.Display
	Urgency model.Urgency

	Period    time.Duration
	Now       func() time.Time
	NewTicker func(d time.Duration) Ticker
}

func (o ClockOptions) withDefaults() ClockOptions {
	if o.Period <= 0 {
		o.Period = time.Second
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.NewTicker == nil {
		o.NewTicker = func(d time.Duration) Ticker {
			return timeTicker{ticker: time.NewTicker(d)}
		}
	}
	return o
}

// Handle of a running clock
type Handle struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Cancel stops the clock without hiding the widget, safe to call many times
func (h *Handle) Cancel() {
	h.cancel()
}

// Done is closed when the clock goroutine returns
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Start evaluates immediately, then once per period until expired or canceled.
// A clock whose expiry is already past hides the widget without rendering any frame.
func Start(ctx context.Context, expiry time.Time, renderer Renderer, options ClockOptions) *Handle {
	options = options.withDefaults()
	ctx, cancel := context.WithCancel(ctx)

	h := &Handle{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(h.done)
		defer cancel()
		runClock(ctx, expiry, renderer, options)
	}()

	return h
}

func runClock(ctx context.Context, expiry time.Time, renderer Renderer, options ClockOptions) {
	tick := func() bool {
		frame := Evaluate(expiry, options.Now(), options.Display, options.Urgency)
		if frame.State == StateExpired {
			renderer.Hide()
			return false
		}
		renderer.Render(frame)
		return true
	}

	if !tick() {
		return
	}

	ticker := options.NewTicker(options.Period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			if !tick() {
				return
			}
		}
	}
}
