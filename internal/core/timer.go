package core

import "time"

// Interval fires at a fixed period. Time is fed explicitly through Advance so
// several intervals can run side by side off one frame clock without
// influencing each other.
type Interval struct {
	period      time.Duration
	accumulator time.Duration
}

// NewInterval constructs an Interval with the given period. Non-positive
// periods fall back to one second.
func NewInterval(period time.Duration) *Interval {
	iv := &Interval{}
	iv.SetPeriod(period)
	return iv
}

// Period returns the current firing period.
func (iv *Interval) Period() time.Duration { return iv.period }

// SetPeriod changes the firing period. Accumulated time is kept.
func (iv *Interval) SetPeriod(period time.Duration) {
	if period <= 0 {
		period = time.Second
	}
	iv.period = period
}

// Restart discards accumulated time so the next fire is a full period away.
func (iv *Interval) Restart() {
	iv.accumulator = 0
}

// Advance adds dt to the interval and returns how many periods elapsed.
func (iv *Interval) Advance(dt time.Duration) int {
	if dt <= 0 {
		return 0
	}
	iv.accumulator += dt
	fires := int(iv.accumulator / iv.period)
	iv.accumulator -= time.Duration(fires) * iv.period
	return fires
}
