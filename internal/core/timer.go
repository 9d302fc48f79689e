package core

import "time"

// Pacer releases generations at a steady generations-per-second rate,
// independent of the frame rate of whatever drives it.
type Pacer struct {
	interval time.Duration
	pending  time.Duration
	last     time.Time
	now      func() time.Time
}

// NewPacer constructs a Pacer targeting gps generations per second. Values
// below one fall back to ten.
func NewPacer(gps int) *Pacer {
	p := &Pacer{now: time.Now}
	p.SetRate(gps)
	p.pending = p.interval
	return p
}

// SetRate changes the generation rate.
func (p *Pacer) SetRate(gps int) {
	if gps <= 0 {
		gps = 10
	}
	p.interval = time.Second / time.Duration(gps)
}

// Due returns how many generations are owed since the previous call. The
// count is capped at max so a stalled caller does not burst.
func (p *Pacer) Due(max int) int {
	now := p.now()
	if p.last.IsZero() {
		p.last = now
	}
	p.pending += now.Sub(p.last)
	p.last = now

	n := 0
	for p.pending >= p.interval && n < max {
		p.pending -= p.interval
		n++
	}
	if n == max {
		p.pending = 0
	}
	return n
}
