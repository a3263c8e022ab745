package inventory

import "time"

// Option configures an Assembler.
type Option func(*Assembler)

// Concurrency bounds the number of fetches in flight.
func Concurrency(n int) Option {
	return func(a *Assembler) {
		a.concurrency = n
	}
}

// FetchTimeout bounds each individual fetch. Zero disables the bound.
func FetchTimeout(d time.Duration) Option {
	return func(a *Assembler) {
		a.fetchTimeout = d
	}
}

// Clock replaces time.Now for snapshot timestamps.
func Clock(now func() time.Time) Option {
	return func(a *Assembler) {
		a.now = now
	}
}
