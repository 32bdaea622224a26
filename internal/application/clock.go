package application

import "time"

// Clock abstraction so record timestamps are testable.
type Clock interface {
	Now() time.Time
}

// SystemClock is the default, backed by time.Now().
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
