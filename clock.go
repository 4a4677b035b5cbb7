package postpilot

import "time"

// Clock abstracts time so slot selection and waiting can be driven by tests
// with arbitrary nows.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

// SystemClock returns a Clock backed by the real time package.
func SystemClock() Clock {
	return systemClock{}
}
