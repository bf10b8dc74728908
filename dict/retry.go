package dict

import (
	"time"

	"github.com/avast/retry-go/v4"
)

// Retry wraps a Dictionary with bounded retries for backends that may fail
// transiently (network dictionaries, subprocess lookups). Deterministic
// classification logic never retries; only collaborator calls do.
type Retry struct {
	dict     Dictionary
	attempts uint
	delay    time.Duration
}

// NewRetry creates a retrying wrapper around d. attempts is the total number
// of tries; delay is the base delay between them.
func NewRetry(d Dictionary, attempts uint, delay time.Duration) *Retry {
	if attempts < 1 {
		attempts = 1
	}
	return &Retry{dict: d, attempts: attempts, delay: delay}
}

// Contains looks up word, retrying on error up to the configured number of
// attempts. The last error is returned once attempts are exhausted.
func (r *Retry) Contains(word string) (bool, error) {
	var ok bool
	err := retry.Do(
		func() error {
			var err error
			ok, err = r.dict.Contains(word)
			return err
		},
		retry.Attempts(r.attempts),
		retry.Delay(r.delay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return false, err
	}
	return ok, nil
}
