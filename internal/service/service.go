// Package service implements create/list/get/update/delete for the
// support request and appointment resources on top of a repository,
// enforcing the resource schemas before any write.
package service

import (
	"time"

	"careconnect/internal/utils"
)

// Option customizes a service. Mostly useful in tests.
type Option func(*base)

type base struct {
	now   func() time.Time
	newID func() string
}

func newBase(opts []Option) base {
	b := base{
		now:   time.Now,
		newID: utils.NanoID,
	}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// WithClock replaces the time source used for createdAt/updatedAt.
func WithClock(now func() time.Time) Option {
	return func(b *base) { b.now = now }
}

// WithIDGenerator replaces the identifier generator.
func WithIDGenerator(newID func() string) Option {
	return func(b *base) { b.newID = newID }
}

// timestamp is truncated to milliseconds so records read back from any
// backend compare equal to what was written.
func (b base) timestamp() time.Time {
	return b.now().UTC().Truncate(time.Millisecond)
}
