// Package business holds the rules every post and comment must satisfy before it
// reaches storage. The repositories never re-validate.
package business

import (
	"time"
)

// Option configures a business component.
type Option func(*options)

type options struct {
	now              func() time.Time
	serverTimestamps bool
}

// WithClock replaces the time source used for CreationDate.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithServerTimestamps makes the server the only source of CreationDate: it is
// assigned on create and carried over from storage on update.
func WithServerTimestamps(on bool) Option {
	return func(o *options) {
		o.serverTimestamps = on
	}
}

func newOptions(opts []Option) options {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) creationDate(supplied time.Time) time.Time {
	if o.serverTimestamps || supplied.IsZero() {
		return o.now().UTC()
	}
	return supplied
}

func (o options) updatedCreationDate(supplied, stored time.Time) time.Time {
	if o.serverTimestamps || supplied.IsZero() {
		return stored
	}
	return supplied
}
