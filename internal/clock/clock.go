// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package clock

import (
	"time"
)

// ClockInterface abstracts wall clock reads so expiry logic can be tested at
// exact boundaries.
type ClockInterface interface {
	Now() time.Time
}

type Clock struct{}

func (Clock) Now() time.Time {
	return time.Now().UTC()
}

func NewClock() Clock {
	return Clock{}
}

// Fixed is a clock pinned to a single instant.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time {
	return f.T
}
