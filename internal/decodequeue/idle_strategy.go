// idle_strategy.go: Consumer idle strategies for the decode queue
//
// Two strategies cover a bounded-producer decode pipeline: spin for the
// -stream low-latency path, sleep (the ring's default when none is
// configured) where producers are far slower than the consumer.
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package decodequeue

import "time"

// IdleStrategy controls how the consumer loop waits when no work is
// available, trading latency against CPU usage.
type IdleStrategy interface {
	// Idle is called when no work is available. Returns true if the
	// caller should continue processing, false if it should check for
	// shutdown.
	Idle() bool

	// Reset is called when work is found, to reset internal state.
	Reset()

	String() string
}

// SpinningIdleStrategy never yields the CPU; minimum latency, ~100% of
// one core while idle. Used for the stdin -stream path where decode
// latency matters and the process has nothing else to do.
type SpinningIdleStrategy struct{}

func NewSpinningIdleStrategy() *SpinningIdleStrategy { return &SpinningIdleStrategy{} }

func (s *SpinningIdleStrategy) Idle() bool { return true }
func (s *SpinningIdleStrategy) Reset()     {}
func (s *SpinningIdleStrategy) String() string {
	return "spinning"
}

// SleepingIdleStrategy spins briefly then sleeps, reducing CPU usage when
// producers trickle in tasks far slower than the consumer can decode
// them. Build uses it when no strategy is configured.
type SleepingIdleStrategy struct {
	sleepDuration time.Duration
	spins         int
	maxSpins      int
}

// NewSleepingIdleStrategy returns a strategy that spins maxSpins times
// before sleeping sleepDuration between checks.
func NewSleepingIdleStrategy(sleepDuration time.Duration, maxSpins int) *SleepingIdleStrategy {
	if sleepDuration <= 0 {
		sleepDuration = time.Millisecond
	}
	if maxSpins < 0 {
		maxSpins = 0
	}
	return &SleepingIdleStrategy{sleepDuration: sleepDuration, maxSpins: maxSpins}
}

func (s *SleepingIdleStrategy) Idle() bool {
	if s.spins < s.maxSpins {
		s.spins++
		return true
	}
	time.Sleep(s.sleepDuration)
	return true
}

func (s *SleepingIdleStrategy) Reset() { s.spins = 0 }
func (s *SleepingIdleStrategy) String() string {
	return "sleeping"
}
