// Package srs implements the spaced-repetition review scheduler. The
// scheduling policy is a pure function from a knowledge level to a review
// offset; all state lives with the caller.
package srs

import (
	"errors"
	"time"

	"github.com/yardenlev/mikra-api/internal/domain"
)

// Common errors
var (
	ErrInvalidLevel = errors.New("invalid knowledge level")
)

// Scheduler defines the interface for review scheduling operations.
type Scheduler interface {
	// NextReviewOffset returns the duration after which a word drilled at
	// the given level becomes due again.
	NextReviewOffset(level domain.KnowledgeLevel) time.Duration

	// Schedule computes the absolute next-review time for a drill at the
	// given level performed at now. Returns ErrInvalidLevel for a level
	// outside the closed enum.
	Schedule(level domain.KnowledgeLevel, now time.Time) (time.Time, error)
}

// defaultScheduler is the standard implementation of the Scheduler interface.
type defaultScheduler struct {
	params *Params
}

// NewDefaultScheduler creates a Scheduler with the default interval policy.
func NewDefaultScheduler() Scheduler {
	return &defaultScheduler{params: NewDefaultParams()}
}

// NewSchedulerWithParams creates a Scheduler with custom intervals.
func NewSchedulerWithParams(params *Params) Scheduler {
	return &defaultScheduler{params: params}
}

// NextReviewOffset implements Scheduler.NextReviewOffset.
func (s *defaultScheduler) NextReviewOffset(level domain.KnowledgeLevel) time.Duration {
	if d, ok := s.params.Intervals[level]; ok {
		return d
	}
	return s.params.DefaultInterval
}

// Schedule implements Scheduler.Schedule.
func (s *defaultScheduler) Schedule(level domain.KnowledgeLevel, now time.Time) (time.Time, error) {
	if !level.Valid() {
		return time.Time{}, ErrInvalidLevel
	}
	return now.Add(s.NextReviewOffset(level)), nil
}
