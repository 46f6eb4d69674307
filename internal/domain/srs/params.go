package srs

import (
	"time"

	"github.com/yardenlev/mikra-api/internal/domain"
)

// Params defines the configurable review intervals for the scheduler.
// The policy is a three-tier escalation: less confident words resurface
// sooner, confidently known words are deferred.
type Params struct {
	// Intervals maps each knowledge level to the offset until the next
	// review after a drill at that level.
	Intervals map[domain.KnowledgeLevel]time.Duration

	// DefaultInterval is used for any level without an entry in Intervals.
	DefaultInterval time.Duration
}

// NewDefaultParams returns the standard intervals: one day while a word is
// still being learned, three days once known, seven days once mastered.
// Levels without an entry, including any written before a level existed,
// fall back to the seven-day default.
func NewDefaultParams() *Params {
	return &Params{
		Intervals: map[domain.KnowledgeLevel]time.Duration{
			domain.KnowledgeLearning: 24 * time.Hour,
			domain.KnowledgeKnown:    3 * 24 * time.Hour,
			domain.KnowledgeMastered: 7 * 24 * time.Hour,
		},
		DefaultInterval: 7 * 24 * time.Hour,
	}
}
