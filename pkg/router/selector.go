package router

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/zen-systems/taskrouter/pkg/analyzer"
	"github.com/zen-systems/taskrouter/pkg/scoring"
)

// ErrEmptyRegistry is returned when routing is attempted with no handlers
// registered.
var ErrEmptyRegistry = errors.New("no handlers registered")

// maxAlternatives caps the runner-up list on a decision.
const maxAlternatives = 2

// Select ranks scores and picks the winner. Scores must be in registration
// order: the stable sort makes the earliest-registered handler win exact
// confidence ties. No minimum-confidence gate is applied; callers inspect
// Confidence and branch if they want one.
func Select(scores []scoring.Score, profile analyzer.Profile) (*Decision, error) {
	if len(scores) == 0 {
		return nil, ErrEmptyRegistry
	}

	ranked := make([]scoring.Score, len(scores))
	copy(ranked, scores)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Confidence > ranked[j].Confidence
	})

	top := ranked[0]
	decision := &Decision{
		ID:         uuid.NewString(),
		HandlerID:  top.HandlerID,
		Confidence: top.Confidence,
		Reasoning:  top.Reasoning,
		Profile:    profile,
		Timestamp:  time.Now().UTC(),
	}

	for _, s := range ranked[1:] {
		if len(decision.Alternatives) == maxAlternatives {
			break
		}
		decision.Alternatives = append(decision.Alternatives, Alternative{
			HandlerID:  s.HandlerID,
			Confidence: s.Confidence,
			Reasoning:  s.Reasoning,
		})
	}

	return decision, nil
}
