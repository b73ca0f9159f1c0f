// Package analyzer converts free-text task descriptions into structured
// profiles using keyword tables.
package analyzer

import (
	"sort"
	"strings"

	"github.com/zen-systems/taskrouter/pkg/config"
)

// Level is a three-tier rating for complexity and urgency.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// DefaultTaskType is assigned when no task-type keywords match.
const DefaultTaskType = "general"

// Profile is the structured view of a task description. TaskTypes is ordered
// by match strength, primary first. Keywords holds every matched keyword and
// feeds the capability-overlap scoring term.
type Profile struct {
	TaskTypes  []string `json:"task_types"`
	Domains    []string `json:"domains,omitempty"`
	Complexity Level    `json:"complexity"`
	Urgency    Level    `json:"urgency"`
	Keywords   []string `json:"keywords,omitempty"`
}

// Primary returns the strongest-matching task type.
func (p Profile) Primary() string {
	if len(p.TaskTypes) == 0 {
		return DefaultTaskType
	}
	return p.TaskTypes[0]
}

// Analyzer performs table-driven text analysis. It is stateless and safe for
// concurrent use.
type Analyzer struct {
	cfg *config.RouterConfig
}

// New creates an analyzer over the given tables.
func New(cfg *config.RouterConfig) *Analyzer {
	return &Analyzer{cfg: cfg}
}

type candidate struct {
	name  string
	score int
}

// Analyze builds a profile for the text. Analysis never fails: empty or
// unmatched input degrades to the "general" task type with medium
// complexity and urgency.
func (a *Analyzer) Analyze(text string) Profile {
	lower := strings.ToLower(text)

	profile := Profile{
		Complexity: matchTier(lower, a.cfg.Complexity),
		Urgency:    matchTier(lower, a.cfg.Urgency),
	}

	var candidates []candidate
	for _, rule := range a.cfg.TaskTypes {
		matched := matchKeywords(lower, rule.Keywords)
		if len(matched) == 0 {
			continue
		}
		candidates = append(candidates, candidate{name: rule.Name, score: len(matched)})
		profile.Keywords = append(profile.Keywords, matched...)
	}

	// Stable sort keeps table-declared order on equal match counts.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	if len(candidates) > 3 {
		candidates = candidates[:3]
	}

	for _, c := range candidates {
		profile.TaskTypes = append(profile.TaskTypes, c.name)
	}
	if len(profile.TaskTypes) == 0 {
		profile.TaskTypes = []string{DefaultTaskType}
	}

	for _, rule := range a.cfg.Domains {
		matched := matchKeywords(lower, rule.Keywords)
		if len(matched) == 0 {
			continue
		}
		profile.Domains = append(profile.Domains, rule.Name)
		profile.Keywords = append(profile.Keywords, matched...)
	}

	profile.Keywords = dedupe(profile.Keywords)
	return profile
}

// matchKeywords returns every keyword present in the text. Matching is
// case-insensitive substring containment.
func matchKeywords(lower string, keywords []string) []string {
	var matched []string
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(kw)) {
			matched = append(matched, strings.ToLower(kw))
		}
	}
	return matched
}

// matchTier scans high, then medium, then low; first tier with a match wins.
func matchTier(lower string, rule config.TierRule) Level {
	if len(matchKeywords(lower, rule.High)) > 0 {
		return LevelHigh
	}
	if len(matchKeywords(lower, rule.Medium)) > 0 {
		return LevelMedium
	}
	if len(matchKeywords(lower, rule.Low)) > 0 {
		return LevelLow
	}
	return LevelMedium
}

func dedupe(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(in))
	out := in[:0]
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
