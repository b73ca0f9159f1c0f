// Package scoring computes per-handler fit scores for a task profile.
package scoring

import (
	"fmt"
	"strings"

	"github.com/zen-systems/taskrouter/pkg/analyzer"
	"github.com/zen-systems/taskrouter/pkg/config"
	"github.com/zen-systems/taskrouter/pkg/handler"
)

// Match-level contributions per task type.
const (
	primaryMatch   = 0.95
	secondaryMatch = 0.80
	overlapMatch   = 0.60
	noMatch        = 0.20
)

// primaryBoost multiplies the running total when any task-type match is
// primary-level.
const primaryBoost = 1.2

// Score captures how well one handler fits one profile.
type Score struct {
	HandlerID           string  `json:"handler_id"`
	Confidence          float64 `json:"confidence"`
	Reasoning           string  `json:"reasoning,omitempty"`
	EstimatedEfficiency float64 `json:"estimated_efficiency"`
}

// Engine scores handlers against task profiles. It is a pure function over
// the configured ranking tables: no side effects, never errors, safe for
// concurrent use.
type Engine struct {
	cfg *config.RouterConfig
}

// New creates a scoring engine over the given tables.
func New(cfg *config.RouterConfig) *Engine {
	return &Engine{cfg: cfg}
}

// Score computes the weighted confidence for a handler. The primary task
// type carries double weight, domains half weight, and capability-keyword
// overlap 0.3 weight; the result is clamped to [0, 1].
func (e *Engine) Score(profile analyzer.Profile, desc handler.Descriptor) Score {
	tags := tagSet(desc)

	var sum, weight float64
	var reasons []string
	sawPrimary := false

	for i, taskType := range profile.TaskTypes {
		value, kind := e.taskTypeMatch(taskType, desc, tags)
		w := 1.0
		if i == 0 {
			w = 2.0
		}
		sum += value * w
		weight += w
		if value >= 0.90 {
			sawPrimary = true
		}
		if kind != "" {
			reasons = append(reasons, fmt.Sprintf("%s match for %q", kind, taskType))
		}
	}

	for _, domain := range profile.Domains {
		sum += desc.Affinity(domain) * 0.5
		weight += 0.5
	}

	overlap := keywordOverlap(profile.Keywords, tags)
	sum += overlap * 0.3
	weight += 0.3
	if overlap > 0 {
		reasons = append(reasons, fmt.Sprintf("keyword overlap %.2f", overlap))
	}

	if weight == 0 {
		return Score{HandlerID: desc.ID, Reasoning: "no scoring terms"}
	}

	avg := sum / weight
	efficiency := clamp01(avg)

	if sawPrimary {
		avg *= primaryBoost
		reasons = append(reasons, "primary-match boost")
	}
	avg *= e.cfg.ComplexityMultiplier(desc.ID, string(profile.Complexity))

	return Score{
		HandlerID:           desc.ID,
		Confidence:          clamp01(avg),
		Reasoning:           strings.Join(reasons, "; "),
		EstimatedEfficiency: efficiency,
	}
}

// taskTypeMatch resolves the contribution for one task type: declared
// primary, declared secondary, capability-overlap, or the floor value.
func (e *Engine) taskTypeMatch(taskType string, desc handler.Descriptor, tags map[string]bool) (float64, string) {
	if ranking, ok := e.cfg.Ranking(taskType); ok {
		if ranking.Primary == desc.ID {
			return primaryMatch, "primary"
		}
		for _, id := range ranking.Secondary {
			if id == desc.ID {
				return secondaryMatch, "secondary"
			}
		}
	}
	if tagContains(tags, taskType) {
		return overlapMatch, "capability"
	}
	return noMatch, ""
}

// keywordOverlap returns the fraction of profile keywords found among the
// handler's capability and tool tags.
func keywordOverlap(keywords []string, tags map[string]bool) float64 {
	if len(keywords) == 0 {
		return 0
	}
	matches := 0
	for _, kw := range keywords {
		if tagContains(tags, kw) {
			matches++
		}
	}
	return float64(matches) / float64(len(keywords))
}

func tagSet(desc handler.Descriptor) map[string]bool {
	tags := make(map[string]bool, len(desc.Capabilities)+len(desc.Tools))
	for _, c := range desc.Capabilities {
		tags[strings.ToLower(c)] = true
	}
	for _, t := range desc.Tools {
		tags[strings.ToLower(t)] = true
	}
	return tags
}

func tagContains(tags map[string]bool, term string) bool {
	term = strings.ToLower(term)
	if tags[term] {
		return true
	}
	for tag := range tags {
		if strings.Contains(tag, term) {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
