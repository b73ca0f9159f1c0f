package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// RouterConfig holds the keyword tables and ranking tables that drive task
// analysis and handler scoring. Task types and domains are ordered lists:
// ties during analysis resolve in declared order.
type RouterConfig struct {
	TaskTypes             []TaskTypeRule                `yaml:"task_types"`
	Domains               []DomainRule                  `yaml:"domains"`
	Complexity            TierRule                      `yaml:"complexity"`
	Urgency               TierRule                      `yaml:"urgency"`
	Rankings              map[string]Ranking            `yaml:"rankings"`
	ComplexityAdjustments map[string]map[string]float64 `yaml:"complexity_adjustments,omitempty"`
	FallbackHandler       string                        `yaml:"fallback_handler"`
	HistoryCapacity       int                           `yaml:"history_capacity,omitempty"`
}

// TaskTypeRule maps a task type label to its trigger keywords.
type TaskTypeRule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// DomainRule maps a domain label to its trigger keywords.
type DomainRule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// TierRule defines three-tier keyword matching. The first tier with a match
// wins, scanning high, then medium, then low; medium is the default when
// nothing matches.
type TierRule struct {
	High   []string `yaml:"high,omitempty"`
	Medium []string `yaml:"medium,omitempty"`
	Low    []string `yaml:"low,omitempty"`
}

// Ranking declares which handler is the primary match for a task type and
// which handlers are secondary matches.
type Ranking struct {
	Primary   string   `yaml:"primary"`
	Secondary []string `yaml:"secondary,omitempty"`
}

// LoadRouterConfig reads router configuration from a YAML file.
func LoadRouterConfig(path string) (*RouterConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg RouterConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	applyRouterDefaults(&cfg)
	return &cfg, nil
}

// DefaultRouterConfig returns the built-in tables. The engine runs with zero
// configuration using these.
func DefaultRouterConfig() *RouterConfig {
	cfg := &RouterConfig{
		TaskTypes: []TaskTypeRule{
			{Name: "ui-design", Keywords: []string{"design", "layout", "form", "css", "style", "component", "interface", "responsive"}},
			{Name: "api-development", Keywords: []string{"api", "endpoint", "rest", "graphql", "service", "webhook"}},
			{Name: "database-design", Keywords: []string{"database", "schema", "sql", "query", "migration", "index"}},
			{Name: "deployment", Keywords: []string{"deploy", "docker", "kubernetes", "pipeline", "infrastructure", "release"}},
			{Name: "testing", Keywords: []string{"test", "coverage", "regression", "assertion", "mock"}},
			{Name: "documentation", Keywords: []string{"document", "readme", "tutorial", "guide", "changelog"}},
			{Name: "debugging", Keywords: []string{"bug", "fix", "error", "crash", "broken", "debug"}},
			{Name: "refactoring", Keywords: []string{"refactor", "cleanup", "restructure", "simplify", "rewrite"}},
			{Name: "security-review", Keywords: []string{"security", "vulnerability", "audit", "exploit", "penetration"}},
			{Name: "research", Keywords: []string{"research", "investigate", "compare", "evaluate", "explore"}},
		},
		Domains: []DomainRule{
			{Name: "frontend", Keywords: []string{"css", "html", "react", "component", "design", "browser", "layout"}},
			{Name: "backend", Keywords: []string{"api", "server", "endpoint", "service", "auth", "grpc"}},
			{Name: "database", Keywords: []string{"database", "sql", "schema", "query", "postgres"}},
			{Name: "devops", Keywords: []string{"deploy", "docker", "kubernetes", "terraform", "pipeline"}},
			{Name: "testing", Keywords: []string{"test", "coverage", "mock", "assertion"}},
		},
		Complexity: TierRule{
			High: []string{"architecture", "distributed", "migration", "overhaul", "entire", "scalable"},
			Low:  []string{"simple", "small", "quick", "minor", "tiny", "trivial"},
		},
		Urgency: TierRule{
			High: []string{"urgent", "asap", "immediately", "critical", "emergency", "production down"},
			Low:  []string{"whenever", "eventually", "low priority", "someday", "no rush"},
		},
		Rankings: map[string]Ranking{
			"ui-design":       {Primary: "frontend", Secondary: []string{"docs"}},
			"api-development": {Primary: "backend", Secondary: []string{"database"}},
			"database-design": {Primary: "database", Secondary: []string{"backend"}},
			"deployment":      {Primary: "devops", Secondary: []string{"backend"}},
			"testing":         {Primary: "qa", Secondary: []string{"backend", "frontend"}},
			"documentation":   {Primary: "docs", Secondary: []string{"research"}},
			"debugging":       {Primary: "backend", Secondary: []string{"qa", "frontend"}},
			"refactoring":     {Primary: "backend", Secondary: []string{"frontend"}},
			"security-review": {Primary: "security", Secondary: []string{"backend"}},
			"research":        {Primary: "research", Secondary: []string{"docs"}},
			"general":         {Primary: "generalist"},
		},
		ComplexityAdjustments: map[string]map[string]float64{
			"generalist": {"high": 0.8},
			"security":   {"high": 1.1, "low": 0.9},
		},
		FallbackHandler: "generalist",
	}

	applyRouterDefaults(cfg)
	return cfg
}

func applyRouterDefaults(cfg *RouterConfig) {
	if cfg == nil {
		return
	}
	if cfg.HistoryCapacity <= 0 {
		cfg.HistoryCapacity = 100
	}
	if cfg.FallbackHandler == "" {
		cfg.FallbackHandler = "generalist"
	}
	if cfg.Rankings == nil {
		cfg.Rankings = make(map[string]Ranking)
	}
}

// Ranking returns the ranking for a task type, if declared.
func (c *RouterConfig) Ranking(taskType string) (Ranking, bool) {
	r, ok := c.Rankings[taskType]
	return r, ok
}

// ComplexityMultiplier returns the per-handler adjustment for a complexity
// level, defaulting to 1.0.
func (c *RouterConfig) ComplexityMultiplier(handlerID, complexity string) float64 {
	if levels, ok := c.ComplexityAdjustments[handlerID]; ok {
		if m, ok := levels[complexity]; ok && m > 0 {
			return m
		}
	}
	return 1.0
}
