package handler

// DefaultDescriptors returns the built-in specialist pool. Callers pair each
// descriptor with an execution backend (provider-backed or mock) at
// registration time.
func DefaultDescriptors() []Descriptor {
	return []Descriptor{
		{
			ID:           "frontend",
			Description:  "UI and client-side development specialist",
			Capabilities: []string{"ui-design", "layout", "styling", "component-design", "accessibility"},
			Tools:        []string{"css", "html", "react", "figma"},
			DomainAffinity: map[string]float64{
				"frontend": 0.95,
				"testing":  0.4,
			},
		},
		{
			ID:           "backend",
			Description:  "Server-side and API development specialist",
			Capabilities: []string{"api-design", "api-development", "service-architecture", "authentication"},
			Tools:        []string{"go", "grpc", "rest", "postgres"},
			DomainAffinity: map[string]float64{
				"backend":  0.95,
				"database": 0.6,
			},
		},
		{
			ID:           "database",
			Description:  "Data modeling and query specialist",
			Capabilities: []string{"database-design", "schema-modeling", "query-tuning", "migration"},
			Tools:        []string{"sql", "postgres", "sqlite"},
			DomainAffinity: map[string]float64{
				"database": 0.95,
				"backend":  0.5,
			},
		},
		{
			ID:           "devops",
			Description:  "Deployment and infrastructure specialist",
			Capabilities: []string{"deployment", "ci-cd", "infrastructure", "monitoring"},
			Tools:        []string{"docker", "kubernetes", "terraform"},
			DomainAffinity: map[string]float64{
				"devops":  0.95,
				"backend": 0.4,
			},
		},
		{
			ID:           "qa",
			Description:  "Testing and quality specialist",
			Capabilities: []string{"unit-testing", "integration-testing", "coverage-analysis", "regression"},
			Tools:        []string{"gotest", "playwright"},
			DomainAffinity: map[string]float64{
				"testing":  0.95,
				"frontend": 0.3,
				"backend":  0.3,
			},
		},
		{
			ID:           "docs",
			Description:  "Documentation and technical writing specialist",
			Capabilities: []string{"documentation", "technical-writing", "api-docs", "tutorials"},
			Tools:        []string{"markdown"},
			DomainAffinity: map[string]float64{
				"frontend": 0.3,
				"backend":  0.3,
			},
		},
		{
			ID:           "security",
			Description:  "Security review and audit specialist",
			Capabilities: []string{"security-review", "vulnerability-scan", "audit", "threat-modeling"},
			Tools:        []string{"gosec", "trivy"},
			DomainAffinity: map[string]float64{
				"backend": 0.5,
				"devops":  0.4,
			},
		},
		{
			ID:           "research",
			Description:  "Research and investigation specialist",
			Capabilities: []string{"research", "investigation", "comparison", "summarization"},
			Tools:        []string{"search"},
			DomainAffinity: map[string]float64{},
		},
		{
			ID:           "generalist",
			Description:  "General-purpose handler and routing fallback",
			Capabilities: []string{"general"},
			Tools:        []string{},
			DomainAffinity: map[string]float64{
				"frontend": 0.3,
				"backend":  0.3,
				"database": 0.3,
				"devops":   0.3,
				"testing":  0.3,
			},
		},
	}
}
