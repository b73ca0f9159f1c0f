package history

// Stats aggregates the current history contents. Computed fresh from a
// snapshot on every call; an empty history yields zero rates, not an error.
type Stats struct {
	TotalRoutes       int            `json:"total_routes"`
	Successes         int            `json:"successes"`
	SuccessRate       float64        `json:"success_rate"`
	AverageConfidence float64        `json:"average_confidence"`
	FallbackCount     int            `json:"fallback_count"`
	UsagePerHandler   map[string]int `json:"usage_per_handler"`
}

// Stats computes aggregate statistics over the stored records.
func (s *Store) Stats() Stats {
	return aggregate(s.Snapshot())
}

func aggregate(records []Record) Stats {
	stats := Stats{
		TotalRoutes:     len(records),
		UsagePerHandler: make(map[string]int),
	}
	if len(records) == 0 {
		return stats
	}

	var confidenceSum float64
	for _, rec := range records {
		if rec.Success {
			stats.Successes++
		}
		if rec.FallbackUsed {
			stats.FallbackCount++
		}
		confidenceSum += rec.Confidence
		stats.UsagePerHandler[rec.HandlerID]++
	}

	stats.SuccessRate = float64(stats.Successes) / float64(stats.TotalRoutes)
	stats.AverageConfidence = confidenceSum / float64(stats.TotalRoutes)
	return stats
}
