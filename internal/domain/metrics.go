package domain

// ChatMetrics is the JSON snapshot served by GET /v1/metrics/chat.
// Prometheus remains the source of truth; this is a convenience view for
// dashboards that do not scrape.
type ChatMetrics struct {
	TotalTurns       int64            `json:"total_turns"`
	ErrorRate        float64          `json:"error_rate"`
	AvgTokensPerTurn float64          `json:"avg_tokens_per_turn"`
	IntentCounts     map[string]int64 `json:"intent_counts"`
	CacheHitRate     float64          `json:"cache_hit_rate"`
	Period           string           `json:"period"`
}
