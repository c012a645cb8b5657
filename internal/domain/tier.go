package domain

// TierInfo describes the named band a reliability score falls in, with the
// color and badge used by feed clients.
type TierInfo struct {
	Tier  string `json:"tier"`
	Color string `json:"color"`
	Stars int    `json:"stars"`
	Badge string `json:"badge"`
}

// TierForScore maps a reliability score to its tier. Bands have inclusive
// upper bounds; scores above 80 are Expert.
func TierForScore(score float64) TierInfo {
	switch {
	case score <= 20:
		return TierInfo{Tier: "New", Color: "#9CA3AF", Stars: 1, Badge: "⭐"}
	case score <= 40:
		return TierInfo{Tier: "Emerging", Color: "#3B82F6", Stars: 2, Badge: "⭐⭐"}
	case score <= 60:
		return TierInfo{Tier: "Reliable", Color: "#10B981", Stars: 3, Badge: "⭐⭐⭐"}
	case score <= 80:
		return TierInfo{Tier: "Trusted", Color: "#F59E0B", Stars: 4, Badge: "⭐⭐⭐⭐"}
	default:
		return TierInfo{Tier: "Expert", Color: "#8B5CF6", Stars: 5, Badge: "⭐⭐⭐⭐⭐"}
	}
}
