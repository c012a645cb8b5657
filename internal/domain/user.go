package domain

import "fmt"

// User is the subset of a feed user the scoring engine reads and writes.
// The aggregate counters are denormalized sums over the user's non-deleted
// posts, refreshed on every recomputation.
type User struct {
	ID               string
	Name             string
	Avatar           string
	ReliabilityScore float64
	TotalLikes       int64
	TotalDislikes    int64
	TotalViews       int64
}

// ReputationSummary is the engine's public view of a user's standing.
type ReputationSummary struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Avatar         string  `json:"avatar,omitempty"`
	Score          float64 `json:"reliabilityScore"`
	TotalViews     int64   `json:"totalViews"`
	TotalLikes     int64   `json:"totalLikes"`
	TotalDislikes  int64   `json:"totalDislikes"`
	Tier           string  `json:"tier"`
	Color          string  `json:"color"`
	Stars          int     `json:"stars"`
	Badge          string  `json:"badge"`
	EngagementRate string  `json:"engagementRate"`
	PostCount      int     `json:"postCount"`
}

// EngagementRateString formats total reactions over total views as a
// one-decimal percentage, "0.0%" when the user has no views.
func EngagementRateString(totalLikes, totalDislikes, totalViews int64) string {
	if totalViews <= 0 {
		return "0.0%"
	}

	rate := float64(totalLikes+totalDislikes) / float64(totalViews) * 100
	return fmt.Sprintf("%.1f%%", rate)
}
