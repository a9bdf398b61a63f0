package domain

// MatchResult is one scored counterpart, skills included for display
type MatchResult struct {
	Username string   `json:"username"`
	Name     string   `json:"name"`
	Role     Role     `json:"role"`
	Score    float64  `json:"score"`
	Skills   []string `json:"skills"`
}
