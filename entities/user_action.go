package entities

import "time"

// UserAction records one accept/reject/edit (or comment) a user took on a
// step's recommendations. Actions are append-only; reconciliation orders
// them by CreatedAt.
type UserAction struct {
	ActionID         uint      `gorm:"primaryKey" json:"id"`
	StepID           uint      `json:"step_id" gorm:"index"`
	RecommendationID *uint     `json:"recommendation_id" gorm:"index"`
	ActionType       string    `json:"action_type"` // accept|reject|edit|comment
	EditedContent    string    `json:"edited_content"`
	Comment          string    `json:"comment"`
	CreatedAt        time.Time `json:"created_at"`
}
