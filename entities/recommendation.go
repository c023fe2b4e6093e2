package entities

import "time"

// Recommendation stores one raw provider response for a design step.
// RawResponse is whatever the model returned: usually JSON, sometimes not.
type Recommendation struct {
	RecommendationID uint      `gorm:"primaryKey" json:"id"`
	StepID           uint      `json:"step_id" gorm:"index"`
	Phase            string    `json:"phase"`
	RawResponse      string    `json:"raw_response"`
	CreatedAt        time.Time `json:"created_at"`
}
