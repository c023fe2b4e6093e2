package entities

import "time"

// DesignStep is one stage of the design workflow within a session.
// Phase is one of the known workflow tags (objective-analysis,
// activity-suggestion, assessment-recommendation); unknown tags are
// stored and exported untouched.
type DesignStep struct {
	StepID    uint      `gorm:"primaryKey" json:"id"`
	SessionID uint      `json:"session_id" gorm:"index"`
	Phase     string    `json:"phase" gorm:"index"`
	UserInput string    `json:"user_input"`
	CreatedAt time.Time `json:"created_at"`
}
