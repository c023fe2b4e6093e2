package entities

import "time"

// Session is one course-design session owned by a user.
type Session struct {
	SessionID          uint      `gorm:"primaryKey" json:"id"`
	CourseTitle        string    `json:"course_title" gorm:"index"`
	Level              string    `json:"level"`    // undergraduate|graduate|professional
	Modality           string    `json:"modality"` // online|in-person|hybrid
	Constraints        string    `json:"constraints"`
	LearningObjectives string    `json:"learning_objectives"`
	CreatedAt          time.Time `json:"created_at"`
}
