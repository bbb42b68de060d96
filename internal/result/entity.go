package result

import (
	"time"

	"github.com/google/uuid"

	"quizdesk/internal/content"
	"quizdesk/internal/user"
)

// StudentResult records one quiz attempt. Nothing prevents a student from
// holding several rows for the same quiz.
type StudentResult struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID uuid.UUID `gorm:"type:uuid;not null;index" json:"student_id"`
	QuizID    uuid.UUID `gorm:"type:uuid;not null;index" json:"quiz_id"`
	Score     int       `gorm:"not null;default:0" json:"score"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Student *user.Student `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"student,omitempty"`
	Quiz    *content.Quiz `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"quiz,omitempty"`
}
