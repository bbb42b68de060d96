package content

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Subject struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:120;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	OrderIndex  int       `gorm:"not null;default:0" json:"order_index"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	Chapters []Chapter `gorm:"foreignKey:SubjectID;constraint:OnDelete:CASCADE" json:"chapters,omitempty"`
}

type Chapter struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SubjectID   uuid.UUID `gorm:"type:uuid;not null;index" json:"subject_id"`
	Name        string    `gorm:"size:120;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	OrderIndex  int       `gorm:"not null;default:0" json:"order_index"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	Quizzes []Quiz `gorm:"foreignKey:ChapterID;constraint:OnDelete:CASCADE" json:"quizzes,omitempty"`
}

type Quiz struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ChapterID       uuid.UUID `gorm:"type:uuid;not null;index" json:"chapter_id"`
	Title           string    `gorm:"size:120;not null" json:"title"`
	DurationMinutes int       `gorm:"not null;default:0" json:"duration_minutes"`
	Remarks         string    `gorm:"type:text" json:"remarks,omitempty"`
	OrderIndex      int       `gorm:"not null;default:0" json:"order_index"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`

	Questions []Question `gorm:"foreignKey:QuizID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

type Question struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	QuizID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"quiz_id"`
	Prompt      string         `gorm:"type:text;not null" json:"prompt"`
	Options     datatypes.JSON `gorm:"not null" json:"options"`
	AnswerIndex int            `gorm:"not null" json:"answer_index"`
	OrderIndex  int            `gorm:"not null;default:0" json:"order_index"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
}
