package result

type RecordResultDTO struct {
	// StudentID is ignored for student sessions, which may only record their
	// own attempts.
	StudentID string `json:"student_id"`
	QuizID    string `json:"quiz_id" validate:"required,uuid"`
	Score     int    `json:"score" validate:"gte=0"`
}
