package content

type CreateSubjectDTO struct {
	Name        string `json:"name" validate:"required,max=120"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index"`
}

type UpdateSubjectDTO struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	OrderIndex  *int    `json:"order_index"`
}

type CreateChapterDTO struct {
	SubjectID   string `json:"subject_id" validate:"required,uuid"`
	Name        string `json:"name" validate:"required,max=120"`
	Description string `json:"description"`
	OrderIndex  int    `json:"order_index"`
}

type UpdateChapterDTO struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	OrderIndex  *int    `json:"order_index"`
}

type CreateQuizDTO struct {
	ChapterID       string `json:"chapter_id" validate:"required,uuid"`
	Title           string `json:"title" validate:"required,max=120"`
	DurationMinutes int    `json:"duration_minutes" validate:"gte=0"`
	Remarks         string `json:"remarks"`
	OrderIndex      int    `json:"order_index"`
}

type UpdateQuizDTO struct {
	Title           *string `json:"title"`
	DurationMinutes *int    `json:"duration_minutes"`
	Remarks         *string `json:"remarks"`
	OrderIndex      *int    `json:"order_index"`
}

type CreateQuestionDTO struct {
	QuizID      string   `json:"quiz_id" validate:"required,uuid"`
	Prompt      string   `json:"prompt" validate:"required"`
	Options     []string `json:"options"`
	AnswerIndex int      `json:"answer_index"`
	OrderIndex  int      `json:"order_index"`
}

type UpdateQuestionDTO struct {
	Prompt      *string   `json:"prompt"`
	Options     *[]string `json:"options"`
	AnswerIndex *int      `json:"answer_index"`
	OrderIndex  *int      `json:"order_index"`
}
