package content

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"quizdesk/internal/apperr"
	"quizdesk/internal/config"
)

// questionOptionCount is fixed: every question carries exactly four options
// and a 1-based answer index into them.
const questionOptionCount = 4

type Service interface {
	CreateSubject(ctx context.Context, dto CreateSubjectDTO) (*Subject, error)
	GetSubject(ctx context.Context, id string) (*Subject, error)
	ListSubjects(ctx context.Context) ([]Subject, error)
	UpdateSubject(ctx context.Context, id string, dto UpdateSubjectDTO) (*Subject, error)
	DeleteSubject(ctx context.Context, id string) error

	CreateChapter(ctx context.Context, dto CreateChapterDTO) (*Chapter, error)
	GetChapter(ctx context.Context, id string) (*Chapter, error)
	UpdateChapter(ctx context.Context, id string, dto UpdateChapterDTO) (*Chapter, error)
	DeleteChapter(ctx context.Context, id string) error

	CreateQuiz(ctx context.Context, dto CreateQuizDTO) (*Quiz, error)
	GetQuiz(ctx context.Context, id string) (*Quiz, error)
	UpdateQuiz(ctx context.Context, id string, dto UpdateQuizDTO) (*Quiz, error)
	DeleteQuiz(ctx context.Context, id string) error

	CreateQuestion(ctx context.Context, dto CreateQuestionDTO) (*Question, error)
	GetQuestion(ctx context.Context, id string) (*Question, error)
	UpdateQuestion(ctx context.Context, id string, dto UpdateQuestionDTO) (*Question, error)
	DeleteQuestion(ctx context.Context, id string) error
}

type service struct {
	repo     Repository
	db       *gorm.DB
	validate *validator.Validate
}

func NewService(db *gorm.DB, repo Repository) Service {
	return &service{
		repo:     repo,
		db:       db,
		validate: validator.New(),
	}
}

func (s *service) CreateSubject(ctx context.Context, dto CreateSubjectDTO) (*Subject, error) {
	if err := s.validate.Struct(dto); err != nil {
		return nil, apperr.NewValidationError("subject name is required")
	}

	subject := &Subject{
		ID:          uuid.New(),
		Name:        dto.Name,
		Description: dto.Description,
		OrderIndex:  dto.OrderIndex,
	}
	if err := s.repo.CreateSubject(subject); err != nil {
		config.WithContext(ctx).WithError(err).Error("failed to create subject")
		return nil, err
	}
	return subject, nil
}

func (s *service) GetSubject(ctx context.Context, id string) (*Subject, error) {
	subject, err := s.repo.FindSubjectByID(id)
	if err != nil {
		return nil, err
	}
	if subject == nil {
		return nil, apperr.NewNotFoundError("subject not found")
	}
	return subject, nil
}

func (s *service) ListSubjects(ctx context.Context) ([]Subject, error) {
	return s.repo.ListSubjects()
}

func (s *service) UpdateSubject(ctx context.Context, id string, dto UpdateSubjectDTO) (*Subject, error) {
	subject, err := s.GetSubject(ctx, id)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil {
		subject.Name = *dto.Name
	}
	if dto.Description != nil {
		subject.Description = *dto.Description
	}
	if dto.OrderIndex != nil {
		subject.OrderIndex = *dto.OrderIndex
	}

	if err := s.repo.SaveSubject(subject); err != nil {
		return nil, err
	}
	return subject, nil
}

// DeleteSubject removes the subject and its whole subtree. The foreign keys
// cascade on their own; the explicit deletes keep the behavior identical on
// stores where the constraints are not enforced.
func (s *service) DeleteSubject(ctx context.Context, id string) error {
	if _, err := s.GetSubject(ctx, id); err != nil {
		return err
	}

	log := config.WithContext(ctx)
	err := s.db.Transaction(func(tx *gorm.DB) error {
		chapterIDs := tx.Model(&Chapter{}).Select("id").Where("subject_id = ?", id)
		quizIDs := tx.Model(&Quiz{}).Select("id").Where("chapter_id IN (?)", chapterIDs)

		if err := tx.Where("quiz_id IN (?)", quizIDs).Delete(&Question{}).Error; err != nil {
			return err
		}
		if err := tx.Where("chapter_id IN (?)", chapterIDs).Delete(&Quiz{}).Error; err != nil {
			return err
		}
		if err := tx.Where("subject_id = ?", id).Delete(&Chapter{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Subject{}, "id = ?", id).Error
	})
	if err != nil {
		log.WithError(err).Error("failed to delete subject")
		return err
	}

	log.WithField("subject_id", id).Info("deleted subject")
	return nil
}

func (s *service) CreateChapter(ctx context.Context, dto CreateChapterDTO) (*Chapter, error) {
	if err := s.validate.Struct(dto); err != nil {
		return nil, apperr.NewValidationError("chapter name and subject_id are required")
	}

	parent, err := s.repo.FindSubjectByID(dto.SubjectID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, apperr.NewNotFoundError("subject not found")
	}

	chapter := &Chapter{
		ID:          uuid.New(),
		SubjectID:   parent.ID,
		Name:        dto.Name,
		Description: dto.Description,
		OrderIndex:  dto.OrderIndex,
	}
	if err := s.repo.CreateChapter(chapter); err != nil {
		config.WithContext(ctx).WithError(err).Error("failed to create chapter")
		return nil, err
	}
	return chapter, nil
}

func (s *service) GetChapter(ctx context.Context, id string) (*Chapter, error) {
	chapter, err := s.repo.FindChapterByID(id)
	if err != nil {
		return nil, err
	}
	if chapter == nil {
		return nil, apperr.NewNotFoundError("chapter not found")
	}
	return chapter, nil
}

func (s *service) UpdateChapter(ctx context.Context, id string, dto UpdateChapterDTO) (*Chapter, error) {
	chapter, err := s.GetChapter(ctx, id)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil {
		chapter.Name = *dto.Name
	}
	if dto.Description != nil {
		chapter.Description = *dto.Description
	}
	if dto.OrderIndex != nil {
		chapter.OrderIndex = *dto.OrderIndex
	}

	if err := s.repo.SaveChapter(chapter); err != nil {
		return nil, err
	}
	return chapter, nil
}

func (s *service) DeleteChapter(ctx context.Context, id string) error {
	if _, err := s.GetChapter(ctx, id); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		quizIDs := tx.Model(&Quiz{}).Select("id").Where("chapter_id = ?", id)

		if err := tx.Where("quiz_id IN (?)", quizIDs).Delete(&Question{}).Error; err != nil {
			return err
		}
		if err := tx.Where("chapter_id = ?", id).Delete(&Quiz{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Chapter{}, "id = ?", id).Error
	})
}

func (s *service) CreateQuiz(ctx context.Context, dto CreateQuizDTO) (*Quiz, error) {
	if err := s.validate.Struct(dto); err != nil {
		return nil, apperr.NewValidationError("quiz title and chapter_id are required")
	}

	parent, err := s.repo.FindChapterByID(dto.ChapterID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, apperr.NewNotFoundError("chapter not found")
	}

	quiz := &Quiz{
		ID:              uuid.New(),
		ChapterID:       parent.ID,
		Title:           dto.Title,
		DurationMinutes: dto.DurationMinutes,
		Remarks:         dto.Remarks,
		OrderIndex:      dto.OrderIndex,
	}
	if err := s.repo.CreateQuiz(quiz); err != nil {
		config.WithContext(ctx).WithError(err).Error("failed to create quiz")
		return nil, err
	}
	return quiz, nil
}

func (s *service) GetQuiz(ctx context.Context, id string) (*Quiz, error) {
	quiz, err := s.repo.FindQuizByID(id)
	if err != nil {
		return nil, err
	}
	if quiz == nil {
		return nil, apperr.NewNotFoundError("quiz not found")
	}
	return quiz, nil
}

func (s *service) UpdateQuiz(ctx context.Context, id string, dto UpdateQuizDTO) (*Quiz, error) {
	quiz, err := s.GetQuiz(ctx, id)
	if err != nil {
		return nil, err
	}

	if dto.Title != nil {
		quiz.Title = *dto.Title
	}
	if dto.DurationMinutes != nil {
		quiz.DurationMinutes = *dto.DurationMinutes
	}
	if dto.Remarks != nil {
		quiz.Remarks = *dto.Remarks
	}
	if dto.OrderIndex != nil {
		quiz.OrderIndex = *dto.OrderIndex
	}

	if err := s.repo.SaveQuiz(quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *service) DeleteQuiz(ctx context.Context, id string) error {
	if _, err := s.GetQuiz(ctx, id); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quiz_id = ?", id).Delete(&Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Quiz{}, "id = ?", id).Error
	})
}

func (s *service) CreateQuestion(ctx context.Context, dto CreateQuestionDTO) (*Question, error) {
	if err := s.validate.Struct(dto); err != nil {
		return nil, apperr.NewValidationError("question prompt and quiz_id are required")
	}
	if err := validateQuestion(dto.Options, dto.AnswerIndex); err != nil {
		return nil, err
	}

	parent, err := s.repo.FindQuizByID(dto.QuizID)
	if err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, apperr.NewNotFoundError("quiz not found")
	}

	options, err := json.Marshal(dto.Options)
	if err != nil {
		return nil, err
	}

	question := &Question{
		ID:          uuid.New(),
		QuizID:      parent.ID,
		Prompt:      dto.Prompt,
		Options:     options,
		AnswerIndex: dto.AnswerIndex,
		OrderIndex:  dto.OrderIndex,
	}
	if err := s.repo.CreateQuestion(question); err != nil {
		config.WithContext(ctx).WithError(err).Error("failed to create question")
		return nil, err
	}
	return question, nil
}

func (s *service) GetQuestion(ctx context.Context, id string) (*Question, error) {
	question, err := s.repo.FindQuestionByID(id)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, apperr.NewNotFoundError("question not found")
	}
	return question, nil
}

func (s *service) UpdateQuestion(ctx context.Context, id string, dto UpdateQuestionDTO) (*Question, error) {
	question, err := s.GetQuestion(ctx, id)
	if err != nil {
		return nil, err
	}

	if dto.Prompt != nil {
		question.Prompt = *dto.Prompt
	}
	if dto.Options != nil {
		options, err := json.Marshal(*dto.Options)
		if err != nil {
			return nil, err
		}
		question.Options = options
	}
	if dto.AnswerIndex != nil {
		question.AnswerIndex = *dto.AnswerIndex
	}
	if dto.OrderIndex != nil {
		question.OrderIndex = *dto.OrderIndex
	}

	// Re-validate the merged row so a partial update cannot leave an answer
	// index pointing outside the option list.
	var options []string
	if err := json.Unmarshal(question.Options, &options); err != nil {
		return nil, err
	}
	if err := validateQuestion(options, question.AnswerIndex); err != nil {
		return nil, err
	}

	if err := s.repo.SaveQuestion(question); err != nil {
		return nil, err
	}
	return question, nil
}

func (s *service) DeleteQuestion(ctx context.Context, id string) error {
	if _, err := s.GetQuestion(ctx, id); err != nil {
		return err
	}
	return s.db.Delete(&Question{}, "id = ?", id).Error
}

func validateQuestion(options []string, answerIndex int) error {
	if len(options) != questionOptionCount {
		return apperr.NewValidationError(fmt.Sprintf("a question must have exactly %d options", questionOptionCount))
	}
	if answerIndex < 1 || answerIndex > questionOptionCount {
		return apperr.NewValidationError(fmt.Sprintf("answer index must be between 1 and %d", questionOptionCount))
	}
	return nil
}
