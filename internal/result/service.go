package result

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"quizdesk/internal/apperr"
	"quizdesk/internal/config"
	"quizdesk/internal/user"
)

type Service interface {
	Record(ctx context.Context, dto RecordResultDTO) (*StudentResult, error)
	RecordForUser(ctx context.Context, userID string, dto RecordResultDTO) (*StudentResult, error)
	ListAll(ctx context.Context) ([]StudentResult, error)
	ListForUser(ctx context.Context, userID string) ([]StudentResult, error)
}

type service struct {
	repo     Repository
	userRepo user.Repository
	validate *validator.Validate
}

func NewService(repo Repository, userRepo user.Repository) Service {
	return &service{
		repo:     repo,
		userRepo: userRepo,
		validate: validator.New(),
	}
}

// Record inserts a result for an explicit student id (staff/admin path).
func (s *service) Record(ctx context.Context, dto RecordResultDTO) (*StudentResult, error) {
	if err := s.validate.Struct(dto); err != nil {
		return nil, apperr.NewValidationError("quiz_id is required and score must not be negative")
	}

	studentID, err := uuid.Parse(dto.StudentID)
	if err != nil {
		return nil, apperr.NewValidationError("student_id must be a valid id")
	}

	ok, err := s.repo.StudentExists(studentID.String())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NewNotFoundError("student not found")
	}

	return s.insert(ctx, studentID, dto)
}

// RecordForUser inserts a result for the student profile belonging to the
// session user.
func (s *service) RecordForUser(ctx context.Context, userID string, dto RecordResultDTO) (*StudentResult, error) {
	if err := s.validate.Struct(dto); err != nil {
		return nil, apperr.NewValidationError("quiz_id is required and score must not be negative")
	}

	student, err := s.userRepo.FindStudentByUserID(userID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperr.NewNotFoundError("no student profile for this account")
	}

	return s.insert(ctx, student.ID, dto)
}

func (s *service) insert(ctx context.Context, studentID uuid.UUID, dto RecordResultDTO) (*StudentResult, error) {
	log := config.WithContext(ctx)

	ok, err := s.repo.QuizExists(dto.QuizID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NewNotFoundError("quiz not found")
	}

	res := &StudentResult{
		ID:        uuid.New(),
		StudentID: studentID,
		QuizID:    uuid.MustParse(dto.QuizID),
		Score:     dto.Score,
	}
	if err := s.repo.Create(res); err != nil {
		log.WithError(err).Error("failed to record result")
		return nil, err
	}

	log.WithField("result_id", res.ID.String()).
		WithField("quiz_id", dto.QuizID).
		Info("recorded quiz result")
	return res, nil
}

func (s *service) ListAll(ctx context.Context) ([]StudentResult, error) {
	return s.repo.ListAll()
}

func (s *service) ListForUser(ctx context.Context, userID string) ([]StudentResult, error) {
	student, err := s.userRepo.FindStudentByUserID(userID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, apperr.NewNotFoundError("no student profile for this account")
	}
	return s.repo.ListByStudent(student.ID.String())
}
