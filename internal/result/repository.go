package result

import (
	"errors"

	"gorm.io/gorm"

	"quizdesk/internal/content"
	"quizdesk/internal/user"
)

type Repository interface {
	Create(res *StudentResult) error
	ListAll() ([]StudentResult, error)
	ListByStudent(studentID string) ([]StudentResult, error)
	StudentExists(id string) (bool, error)
	QuizExists(id string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(res *StudentResult) error {
	return r.db.Create(res).Error
}

func (r *repository) ListAll() ([]StudentResult, error) {
	var results []StudentResult
	err := r.db.
		Preload("Student").
		Preload("Quiz").
		Order("created_at DESC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *repository) ListByStudent(studentID string) ([]StudentResult, error) {
	var results []StudentResult
	err := r.db.
		Preload("Quiz").
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *repository) StudentExists(id string) (bool, error) {
	var s user.Student
	err := r.db.Select("id").First(&s, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *repository) QuizExists(id string) (bool, error) {
	var q content.Quiz
	err := r.db.Select("id").First(&q, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
