package content

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	CreateSubject(s *Subject) error
	FindSubjectByID(id string) (*Subject, error)
	ListSubjects() ([]Subject, error)
	SaveSubject(s *Subject) error

	CreateChapter(c *Chapter) error
	FindChapterByID(id string) (*Chapter, error)
	SaveChapter(c *Chapter) error

	CreateQuiz(q *Quiz) error
	FindQuizByID(id string) (*Quiz, error)
	SaveQuiz(q *Quiz) error

	CreateQuestion(q *Question) error
	FindQuestionByID(id string) (*Question, error)
	SaveQuestion(q *Question) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func byOrderIndex(db *gorm.DB) *gorm.DB {
	return db.Order("order_index ASC")
}

func (r *repository) CreateSubject(s *Subject) error {
	return r.db.Create(s).Error
}

func (r *repository) FindSubjectByID(id string) (*Subject, error) {
	var s Subject
	err := r.db.Preload("Chapters", byOrderIndex).First(&s, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *repository) ListSubjects() ([]Subject, error) {
	var subjects []Subject
	if err := r.db.Order("order_index ASC").Find(&subjects).Error; err != nil {
		return nil, err
	}
	return subjects, nil
}

func (r *repository) SaveSubject(s *Subject) error {
	return r.db.Save(s).Error
}

func (r *repository) CreateChapter(c *Chapter) error {
	return r.db.Create(c).Error
}

func (r *repository) FindChapterByID(id string) (*Chapter, error) {
	var c Chapter
	err := r.db.Preload("Quizzes", byOrderIndex).First(&c, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *repository) SaveChapter(c *Chapter) error {
	return r.db.Save(c).Error
}

func (r *repository) CreateQuiz(q *Quiz) error {
	return r.db.Create(q).Error
}

func (r *repository) FindQuizByID(id string) (*Quiz, error) {
	var q Quiz
	err := r.db.Preload("Questions", byOrderIndex).First(&q, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (r *repository) SaveQuiz(q *Quiz) error {
	return r.db.Save(q).Error
}

func (r *repository) CreateQuestion(q *Question) error {
	return r.db.Create(q).Error
}

func (r *repository) FindQuestionByID(id string) (*Question, error) {
	var q Question
	err := r.db.First(&q, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (r *repository) SaveQuestion(q *Question) error {
	return r.db.Save(q).Error
}
