package user

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(u *User) error
	FindByID(id string) (*User, error)
	FindByEmail(email string) (*User, error)
	ExistsByUsernameOrEmail(username, email string) (bool, error)
	FindRoleByName(name string) (*Role, error)
	EnsureRole(name string) (*Role, error)
	FindStudentByUserID(userID string) (*Student, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(u *User) error {
	return r.db.Create(u).Error
}

func (r *repository) FindByID(id string) (*User, error) {
	var u User
	err := r.db.
		Preload("PrimaryRole").
		Preload("Roles").
		Preload("Student").
		Preload("Staff").
		First(&u, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByEmail(email string) (*User, error) {
	var u User
	err := r.db.
		Preload("PrimaryRole").
		Preload("Roles").
		First(&u, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (r *repository) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	var count int64
	err := r.db.Model(&User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) FindRoleByName(name string) (*Role, error) {
	var role Role
	if err := r.db.First(&role, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &role, nil
}

func (r *repository) EnsureRole(name string) (*Role, error) {
	var role Role
	if err := r.db.Where("name = ?", name).Attrs(Role{ID: uuid.New(), Name: name}).FirstOrCreate(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *repository) FindStudentByUserID(userID string) (*Student, error) {
	var s Student
	if err := r.db.First(&s, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}
