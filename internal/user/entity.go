package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Username      string     `gorm:"size:80;uniqueIndex;not null" json:"username"`
	Email         string     `gorm:"size:120;uniqueIndex;not null" json:"email"`
	PasswordHash  string     `gorm:"size:128;not null" json:"-"`
	PrimaryRoleID *uuid.UUID `gorm:"type:uuid" json:"-"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`

	// PrimaryRole is the role the session is issued for. The many-to-many set
	// below stays authoritative for membership; this reference removes any
	// dependence on collection ordering.
	PrimaryRole *Role    `gorm:"foreignKey:PrimaryRoleID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"primary_role,omitempty"`
	Roles       []Role   `gorm:"many2many:user_roles;constraint:OnDelete:CASCADE" json:"roles,omitempty"`
	Student     *Student `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"student,omitempty"`
	Staff       *Staff   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"staff,omitempty"`
}

type Role struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name string    `gorm:"size:50;uniqueIndex;not null" json:"name"`
}

type Student struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Flag         bool      `gorm:"not null;default:false" json:"flag"`
	EnrollmentNo string    `gorm:"size:50" json:"enrollment_no,omitempty"`
	Department   string    `gorm:"size:100" json:"department,omitempty"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

type Staff struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Flag       bool      `gorm:"not null;default:false" json:"flag"`
	Department string    `gorm:"size:100" json:"department,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// UserRole is the join table behind the many-to-many relation. Declared so
// migrations create it with cascading foreign keys on both sides.
type UserRole struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	RoleID uuid.UUID `gorm:"type:uuid;primaryKey" json:"role_id"`
}

func (UserRole) TableName() string { return "user_roles" }
