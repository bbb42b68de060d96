package user

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"quizdesk/internal/apperr"
	"quizdesk/internal/auth"
	"quizdesk/internal/config"
)

type Service interface {
	Register(ctx context.Context, dto RegisterDTO) (*User, error)
	Login(ctx context.Context, dto LoginDTO) (*Session, error)
	GetUser(ctx context.Context, id string) (*User, error)
	Seed(ctx context.Context) error
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

func (s *service) Register(ctx context.Context, dto RegisterDTO) (*User, error) {
	log := config.WithContext(ctx)

	if err := s.validate.Struct(dto); err != nil {
		return nil, apperr.NewValidationError("all fields are required and must be valid")
	}
	if dto.Password != dto.Confirm {
		return nil, apperr.NewValidationError("passwords do not match")
	}

	// Advisory pre-check only; the unique indexes are the real guard against
	// two registrations racing on the same identity.
	exists, err := s.repo.ExistsByUsernameOrEmail(dto.Username, dto.Email)
	if err != nil {
		log.WithError(err).Error("failed to check for existing user")
		return nil, err
	}
	if exists {
		return nil, apperr.NewConflictError("username or email already registered")
	}

	role, err := s.repo.FindRoleByName(dto.Role)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, apperr.NewValidationError(fmt.Sprintf("unknown role %q", dto.Role))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Error("failed to hash password")
		return nil, err
	}

	u := &User{
		ID:            uuid.New(),
		Username:      dto.Username,
		Email:         dto.Email,
		PasswordHash:  string(hash),
		PrimaryRoleID: &role.ID,
		Roles:         []Role{*role},
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(u).Error; err != nil {
			return err
		}
		switch dto.Role {
		case RoleStudent:
			return tx.Create(&Student{ID: uuid.New(), UserID: u.ID}).Error
		case RoleStaff:
			return tx.Create(&Staff{ID: uuid.New(), UserID: u.ID}).Error
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.NewConflictError("username or email already registered")
		}
		log.WithError(err).Error("failed to create user")
		return nil, err
	}

	log.WithField("user_id", u.ID.String()).Info("registered user")
	return u, nil
}

func (s *service) Login(ctx context.Context, dto LoginDTO) (*Session, error) {
	log := config.WithContext(ctx)

	if err := s.validate.Struct(dto); err != nil {
		return nil, apperr.NewAuthError("invalid email or password")
	}

	u, err := s.repo.FindByEmail(dto.Email)
	if err != nil {
		log.WithError(err).Error("failed to look up user")
		return nil, err
	}
	if u == nil {
		return nil, apperr.NewAuthError("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(dto.Password)); err != nil {
		return nil, apperr.NewAuthError("invalid email or password")
	}

	role := u.SessionRole()
	if role == "" {
		return nil, apperr.NewAccessDeniedError("account has no role assigned")
	}

	token, err := auth.GenerateJWT(u.ID.String(), role, u.Username, auth.SessionDuration)
	if err != nil {
		log.WithError(err).Error("failed to sign session token")
		return nil, err
	}

	log.WithField("user_id", u.ID.String()).WithField("role", role).Info("user logged in")
	return &Session{
		Token:        token,
		UserID:       u.ID,
		Role:         role,
		UserName:     u.Username,
		RedirectPath: DashboardPath(role),
	}, nil
}

func (s *service) GetUser(ctx context.Context, id string) (*User, error) {
	u, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NewNotFoundError("user not found")
	}
	return u, nil
}

// Seed guarantees the conventional roles exist and, when configured through
// the environment, a single admin account. Safe to run on every start.
func (s *service) Seed(ctx context.Context) error {
	log := config.WithContext(ctx)

	for _, name := range []string{RoleAdmin, RoleStaff, RoleStudent} {
		if _, err := s.repo.EnsureRole(name); err != nil {
			return fmt.Errorf("ensure role %s: %w", name, err)
		}
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	existing, err := s.repo.FindByEmail(email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	_, err = s.Register(ctx, RegisterDTO{
		Username: config.Env("ADMIN_USERNAME", "admin"),
		Email:    email,
		Password: password,
		Confirm:  password,
		Role:     RoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("seed admin account: %w", err)
	}

	log.WithField("email", email).Info("seeded admin account")
	return nil
}

// SessionRole returns the role sessions are issued for: the explicit primary
// role when set, otherwise the highest-privilege member of the role set
// (admin > staff > student).
func (u *User) SessionRole() string {
	if u.PrimaryRole != nil {
		return u.PrimaryRole.Name
	}
	for _, name := range []string{RoleAdmin, RoleStaff, RoleStudent} {
		for _, r := range u.Roles {
			if r.Name == name {
				return name
			}
		}
	}
	return ""
}
