package user_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"quizdesk/internal/apperr"
	"quizdesk/internal/auth"
	"quizdesk/internal/user"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "a-long-and-secure-secret-for-tests-only")
	os.Unsetenv("ADMIN_EMAIL")
	os.Unsetenv("ADMIN_PASSWORD")
	auth.Init()
	os.Exit(m.Run())
}

func setupService(t *testing.T) (user.Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.SetupJoinTable(&user.User{}, "Roles", &user.UserRole{}))
	require.NoError(t, db.AutoMigrate(
		&user.Role{},
		&user.User{},
		&user.UserRole{},
		&user.Student{},
		&user.Staff{},
	))

	svc := user.NewService(db, user.NewRepository(db))
	require.NoError(t, svc.Seed(context.Background()))
	return svc, db
}

func registerDTO(role string) user.RegisterDTO {
	return user.RegisterDTO{
		Username: "alice",
		Email:    "a@x.com",
		Password: "pw1pw1",
		Confirm:  "pw1pw1",
		Role:     role,
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("StudentGetsProfileAndRole", func(t *testing.T) {
		svc, db := setupService(t)

		u, err := svc.Register(ctx, registerDTO(user.RoleStudent))
		require.NoError(t, err)
		assert.Equal(t, "alice", u.Username)
		assert.Equal(t, user.RoleStudent, u.SessionRole())

		var student user.Student
		require.NoError(t, db.First(&student, "user_id = ?", u.ID).Error)
		assert.False(t, student.Flag)
	})

	t.Run("StaffGetsStaffProfile", func(t *testing.T) {
		svc, db := setupService(t)

		u, err := svc.Register(ctx, registerDTO(user.RoleStaff))
		require.NoError(t, err)

		var staff user.Staff
		require.NoError(t, db.First(&staff, "user_id = ?", u.ID).Error)
		var count int64
		require.NoError(t, db.Model(&user.Student{}).Count(&count).Error)
		assert.Zero(t, count, "staff registration must not create a student profile")
	})

	t.Run("DuplicateEmailConflicts", func(t *testing.T) {
		svc, _ := setupService(t)

		_, err := svc.Register(ctx, registerDTO(user.RoleStudent))
		require.NoError(t, err)

		second := registerDTO(user.RoleStudent)
		second.Username = "bob"
		_, err = svc.Register(ctx, second)
		assert.True(t, apperr.IsConflict(err), "second registration with the same email must conflict, got %v", err)
	})

	t.Run("DuplicateUsernameConflicts", func(t *testing.T) {
		svc, _ := setupService(t)

		_, err := svc.Register(ctx, registerDTO(user.RoleStudent))
		require.NoError(t, err)

		second := registerDTO(user.RoleStudent)
		second.Email = "b@x.com"
		_, err = svc.Register(ctx, second)
		assert.True(t, apperr.IsConflict(err))
	})

	t.Run("PasswordMismatchRejected", func(t *testing.T) {
		svc, _ := setupService(t)

		dto := registerDTO(user.RoleStudent)
		dto.Confirm = "something-else"
		_, err := svc.Register(ctx, dto)
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("MissingFieldsRejected", func(t *testing.T) {
		svc, _ := setupService(t)

		dto := registerDTO(user.RoleStudent)
		dto.Email = ""
		_, err := svc.Register(ctx, dto)
		assert.True(t, apperr.IsValidation(err))
	})

	t.Run("UnknownRoleRejected", func(t *testing.T) {
		svc, _ := setupService(t)

		dto := registerDTO("superuser")
		_, err := svc.Register(ctx, dto)
		assert.True(t, apperr.IsValidation(err))
	})
}

func TestPasswordStorage(t *testing.T) {
	ctx := context.Background()
	svc, db := setupService(t)

	u, err := svc.Register(ctx, registerDTO(user.RoleStudent))
	require.NoError(t, err)

	var stored user.User
	require.NoError(t, db.First(&stored, "id = ?", u.ID).Error)

	assert.NotEqual(t, "pw1pw1", stored.PasswordHash, "password must never be stored in the clear")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pw1pw1")))
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("wrong")))
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, _ := setupService(t)
		_, err := svc.Register(ctx, registerDTO(user.RoleStudent))
		require.NoError(t, err)

		session, err := svc.Login(ctx, user.LoginDTO{Email: "a@x.com", Password: "pw1pw1"})
		require.NoError(t, err)
		assert.Equal(t, user.RoleStudent, session.Role)
		assert.Equal(t, "alice", session.UserName)
		assert.Equal(t, "/student-dashboard", session.RedirectPath)
		assert.NotEmpty(t, session.Token)

		claims, err := auth.ValidateJWT(session.Token)
		require.NoError(t, err)
		assert.Equal(t, user.RoleStudent, claims.Role)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		svc, _ := setupService(t)
		_, err := svc.Register(ctx, registerDTO(user.RoleStudent))
		require.NoError(t, err)

		_, err = svc.Login(ctx, user.LoginDTO{Email: "a@x.com", Password: "nope99"})
		assert.True(t, apperr.IsAuth(err))
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		svc, _ := setupService(t)

		_, err := svc.Login(ctx, user.LoginDTO{Email: "ghost@x.com", Password: "pw1pw1"})
		assert.True(t, apperr.IsAuth(err))
	})
}

func TestSeedIsIdempotent(t *testing.T) {
	svc, db := setupService(t)

	require.NoError(t, svc.Seed(context.Background()))
	require.NoError(t, svc.Seed(context.Background()))

	var count int64
	require.NoError(t, db.Model(&user.Role{}).Count(&count).Error)
	assert.EqualValues(t, 3, count)
}
