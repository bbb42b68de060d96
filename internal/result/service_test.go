package result_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"quizdesk/internal/apperr"
	"quizdesk/internal/content"
	"quizdesk/internal/result"
	"quizdesk/internal/user"
)

type fixture struct {
	db         *gorm.DB
	users      user.Service
	content    content.Service
	results    result.Service
	userRepo   user.Repository
	resultRepo result.Repository
}

func setup(t *testing.T) *fixture {
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
		&content.Subject{},
		&content.Chapter{},
		&content.Quiz{},
		&content.Question{},
		&result.StudentResult{},
	))

	userRepo := user.NewRepository(db)
	userSvc := user.NewService(db, userRepo)
	require.NoError(t, userSvc.Seed(context.Background()))

	resultRepo := result.NewRepository(db)

	return &fixture{
		db:         db,
		users:      userSvc,
		content:    content.NewService(db, content.NewRepository(db)),
		results:    result.NewService(resultRepo, userRepo),
		userRepo:   userRepo,
		resultRepo: resultRepo,
	}
}

// seedStudentAndQuiz registers a student and builds a full content branch,
// returning the user id and quiz id.
func (f *fixture) seedStudentAndQuiz(t *testing.T) (string, string) {
	t.Helper()
	ctx := context.Background()

	u, err := f.users.Register(ctx, user.RegisterDTO{
		Username: "alice",
		Email:    "a@x.com",
		Password: "pw1pw1",
		Confirm:  "pw1pw1",
		Role:     user.RoleStudent,
	})
	require.NoError(t, err)

	subject, err := f.content.CreateSubject(ctx, content.CreateSubjectDTO{Name: "Physics"})
	require.NoError(t, err)
	chapter, err := f.content.CreateChapter(ctx, content.CreateChapterDTO{SubjectID: subject.ID.String(), Name: "Optics"})
	require.NoError(t, err)
	quiz, err := f.content.CreateQuiz(ctx, content.CreateQuizDTO{ChapterID: chapter.ID.String(), Title: "Lenses"})
	require.NoError(t, err)

	return u.ID.String(), quiz.ID.String()
}

func TestRecordForUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := setup(t)
		userID, quizID := f.seedStudentAndQuiz(t)

		res, err := f.results.RecordForUser(ctx, userID, result.RecordResultDTO{QuizID: quizID, Score: 7})
		require.NoError(t, err)
		assert.Equal(t, 7, res.Score)

		own, err := f.results.ListForUser(ctx, userID)
		require.NoError(t, err)
		require.Len(t, own, 1)
	})

	t.Run("DuplicateAttemptsAllowed", func(t *testing.T) {
		f := setup(t)
		userID, quizID := f.seedStudentAndQuiz(t)

		_, err := f.results.RecordForUser(ctx, userID, result.RecordResultDTO{QuizID: quizID, Score: 3})
		require.NoError(t, err)
		_, err = f.results.RecordForUser(ctx, userID, result.RecordResultDTO{QuizID: quizID, Score: 9})
		require.NoError(t, err)

		own, err := f.results.ListForUser(ctx, userID)
		require.NoError(t, err)
		assert.Len(t, own, 2)
	})

	t.Run("UnknownQuiz", func(t *testing.T) {
		f := setup(t)
		userID, _ := f.seedStudentAndQuiz(t)

		_, err := f.results.RecordForUser(ctx, userID, result.RecordResultDTO{QuizID: uuid.NewString(), Score: 1})
		assert.True(t, apperr.IsNotFound(err))
	})

	t.Run("NoStudentProfile", func(t *testing.T) {
		f := setup(t)
		_, quizID := f.seedStudentAndQuiz(t)

		staff, err := f.users.Register(ctx, user.RegisterDTO{
			Username: "bob",
			Email:    "b@x.com",
			Password: "pw1pw1",
			Confirm:  "pw1pw1",
			Role:     user.RoleStaff,
		})
		require.NoError(t, err)

		_, err = f.results.RecordForUser(ctx, staff.ID.String(), result.RecordResultDTO{QuizID: quizID, Score: 1})
		assert.True(t, apperr.IsNotFound(err))
	})
}

func TestRecordExplicitStudent(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	userID, quizID := f.seedStudentAndQuiz(t)

	student, err := f.userRepo.FindStudentByUserID(userID)
	require.NoError(t, err)
	require.NotNil(t, student)

	t.Run("Success", func(t *testing.T) {
		_, err := f.results.Record(ctx, result.RecordResultDTO{
			StudentID: student.ID.String(),
			QuizID:    quizID,
			Score:     5,
		})
		require.NoError(t, err)
	})

	t.Run("UnknownStudent", func(t *testing.T) {
		_, err := f.results.Record(ctx, result.RecordResultDTO{
			StudentID: uuid.NewString(),
			QuizID:    quizID,
			Score:     5,
		})
		assert.True(t, apperr.IsNotFound(err))
	})

	t.Run("MalformedStudentID", func(t *testing.T) {
		_, err := f.results.Record(ctx, result.RecordResultDTO{
			StudentID: "not-a-uuid",
			QuizID:    quizID,
			Score:     5,
		})
		assert.True(t, apperr.IsValidation(err))
	})
}

// Deleting a subject must close over the whole tree: chapters, quizzes,
// questions, and the results recorded against those quizzes.
func TestSubjectDeleteRemovesResults(t *testing.T) {
	ctx := context.Background()
	f := setup(t)
	userID, quizID := f.seedStudentAndQuiz(t)

	_, err := f.results.RecordForUser(ctx, userID, result.RecordResultDTO{QuizID: quizID, Score: 8})
	require.NoError(t, err)

	var subject content.Subject
	require.NoError(t, f.db.First(&subject).Error)
	require.NoError(t, f.content.DeleteSubject(ctx, subject.ID.String()))

	var count int64
	require.NoError(t, f.db.Model(&result.StudentResult{}).Count(&count).Error)
	assert.Zero(t, count, "results tied to deleted quizzes must cascade away")
}
