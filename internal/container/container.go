package container

import (
	"context"
	"log"
	"os"

	"quizdesk/internal/auth"
	"quizdesk/internal/config"
	"quizdesk/internal/content"
	"quizdesk/internal/result"
	"quizdesk/internal/user"
	"quizdesk/internal/web"
)

type Container struct {
	UserContainer    *user.UserContainer
	ContentContainer *content.ContentContainer
	ResultContainer  *result.ResultContainer
	WebHandler       *web.Handler
}

func New() *Container {
	config.Init()
	auth.Init()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if err := Migrate(); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	userContainer := user.NewUserContainer(config.DB)
	contentContainer := content.NewContentContainer(config.DB)
	resultContainer := result.NewResultContainer(config.DB, userContainer.Repo)

	if err := userContainer.Service.Seed(context.Background()); err != nil {
		log.Fatalf("failed to seed roles: %v", err)
	}

	return &Container{
		UserContainer:    userContainer,
		ContentContainer: contentContainer,
		ResultContainer:  resultContainer,
		WebHandler:       web.NewHandler(),
	}
}

// Migrate applies the schema. Explicit and idempotent; runs once per start.
func Migrate() error {
	if err := config.DB.SetupJoinTable(&user.User{}, "Roles", &user.UserRole{}); err != nil {
		return err
	}
	return config.DB.AutoMigrate(
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
	)
}
