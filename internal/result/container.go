package result

import (
	"gorm.io/gorm"

	"quizdesk/internal/user"
)

type ResultContainer struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewResultContainer(db *gorm.DB, userRepo user.Repository) *ResultContainer {
	repo := NewRepository(db)
	service := NewService(repo, userRepo)
	handler := NewHandler(service)

	return &ResultContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
