package user

import "gorm.io/gorm"

type UserContainer struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewUserContainer(db *gorm.DB) *UserContainer {
	repo := NewRepository(db)
	service := NewService(db, repo)
	handler := NewHandler(service)

	return &UserContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
