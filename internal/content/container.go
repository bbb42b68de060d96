package content

import "gorm.io/gorm"

type ContentContainer struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewContentContainer(db *gorm.DB) *ContentContainer {
	repo := NewRepository(db)
	service := NewService(db, repo)
	handler := NewHandler(service)

	return &ContentContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
