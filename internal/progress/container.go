package progress

import "gorm.io/gorm"

type ProgressContainer struct {
	Repo    SessionRepository
	Service SessionService
	Handler *Handler
}

func NewProgressContainer(db *gorm.DB) *ProgressContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &ProgressContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
