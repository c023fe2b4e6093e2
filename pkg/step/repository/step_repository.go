package repository

import "iddss/entities"

type StepRepository interface {
	Create(s *entities.DesignStep) error
	FindByID(id uint) (*entities.DesignStep, error)
	// List filters by session when sessionID is non-nil.
	List(sessionID *uint, skip, limit int) ([]entities.DesignStep, error)
	ListBySession(sessionID uint) ([]entities.DesignStep, error)
}
