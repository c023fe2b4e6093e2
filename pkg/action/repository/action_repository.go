package repository

import "iddss/entities"

type ActionRepository interface {
	Create(a *entities.UserAction) error
	FindByID(id uint) (*entities.UserAction, error)
	List(stepID, recommendationID *uint, skip, limit int) ([]entities.UserAction, error)
	ListByStep(stepID uint) ([]entities.UserAction, error)
}
