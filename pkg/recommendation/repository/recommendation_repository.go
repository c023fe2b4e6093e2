package repository

import "iddss/entities"

type RecommendationRepository interface {
	Create(rec *entities.Recommendation) error
	FindByID(id uint) (*entities.Recommendation, error)
	List(stepID *uint, phase string, skip, limit int) ([]entities.Recommendation, error)
	ListByStep(stepID uint) ([]entities.Recommendation, error)
}
