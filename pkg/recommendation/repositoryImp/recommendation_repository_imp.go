package repositoryImp

import (
	"gorm.io/gorm"

	"iddss/entities"
	"iddss/pkg/recommendation/repository"
)

type recRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.RecommendationRepository { return &recRepo{db} }

func (r *recRepo) Create(rec *entities.Recommendation) error { return r.db.Create(rec).Error }

func (r *recRepo) FindByID(id uint) (*entities.Recommendation, error) {
	var rec entities.Recommendation
	if err := r.db.First(&rec, id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *recRepo) List(stepID *uint, phase string, skip, limit int) ([]entities.Recommendation, error) {
	q := r.db.Model(&entities.Recommendation{})
	if stepID != nil {
		q = q.Where("step_id = ?", *stepID)
	}
	if phase != "" {
		q = q.Where("phase = ?", phase)
	}
	if limit <= 0 {
		limit = 100
	}
	var out []entities.Recommendation
	return out, q.Order("recommendation_id ASC").Offset(skip).Limit(limit).Find(&out).Error
}

func (r *recRepo) ListByStep(stepID uint) ([]entities.Recommendation, error) {
	var out []entities.Recommendation
	return out, r.db.Where("step_id = ?", stepID).Order("recommendation_id ASC").Find(&out).Error
}
