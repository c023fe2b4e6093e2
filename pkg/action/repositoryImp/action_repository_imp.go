package repositoryImp

import (
	"gorm.io/gorm"

	"iddss/entities"
	"iddss/pkg/action/repository"
)

type actionRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ActionRepository { return &actionRepo{db} }

func (r *actionRepo) Create(a *entities.UserAction) error { return r.db.Create(a).Error }

func (r *actionRepo) FindByID(id uint) (*entities.UserAction, error) {
	var a entities.UserAction
	if err := r.db.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *actionRepo) List(stepID, recommendationID *uint, skip, limit int) ([]entities.UserAction, error) {
	q := r.db.Model(&entities.UserAction{})
	if stepID != nil {
		q = q.Where("step_id = ?", *stepID)
	}
	if recommendationID != nil {
		q = q.Where("recommendation_id = ?", *recommendationID)
	}
	if limit <= 0 {
		limit = 100
	}
	var out []entities.UserAction
	return out, q.Order("action_id ASC").Offset(skip).Limit(limit).Find(&out).Error
}

func (r *actionRepo) ListByStep(stepID uint) ([]entities.UserAction, error) {
	var out []entities.UserAction
	return out, r.db.Where("step_id = ?", stepID).Order("action_id ASC").Find(&out).Error
}
