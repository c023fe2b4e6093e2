package repositoryImp

import (
	"gorm.io/gorm"

	"iddss/entities"
	"iddss/pkg/step/repository"
)

type stepRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.StepRepository { return &stepRepo{db} }

func (r *stepRepo) Create(s *entities.DesignStep) error { return r.db.Create(s).Error }

func (r *stepRepo) FindByID(id uint) (*entities.DesignStep, error) {
	var s entities.DesignStep
	if err := r.db.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *stepRepo) List(sessionID *uint, skip, limit int) ([]entities.DesignStep, error) {
	q := r.db.Model(&entities.DesignStep{})
	if sessionID != nil {
		q = q.Where("session_id = ?", *sessionID)
	}
	if limit <= 0 {
		limit = 100
	}
	var out []entities.DesignStep
	return out, q.Order("step_id ASC").Offset(skip).Limit(limit).Find(&out).Error
}

func (r *stepRepo) ListBySession(sessionID uint) ([]entities.DesignStep, error) {
	var out []entities.DesignStep
	return out, r.db.Where("session_id = ?", sessionID).Order("step_id ASC").Find(&out).Error
}
