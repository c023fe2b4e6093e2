package repositoryImp

import (
	"gorm.io/gorm"

	"iddss/entities"
	"iddss/pkg/session/repository"
)

type sessionRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SessionRepository { return &sessionRepo{db} }

func (r *sessionRepo) Create(s *entities.Session) error { return r.db.Create(s).Error }

func (r *sessionRepo) Update(s *entities.Session) error { return r.db.Save(s).Error }

func (r *sessionRepo) FindByID(id uint) (*entities.Session, error) {
	var s entities.Session
	if err := r.db.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sessionRepo) List(skip, limit int) ([]entities.Session, error) {
	var out []entities.Session
	if limit <= 0 {
		limit = 100
	}
	return out, r.db.Order("session_id ASC").Offset(skip).Limit(limit).Find(&out).Error
}
