package repository

import "iddss/entities"

type SessionRepository interface {
	Create(s *entities.Session) error
	Update(s *entities.Session) error
	FindByID(id uint) (*entities.Session, error)
	List(skip, limit int) ([]entities.Session, error)
}
