package repository

import "github.com/jmontoya/spapos-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	FindByUsername(username string) (*entity.User, error)
	List() ([]*entity.User, error)
	Delete(id string) error
}
