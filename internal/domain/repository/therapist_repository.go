package repository

import "github.com/jmontoya/spapos-api/internal/domain/entity"

// TherapistRepository define el puerto de persistencia para Therapist.
type TherapistRepository interface {
	Create(therapist *entity.Therapist) error
	GetByID(id string) (*entity.Therapist, error)
	List() ([]*entity.Therapist, error)
	ListActive() ([]*entity.Therapist, error)
	Update(therapist *entity.Therapist) error
	Delete(id string) error
}
