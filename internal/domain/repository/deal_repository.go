package repository

import "github.com/kumisdelbalcon/balcon-api/internal/domain/entity"

// DealRepository define el puerto de persistencia para negocios del pipeline.
type DealRepository interface {
	List() ([]entity.Deal, error)
	ListByStage(stage entity.DealStage) ([]entity.Deal, error)
	GetByName(name string) (*entity.Deal, error)
	Create(deal entity.Deal) error
	Update(name string, deal entity.Deal) error
	Delete(name string) error
}
