package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/kumisdelbalcon/balcon-api/internal/application/dto"
	"github.com/kumisdelbalcon/balcon-api/internal/domain/entity"
	"github.com/kumisdelbalcon/balcon-api/internal/domain/repository"
)

// DashboardUseCase indicadores del CRM: valor del pipeline, negocios activos,
// contactos totales, negocios ganados y los últimos 5 registrados.
type DashboardUseCase struct {
	contacts repository.ContactRepository
	deals    repository.DealRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(contacts repository.ContactRepository, deals repository.DealRepository) *DashboardUseCase {
	return &DashboardUseCase{contacts: contacts, deals: deals}
}

// Summary calcula los indicadores sobre el estado actual de los CSV.
func (uc *DashboardUseCase) Summary() (*dto.DashboardResponse, error) {
	contacts, err := uc.contacts.List()
	if err != nil {
		return nil, err
	}
	deals, err := uc.deals.List()
	if err != nil {
		return nil, err
	}

	pipeline := decimal.Zero
	won := 0
	for _, d := range deals {
		pipeline = pipeline.Add(d.Value)
		if d.Stage == entity.StageClosedWon {
			won++
		}
	}

	recent := deals
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}
	recentOut := make([]dto.DealResponse, 0, len(recent))
	for _, d := range recent {
		recentOut = append(recentOut, toDealResponse(d))
	}

	return &dto.DashboardResponse{
		PipelineValue: pipeline,
		ActiveDeals:   len(deals),
		TotalContacts: len(contacts),
		WonDeals:      won,
		RecentDeals:   recentOut,
	}, nil
}
