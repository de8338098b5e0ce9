package usecase

import (
	"strings"
	"time"

	"github.com/kumisdelbalcon/balcon-api/internal/application/dto"
	"github.com/kumisdelbalcon/balcon-api/internal/domain"
	"github.com/kumisdelbalcon/balcon-api/internal/domain/entity"
	"github.com/kumisdelbalcon/balcon-api/internal/domain/repository"
	"github.com/kumisdelbalcon/balcon-api/pkg/money"
)

// DealUseCase casos de uso del pipeline de negocios: CRUD más el avance de
// etapa del tablero kanban.
type DealUseCase struct {
	repo repository.DealRepository
}

// NewDealUseCase construye el caso de uso.
func NewDealUseCase(repo repository.DealRepository) *DealUseCase {
	return &DealUseCase{repo: repo}
}

// List devuelve los negocios, opcionalmente filtrados por etapa.
func (uc *DealUseCase) List(stage string) ([]dto.DealResponse, error) {
	var deals []entity.Deal
	var err error
	if stage != "" {
		st, perr := entity.ParseDealStage(stage)
		if perr != nil {
			return nil, domain.ErrInvalidInput
		}
		deals, err = uc.repo.ListByStage(st)
	} else {
		deals, err = uc.repo.List()
	}
	if err != nil {
		return nil, err
	}
	out := make([]dto.DealResponse, 0, len(deals))
	for _, d := range deals {
		out = append(out, toDealResponse(d))
	}
	return out, nil
}

// Create registra un negocio. El valor no puede ser negativo; la etapa por
// defecto es New.
func (uc *DealUseCase) Create(in dto.CreateDealRequest) (*dto.DealResponse, error) {
	if strings.TrimSpace(in.Name) == "" || in.Value.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if in.Stage == "" {
		in.Stage = string(entity.StageNew)
	}
	stage, err := entity.ParseDealStage(in.Stage)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	closeDate, err := parseCloseDate(in.CloseDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if existing, _ := uc.repo.GetByName(in.Name); existing != nil {
		return nil, domain.ErrDuplicate
	}
	deal := entity.Deal{
		Name:      in.Name,
		Company:   in.Company,
		Value:     in.Value,
		Stage:     stage,
		CloseDate: closeDate,
	}
	if err := uc.repo.Create(deal); err != nil {
		return nil, err
	}
	resp := toDealResponse(deal)
	return &resp, nil
}

// Update edita un negocio existente identificado por nombre.
func (uc *DealUseCase) Update(name string, in dto.UpdateDealRequest) (*dto.DealResponse, error) {
	existing, err := uc.repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	if in.Value.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	stage := existing.Stage
	if in.Stage != "" {
		if stage, err = entity.ParseDealStage(in.Stage); err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	closeDate := existing.CloseDate
	if in.CloseDate != "" {
		if closeDate, err = time.Parse(entity.DateLayout, in.CloseDate); err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	value := existing.Value
	if !in.Value.IsZero() {
		value = in.Value
	}
	deal := entity.Deal{
		Name:      existing.Name,
		Company:   orDefault(in.Company, existing.Company),
		Value:     value,
		Stage:     stage,
		CloseDate: closeDate,
	}
	if err := uc.repo.Update(name, deal); err != nil {
		return nil, err
	}
	resp := toDealResponse(deal)
	return &resp, nil
}

// Advance mueve el negocio a la siguiente etapa del tablero.
// Las etapas terminales (Closed Won, Closed Lost) no avanzan.
func (uc *DealUseCase) Advance(name string) (*dto.DealResponse, error) {
	deal, err := uc.repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, domain.ErrNotFound
	}
	next, ok := deal.Stage.Next()
	if !ok {
		return nil, domain.ErrConflict
	}
	updated := *deal
	updated.Stage = next
	if err := uc.repo.Update(name, updated); err != nil {
		return nil, err
	}
	resp := toDealResponse(updated)
	return &resp, nil
}

// Delete elimina un negocio por nombre.
func (uc *DealUseCase) Delete(name string) error {
	return uc.repo.Delete(name)
}

func toDealResponse(d entity.Deal) dto.DealResponse {
	closeDate := ""
	if !d.CloseDate.IsZero() {
		closeDate = d.CloseDate.Format(entity.DateLayout)
	}
	return dto.DealResponse{
		Name:      d.Name,
		Company:   d.Company,
		Value:     d.Value,
		ValueText: money.FormatCOPDecimal(d.Value),
		Stage:     string(d.Stage),
		CloseDate: closeDate,
	}
}

func parseCloseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(entity.DateLayout, s)
}
