package usecase

import (
	"strings"
	"time"

	"github.com/kumisdelbalcon/balcon-api/internal/application/dto"
	"github.com/kumisdelbalcon/balcon-api/internal/domain"
	"github.com/kumisdelbalcon/balcon-api/internal/domain/entity"
	"github.com/kumisdelbalcon/balcon-api/internal/domain/repository"
)

// ContactUseCase casos de uso CRUD para contactos del CRM.
type ContactUseCase struct {
	repo repository.ContactRepository
}

// NewContactUseCase construye el caso de uso.
func NewContactUseCase(repo repository.ContactRepository) *ContactUseCase {
	return &ContactUseCase{repo: repo}
}

// List devuelve los contactos, opcionalmente filtrados por nombre o empresa
// (subcadena, insensible a mayúsculas) y paginados.
func (uc *ContactUseCase) List(search string, page dto.PageRequest) ([]dto.ContactResponse, error) {
	page.DefaultPage()
	contacts, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	search = strings.ToLower(strings.TrimSpace(search))
	filtered := make([]entity.Contact, 0, len(contacts))
	for _, c := range contacts {
		if search == "" ||
			strings.Contains(strings.ToLower(c.Name), search) ||
			strings.Contains(strings.ToLower(c.Company), search) {
			filtered = append(filtered, c)
		}
	}
	if page.Offset >= len(filtered) {
		return []dto.ContactResponse{}, nil
	}
	end := page.Offset + page.Limit
	if end > len(filtered) {
		end = len(filtered)
	}
	out := make([]dto.ContactResponse, 0, end-page.Offset)
	for _, c := range filtered[page.Offset:end] {
		out = append(out, toContactResponse(c))
	}
	return out, nil
}

// Create registra un contacto nuevo. Last Contact se estampa con la fecha
// actual, como hacía el formulario original.
func (uc *ContactUseCase) Create(in dto.CreateContactRequest) (*dto.ContactResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Status == "" {
		in.Status = string(entity.StatusLead)
	}
	status, err := entity.ParseContactStatus(in.Status)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	if existing, _ := uc.repo.GetByName(in.Name); existing != nil {
		return nil, domain.ErrDuplicate
	}
	contact := entity.Contact{
		Name:        in.Name,
		Company:     in.Company,
		Email:       in.Email,
		Phone:       in.Phone,
		Status:      status,
		LastContact: time.Now(),
	}
	if err := uc.repo.Create(contact); err != nil {
		return nil, err
	}
	resp := toContactResponse(contact)
	return &resp, nil
}

// Update edita un contacto existente identificado por nombre.
func (uc *ContactUseCase) Update(name string, in dto.UpdateContactRequest) (*dto.ContactResponse, error) {
	existing, err := uc.repo.GetByName(name)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	status := existing.Status
	if in.Status != "" {
		if status, err = entity.ParseContactStatus(in.Status); err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	lastContact := existing.LastContact
	if in.LastContact != "" {
		if lastContact, err = time.Parse(entity.DateLayout, in.LastContact); err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	contact := entity.Contact{
		Name:        existing.Name,
		Company:     orDefault(in.Company, existing.Company),
		Email:       orDefault(in.Email, existing.Email),
		Phone:       orDefault(in.Phone, existing.Phone),
		Status:      status,
		LastContact: lastContact,
	}
	if err := uc.repo.Update(name, contact); err != nil {
		return nil, err
	}
	resp := toContactResponse(contact)
	return &resp, nil
}

// Delete elimina un contacto por nombre.
func (uc *ContactUseCase) Delete(name string) error {
	return uc.repo.Delete(name)
}

func toContactResponse(c entity.Contact) dto.ContactResponse {
	return dto.ContactResponse{
		Name:        c.Name,
		Company:     c.Company,
		Email:       c.Email,
		Phone:       c.Phone,
		Status:      string(c.Status),
		LastContact: c.LastContact.Format(entity.DateLayout),
	}
}

func orDefault(value, def string) string {
	if value == "" {
		return def
	}
	return value
}
