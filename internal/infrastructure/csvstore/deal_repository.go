package csvstore

import (
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kumisdelbalcon/balcon-api/internal/domain"
	"github.com/kumisdelbalcon/balcon-api/internal/domain/entity"
	"github.com/kumisdelbalcon/balcon-api/internal/domain/repository"
)

var dealHeader = []string{"Deal Name", "Company", "Value", "Stage", "Close Date"}

var _ repository.DealRepository = (*DealRepository)(nil)

// DealRepository persistencia de negocios del pipeline en CSV. Mismo modelo
// que ContactRepository: caché en memoria y reescritura completa al mutar.
type DealRepository struct {
	path string

	mu    sync.Mutex
	deals []entity.Deal
}

// NewDealRepository carga el archivo, creándolo con encabezados si no existe.
func NewDealRepository(path string) (*DealRepository, error) {
	r := &DealRepository{path: path}
	if err := r.load(); err != nil {
		return nil, fmt.Errorf("csvstore: cargar negocios de %s: %w", path, err)
	}
	return r, nil
}

func (r *DealRepository) load() error {
	rows, err := readOrCreate(r.path, dealHeader)
	if err != nil {
		return err
	}
	deals := make([]entity.Deal, 0, len(rows))
	for i, row := range rows {
		d, err := dealFromRow(row)
		if err != nil {
			return fmt.Errorf("fila %d: %w", i+2, err)
		}
		deals = append(deals, d)
	}
	r.deals = deals
	return nil
}

// List devuelve una copia de todos los negocios en orden de almacenamiento.
func (r *DealRepository) List() ([]entity.Deal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Deal, len(r.deals))
	copy(out, r.deals)
	return out, nil
}

// ListByStage filtra por etapa exacta.
func (r *DealRepository) ListByStage(stage entity.DealStage) ([]entity.Deal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Deal, 0)
	for _, d := range r.deals {
		if d.Stage == stage {
			out = append(out, d)
		}
	}
	return out, nil
}

// GetByName busca por nombre exacto; primera coincidencia gana.
func (r *DealRepository) GetByName(name string) (*entity.Deal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.deals {
		if d.Name == name {
			dd := d
			return &dd, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Create agrega el negocio y reescribe el archivo.
func (r *DealRepository) Create(deal entity.Deal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deals = append(r.deals, deal)
	return r.flush()
}

// Update reemplaza el negocio identificado por name.
func (r *DealRepository) Update(name string, deal entity.Deal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, d := range r.deals {
		if d.Name == name {
			r.deals[i] = deal
			return r.flush()
		}
	}
	return domain.ErrNotFound
}

// Delete elimina el negocio identificado por name.
func (r *DealRepository) Delete(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, d := range r.deals {
		if d.Name == name {
			r.deals = append(r.deals[:i], r.deals[i+1:]...)
			return r.flush()
		}
	}
	return domain.ErrNotFound
}

func (r *DealRepository) flush() error {
	rows := make([][]string, 0, len(r.deals))
	for _, d := range r.deals {
		rows = append(rows, dealToRow(d))
	}
	if err := writeAll(r.path, dealHeader, rows); err != nil {
		return fmt.Errorf("csvstore: escribir %s: %w", r.path, err)
	}
	return nil
}

func dealFromRow(row []string) (entity.Deal, error) {
	if len(row) != len(dealHeader) {
		return entity.Deal{}, fmt.Errorf("se esperaban %d columnas, hay %d", len(dealHeader), len(row))
	}
	value, err := decimal.NewFromString(row[2])
	if err != nil {
		return entity.Deal{}, fmt.Errorf("valor %q: %w", row[2], err)
	}
	if value.IsNegative() {
		return entity.Deal{}, fmt.Errorf("valor negativo %s", row[2])
	}
	stage, err := entity.ParseDealStage(row[3])
	if err != nil {
		return entity.Deal{}, err
	}
	closeDate, err := parseDate(row[4])
	if err != nil {
		return entity.Deal{}, fmt.Errorf("fecha de cierre: %w", err)
	}
	return entity.Deal{
		Name:      row[0],
		Company:   row[1],
		Value:     value,
		Stage:     stage,
		CloseDate: closeDate,
	}, nil
}

func dealToRow(d entity.Deal) []string {
	return []string{
		d.Name,
		d.Company,
		d.Value.String(),
		string(d.Stage),
		d.CloseDate.Format(entity.DateLayout),
	}
}

func parseDate(raw string) (time.Time, error) {
	t, err := time.Parse(entity.DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha %q no cumple el formato %s", raw, entity.DateLayout)
	}
	return t, nil
}
