// Package csvstore implementa los repositorios del CRM sobre archivos CSV
// planos. Cada mutación reescribe el archivo completo; el volumen esperado
// (decenas de filas) hace innecesario algo más sofisticado.
package csvstore

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/kumisdelbalcon/balcon-api/internal/domain"
	"github.com/kumisdelbalcon/balcon-api/internal/domain/entity"
	"github.com/kumisdelbalcon/balcon-api/internal/domain/repository"
)

var contactHeader = []string{"Name", "Company", "Email", "Phone", "Status", "Last Contact"}

// Verificar en tiempo de compilación que implementa el puerto.
var _ repository.ContactRepository = (*ContactRepository)(nil)

// ContactRepository persistencia de contactos en CSV. Las lecturas sirven
// desde una caché en memoria cargada al construir; las escrituras actualizan
// la caché y reescriben el archivo bajo el mismo mutex.
type ContactRepository struct {
	path string

	mu       sync.Mutex
	contacts []entity.Contact
}

// NewContactRepository carga el archivo (creándolo con encabezados si no
// existe). Una fila malformada aborta la carga: mejor fallar al arrancar que
// servir datos corruptos.
func NewContactRepository(path string) (*ContactRepository, error) {
	r := &ContactRepository{path: path}
	if err := r.load(); err != nil {
		return nil, fmt.Errorf("csvstore: cargar contactos de %s: %w", path, err)
	}
	return r, nil
}

func (r *ContactRepository) load() error {
	rows, err := readOrCreate(r.path, contactHeader)
	if err != nil {
		return err
	}
	contacts := make([]entity.Contact, 0, len(rows))
	for i, row := range rows {
		c, err := contactFromRow(row)
		if err != nil {
			return fmt.Errorf("fila %d: %w", i+2, err)
		}
		contacts = append(contacts, c)
	}
	r.contacts = contacts
	return nil
}

// List devuelve una copia de todos los contactos en orden de almacenamiento.
func (r *ContactRepository) List() ([]entity.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]entity.Contact, len(r.contacts))
	copy(out, r.contacts)
	return out, nil
}

// GetByName busca por nombre exacto; primera coincidencia gana.
func (r *ContactRepository) GetByName(name string) (*entity.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.contacts {
		if c.Name == name {
			cc := c
			return &cc, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Create agrega el contacto y reescribe el archivo.
func (r *ContactRepository) Create(contact entity.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contacts = append(r.contacts, contact)
	return r.flush()
}

// Update reemplaza el contacto identificado por name.
func (r *ContactRepository) Update(name string, contact entity.Contact) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.contacts {
		if c.Name == name {
			r.contacts[i] = contact
			return r.flush()
		}
	}
	return domain.ErrNotFound
}

// Delete elimina el contacto identificado por name.
func (r *ContactRepository) Delete(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.contacts {
		if c.Name == name {
			r.contacts = append(r.contacts[:i], r.contacts[i+1:]...)
			return r.flush()
		}
	}
	return domain.ErrNotFound
}

// flush reescribe el archivo completo. Llamar con el mutex tomado.
func (r *ContactRepository) flush() error {
	rows := make([][]string, 0, len(r.contacts))
	for _, c := range r.contacts {
		rows = append(rows, contactToRow(c))
	}
	if err := writeAll(r.path, contactHeader, rows); err != nil {
		return fmt.Errorf("csvstore: escribir %s: %w", r.path, err)
	}
	return nil
}

func contactFromRow(row []string) (entity.Contact, error) {
	if len(row) != len(contactHeader) {
		return entity.Contact{}, fmt.Errorf("se esperaban %d columnas, hay %d", len(contactHeader), len(row))
	}
	status, err := entity.ParseContactStatus(row[4])
	if err != nil {
		return entity.Contact{}, err
	}
	last, err := parseDate(row[5])
	if err != nil {
		return entity.Contact{}, fmt.Errorf("fecha de último contacto: %w", err)
	}
	return entity.Contact{
		Name:        row[0],
		Company:     row[1],
		Email:       row[2],
		Phone:       row[3],
		Status:      status,
		LastContact: last,
	}, nil
}

func contactToRow(c entity.Contact) []string {
	return []string{
		c.Name,
		c.Company,
		c.Email,
		c.Phone,
		string(c.Status),
		c.LastContact.Format(entity.DateLayout),
	}
}

// ── Utilitarios compartidos por ambos repositorios ───────────────────────────

// readOrCreate lee todas las filas de datos del archivo, creándolo con los
// encabezados dados cuando no existe. Valida que el encabezado coincida.
func readOrCreate(path string, header []string) ([][]string, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		if err := writeAll(path, header, nil); err != nil {
			return nil, err
		}
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	if !sameHeader(records[0], header) {
		return nil, fmt.Errorf("encabezado inesperado %v", records[0])
	}
	return records[1:], nil
}

// writeAll escribe encabezado + filas de forma atómica: archivo temporal en
// el mismo directorio y rename sobre el destino.
func writeAll(path string, header []string, rows [][]string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	w := csv.NewWriter(tmp)
	if err := w.Write(header); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

func sameHeader(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
