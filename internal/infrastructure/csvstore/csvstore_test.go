package csvstore_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kumisdelbalcon/balcon-api/internal/domain"
	"github.com/kumisdelbalcon/balcon-api/internal/domain/entity"
	"github.com/kumisdelbalcon/balcon-api/internal/infrastructure/csvstore"
)

func contactsPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "contacts.csv")
}

func sampleContact() entity.Contact {
	return entity.Contact{
		Name:        "Ana María Torres",
		Company:     "Café Sevilla",
		Email:       "ana@cafesevilla.co",
		Phone:       "310 111 2233",
		Status:      entity.StatusCustomer,
		LastContact: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ContactRepository
// ──────────────────────────────────────────────────────────────────────────────

func TestContactRepository_CreaArchivoConEncabezados(t *testing.T) {
	path := contactsPath(t)

	_, err := csvstore.NewContactRepository(path)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Name,Company,Email,Phone,Status,Last Contact")
}

func TestContactRepository_PersisteEntreInstancias(t *testing.T) {
	path := contactsPath(t)

	repo, err := csvstore.NewContactRepository(path)
	require.NoError(t, err)
	require.NoError(t, repo.Create(sampleContact()))

	// Una instancia nueva debe releer lo escrito.
	repo2, err := csvstore.NewContactRepository(path)
	require.NoError(t, err)
	got, err := repo2.GetByName("Ana María Torres")
	require.NoError(t, err)
	assert.Equal(t, "Café Sevilla", got.Company)
	assert.Equal(t, entity.StatusCustomer, got.Status)
	assert.Equal(t, "2026-08-01", got.LastContact.Format(entity.DateLayout))
}

func TestContactRepository_UpdateYDelete(t *testing.T) {
	repo, err := csvstore.NewContactRepository(contactsPath(t))
	require.NoError(t, err)
	require.NoError(t, repo.Create(sampleContact()))

	updated := sampleContact()
	updated.Phone = "320 999 0000"
	require.NoError(t, repo.Update("Ana María Torres", updated))

	got, err := repo.GetByName("Ana María Torres")
	require.NoError(t, err)
	assert.Equal(t, "320 999 0000", got.Phone)

	require.NoError(t, repo.Delete("Ana María Torres"))
	_, err = repo.GetByName("Ana María Torres")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestContactRepository_OperacionesSobreAusenteFallan(t *testing.T) {
	repo, err := csvstore.NewContactRepository(contactsPath(t))
	require.NoError(t, err)

	assert.ErrorIs(t, repo.Update("Nadie", sampleContact()), domain.ErrNotFound)
	assert.ErrorIs(t, repo.Delete("Nadie"), domain.ErrNotFound)
}

func TestContactRepository_EstadoInvalidoAbortaLaCarga(t *testing.T) {
	path := contactsPath(t)
	raw := "Name,Company,Email,Phone,Status,Last Contact\n" +
		"Ana,ACME,ana@acme.co,310,EstadoRaro,2026-08-01\n"
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	_, err := csvstore.NewContactRepository(path)
	require.Error(t, err, "una fila con estado desconocido debe impedir el arranque")
	assert.Contains(t, err.Error(), "fila 2")
}

func TestContactRepository_EncabezadoInesperadoAbortaLaCarga(t *testing.T) {
	path := contactsPath(t)
	require.NoError(t, os.WriteFile(path, []byte("Nombre,Empresa\nAna,ACME\n"), 0o644))

	_, err := csvstore.NewContactRepository(path)
	assert.Error(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// DealRepository
// ──────────────────────────────────────────────────────────────────────────────

func sampleDeal() entity.Deal {
	return entity.Deal{
		Name:      "Convenio cafetería",
		Company:   "Café Sevilla",
		Value:     decimal.NewFromInt(1200000),
		Stage:     entity.StageNegotiation,
		CloseDate: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestDealRepository_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deals.csv")

	repo, err := csvstore.NewDealRepository(path)
	require.NoError(t, err)
	require.NoError(t, repo.Create(sampleDeal()))

	repo2, err := csvstore.NewDealRepository(path)
	require.NoError(t, err)
	got, err := repo2.GetByName("Convenio cafetería")
	require.NoError(t, err)
	assert.True(t, got.Value.Equal(decimal.NewFromInt(1200000)),
		"el valor decimal debe sobrevivir el viaje por CSV")
	assert.Equal(t, entity.StageNegotiation, got.Stage)
}

func TestDealRepository_ListByStage(t *testing.T) {
	repo, err := csvstore.NewDealRepository(filepath.Join(t.TempDir(), "deals.csv"))
	require.NoError(t, err)

	d1 := sampleDeal()
	d2 := sampleDeal()
	d2.Name = "Pedido hotel"
	d2.Stage = entity.StageNew
	require.NoError(t, repo.Create(d1))
	require.NoError(t, repo.Create(d2))

	got, err := repo.ListByStage(entity.StageNew)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Pedido hotel", got[0].Name)
}

func TestDealRepository_ValorNegativoAbortaLaCarga(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deals.csv")
	raw := "Deal Name,Company,Value,Stage,Close Date\n" +
		"Negocio,ACME,-100,New,2026-09-15\n"
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	_, err := csvstore.NewDealRepository(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negativo")
}

func TestDealRepository_FechaInvalidaAbortaLaCarga(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deals.csv")
	raw := "Deal Name,Company,Value,Stage,Close Date\n" +
		"Negocio,ACME,100,New,15/09/2026\n"
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	_, err := csvstore.NewDealRepository(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2006-01-02", "el error debe nombrar el formato esperado")
}
