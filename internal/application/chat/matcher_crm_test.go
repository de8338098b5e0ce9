package chat_test

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kumisdelbalcon/balcon-api/internal/application/chat"
	"github.com/kumisdelbalcon/balcon-api/internal/domain/entity"
	"github.com/kumisdelbalcon/balcon-api/internal/domain/knowledge"
)

func newCRMMatcher() *chat.Matcher {
	return chat.NewMatcher(chat.CRMRules(rand.New(rand.NewSource(1))))
}

func crmBase() *knowledge.Base {
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
	contacts := []entity.Contact{
		{Name: "Ana María Torres", Company: "Café Sevilla", Email: "ana@cafesevilla.co", Phone: "310 111 2233", Status: entity.StatusCustomer},
		{Name: "Carlos Pérez", Company: "Lácteos del Valle", Email: "carlos@lacteosvalle.co", Phone: "311 444 5566", Status: entity.StatusLead},
	}
	deals := []entity.Deal{
		{Name: "Pedido mensual hotel", Company: "Hotel Plaza", Value: decimal.NewFromInt(450000), Stage: entity.StageProposal, CloseDate: date},
		{Name: "Convenio cafetería", Company: "Café Sevilla", Value: decimal.NewFromInt(1200000), Stage: entity.StageNegotiation, CloseDate: date},
	}
	return knowledge.NewBase(knowledge.DefaultCatalog(), contacts, deals)
}

// ──────────────────────────────────────────────────────────────────────────────
// Búsquedas de contactos
// ──────────────────────────────────────────────────────────────────────────────

func TestCRM_TelefonoDeContacto(t *testing.T) {
	m := newCRMMatcher()

	reply, rule, ok := m.Match("¿me das el teléfono de ana?", crmBase())
	require.True(t, ok)
	assert.Equal(t, "telefono-de", rule)
	assert.Contains(t, reply, "Ana María Torres")
	assert.Contains(t, reply, "310 111 2233")
}

func TestCRM_TelefonoDeContactoDesconocido(t *testing.T) {
	m := newCRMMatcher()

	reply, rule, ok := m.Match("teléfono de zutano", crmBase())
	require.True(t, ok, "la regla aplica aunque el contacto no exista")
	assert.Equal(t, "telefono-de", rule)
	assert.Contains(t, reply, "No encontré")
}

func TestCRM_CorreoDeContacto(t *testing.T) {
	m := newCRMMatcher()

	reply, rule, ok := m.Match("correo de carlos", crmBase())
	require.True(t, ok)
	assert.Equal(t, "correo-de", rule)
	assert.Contains(t, reply, "carlos@lacteosvalle.co")
}

// ──────────────────────────────────────────────────────────────────────────────
// Borrador de correo
// ──────────────────────────────────────────────────────────────────────────────

func TestCRM_BorradorParaContactoConocido(t *testing.T) {
	m := newCRMMatcher()

	reply, rule, ok := m.Match("redacta un correo de seguimiento para carlos", crmBase())
	require.True(t, ok)
	assert.Equal(t, "borrador-correo", rule,
		"el borrador tiene prioridad sobre la búsqueda de correo")
	assert.Contains(t, reply, "Hola Carlos Pérez")
	assert.Contains(t, reply, "Lácteos del Valle")
}

func TestCRM_BorradorFormalCambiaElSaludo(t *testing.T) {
	m := newCRMMatcher()

	reply, _, ok := m.Match("redacta un correo formal para ana", crmBase())
	require.True(t, ok)
	assert.Contains(t, reply, "Estimado/a Ana María Torres")
	assert.Contains(t, reply, "Cordialmente,")
}

func TestCRM_BorradorSinContactoPideDatos(t *testing.T) {
	m := newCRMMatcher()

	reply, rule, ok := m.Match("redacta un borrador", crmBase())
	require.True(t, ok)
	assert.Equal(t, "borrador-correo", rule)
	assert.Contains(t, reply, "¿Para qué contacto")
}

// ──────────────────────────────────────────────────────────────────────────────
// Pipeline y totales
// ──────────────────────────────────────────────────────────────────────────────

func TestCRM_MejoresNegociosOrdenDescendente(t *testing.T) {
	m := newCRMMatcher()

	reply, rule, ok := m.Match("muéstrame los mejores negocios", crmBase())
	require.True(t, ok)
	assert.Equal(t, "pipeline", rule)
	assert.Contains(t, reply, "Convenio cafetería")
	assert.Less(t,
		strings.Index(reply, "Convenio cafetería"), strings.Index(reply, "Pedido mensual hotel"),
		"el negocio de mayor valor debe listarse primero")
}

func TestCRM_ResumenConTotales(t *testing.T) {
	m := newCRMMatcher()

	reply, rule, ok := m.Match("dame un resumen", crmBase())
	require.True(t, ok)
	assert.Equal(t, "totales", rule)
	assert.Contains(t, reply, "2 contactos")
	assert.Contains(t, reply, "2 negocios")
	assert.Contains(t, reply, "$1.650.000")
}

// ──────────────────────────────────────────────────────────────────────────────
// Aritmética
// ──────────────────────────────────────────────────────────────────────────────

func TestCRM_AritmeticaBasica(t *testing.T) {
	m := newCRMMatcher()

	cases := []struct {
		query string
		want  string
	}{
		{"cuánto es 6 + 3", "9.0"},
		{"4 * 5", "20.0"},
		{"10 - 4", "6.0"},
		{"9 / 2", "4.5"},
		{"3 por 4", "12.0"},
		{"20 entre 5", "4.0"},
		{"7,5 más 2,5", "10.0"},
	}
	for _, tc := range cases {
		reply, rule, ok := m.Match(tc.query, crmBase())
		require.True(t, ok, "la consulta %q debe resolverse", tc.query)
		assert.Equal(t, "aritmetica", rule, "consulta %q", tc.query)
		assert.Equal(t, tc.want, reply, "consulta %q", tc.query)
	}
}

func TestCRM_DivisionPorCeroDevuelveInf(t *testing.T) {
	m := newCRMMatcher()

	reply, rule, ok := m.Match("10 / 0", crmBase())
	require.True(t, ok)
	assert.Equal(t, "aritmetica", rule)
	assert.Equal(t, "inf", reply, "la división por cero devuelve el centinela, no un error")
}

// ──────────────────────────────────────────────────────────────────────────────
// Regla terminal
// ──────────────────────────────────────────────────────────────────────────────

func TestCRM_SinCoincidenciaRespondeGenerica(t *testing.T) {
	m := newCRMMatcher()

	reply, rule, ok := m.Match("cuál es el sentido de la vida", crmBase())
	require.True(t, ok, "el asistente CRM siempre responde; nunca escala por falta de regla")
	assert.Equal(t, "generica", rule)
	assert.NotEmpty(t, reply)
}

func TestCRM_Saludo(t *testing.T) {
	m := newCRMMatcher()

	reply, rule, ok := m.Match("¡Hola!", crmBase())
	require.True(t, ok)
	assert.Equal(t, "saludo", rule)
	assert.Contains(t, reply, "asistente de ventas")
}
