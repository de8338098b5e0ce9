package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kumisdelbalcon/balcon-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Conversation
// ──────────────────────────────────────────────────────────────────────────────

func TestConversation_AppendConservaElOrden(t *testing.T) {
	var conv entity.Conversation
	conv.Append(entity.RoleUser, "hola")
	conv.Append(entity.RoleAssistant, "¡hola!")
	conv.Append(entity.RoleUser, "¿precio del kumis?")

	msgs := conv.Messages()
	require.Len(t, msgs, 3)
	assert.Equal(t, entity.RoleUser, msgs[0].Role)
	assert.Equal(t, "hola", msgs[0].Content)
	assert.Equal(t, entity.RoleAssistant, msgs[1].Role)
	assert.Equal(t, "¿precio del kumis?", msgs[2].Content)
}

func TestConversation_MessagesDevuelveCopia(t *testing.T) {
	var conv entity.Conversation
	conv.Append(entity.RoleUser, "hola")

	msgs := conv.Messages()
	msgs[0].Content = "mutado"

	assert.Equal(t, "hola", conv.Messages()[0].Content,
		"mutar la copia no debe afectar el historial")
}

func TestConversation_ClearVaciaElHistorial(t *testing.T) {
	var conv entity.Conversation
	conv.Append(entity.RoleUser, "hola")
	conv.Clear()

	assert.Zero(t, conv.Len())
}

// ──────────────────────────────────────────────────────────────────────────────
// Cart
// ──────────────────────────────────────────────────────────────────────────────

func TestCart_TotalSumaLasLineas(t *testing.T) {
	var cart entity.Cart
	cart.Add(entity.MenuItem{Name: "Kumis Tradicional (16oz)", Price: 8000})
	cart.Add(entity.MenuItem{Name: "Pandebono Valluno", Price: 3500})
	cart.Add(entity.MenuItem{Name: "Pandebono Valluno", Price: 3500})

	assert.Equal(t, 3, cart.Len(), "cada unidad es una línea")
	assert.Equal(t, int64(15000), cart.Total())
}

func TestCart_LinesDevuelveCopia(t *testing.T) {
	var cart entity.Cart
	cart.Add(entity.MenuItem{Name: "Kumis Litro", Price: 18000})

	lines := cart.Lines()
	lines[0].Price = 0

	assert.Equal(t, int64(18000), cart.Total(), "mutar la copia no debe afectar el carrito")
}

// ──────────────────────────────────────────────────────────────────────────────
// DealStage
// ──────────────────────────────────────────────────────────────────────────────

func TestDealStage_NextAvanzaElKanban(t *testing.T) {
	cases := []struct {
		from entity.DealStage
		want entity.DealStage
	}{
		{entity.StageNew, entity.StageDiscovery},
		{entity.StageDiscovery, entity.StageProposal},
		{entity.StageProposal, entity.StageNegotiation},
		{entity.StageNegotiation, entity.StageClosedWon},
	}
	for _, tc := range cases {
		next, ok := tc.from.Next()
		require.True(t, ok, "la etapa %s debe tener siguiente", tc.from)
		assert.Equal(t, tc.want, next)
	}
}

func TestDealStage_EtapasTerminalesNoAvanzan(t *testing.T) {
	_, ok := entity.StageClosedWon.Next()
	assert.False(t, ok, "Closed Won es terminal")

	_, ok = entity.StageClosedLost.Next()
	assert.False(t, ok, "Closed Lost está fuera del kanban")
}

func TestParseContactStatus_RechazaValoresDesconocidos(t *testing.T) {
	st, err := entity.ParseContactStatus("Customer")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCustomer, st)

	_, err = entity.ParseContactStatus("cliente")
	assert.Error(t, err, "los estados son sensibles a mayúsculas y cerrados")
}

func TestParseDealStage_RechazaValoresDesconocidos(t *testing.T) {
	st, err := entity.ParseDealStage("Closed Won")
	require.NoError(t, err)
	assert.Equal(t, entity.StageClosedWon, st)

	_, err = entity.ParseDealStage("ganado")
	assert.Error(t, err)
}
