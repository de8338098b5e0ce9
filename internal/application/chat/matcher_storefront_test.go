package chat_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kumisdelbalcon/balcon-api/internal/application/chat"
	"github.com/kumisdelbalcon/balcon-api/internal/domain/knowledge"
)

// newStorefrontMatcher matcher de la tienda con rng sembrado (determinista).
func newStorefrontMatcher() *chat.Matcher {
	return chat.NewMatcher(chat.StorefrontRules(rand.New(rand.NewSource(1))))
}

func storefrontBase() *knowledge.Base {
	return knowledge.NewBase(knowledge.DefaultCatalog(), nil, nil)
}

func TestStorefront_ProductoConPrecioFormateado(t *testing.T) {
	m := newStorefrontMatcher()

	reply, rule, ok := m.Match("¿Cuánto vale el Kumis Litro?", storefrontBase())
	require.True(t, ok)
	assert.Equal(t, "producto", rule)
	assert.Contains(t, reply, "*Kumis Litro*")
	assert.Contains(t, reply, "$18.000", "el precio va con separador de miles colombiano")
	assert.Contains(t, reply, "Para compartir en familia.")
}

func TestStorefront_ProductoGanaSobrePrecioGenerico(t *testing.T) {
	m := newStorefrontMatcher()

	// La consulta trae "cuánto" (disparador de la regla genérica de precios)
	// pero nombra un producto: la regla de producto tiene prioridad.
	_, rule, ok := m.Match("cuánto cuesta el arroz con leche", storefrontBase())
	require.True(t, ok)
	assert.Equal(t, "producto", rule)
}

func TestStorefront_CategoriaListaHastaTresProductos(t *testing.T) {
	m := newStorefrontMatcher()

	reply, rule, ok := m.Match("qué tienes de panadería", storefrontBase())
	require.True(t, ok)
	assert.Equal(t, "categoria", rule)
	assert.Contains(t, reply, "🥐 Panadería y Tradición")
	assert.Equal(t, 4, len(strings.Split(reply, "\n")),
		"encabezado más un máximo de tres productos")
}

func TestStorefront_MenuCompletoListaLasCategorias(t *testing.T) {
	m := newStorefrontMatcher()

	reply, rule, ok := m.Match("muéstrame el menú", storefrontBase())
	require.True(t, ok)
	assert.Equal(t, "menu-completo", rule)
	for _, label := range []string{"🐮 Lácteos", "🥐 Panadería", "🍰 Repostería", "☕ Bebidas"} {
		assert.Contains(t, reply, label)
	}
}

func TestStorefront_RecomendacionDosDistintas(t *testing.T) {
	m := newStorefrontMatcher()

	reply, rule, ok := m.Match("¿qué me recomiendas?", storefrontBase())
	require.True(t, ok)
	assert.Equal(t, "recomendacion", rule)

	lines := strings.Split(reply, "\n")
	require.Len(t, lines, 2, "siempre son dos sugerencias")
	assert.NotEqual(t, lines[0], lines[1], "las dos sugerencias deben ser distintas")
}

func TestStorefront_PrecioSinProducto(t *testing.T) {
	m := newStorefrontMatcher()

	reply, rule, ok := m.Match("¿y los precios?", storefrontBase())
	require.True(t, ok)
	assert.Equal(t, "precio-sin-producto", rule)
	assert.Contains(t, reply, "Pregúntame por el producto específico")
}

func TestStorefront_Ubicacion(t *testing.T) {
	m := newStorefrontMatcher()

	reply, rule, ok := m.Match("¿dónde están?", storefrontBase())
	require.True(t, ok)
	assert.Equal(t, "ubicacion", rule)
	assert.Contains(t, reply, "Sevilla, Valle del Cauca")
}

func TestStorefront_Alergenos(t *testing.T) {
	m := newStorefrontMatcher()

	reply, rule, ok := m.Match("¿tienen opciones sin lactosa?", storefrontBase())
	require.True(t, ok)
	assert.Equal(t, "alergenos", rule)
	assert.Contains(t, reply, "wa.me/573127321920")
}

func TestStorefront_SinCoincidenciaNoEsTerminal(t *testing.T) {
	m := newStorefrontMatcher()

	// El matcher de la tienda no tiene regla terminal: la consulta sin
	// coincidencia queda en manos del resolvedor (nivel remoto o respaldo).
	_, _, ok := m.Match("cuéntame un chiste", storefrontBase())
	assert.False(t, ok)
}

func TestStorefront_TextoVacioNoCoincide(t *testing.T) {
	m := newStorefrontMatcher()

	_, _, ok := m.Match("   ", storefrontBase())
	assert.False(t, ok)
}
