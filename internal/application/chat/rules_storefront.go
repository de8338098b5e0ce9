package chat

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/kumisdelbalcon/balcon-api/internal/domain/knowledge"
	"github.com/kumisdelbalcon/balcon-api/pkg/money"
)

// recommendations combinaciones fijas sugeridas por La Vaquita. Las
// recomendaciones del chat siempre salen de esta lista.
var recommendations = []string{
	"🐮 *Clásico Sevillano:* Kumis Tradicional + Pandebono = $11.500 ✨",
	"🐮 *Dulce Perfecto:* Cheesecake de Maracuyá + Café de la Casa = $13.500 😋",
	"🐮 *Mañana Campesina:* Chocolate Santafereno + Torta de Almojábana = $13.000 ☕",
	"🐮 *Tarde de Cine:* Galleta de Chip + Avena Helada = $7.500 🍿",
}

// StorefrontRules reglas del asistente de la tienda ("La Vaquita"), en orden
// de prioridad. Una consulta sin coincidencia NO es terminal: el resolvedor
// escala al nivel remoto.
//
// rng alimenta la selección aleatoria de recomendaciones; se inyecta para
// poder sembrarlo en tests.
func StorefrontRules(rng *rand.Rand) []Rule {
	return []Rule{
		{Name: "producto", Apply: productRule},
		{Name: "categoria", Apply: categoryRule},
		{Name: "menu-completo", Apply: fullMenuRule},
		{Name: "recomendacion", Apply: recommendationRule(rng)},
		{Name: "precio-sin-producto", Apply: pricePromptRule},
		{Name: "tamanos", Apply: sizesRule},
		{Name: "alergenos", Apply: allergensRule},
		{Name: "ubicacion", Apply: locationRule},
		{Name: "sevilla", Apply: sevillaRule},
		{Name: "como-ordenar", Apply: orderingRule},
	}
}

// productRule búsqueda de productos por nombre (regla 1).
func productRule(q string, kb *knowledge.Base) (string, bool) {
	it, ok := kb.FindMenuItem(q)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("🐮 *%s*: %s\n_%s_", it.Name, money.FormatCOP(it.Price), it.Description), true
}

// categoryRule lista hasta 3 productos de la categoría aludida (regla 2).
func categoryRule(q string, kb *knowledge.Base) (string, bool) {
	cat, ok := kb.FindCategory(q)
	if !ok {
		return "", false
	}
	lines := []string{fmt.Sprintf("*%s*:", cat.Label)}
	for i, it := range cat.Items {
		if i == 3 {
			break
		}
		lines = append(lines, fmt.Sprintf("• *%s*: %s", it.Name, money.FormatCOP(it.Price)))
	}
	return strings.Join(lines, "\n"), true
}

// fullMenuRule lista las categorías de la carta (regla 3).
func fullMenuRule(q string, kb *knowledge.Base) (string, bool) {
	if !containsAny(q, "menú", "menu", "qué tienen", "qué ofrecen", "productos", "carta") {
		return "", false
	}
	lines := []string{"🐮 *Nuestro Menú:*"}
	for _, cat := range kb.Catalog {
		lines = append(lines, "\n"+cat.Label)
	}
	lines = append(lines, "\n_¡Pregúntame por una categoría específica!_")
	return strings.Join(lines, "\n"), true
}

// recommendationRule dos sugerencias distintas de la lista fija (regla 4).
func recommendationRule(rng *rand.Rand) func(string, *knowledge.Base) (string, bool) {
	return func(q string, _ *knowledge.Base) (string, bool) {
		if !containsAny(q, "recomienda", "recomendación", "sugerencia", "qué me doy", "qué pido", "mejor") {
			return "", false
		}
		perm := rng.Perm(len(recommendations))
		return recommendations[perm[0]] + "\n" + recommendations[perm[1]], true
	}
}

// pricePromptRule preguntan por precios sin nombrar producto (regla 5).
// Las reglas anteriores ya capturaron cualquier producto mencionado.
func pricePromptRule(q string, _ *knowledge.Base) (string, bool) {
	if !containsAny(q, "precio", "costo", "cuánto", "vale") {
		return "", false
	}
	return "💰 Pregúntame por el producto específico y te digo el precio. ¿Cuál te interesa?", true
}

func sizesRule(q string, _ *knowledge.Base) (string, bool) {
	if !containsAny(q, "tamaño", "porción", "litro", "16oz", "medida", "grande", "pequeño") {
		return "", false
	}
	return "🐮 Tenemos:\n" +
		"• *Kumis Tradicional*: 16oz por $8.000\n" +
		"• *Kumis Litro*: 1L por $18.000\n" +
		"_¿Otros productos en tamaños especiales? Consulta por WhatsApp._", true
}

func allergensRule(q string, _ *knowledge.Base) (string, bool) {
	if !containsAny(q, "alerg", "alérg", "sin gluten", "vegano", "vegetariano", "intolerancia", "lactosa") {
		return "", false
	}
	return "🐮 ¡Importante! No tenemos lista completa de alérgenos en la app.\n" +
		"Por seguridad, *confirma ingredientes por WhatsApp* antes de pedir.\n" +
		"📲 Escríbenos: https://wa.me/573127321920", true
}

func locationRule(q string, _ *knowledge.Base) (string, bool) {
	if !containsAny(q, "dónde", "ubicación", "dirección", "horario", "abierto", "cierre") {
		return "", false
	}
	return "📍 *Kumis del Balcón*\n" +
		"Carrera 50 # 25-10\n" +
		"Frente al Parque Principal\n" +
		"Sevilla, Valle del Cauca\n" +
		"📞 310 123 4567", true
}

func sevillaRule(q string, _ *knowledge.Base) (string, bool) {
	if !containsAny(q, "sevilla", "turismo", "qué hacer", "visitar", "basílica", "paisaje cultural", "bandola") {
		return "", false
	}
	return "🌄 *Sevilla - Capital Cafetera* ☕\n" +
		"• 🏰 Basílica San Luis Gonzaga\n" +
		"• 🌿 Paisaje Cultural Cafetero (Patrimonio UNESCO)\n" +
		"• 🎵 Festival de la Bandola (agosto)\n" +
		"¡Ven a visitarnos y disfruta de Kumis! 🐮", true
}

func orderingRule(q string, _ *knowledge.Base) (string, bool) {
	if !containsAny(q, "cómo pedir", "orden", "pedido", "comprar", "domicilio", "delivery") {
		return "", false
	}
	return "🐮 *¿Cómo Ordenar?*\n" +
		"1. Elige productos de nuestro menú\n" +
		"2. Agrega al carrito\n" +
		"3. Completa tus datos\n" +
		"4. ¡Envía por WhatsApp!\n" +
		"_También puedes ordenar presencialmente en nuestro local._", true
}
