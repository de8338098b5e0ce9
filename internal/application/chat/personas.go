package chat

import (
	"encoding/json"
	"fmt"
	"math/rand"

	"github.com/kumisdelbalcon/balcon-api/internal/domain/knowledge"
)

// StorefrontPersona "La Vaquita": asistente de la tienda. Sin coincidencia
// local escala al modelo remoto con la carta como contexto de sistema.
func StorefrontPersona(rng *rand.Rand) Persona {
	return Persona{
		Name:         "vaquita",
		Matcher:      NewMatcher(StorefrontRules(rng)),
		SystemPrompt: storefrontSystemPrompt,
		FallbackMessage: func(err error) string {
			return DefaultFallbackMessage(err)
		},
		MissingKeyMessage: "🐮 Muuu... ¡Perdón! 😅\n" +
			"Pregúntame sobre:\n" +
			"• Productos del menú\n" +
			"• Precios y recomendaciones\n" +
			"• Cómo ordenar\n" +
			"• Sevilla y turismo\n" +
			"_¿Qué te gustaría saber?_",
	}
}

// CRMPersona asistente de ventas del CRM. Su última regla (respuesta
// genérica) siempre aplica, así que nunca escala al nivel remoto por falta de
// coincidencia; los niveles remotos del CRM son los endpoints explícitos de
// consejos de venta y borradores de correo.
func CRMPersona(rng *rand.Rand) Persona {
	return Persona{
		Name:         "crm",
		Matcher:      NewMatcher(CRMRules(rng)),
		SystemPrompt: crmSystemPrompt,
		FallbackMessage: func(err error) string {
			return fmt.Sprintf("🤖 Tuve un problema técnico (%v). Intenta de nuevo en un momento.", err)
		},
		MissingKeyMessage: "⚠️ El asistente avanzado no está configurado. " +
			"Define OPENROUTER_API_KEY para habilitar las respuestas del modelo externo.",
	}
}

// storefrontSystemPrompt contexto de sistema de La Vaquita con la carta
// vigente serializada.
func storefrontSystemPrompt(kb *knowledge.Base) string {
	menu := make(map[string][]map[string]any, len(kb.Catalog))
	for _, cat := range kb.Catalog {
		items := make([]map[string]any, 0, len(cat.Items))
		for _, it := range cat.Items {
			items = append(items, map[string]any{
				"name":  it.Name,
				"price": it.Price,
				"desc":  it.Description,
			})
		}
		menu[cat.Label] = items
	}
	menuCtx, _ := json.Marshal(menu)

	return fmt.Sprintf(`Eres 'La Vaquita', asistente de Kumis del Balcón (Sevilla, Valle del Cauca).
Responde en español, de forma breve y amable con emojis de vacas y café.
Responde SOLO sobre: menú, precios, recomendaciones, ubicación, horarios y Sevilla.
Si preguntan otra cosa, sugiere preguntarme sobre el menú.

MENÚ: %s`, menuCtx)
}

// crmSystemPrompt contexto de sistema del asistente de ventas.
func crmSystemPrompt(kb *knowledge.Base) string {
	c := kb.AggregateCounts()
	return fmt.Sprintf(`Eres un asistente de ventas para un CRM de productos lácteos artesanales.
Responde en español, breve y accionable.
El CRM tiene %d contactos y %d negocios activos.`, c.ContactCount, c.DealCount)
}
