package chat

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"

	"github.com/kumisdelbalcon/balcon-api/internal/domain/entity"
	"github.com/kumisdelbalcon/balcon-api/internal/domain/knowledge"
	"github.com/kumisdelbalcon/balcon-api/pkg/money"
)

// crmFillers respuestas genéricas del asistente CRM cuando ninguna regla
// aplica. La elección es uniforme sobre esta lista fija.
var crmFillers = []string{
	"🤖 No estoy seguro de haber entendido. Puedo ayudarte con contactos, negocios del pipeline, correos de seguimiento o cuentas rápidas.",
	"🤖 Hmm, eso se me escapa. Pregúntame por el teléfono o correo de un contacto, los mejores negocios o un resumen del CRM.",
	"🤖 ¿Me lo repites de otra forma? Sé buscar contactos, listar el pipeline y redactar correos de seguimiento.",
	"🤖 Eso no lo tengo en mis datos. Prueba con «teléfono de Ana» o «mejores negocios».",
}

// Patrones de consulta del CRM. Capturan el nombre después del sustantivo.
var (
	phoneRe = regexp.MustCompile(`(?:tel[eé]fono|celular|n[uú]mero)\s+(?:de\s+|del\s+)?([a-záéíóúñü][a-záéíóúñü .]*)`)
	emailRe = regexp.MustCompile(`(?:correo|email|mail)\s+(?:de\s+|del\s+)?([a-záéíóúñü][a-záéíóúñü .]*)`)
	// arithmeticRe número operador número; admite operadores en palabra.
	arithmeticRe = regexp.MustCompile(`(-?\d+(?:[.,]\d+)?)\s*(\+|-|\*|/|más|mas|menos|por|x|entre|dividido(?:\s+(?:por|entre))?)\s*(-?\d+(?:[.,]\d+)?)`)
)

// CRMRules reglas del asistente de ventas, en orden de prioridad. La última
// regla (respuesta genérica) siempre aplica: el asistente CRM es terminal y
// nunca escala al nivel remoto por simple falta de coincidencia — el nivel
// remoto del CRM son los endpoints explícitos del asistente (consejos de
// venta y borradores de correo).
func CRMRules(rng *rand.Rand) []Rule {
	return []Rule{
		{Name: "saludo", Apply: greetingRule},
		{Name: "telefono-de", Apply: phoneLookupRule},
		// el borrador va antes que la búsqueda de correo: «redacta un correo
		// de seguimiento para X» también satisface el patrón de búsqueda
		{Name: "borrador-correo", Apply: emailDraftRule},
		{Name: "correo-de", Apply: emailLookupRule},
		{Name: "pipeline", Apply: pipelineRule},
		{Name: "totales", Apply: countsRule},
		{Name: "aritmetica", Apply: arithmeticRule},
		{Name: "generica", Apply: fillerRule(rng)},
	}
}

func greetingRule(q string, _ *knowledge.Base) (string, bool) {
	if !containsAny(q, "hola", "buenos días", "buenas tardes", "buenas noches", "saludos", "hey") {
		return "", false
	}
	return "👋 ¡Hola! Soy tu asistente de ventas. Pregúntame por contactos, negocios del pipeline o pídeme un correo de seguimiento.", true
}

func phoneLookupRule(q string, kb *knowledge.Base) (string, bool) {
	m := phoneRe.FindStringSubmatch(q)
	if m == nil {
		return "", false
	}
	name := strings.TrimSpace(m[1])
	c, ok := kb.FindContact(name)
	if !ok {
		return fmt.Sprintf("🔍 No encontré ningún contacto que coincida con «%s».", name), true
	}
	return fmt.Sprintf("📞 El teléfono de *%s* (%s) es %s.", c.Name, c.Company, c.Phone), true
}

func emailLookupRule(q string, kb *knowledge.Base) (string, bool) {
	m := emailRe.FindStringSubmatch(q)
	if m == nil {
		return "", false
	}
	name := strings.TrimSpace(m[1])
	c, ok := kb.FindContact(name)
	if !ok {
		return fmt.Sprintf("🔍 No encontré ningún contacto que coincida con «%s».", name), true
	}
	return fmt.Sprintf("📧 El correo de *%s* (%s) es %s.", c.Name, c.Company, c.Email), true
}

// emailDraftRule redacta un correo de seguimiento si el texto menciona un
// contacto conocido; si no, pide nombre y tono.
func emailDraftRule(q string, kb *knowledge.Base) (string, bool) {
	if !containsAny(q, "redacta", "redactar", "escribe un correo", "borrador", "seguimiento", "correo para") {
		return "", false
	}
	tone := "Amigable"
	if strings.Contains(q, "formal") {
		tone = "Formal"
	}
	for _, c := range kb.Contacts {
		words := strings.Fields(strings.ToLower(c.Name))
		if len(words) == 0 {
			continue
		}
		// el nombre completo o el primer nombre bastan para aludir al contacto
		if strings.Contains(q, strings.Join(words, " ")) || strings.Contains(q, words[0]) {
			return FollowUpEmailDraft(c, tone), true
		}
	}
	return "📧 ¿Para qué contacto redacto el correo y con qué tono (Formal o Amigable)?", true
}

// FollowUpEmailDraft plantilla local de correo de seguimiento. La comparte la
// regla del chat y el respaldo del endpoint de borradores cuando el modelo
// remoto falla.
func FollowUpEmailDraft(c entity.Contact, tone string) string {
	saludo := "Hola"
	cierre := "¡Quedo atento! Un abrazo,"
	if tone == "Formal" {
		saludo = "Estimado/a"
		cierre = "Agradezco de antemano su tiempo.\n\nCordialmente,"
	}
	return fmt.Sprintf(
		"Asunto: Seguimiento — productos lácteos artesanales\n\n"+
			"%s %s:\n\n"+
			"Espero que todo marche muy bien en %s. Quería retomar nuestra conversación "+
			"y proponerte una reunión breve esta semana para contarte las novedades de "+
			"nuestros productos lácteos artesanales.\n\n"+
			"¿Te queda bien un espacio de 20 minutos?\n\n%s\nEquipo Comercial",
		saludo, c.Name, companyOrDefault(c.Company), cierre)
}

func companyOrDefault(company string) string {
	if company == "" {
		return "tu empresa"
	}
	return company
}

func pipelineRule(q string, kb *knowledge.Base) (string, bool) {
	if !containsAny(q, "pipeline", "negocios", "deals", "oportunidades", "mejores") {
		return "", false
	}
	top := kb.TopDeals(3)
	if len(top) == 0 {
		return "📭 No hay negocios registrados en el pipeline todavía.", true
	}
	lines := []string{"💼 *Mejores negocios del pipeline:*"}
	for _, d := range top {
		lines = append(lines, fmt.Sprintf("• *%s* (%s): %s — %s", d.Name, d.Company, money.FormatCOPDecimal(d.Value), d.Stage))
	}
	return strings.Join(lines, "\n"), true
}

func countsRule(q string, kb *knowledge.Base) (string, bool) {
	if !containsAny(q, "cuántos contactos", "cuántos negocios", "resumen", "totales", "estadísticas") {
		return "", false
	}
	c := kb.AggregateCounts()
	return fmt.Sprintf("📊 Tienes %d contactos y %d negocios, con un pipeline total de %s.",
		c.ContactCount, c.DealCount, money.FormatCOPDecimal(c.PipelineValue)), true
}

// arithmeticRule calcula `número operador número`. La división por cero
// devuelve el centinela "inf", no un error.
func arithmeticRule(q string, _ *knowledge.Base) (string, bool) {
	m := arithmeticRe.FindStringSubmatch(q)
	if m == nil {
		return "", false
	}
	a, errA := parseNumber(m[1])
	b, errB := parseNumber(m[3])
	if errA != nil || errB != nil {
		return "", false
	}
	var result float64
	switch normalizeOperator(m[2]) {
	case "+":
		result = a + b
	case "-":
		result = a - b
	case "*":
		result = a * b
	case "/":
		if b == 0 {
			return "inf", true
		}
		result = a / b
	default:
		return "", false
	}
	return formatArithmetic(result), true
}

func parseNumber(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
}

func normalizeOperator(op string) string {
	switch strings.TrimSpace(op) {
	case "+", "más", "mas":
		return "+"
	case "-", "menos":
		return "-"
	case "*", "x", "por":
		return "*"
	case "/", "entre":
		return "/"
	default:
		if strings.HasPrefix(op, "dividido") {
			return "/"
		}
		return op
	}
}

// formatArithmetic representa el resultado con al menos un decimal: 9 -> "9.0".
func formatArithmetic(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// fillerRule respuesta genérica: siempre aplica (regla terminal del CRM).
func fillerRule(rng *rand.Rand) func(string, *knowledge.Base) (string, bool) {
	return func(_ string, _ *knowledge.Base) (string, bool) {
		return crmFillers[rng.Intn(len(crmFillers))], true
	}
}
