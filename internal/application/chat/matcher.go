// Package chat implementa el motor de resolución de respuestas del asistente:
// reglas locales sobre la base de conocimiento, escalamiento al servicio
// remoto de completación y respaldo enlatado.
package chat

import (
	"strings"

	"github.com/kumisdelbalcon/balcon-api/internal/domain/knowledge"
)

// Rule una regla de intención: recibe la consulta normalizada (minúsculas,
// sin espacios en los extremos) y la base de conocimiento, y devuelve la
// respuesta si la regla aplica.
type Rule struct {
	Name  string
	Apply func(q string, kb *knowledge.Base) (string, bool)
}

// Matcher evalúa un conjunto ordenado de reglas. El orden es fijo y
// significativo: la primera regla que aplica gana, aunque reglas posteriores
// compartan disparadores.
type Matcher struct {
	rules []Rule
}

// NewMatcher construye el evaluador con las reglas en orden de prioridad.
func NewMatcher(rules []Rule) *Matcher {
	return &Matcher{rules: rules}
}

// Match evalúa las reglas en orden sobre el texto normalizado.
// Devuelve la respuesta, el nombre de la regla y si hubo coincidencia.
func (m *Matcher) Match(text string, kb *knowledge.Base) (reply, rule string, ok bool) {
	q := Normalize(text)
	if q == "" {
		return "", "", false
	}
	for _, r := range m.rules {
		if out, hit := r.Apply(q, kb); hit {
			return out, r.Name, true
		}
	}
	return "", "", false
}

// Normalize prepara el texto para la evaluación de reglas: recorta y pasa a
// minúsculas. El texto original se conserva para el historial.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// containsAny true si la consulta contiene alguna de las palabras clave.
func containsAny(q string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}
