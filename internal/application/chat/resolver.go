package chat

import (
	"context"
	"errors"
	"fmt"

	"github.com/kumisdelbalcon/balcon-api/internal/application/ports"
	"github.com/kumisdelbalcon/balcon-api/internal/domain/entity"
	"github.com/kumisdelbalcon/balcon-api/internal/domain/knowledge"
	"github.com/kumisdelbalcon/balcon-api/pkg/logger"
)

// Source nivel que produjo la respuesta.
type Source string

const (
	SourceLocal    Source = "local"    // regla local sobre la base de conocimiento
	SourceRemote   Source = "remote"   // modelo externo de completación
	SourceFallback Source = "fallback" // respuesta enlatada tras falla o sin credencial
)

// Outcome resultado de una resolución.
type Outcome struct {
	Source Source
	Text   string
	Model  string // solo con SourceRemote
	Rule   string // solo con SourceLocal
}

// Persona configura el comportamiento del asistente por dominio.
type Persona struct {
	Name string

	// Matcher reglas locales del dominio, en orden de prioridad.
	Matcher *Matcher

	// SystemPrompt construye el contexto de sistema para el nivel remoto a
	// partir de la base de conocimiento vigente.
	SystemPrompt func(kb *knowledge.Base) string

	// FallbackMessage respuesta enlatada cuando el nivel remoto falla; recibe
	// el detalle de la falla para incluir una pista diagnóstica.
	FallbackMessage func(err error) string

	// MissingKeyMessage respuesta cuando no hay credencial configurada.
	MissingKeyMessage string
}

// Resolver orquesta la política de respuesta: reglas locales primero (las
// preguntas sobre datos del negocio se responden de forma determinista y
// nunca llegan al modelo remoto), luego el servicio de completación, y por
// último el respaldo enlatado. Función total: siempre devuelve texto no
// vacío para entrada no vacía; ningún error del nivel remoto alcanza al
// llamador.
type Resolver struct {
	persona    Persona
	completion ports.CompletionService
	hasKey     bool
	log        *logger.Logger
}

// NewResolver construye el resolvedor. hasCredential indica si hay credencial
// configurada: en falso, el nivel remoto se omite por completo.
func NewResolver(persona Persona, completion ports.CompletionService, hasCredential bool, log *logger.Logger) *Resolver {
	return &Resolver{persona: persona, completion: completion, hasKey: hasCredential, log: log}
}

// Resolve procesa un mensaje del usuario dentro de la conversación dada y
// devuelve el resultado. Agrega al historial el mensaje del usuario y la
// respuesta, en ese orden.
func (r *Resolver) Resolve(ctx context.Context, conv *entity.Conversation, kb *knowledge.Base, userText string) Outcome {
	conv.Append(entity.RoleUser, userText)

	if reply, rule, ok := r.persona.Matcher.Match(userText, kb); ok {
		r.log.Debug().Str("persona", r.persona.Name).Str("rule", rule).Msg("respuesta local")
		conv.Append(entity.RoleAssistant, reply)
		return Outcome{Source: SourceLocal, Text: reply, Rule: rule}
	}

	if !r.hasKey {
		conv.Append(entity.RoleAssistant, r.persona.MissingKeyMessage)
		return Outcome{Source: SourceFallback, Text: r.persona.MissingKeyMessage}
	}

	text, model, err := r.completion.Complete(ctx, r.persona.SystemPrompt(kb), toChatMessages(conv.Messages()))
	if err != nil {
		r.log.Warn().Err(err).Str("persona", r.persona.Name).Msg("nivel remoto falló, usando respaldo")
		fallback := r.persona.FallbackMessage(err)
		if errors.Is(err, ports.ErrMissingCredential) {
			fallback = r.persona.MissingKeyMessage
		}
		conv.Append(entity.RoleAssistant, fallback)
		return Outcome{Source: SourceFallback, Text: fallback}
	}

	conv.Append(entity.RoleAssistant, text)
	return Outcome{Source: SourceRemote, Text: text, Model: model}
}

// toChatMessages convierte el historial al formato del puerto de completación.
// El último mensaje es el turno del usuario recién agregado.
func toChatMessages(msgs []entity.Message) []ports.ChatMessage {
	out := make([]ports.ChatMessage, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, ports.ChatMessage{Role: string(m.Role), Content: m.Content})
	}
	return out
}

// DefaultFallbackMessage respaldo de la tienda con pista diagnóstica.
func DefaultFallbackMessage(err error) string {
	return fmt.Sprintf("Muuu... tuve problemas técnicos (%v). 🐮", err)
}
