package ports

import (
	"context"
	"errors"
	"fmt"
)

// ChatMessage un turno de la conversación en el formato del protocolo de
// chat-completions.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionService define el puerto de salida hacia un servicio remoto de
// completación de texto. Cualquier adaptador (OpenRouter, OpenAI, mock) debe
// implementar esta interfaz. La capa de aplicación solo conoce este contrato.
//
// Complete antepone systemContext como mensaje de sistema y envía el
// historial completo. Devuelve el texto generado y el identificador del
// modelo que respondió.
type CompletionService interface {
	Complete(ctx context.Context, systemContext string, conversation []ChatMessage) (text string, model string, err error)
}

// Taxonomía de errores del nivel remoto. El resolvedor los absorbe y los
// convierte en un mensaje de respaldo; nunca terminan la sesión.
var (
	// ErrMissingCredential no hay credencial configurada: se falla de inmediato,
	// sin ningún intento de red.
	ErrMissingCredential = errors.New("credencial de OpenRouter no configurada")

	// ErrNoCandidates la lista de modelos candidatos está vacía.
	ErrNoCandidates = errors.New("lista de modelos candidatos vacía")

	// ErrEmptyCompletion el servicio respondió 200 pero sin contenido utilizable.
	ErrEmptyCompletion = errors.New("el modelo devolvió una respuesta vacía")
)

// RemoteStatusError respuesta con estado HTTP distinto de 200.
type RemoteStatusError struct {
	Model      string
	StatusCode int
	Body       string
}

func (e *RemoteStatusError) Error() string {
	return fmt.Sprintf("modelo %s respondió HTTP %d: %s", e.Model, e.StatusCode, e.Body)
}
