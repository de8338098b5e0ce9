package usecase

import (
	"context"
	"strings"

	"github.com/kumisdelbalcon/balcon-api/internal/application/chat"
	"github.com/kumisdelbalcon/balcon-api/internal/application/dto"
	"github.com/kumisdelbalcon/balcon-api/internal/application/session"
	"github.com/kumisdelbalcon/balcon-api/internal/domain"
	"github.com/kumisdelbalcon/balcon-api/internal/domain/knowledge"
)

// SnapshotFunc entrega la base de conocimiento vigente para una resolución.
// La tienda devuelve la carta estática; el CRM recarga contactos y negocios.
type SnapshotFunc func() (*knowledge.Base, error)

// ChatUseCase procesa un turno de chat: resuelve la respuesta y mantiene el
// historial de la sesión.
type ChatUseCase struct {
	resolver *chat.Resolver
	sessions *session.Store
	snapshot SnapshotFunc
}

// NewChatUseCase construye el caso de uso.
func NewChatUseCase(resolver *chat.Resolver, sessions *session.Store, snapshot SnapshotFunc) *ChatUseCase {
	return &ChatUseCase{resolver: resolver, sessions: sessions, snapshot: snapshot}
}

// Send procesa un mensaje del usuario y devuelve la respuesta del asistente.
func (uc *ChatUseCase) Send(ctx context.Context, in dto.ChatRequest) (*dto.ChatReply, error) {
	if strings.TrimSpace(in.Message) == "" {
		return nil, domain.ErrInvalidInput
	}
	kb, err := uc.snapshot()
	if err != nil {
		return nil, err
	}
	st := uc.sessions.GetOrCreate(in.SessionID)
	outcome := uc.resolver.Resolve(ctx, &st.Conversation, kb, in.Message)
	return &dto.ChatReply{
		SessionID: st.ID,
		Reply:     outcome.Text,
		Source:    string(outcome.Source),
		Model:     outcome.Model,
	}, nil
}

// ClearSession descarta el historial de la sesión. Operación idempotente.
func (uc *ChatUseCase) ClearSession(sessionID string) {
	if st, ok := uc.sessions.Get(sessionID); ok {
		st.Conversation.Clear()
	}
}
