package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/kumisdelbalcon/balcon-api/internal/application/chat"
	"github.com/kumisdelbalcon/balcon-api/internal/application/dto"
	"github.com/kumisdelbalcon/balcon-api/internal/application/ports"
	"github.com/kumisdelbalcon/balcon-api/internal/domain"
	"github.com/kumisdelbalcon/balcon-api/internal/domain/entity"
	"github.com/kumisdelbalcon/balcon-api/internal/domain/repository"
	"github.com/kumisdelbalcon/balcon-api/pkg/logger"
)

// AssistantUseCase funciones de IA explícitas del CRM: análisis del pipeline
// con consejos de venta y redacción de correos de seguimiento. Estas
// operaciones sí usan el modelo remoto directamente; el dato estructurado
// viaja como contexto del prompt.
type AssistantUseCase struct {
	completion ports.CompletionService
	contacts   repository.ContactRepository
	deals      repository.DealRepository
	log        *logger.Logger
}

// NewAssistantUseCase construye el caso de uso.
func NewAssistantUseCase(completion ports.CompletionService, contacts repository.ContactRepository, deals repository.DealRepository, log *logger.Logger) *AssistantUseCase {
	return &AssistantUseCase{completion: completion, contacts: contacts, deals: deals, log: log}
}

// SalesAdvice analiza los negocios del pipeline y devuelve 3 consejos de
// venta generados por el modelo. El error de credencial sube al handler para
// mapearlo a 503.
func (uc *AssistantUseCase) SalesAdvice(ctx context.Context) (*dto.AssistantResponse, error) {
	deals, err := uc.deals.List()
	if err != nil {
		return nil, err
	}
	summary := "No hay negocios activos."
	if len(deals) > 0 {
		summary = dealsTable(deals)
	}
	prompt := fmt.Sprintf("Eres un experto en ventas. Analiza estos negocios en mi CRM y dame 3 consejos clave para cerrar más ventas esta semana:\n\n%s", summary)

	text, model, err := uc.completion.Complete(ctx, "", []ports.ChatMessage{{Role: "user", Content: prompt}})
	if err != nil {
		return nil, fmt.Errorf("consejos de venta: %w", err)
	}
	return &dto.AssistantResponse{Text: text, Source: "remote", Model: model}, nil
}

// DraftEmail redacta un correo de seguimiento para un contacto con el tono
// indicado (Formal, Amigable o Persuasivo). Si el modelo remoto falla, cae a
// la plantilla local en lugar de devolver error.
func (uc *AssistantUseCase) DraftEmail(ctx context.Context, in dto.EmailDraftRequest) (*dto.AssistantResponse, error) {
	if strings.TrimSpace(in.Contact) == "" {
		return nil, domain.ErrInvalidInput
	}
	contact, err := uc.contacts.GetByName(in.Contact)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, domain.ErrNotFound
	}
	tone := in.Tone
	if tone == "" {
		tone = "Amigable"
	}

	prompt := fmt.Sprintf(
		"Escribe un correo electrónico corto de seguimiento para %s de la empresa %s. "+
			"El tono debe ser %s. El objetivo es agendar una reunión para hablar sobre nuestros productos lácteos artesanales.",
		contact.Name, contact.Company, tone)

	text, model, err := uc.completion.Complete(ctx, "", []ports.ChatMessage{{Role: "user", Content: prompt}})
	if err != nil {
		uc.log.Warn().Err(err).Str("contact", contact.Name).Msg("borrador remoto falló, usando plantilla local")
		return &dto.AssistantResponse{Text: chat.FollowUpEmailDraft(*contact, tone), Source: "local"}, nil
	}
	return &dto.AssistantResponse{Text: text, Source: "remote", Model: model}, nil
}

// dealsTable representa los negocios como tabla de texto para el prompt,
// equivalente al volcado del DataFrame original.
func dealsTable(deals []entity.Deal) string {
	var b strings.Builder
	b.WriteString("Deal Name | Company | Value | Stage | Close Date\n")
	for _, d := range deals {
		closeDate := ""
		if !d.CloseDate.IsZero() {
			closeDate = d.CloseDate.Format(entity.DateLayout)
		}
		fmt.Fprintf(&b, "%s | %s | %s | %s | %s\n", d.Name, d.Company, d.Value.String(), d.Stage, closeDate)
	}
	return b.String()
}
