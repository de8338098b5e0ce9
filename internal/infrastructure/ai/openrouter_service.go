// Package ai implementa el adaptador del servicio remoto de completación de
// texto (OpenRouter, API compatible con chat-completions de OpenAI).
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kumisdelbalcon/balcon-api/internal/application/ports"
	"github.com/kumisdelbalcon/balcon-api/pkg/logger"
)

// Verificar en tiempo de compilación que OpenRouterService implementa CompletionService.
var _ ports.CompletionService = (*OpenRouterService)(nil)

const (
	defaultBaseURL = "https://openrouter.ai/api/v1"
	defaultTimeout = 15 * time.Second

	maxTokens   = 300
	temperature = 0.3
)

// Config parámetros del adaptador.
type Config struct {
	// APIKey credencial Bearer. Vacía: toda llamada falla con
	// ports.ErrMissingCredential antes de tocar la red.
	APIKey string

	// Models lista ordenada de modelos candidatos. Se intenta cada uno una
	// sola vez, en orden; el primero que responde con contenido gana.
	Models []string

	// Timeout por intento (por candidato). Por defecto 15 s; la latencia
	// total queda acotada por len(Models) × Timeout.
	Timeout time.Duration

	// BaseURL permite apuntar a otro endpoint compatible (tests, proxies).
	BaseURL string

	// Referer y Title van en los headers HTTP-Referer y X-Title que
	// OpenRouter usa para atribución.
	Referer string
	Title   string
}

// OpenRouterService adaptador que implementa CompletionService contra la API
// REST de OpenRouter usando net/http; no requiere SDK.
type OpenRouterService struct {
	cfg        Config
	httpClient *http.Client
	log        *logger.Logger
}

// NewOpenRouterService construye el adaptador. Si la credencial está vacía,
// las llamadas devuelven un error descriptivo en lugar de panic.
func NewOpenRouterService(cfg Config, log *logger.Logger) *OpenRouterService {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	return &OpenRouterService{
		cfg: cfg,
		httpClient: &http.Client{
			// Margen sobre el timeout por intento; el corte fino lo hace el
			// context.WithTimeout de cada candidato.
			Timeout: cfg.Timeout + 5*time.Second,
		},
		log: log,
	}
}

// ── Estructuras del protocolo chat-completions ────────────────────────────────

type chatRequest struct {
	Model       string              `json:"model"`
	Messages    []ports.ChatMessage `json:"messages"`
	MaxTokens   int                 `json:"max_tokens,omitempty"`
	Temperature float64             `json:"temperature,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// Complete recorre los modelos candidatos en orden, un intento por candidato,
// y devuelve el primer contenido no vacío junto con el modelo que respondió.
// Sin credencial o sin candidatos falla de inmediato, sin ningún intento de
// red. Si todos fallan, el error envuelve el último detalle observado.
// No hay backoff ni reintentos por candidato.
func (s *OpenRouterService) Complete(ctx context.Context, systemContext string, conversation []ports.ChatMessage) (string, string, error) {
	if s.cfg.APIKey == "" {
		return "", "", fmt.Errorf("AI: %w", ports.ErrMissingCredential)
	}
	if len(s.cfg.Models) == 0 {
		return "", "", fmt.Errorf("AI: %w", ports.ErrNoCandidates)
	}

	messages := make([]ports.ChatMessage, 0, len(conversation)+1)
	if systemContext != "" {
		messages = append(messages, ports.ChatMessage{Role: "system", Content: systemContext})
	}
	messages = append(messages, conversation...)

	var lastErr error
	for _, model := range s.cfg.Models {
		text, err := s.tryModel(ctx, model, messages)
		if err == nil {
			return text, model, nil
		}
		s.log.Debug().Err(err).Str("model", model).Msg("candidato falló, probando el siguiente")
		lastErr = err
		if ctx.Err() != nil {
			break // el contexto del llamador murió; no tiene sentido seguir
		}
	}
	return "", "", fmt.Errorf("AI: todos los modelos candidatos fallaron: %w", lastErr)
}

// tryModel un intento contra un candidato, acotado por el timeout configurado.
func (s *OpenRouterService) tryModel(ctx context.Context, model string, messages []ports.ChatMessage) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	body, err := json.Marshal(chatRequest{
		Model:       model,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("crear HTTP request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")
	if s.cfg.Referer != "" {
		req.Header.Set("HTTP-Referer", s.cfg.Referer)
	}
	if s.cfg.Title != "" {
		req.Header.Set("X-Title", s.cfg.Title)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("timeout o cancelación con %s: %w", model, ctx.Err())
		}
		return "", fmt.Errorf("transporte con %s: %w", model, err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("leer respuesta de %s: %w", model, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", &ports.RemoteStatusError{
			Model:      model,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(rawBody)),
		}
	}

	var parsed chatResponse
	if err := json.Unmarshal(rawBody, &parsed); err != nil {
		return "", fmt.Errorf("deserializar respuesta de %s: %w", model, err)
	}
	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("%s: %w", model, ports.ErrEmptyCompletion)
	}
	return parsed.Choices[0].Message.Content, nil
}
