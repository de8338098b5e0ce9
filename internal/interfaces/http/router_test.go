package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appchat "github.com/kumisdelbalcon/balcon-api/internal/application/chat"
	"github.com/kumisdelbalcon/balcon-api/internal/application/commerce"
	"github.com/kumisdelbalcon/balcon-api/internal/application/ports"
	"github.com/kumisdelbalcon/balcon-api/internal/application/session"
	"github.com/kumisdelbalcon/balcon-api/internal/application/usecase"
	"github.com/kumisdelbalcon/balcon-api/internal/domain/knowledge"
	"github.com/kumisdelbalcon/balcon-api/internal/infrastructure/csvstore"
	apphttp "github.com/kumisdelbalcon/balcon-api/internal/interfaces/http"
	"github.com/kumisdelbalcon/balcon-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// failingCompletion nivel remoto que siempre falla; el chat de la tienda debe
// degradar a respaldo sin tumbar la petición.
type failingCompletion struct{}

func (failingCompletion) Complete(context.Context, string, []ports.ChatMessage) (string, string, error) {
	return "", "", errors.New("HTTP 503")
}

// buildTestApp aplicación completa sobre repos CSV en un directorio temporal.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	dir := t.TempDir()

	contactRepo, err := csvstore.NewContactRepository(filepath.Join(dir, "contacts.csv"))
	require.NoError(t, err)
	dealRepo, err := csvstore.NewDealRepository(filepath.Join(dir, "deals.csv"))
	require.NoError(t, err)

	catalog := knowledge.DefaultCatalog()
	log := logger.Nop()
	rng := rand.New(rand.NewSource(1))
	completion := failingCompletion{}

	storefrontSessions := session.NewStore()
	storefrontUC := usecase.NewChatUseCase(
		appchat.NewResolver(appchat.StorefrontPersona(rng), completion, true, log),
		storefrontSessions,
		func() (*knowledge.Base, error) { return knowledge.NewBase(catalog, nil, nil), nil },
	)
	crmUC := usecase.NewChatUseCase(
		appchat.NewResolver(appchat.CRMPersona(rng), completion, true, log),
		session.NewStore(),
		func() (*knowledge.Base, error) {
			contacts, err := contactRepo.List()
			if err != nil {
				return nil, err
			}
			deals, err := dealRepo.List()
			if err != nil {
				return nil, err
			}
			return knowledge.NewBase(catalog, contacts, deals), nil
		},
	)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Catalog:      catalog,
		CartUC:       commerce.NewCartUseCase(storefrontSessions, catalog),
		CheckoutUC:   commerce.NewCheckoutUseCase(storefrontSessions, commerce.Config{WhatsAppNumber: "573127321920"}, rng, nil),
		ContactUC:    usecase.NewContactUseCase(contactRepo),
		DealUC:       usecase.NewDealUseCase(dealRepo),
		DashboardUC:  usecase.NewDashboardUseCase(contactRepo, dealRepo),
		StorefrontUC: storefrontUC,
		CRMChatUC:    crmUC,
		AssistantUC:  usecase.NewAssistantUseCase(completion, contactRepo, dealRepo, log),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Carta y carrito
// ──────────────────────────────────────────────────────────────────────────────

func TestMenu_ListaLasCuatroCategorias(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/menu", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var cats []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cats))
	assert.Len(t, cats, 4)
}

func TestCart_FlujoCompletoHastaCheckout(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/cart", map[string]string{"item": "Kumis Litro"})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cart := decodeBody(t, resp)
	sessionID, _ := cart["session_id"].(string)
	require.NotEmpty(t, sessionID)
	assert.Equal(t, "$18.000", cart["total_text"])

	resp = doJSON(t, app, http.MethodPost, "/api/orders/checkout", map[string]string{
		"session_id": sessionID,
		"name":       "Lucía",
		"phone":      "310 555 6677",
		"order_type": "domicilio",
		"address":    "Calle 10 # 4-20",
		"payment":    "Efectivo",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeBody(t, resp)
	assert.Contains(t, out["whatsapp_link"], "wa.me/573127321920")
	assert.Contains(t, out["reference"], "KB-")
}

func TestCart_ProductoDesconocidoResponde404(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/cart", map[string]string{"item": "Pizza"})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCheckout_CarritoVacioResponde400(t *testing.T) {
	app := buildTestApp(t)

	// Sesión creada vía chat, sin productos.
	resp := doJSON(t, app, http.MethodPost, "/api/chat/storefront", map[string]string{"message": "hola, ¿dónde están?"})
	sessionID, _ := decodeBody(t, resp)["session_id"].(string)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/orders/checkout", map[string]string{
		"session_id": sessionID,
		"name":       "Lucía",
		"phone":      "310",
		"order_type": "domicilio",
		"address":    "Calle 10",
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	out := decodeBody(t, resp)
	assert.Equal(t, "EMPTY_CART", out["code"])
}

// ──────────────────────────────────────────────────────────────────────────────
// CRM
// ──────────────────────────────────────────────────────────────────────────────

func TestContacts_CRUDBasico(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/contacts", map[string]string{
		"name": "Ana Torres", "company": "Café Sevilla",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// duplicado
	resp = doJSON(t, app, http.MethodPost, "/api/contacts", map[string]string{"name": "Ana Torres"})
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/api/contacts?search=sevilla", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list, 1)
	assert.Equal(t, "Lead", list[0]["status"], "el estado por defecto es Lead")

	resp = doJSON(t, app, http.MethodDelete, "/api/contacts/Ana%20Torres", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/contacts/Ana%20Torres", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeals_AvanceHastaEtapaTerminal(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/deals", map[string]any{
		"name": "Convenio", "company": "Café Sevilla", "value": "250000", "stage": "Negotiation",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/deals/Convenio/advance", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeBody(t, resp)
	assert.Equal(t, "Closed Won", out["stage"])

	resp = doJSON(t, app, http.MethodPost, "/api/deals/Convenio/advance", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode, "un negocio ganado no avanza más")
}

func TestDashboard_RespondeIndicadores(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/dashboard", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeBody(t, resp)
	assert.Contains(t, out, "pipeline_value")
	assert.Contains(t, out, "total_contacts")
}

// ──────────────────────────────────────────────────────────────────────────────
// Chat y asistente
// ──────────────────────────────────────────────────────────────────────────────

func TestChatStorefront_RespuestaLocal(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/chat/storefront", map[string]string{
		"message": "¿cuánto vale el kumis litro?",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeBody(t, resp)
	assert.Equal(t, "local", out["source"])
	assert.Contains(t, out["reply"], "$18.000")
}

func TestChatStorefront_FallaRemotaDegradaAFallback(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/chat/storefront", map[string]string{
		"message": "cuéntame un chiste",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, "la falla remota nunca es un error HTTP")
	out := decodeBody(t, resp)
	assert.Equal(t, "fallback", out["source"])
}

func TestChatCRM_SinReglaNoEscala(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/chat/crm", map[string]string{
		"message": "háblame del clima",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decodeBody(t, resp)
	assert.Equal(t, "local", out["source"],
		"el CRM responde con la regla genérica, nunca con el modelo")
}

func TestChat_MensajeVacioResponde400(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/chat/crm", map[string]string{"message": "  "})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAssistant_SinModeloDisponibleResponde503(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/assistant/advice", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
