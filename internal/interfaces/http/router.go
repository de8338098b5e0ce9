package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kumisdelbalcon/balcon-api/internal/application/commerce"
	"github.com/kumisdelbalcon/balcon-api/internal/application/usecase"
	"github.com/kumisdelbalcon/balcon-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Catalog      []entity.MenuCategory
	CartUC       *commerce.CartUseCase
	CheckoutUC   *commerce.CheckoutUseCase
	ContactUC    *usecase.ContactUseCase
	DealUC       *usecase.DealUseCase
	DashboardUC  *usecase.DashboardUseCase
	StorefrontUC *usecase.ChatUseCase
	CRMChatUC    *usecase.ChatUseCase
	AssistantUC  *usecase.AssistantUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Carta (tienda)
	menuHandler := NewMenuHandler(deps.Catalog)
	api.Get("/menu", menuHandler.List)
	api.Get("/menu/categories", menuHandler.Categories)

	// Carrito y pedidos (tienda)
	orderHandler := NewOrderHandler(deps.CartUC, deps.CheckoutUC)
	cart := api.Group("/cart")
	cart.Post("/", orderHandler.AddToCart)
	cart.Get("/:id", orderHandler.ViewCart)
	cart.Delete("/:id", orderHandler.ClearCart)
	orders := api.Group("/orders")
	orders.Post("/checkout", orderHandler.Checkout)
	orders.Post("/receipt", orderHandler.Receipt)

	// CRM: contactos
	contacts := api.Group("/contacts")
	contactHandler := NewContactHandler(deps.ContactUC)
	contacts.Get("/", contactHandler.List)
	contacts.Post("/", contactHandler.Create)
	contacts.Put("/:name", contactHandler.Update)
	contacts.Delete("/:name", contactHandler.Delete)

	// CRM: negocios
	deals := api.Group("/deals")
	dealHandler := NewDealHandler(deps.DealUC)
	deals.Get("/", dealHandler.List)
	deals.Post("/", dealHandler.Create)
	deals.Put("/:name", dealHandler.Update)
	deals.Post("/:name/advance", dealHandler.Advance)
	deals.Delete("/:name", dealHandler.Delete)

	// CRM: tablero
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", dashboardHandler.Summary)

	// Chat: tienda y CRM
	chatHandler := NewChatHandler(deps.StorefrontUC, deps.CRMChatUC)
	chat := api.Group("/chat")
	chat.Post("/storefront", chatHandler.Storefront)
	chat.Delete("/storefront/:id", chatHandler.ClearStorefront)
	chat.Post("/crm", chatHandler.CRM)
	chat.Delete("/crm/:id", chatHandler.ClearCRM)

	// Herramientas de IA del CRM
	assistantHandler := NewAssistantHandler(deps.AssistantUC)
	assistant := api.Group("/assistant")
	assistant.Post("/advice", assistantHandler.SalesAdvice)
	assistant.Post("/email-draft", assistantHandler.DraftEmail)
}
