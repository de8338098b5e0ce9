package main

import (
	"context"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appchat "github.com/kumisdelbalcon/balcon-api/internal/application/chat"
	"github.com/kumisdelbalcon/balcon-api/internal/application/commerce"
	"github.com/kumisdelbalcon/balcon-api/internal/application/session"
	"github.com/kumisdelbalcon/balcon-api/internal/application/usecase"
	"github.com/kumisdelbalcon/balcon-api/internal/domain/knowledge"
	infraai "github.com/kumisdelbalcon/balcon-api/internal/infrastructure/ai"
	"github.com/kumisdelbalcon/balcon-api/internal/infrastructure/csvstore"
	infrapdf "github.com/kumisdelbalcon/balcon-api/internal/infrastructure/pdf"
	httpRouter "github.com/kumisdelbalcon/balcon-api/internal/interfaces/http"
	"github.com/kumisdelbalcon/balcon-api/pkg/config"
	"github.com/kumisdelbalcon/balcon-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Persistencia CSV del CRM: falla al arrancar si los archivos están corruptos.
	contactRepo, err := csvstore.NewContactRepository(cfg.Store.ContactsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar contactos")
	}
	dealRepo, err := csvstore.NewDealRepository(cfg.Store.DealsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("cargar negocios")
	}

	catalog := knowledge.DefaultCatalog()

	// Servicio de completación remota. Sin credencial los chats siguen
	// funcionando con reglas locales y respuestas enlatadas.
	hasCredential := cfg.AI.APIKey != ""
	if !hasCredential {
		log.Warn().Msg("OPENROUTER_API_KEY no configurada; el nivel remoto queda deshabilitado")
	}
	completionSvc := infraai.NewOpenRouterService(infraai.Config{
		APIKey:  cfg.AI.APIKey,
		Models:  cfg.AI.Models(),
		Timeout: cfg.AI.Timeout(),
		Referer: cfg.AI.Referer,
		Title:   cfg.AI.Title,
	}, log)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	// Chat de la tienda: la carta es estática, el snapshot también.
	storefrontSessions := session.NewStore()
	storefrontResolver := appchat.NewResolver(appchat.StorefrontPersona(rng), completionSvc, hasCredential, log)
	storefrontChatUC := usecase.NewChatUseCase(storefrontResolver, storefrontSessions, func() (*knowledge.Base, error) {
		return knowledge.NewBase(catalog, nil, nil), nil
	})

	// Chat del CRM: el snapshot relee los repositorios en cada mensaje para
	// que las reglas vean los datos recién editados.
	crmSessions := session.NewStore()
	crmResolver := appchat.NewResolver(appchat.CRMPersona(rng), completionSvc, hasCredential, log)
	crmChatUC := usecase.NewChatUseCase(crmResolver, crmSessions, func() (*knowledge.Base, error) {
		contacts, err := contactRepo.List()
		if err != nil {
			return nil, err
		}
		deals, err := dealRepo.List()
		if err != nil {
			return nil, err
		}
		return knowledge.NewBase(catalog, contacts, deals), nil
	})

	contactUC := usecase.NewContactUseCase(contactRepo)
	dealUC := usecase.NewDealUseCase(dealRepo)
	dashboardUC := usecase.NewDashboardUseCase(contactRepo, dealRepo)
	assistantUC := usecase.NewAssistantUseCase(completionSvc, contactRepo, dealRepo, log)

	// Tienda: carrito y checkout comparten el almacén de sesiones de la tienda.
	receiptGen := infrapdf.NewMarotoReceiptGenerator()
	cartUC := commerce.NewCartUseCase(storefrontSessions, catalog)
	checkoutUC := commerce.NewCheckoutUseCase(storefrontSessions, commerce.Config{
		WhatsAppNumber: cfg.Commerce.WhatsAppNumber,
		WompiPublicKey: cfg.Commerce.WompiPublicKey,
	}, rng, receiptGen)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 60, // el nivel remoto puede recorrer varios candidatos
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Catalog:      catalog,
		CartUC:       cartUC,
		CheckoutUC:   checkoutUC,
		ContactUC:    contactUC,
		DealUC:       dealUC,
		DashboardUC:  dashboardUC,
		StorefrontUC: storefrontChatUC,
		CRMChatUC:    crmChatUC,
		AssistantUC:  assistantUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
