package routes

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	_ "freight_portal/docs" // This will be auto-generated
	"freight_portal/internal/adapter/http/handlers"
	"freight_portal/internal/adapter/http/middleware"
	"freight_portal/internal/adapter/persistence/repository"
	"freight_portal/internal/config"
	"freight_portal/internal/infrastructure/backend"
	"freight_portal/internal/infrastructure/database"
	"freight_portal/internal/infrastructure/events"
	"freight_portal/internal/infrastructure/identity"
	"freight_portal/internal/infrastructure/payments"
	"freight_portal/internal/logging"
	"freight_portal/internal/usecase"
	"freight_portal/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const PathV1 = "/v1"

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Session  *handlers.SessionHandler
	Metadata *handlers.MetadataHandler
	Wizard   *handlers.WizardHandler
	Address  *handlers.AddressHandler
	Tracking *handlers.TrackingHandler
	Payment  *handlers.PaymentHandler
	Admin    *handlers.AdminHandler
	Catalog  *handlers.CatalogHandler
}

// Run will start the server
func Run() {
	cfg := config.Load()
	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}

	h, authn, sessions, closeFn := getHandlers(context.Background(), cfg)
	defer closeFn()

	router := NewRouter(cfg, authn, sessions, h)
	if err := router.Run(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter mounts the middlewares, swagger and every /v1 route.
func NewRouter(cfg *config.Config, authn middleware.Authenticator, sessions usecase.ISessionUseCase, h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, cfg.Server.AllowedOrigins)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group(PathV1)
	v1.Use(middleware.Authenticate(authn))
	addPingRoutes(v1)
	addSessionRoutes(v1, h.Session)
	addTrackingRoutes(v1, h.Tracking)

	portal := v1.Group("")
	portal.Use(middleware.RequireSession())
	addQuoteRoutes(portal, h.Metadata, h.Wizard)
	portal.POST(PathQuotes+"/meta/invalidate", middleware.RequireAdmin(sessions), h.Metadata.Invalidate)
	addAddressRoutes(portal, h.Address)
	addPaymentRoutes(portal, h.Payment)

	admin := v1.Group(PathAdmin)
	admin.Use(middleware.RequireAdmin(sessions))
	addAdminRoutes(admin, h.Admin, h.Catalog)

	return router
}

func getHandlers(ctx context.Context, cfg *config.Config) (Handlers, middleware.Authenticator, usecase.ISessionUseCase, func()) {
	httpClient := &http.Client{Timeout: cfg.Backend.Timeout}
	baseURL := backend.ResolveServerBaseURL(os.Getenv)
	log.Printf("[routes] backend base url=%s", baseURL)
	client := backend.NewClient(baseURL, httpClient)

	quoteGateway := backend.NewQuoteGateway(client)
	shipmentGateway := backend.NewShipmentGateway(client)
	addressGateway := backend.NewAddressGateway(client)
	catalogGateway := backend.NewCatalogGateway(client)
	userGateway := backend.NewUserGateway(client)
	ledgerGateway := backend.NewPaymentLedgerGateway(client)

	resolver := identity.NewResolver(cfg.Identity)
	clerk, err := identity.NewClerkClient(cfg.Identity, httpClient)
	if err != nil {
		log.Printf("[routes] identity provider not configured: %v", err)
	}
	authn := identity.NewAuthenticator(resolver, clerk)

	ddb, err := database.ConnectDynamoDB(ctx, cfg.Dynamo)
	if err != nil {
		log.Fatalf("Failed to connect to DynamoDB: %v", err)
	}
	if cfg.Dynamo.Endpoint != "" {
		err := database.EnsureTables(ctx, ddb,
			database.TableSpec{Name: cfg.Dynamo.DraftsTable},
			database.TableSpec{Name: cfg.Dynamo.ReceiptsTable, Indexes: map[string]string{repository.ReceiptsQuoteIDIndex: "quote_id"}},
		)
		if err != nil {
			log.Fatalf("Failed to prepare DynamoDB tables: %v", err)
		}
	}
	draftRepo := repository.NewWizardDraftDynamoRepository(ddb, cfg.Dynamo.DraftsTable)
	receiptRepo := repository.NewPaymentReceiptDynamoRepository(ddb, cfg.Dynamo.ReceiptsTable)

	var publisher interfaces.IEventPublisher = events.NoopPublisher{}
	closeFn := func() {}
	if cfg.Events.Broker != "" {
		kp := events.NewKafkaPublisher(cfg.Events.Broker, cfg.Events.Topic)
		publisher = kp
		closeFn = func() {
			if err := kp.Close(); err != nil {
				log.Printf("[routes] kafka close failed err=%v", err)
			}
		}
		log.Printf("[routes] publishing events broker=%s topic=%s", cfg.Events.Broker, cfg.Events.Topic)
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.Payments)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	metadata := usecase.NewMetadataCache(quoteGateway, catalogGateway)
	sessions := usecase.NewSessionUseCase(userGateway)

	h := Handlers{
		Session:  handlers.NewSessionHandler(sessions, os.Getenv),
		Metadata: handlers.NewMetadataHandler(metadata),
		Wizard:   handlers.NewWizardHandler(usecase.NewQuoteWizardUseCase(draftRepo, quoteGateway, shipmentGateway, publisher)),
		Address:  handlers.NewAddressHandler(usecase.NewAddressUseCase(addressGateway)),
		Tracking: handlers.NewTrackingHandler(usecase.NewTrackingUseCase(shipmentGateway)),
		Payment: handlers.NewPaymentHandler(
			usecase.NewQuotePaymentUseCase(receiptRepo, quoteGateway, paymentGateway, ledgerGateway, publisher, cfg.Payments),
			cfg.Payments.MockMode,
		),
		Admin: handlers.NewAdminHandler(
			usecase.NewDashboardUseCase(quoteGateway, shipmentGateway, catalogGateway, userGateway),
			usecase.NewAdminQuoteUseCase(quoteGateway, shipmentGateway, publisher),
			usecase.NewAdminShipmentUseCase(shipmentGateway, publisher),
		),
		Catalog: handlers.NewCatalogHandler(usecase.NewCatalogUseCase(catalogGateway, metadata)),
	}
	return h, authn, sessions, closeFn
}

func setMiddlewares(router *gin.Engine, origins []string) {
	router.Use(logging.RequestID())
	router.Use(logging.JSONLogger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
