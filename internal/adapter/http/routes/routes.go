package routes

import (
	"context"
	"log"
	"strconv"

	_ "budget_portal/docs" // swag init output
	"budget_portal/internal/adapter/http/handlers"
	"budget_portal/internal/adapter/persistence/memory"
	"budget_portal/internal/adapter/persistence/repository"
	"budget_portal/internal/infrastructure/auth"
	"budget_portal/internal/infrastructure/config"
	"budget_portal/internal/infrastructure/database"
	"budget_portal/internal/infrastructure/logger"
	"budget_portal/internal/infrastructure/seed"
	"budget_portal/internal/usecase"
	"budget_portal/internal/usecase/interfaces"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/crypto/bcrypt"
)

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	appLog, err := logger.NewLogger(cfg.Logging.Level)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = appLog.Sync() }()

	gin.SetMode(cfg.Server.GinMode)
	router, err := NewRouter(context.Background(), cfg, appLog, bcrypt.DefaultCost)
	if err != nil {
		appLog.Fatalf("Failed to wire the application: %v", err)
	}

	appLog.Infof("[server] listening port=%d store=%s", cfg.Server.Port, cfg.Store.Backend)
	if err := router.Run(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
		appLog.Fatalf("Failed to startup the application: %v", err)
	}
}

// NewRouter wires stores, use cases and handlers into a gin engine.
// bcryptCost applies to the seeded credentials.
func NewRouter(ctx context.Context, cfg *config.Config, appLog *logger.Logger, bcryptCost int) (*gin.Engine, error) {
	data, err := seed.Load(cfg.Store.SeedPath, bcryptCost)
	if err != nil {
		return nil, err
	}

	estimationRepo, err := newEstimationRepository(ctx, cfg, appLog, data)
	if err != nil {
		return nil, err
	}
	lineItemRepo := memory.NewBudgetLineItemMemoryRepository(data.LineItems)
	userRepo := memory.NewUserMemoryRepository(data.Users)

	sessionUseCase := usecase.NewSessionUseCase(
		userRepo,
		auth.NewCacheSessionStore(cfg.Auth.SessionTTL),
		auth.NewJWTIssuer(cfg.Auth.JWTSecret),
		cfg.Auth.SessionTTL,
		appLog,
	)
	estimationUseCase := usecase.NewEstimationUseCase(estimationRepo, lineItemRepo, appLog)
	lineItemUseCase := usecase.NewBudgetLineItemUseCase(lineItemRepo)

	authHandler := handlers.NewAuthHandler(sessionUseCase, appLog)
	estimationHandler := handlers.NewEstimationHandler(estimationUseCase, appLog)
	lineItemHandler := handlers.NewBudgetLineItemHandler(lineItemUseCase, estimationUseCase)

	router := gin.New()
	setMiddlewares(router, appLog)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler, handlers.RequireSession(sessionUseCase))

	// Rotas autenticadas
	private := v1.Group("", handlers.RequireSession(sessionUseCase))
	addBudgetRoutes(private, estimationHandler, lineItemHandler)

	return router, nil
}

func newEstimationRepository(ctx context.Context, cfg *config.Config, appLog *logger.Logger, data *seed.Data) (interfaces.IEstimationRepository, error) {
	if !cfg.UsesDynamoDB() {
		return memory.NewEstimationMemoryRepository(data.Estimations), nil
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return nil, err
	}
	repo := repository.NewEstimationDynamoRepository(ddb, cfg.DynamoDB.EstimationTable)

	created := 0
	for _, rec := range data.Estimations {
		if _, err := repo.Create(ctx, rec, nil); err != nil {
			if errors.Is(err, interfaces.ErrEstimationExists) {
				continue
			}
			return nil, errors.Wrapf(err, "seed estimation %s", rec.ID)
		}
		created++
	}
	appLog.Infof("[estimation][store] dynamodb ready table=%s seeded=%d", cfg.DynamoDB.EstimationTable, created)
	return repo, nil
}

func setMiddlewares(router *gin.Engine, appLog *logger.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		appLog.Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
