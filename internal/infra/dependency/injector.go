// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/ledgertrack/backend/config"
	"github.com/ledgertrack/backend/internal/application/usecase/analytics"
	"github.com/ledgertrack/backend/internal/application/usecase/auth"
	"github.com/ledgertrack/backend/internal/application/usecase/category"
	"github.com/ledgertrack/backend/internal/application/usecase/transaction"
	"github.com/ledgertrack/backend/internal/infra/server/router"
	"github.com/ledgertrack/backend/internal/integration/adapters"
	"github.com/ledgertrack/backend/internal/integration/entrypoint/controller"
	"github.com/ledgertrack/backend/internal/integration/entrypoint/middleware"
	"github.com/ledgertrack/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil; the login rate limiter is skipped then.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	dateDimensionRepo := persistence.NewDateDimensionRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	analyticsRepo := persistence.NewAnalyticsRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry, tokenRepo)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	deleteAccountUseCase := auth.NewDeleteAccountUseCase(userRepo, passwordService, tokenService)

	// Create category use cases
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

	// Create transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo, dateDimensionRepo)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo, dateDimensionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Create analytics use cases
	summaryUseCase := analytics.NewGetSummaryUseCase(analyticsRepo)
	monthlyBreakdownUseCase := analytics.NewGetMonthlyBreakdownUseCase(analyticsRepo)
	categoryBreakdownUseCase := analytics.NewGetCategoryBreakdownUseCase(analyticsRepo)

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		deleteAccountUseCase,
	)

	categoryController := controller.NewCategoryController(
		createCategoryUseCase,
		listCategoriesUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	transactionController := controller.NewTransactionController(
		createTransactionUseCase,
		getTransactionUseCase,
		listTransactionsUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)

	analyticsController := controller.NewAnalyticsController(
		summaryUseCase,
		monthlyBreakdownUseCase,
		categoryBreakdownUseCase,
	)

	// Create middleware
	var loginRateLimiter *middleware.RateLimiter
	if redisClient != nil {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(
			redisClient,
			cfg.RateLimit.LoginAttempts,
			cfg.RateLimit.LoginWindow,
		)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		categoryController,
		transactionController,
		analyticsController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
