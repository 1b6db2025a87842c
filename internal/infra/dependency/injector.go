// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/household-tracker/backend/config"
	"github.com/household-tracker/backend/internal/application/adapter"
	"github.com/household-tracker/backend/internal/application/usecase/auth"
	"github.com/household-tracker/backend/internal/application/usecase/budget"
	"github.com/household-tracker/backend/internal/application/usecase/category"
	"github.com/household-tracker/backend/internal/application/usecase/expense"
	"github.com/household-tracker/backend/internal/application/usecase/household"
	"github.com/household-tracker/backend/internal/application/usecase/recurring"
	"github.com/household-tracker/backend/internal/application/usecase/summary"
	"github.com/household-tracker/backend/internal/infra/server/router"
	"github.com/household-tracker/backend/internal/integration/adapters"
	"github.com/household-tracker/backend/internal/integration/cache"
	"github.com/household-tracker/backend/internal/integration/email"
	"github.com/household-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/household-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/household-tracker/backend/internal/integration/persistence"
	"github.com/household-tracker/backend/internal/integration/scheduler"
)

// Injector holds all application dependencies.
type Injector struct {
	Config          *config.Config
	DB              *gorm.DB
	Router          *router.Router
	GeneratorWorker *scheduler.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, logger *slog.Logger) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	householdRepo := persistence.NewHouseholdRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	recurringRepo := persistence.NewRecurringExpenseRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	clock := adapters.NewSystemClock()
	summaryCache := newSummaryCache(cfg, logger)
	emailSender := newEmailSender(cfg, logger)

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create household use cases
	createHouseholdUseCase := household.NewCreateHouseholdUseCase(householdRepo, userRepo)
	getHouseholdUseCase := household.NewGetHouseholdUseCase(householdRepo, userRepo)
	joinHouseholdUseCase := household.NewJoinHouseholdUseCase(householdRepo, userRepo)
	leaveHouseholdUseCase := household.NewLeaveHouseholdUseCase(householdRepo, userRepo)
	sendInviteUseCase := household.NewSendInviteUseCase(householdRepo, userRepo, emailSender, logger)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

	// Create expense use cases
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, categoryRepo, summaryCache, logger)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo, categoryRepo, summaryCache, logger)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo, summaryCache, logger)

	// Create budget use cases
	setBudgetUseCase := budget.NewSetBudgetUseCase(budgetRepo, categoryRepo, summaryCache, logger)
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo, summaryCache, logger)

	// Create recurring expense use cases
	createRecurringUseCase := recurring.NewCreateRecurringExpenseUseCase(recurringRepo, categoryRepo, clock)
	listRecurringUseCase := recurring.NewListRecurringExpensesUseCase(recurringRepo, clock)
	updateRecurringUseCase := recurring.NewUpdateRecurringExpenseUseCase(recurringRepo, categoryRepo, clock)
	deleteRecurringUseCase := recurring.NewDeleteRecurringExpenseUseCase(recurringRepo)
	generateUseCase := recurring.NewGenerateMonthlyExpensesUseCase(recurringRepo, summaryCache, clock, logger)

	// Create summary use cases
	summaryUseCase := summary.NewGetSpendingSummaryUseCase(categoryRepo, expenseRepo, budgetRepo, summaryCache, logger)
	insightsUseCase := summary.NewGetInsightsUseCase(summaryUseCase)

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
	)

	householdController := controller.NewHouseholdController(
		createHouseholdUseCase,
		getHouseholdUseCase,
		joinHouseholdUseCase,
		leaveHouseholdUseCase,
		sendInviteUseCase,
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	expenseController := controller.NewExpenseController(
		createExpenseUseCase,
		listExpensesUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
	)

	budgetController := controller.NewBudgetController(
		setBudgetUseCase,
		listBudgetsUseCase,
		deleteBudgetUseCase,
	)

	recurringController := controller.NewRecurringExpenseController(
		createRecurringUseCase,
		listRecurringUseCase,
		updateRecurringUseCase,
		deleteRecurringUseCase,
	)

	summaryController := controller.NewSummaryController(summaryUseCase, insightsUseCase)

	// Create middleware
	// Use higher rate limits for test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)
	householdMiddleware := middleware.NewHouseholdMiddleware(userRepo)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		householdController,
		categoryController,
		expenseController,
		budgetController,
		recurringController,
		summaryController,
		loginRateLimiter,
		authMiddleware,
		householdMiddleware,
	)

	// Create background generator worker
	workerConfig := scheduler.DefaultWorkerConfig()
	workerConfig.Interval = cfg.Generator.Interval
	worker := scheduler.NewWorker(generateUseCase, workerConfig, logger)

	return &Injector{
		Config:          cfg,
		DB:              db,
		Router:          r,
		GeneratorWorker: worker,
	}
}

// newSummaryCache builds the Redis summary cache, falling back to a no-op
// cache when Redis is disabled or the URL is malformed.
func newSummaryCache(cfg *config.Config, logger *slog.Logger) adapter.SummaryCache {
	if !cfg.Redis.Enabled {
		return cache.NewNoopSummaryCache()
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		logger.Warn("invalid redis url, summary cache disabled", "error", err)
		return cache.NewNoopSummaryCache()
	}
	return cache.NewSummaryCache(redis.NewClient(opts))
}

// newEmailSender builds the Resend invite sender. Without an API key the
// mock sender is used so invites degrade to in-app codes.
func newEmailSender(cfg *config.Config, logger *slog.Logger) adapter.EmailSender {
	if cfg.Email.ResendAPIKey == "" {
		logger.Warn("resend api key not set, invite emails disabled")
		return &email.MockEmailSender{}
	}
	return email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
}
