// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/household-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/household-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	authController      *controller.AuthController
	householdController *controller.HouseholdController
	categoryController  *controller.CategoryController
	expenseController   *controller.ExpenseController
	budgetController    *controller.BudgetController
	recurringController *controller.RecurringExpenseController
	summaryController   *controller.SummaryController
	loginRateLimiter    *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
	householdMiddleware *middleware.HouseholdMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	householdController *controller.HouseholdController,
	categoryController *controller.CategoryController,
	expenseController *controller.ExpenseController,
	budgetController *controller.BudgetController,
	recurringController *controller.RecurringExpenseController,
	summaryController *controller.SummaryController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
	householdMiddleware *middleware.HouseholdMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		authController:      authController,
		householdController: householdController,
		categoryController:  categoryController,
		expenseController:   expenseController,
		budgetController:    budgetController,
		recurringController: recurringController,
		summaryController:   summaryController,
		loginRateLimiter:    loginRateLimiter,
		authMiddleware:      authMiddleware,
		householdMiddleware: householdMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.Refresh)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		if r.authMiddleware == nil {
			return
		}
		authenticated := v1.Group("")
		authenticated.Use(r.authMiddleware.Authenticate())

		// Household routes. Create and join only need authentication; the
		// rest require an existing membership.
		if r.householdController != nil {
			households := authenticated.Group("/households")
			{
				households.POST("", r.householdController.Create)
				households.POST("/join", r.householdController.Join)
			}
			if r.householdMiddleware != nil {
				members := households.Group("")
				members.Use(r.householdMiddleware.RequireHousehold())
				{
					members.GET("/me", r.householdController.Get)
					members.POST("/leave", r.householdController.Leave)
					members.POST("/invite", r.householdController.SendInvite)
				}
			}
		}

		if r.householdMiddleware == nil {
			return
		}
		household := authenticated.Group("")
		household.Use(r.householdMiddleware.RequireHousehold())

		// Category routes
		if r.categoryController != nil {
			categories := household.Group("/categories")
			{
				categories.GET("", r.categoryController.List)
				categories.POST("", r.categoryController.Create)
				categories.PATCH("/:id", r.categoryController.Update)
				categories.DELETE("/:id", r.categoryController.Delete)
			}
		}

		// Expense routes
		if r.expenseController != nil {
			expenses := household.Group("/expenses")
			{
				expenses.GET("", r.expenseController.List)
				expenses.POST("", r.expenseController.Create)
				expenses.PATCH("/:id", r.expenseController.Update)
				expenses.DELETE("/:id", r.expenseController.Delete)
			}
		}

		// Budget routes
		if r.budgetController != nil {
			budgets := household.Group("/budgets")
			{
				budgets.GET("", r.budgetController.List)
				budgets.PUT("", r.budgetController.Set)
				budgets.DELETE("/:id", r.budgetController.Delete)
			}
		}

		// Recurring expense template routes
		if r.recurringController != nil {
			recurringExpenses := household.Group("/recurring-expenses")
			{
				recurringExpenses.GET("", r.recurringController.List)
				recurringExpenses.POST("", r.recurringController.Create)
				recurringExpenses.PATCH("/:id", r.recurringController.Update)
				recurringExpenses.DELETE("/:id", r.recurringController.Delete)
			}
		}

		// Summary and insight routes
		if r.summaryController != nil {
			household.GET("/summary", r.summaryController.GetSummary)
			household.GET("/insights", r.summaryController.GetInsights)
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
