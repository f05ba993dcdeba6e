// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/lanaapp/backend/config"
	"github.com/lanaapp/backend/internal/application/adapter"
	"github.com/lanaapp/backend/internal/application/usecase/auth"
	"github.com/lanaapp/backend/internal/application/usecase/budget"
	"github.com/lanaapp/backend/internal/application/usecase/category"
	"github.com/lanaapp/backend/internal/application/usecase/fixedpayment"
	"github.com/lanaapp/backend/internal/application/usecase/notification"
	"github.com/lanaapp/backend/internal/application/usecase/report"
	"github.com/lanaapp/backend/internal/application/usecase/transaction"
	"github.com/lanaapp/backend/internal/application/usecase/user"
	"github.com/lanaapp/backend/internal/infra/server/router"
	"github.com/lanaapp/backend/internal/integration/adapters"
	"github.com/lanaapp/backend/internal/integration/email"
	"github.com/lanaapp/backend/internal/integration/entrypoint/controller"
	"github.com/lanaapp/backend/internal/integration/entrypoint/middleware"
	"github.com/lanaapp/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Router *router.Router
	Worker *email.Worker
}

// NewInjector creates a new dependency injector with all dependencies wired.
// The email sender is injectable so tests can swap in a mock.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, emailSender adapter.EmailSender) *Injector {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	fixedPaymentRepo := persistence.NewFixedPaymentRepository(db)
	notificationRepo := persistence.NewNotificationRepository(db)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)

	if emailSender == nil {
		emailSender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	}

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, notificationRepo, cfg.Email.AppBaseURL)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService, tokenService)

	// Create user use cases
	getUserUseCase := user.NewGetUserUseCase(userRepo)
	updateProfileUseCase := user.NewUpdateProfileUseCase(userRepo)
	deactivateUserUseCase := user.NewDeactivateUserUseCase(userRepo, tokenService)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo, fixedPaymentRepo)
	getTransactionUseCase := transaction.NewGetTransactionUseCase(transactionRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Create budget use cases
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo)
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo, categoryRepo)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo, categoryRepo)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)

	// Create fixed payment use cases
	listFixedPaymentsUseCase := fixedpayment.NewListFixedPaymentsUseCase(fixedPaymentRepo)
	createFixedPaymentUseCase := fixedpayment.NewCreateFixedPaymentUseCase(fixedPaymentRepo, userRepo)
	updateFixedPaymentUseCase := fixedpayment.NewUpdateFixedPaymentUseCase(fixedPaymentRepo, userRepo)
	deleteFixedPaymentUseCase := fixedpayment.NewDeleteFixedPaymentUseCase(fixedPaymentRepo)

	// Create notification use cases
	listNotificationsUseCase := notification.NewListNotificationsUseCase(notificationRepo)
	createNotificationUseCase := notification.NewCreateNotificationUseCase(notificationRepo, userRepo)
	updateNotificationUseCase := notification.NewUpdateNotificationUseCase(notificationRepo)
	deleteNotificationUseCase := notification.NewDeleteNotificationUseCase(notificationRepo)

	// Create report use cases
	categoryTotalsUseCase := report.NewCategoryTotalsUseCase(transactionRepo)
	monthlyTrendUseCase := report.NewMonthlyTrendUseCase(transactionRepo)
	financialSummaryUseCase := report.NewFinancialSummaryUseCase(transactionRepo)

	// Create controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		func() bool {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return redisClient.Ping(ctx).Err() == nil
		},
	)

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		forgotPasswordUseCase,
		resetPasswordUseCase,
	)

	userController := controller.NewUserController(
		getUserUseCase,
		updateProfileUseCase,
		deactivateUserUseCase,
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		createTransactionUseCase,
		getTransactionUseCase,
		updateTransactionUseCase,
		deleteTransactionUseCase,
	)

	budgetController := controller.NewBudgetController(
		listBudgetsUseCase,
		createBudgetUseCase,
		updateBudgetUseCase,
		deleteBudgetUseCase,
	)

	fixedPaymentController := controller.NewFixedPaymentController(
		listFixedPaymentsUseCase,
		createFixedPaymentUseCase,
		updateFixedPaymentUseCase,
		deleteFixedPaymentUseCase,
	)

	notificationController := controller.NewNotificationController(
		listNotificationsUseCase,
		createNotificationUseCase,
		updateNotificationUseCase,
		deleteNotificationUseCase,
	)

	reportController := controller.NewReportController(
		categoryTotalsUseCase,
		monthlyTrendUseCase,
		financialSummaryUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(redisClient, 1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter(redisClient)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create delivery worker
	worker := email.NewWorker(notificationRepo, userRepo, emailSender, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		userController,
		categoryController,
		transactionController,
		budgetController,
		fixedPaymentController,
		notificationController,
		reportController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Router: r,
		Worker: worker,
	}
}
