package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/rentwise/property-system/internal/api/handler"
	"github.com/rentwise/property-system/internal/api/middleware"
	"github.com/rentwise/property-system/internal/core/domain"
	"github.com/rentwise/property-system/internal/core/service"
	gormstore "github.com/rentwise/property-system/internal/infrastructure/db/gorm"
	redisstore "github.com/rentwise/property-system/internal/infrastructure/db/redis"
	healthhandlers "github.com/rentwise/property-system/internal/infrastructure/http/handlers"
	"github.com/rentwise/property-system/pkg/logger"
)

// Options carries the router's tunables.
type Options struct {
	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, rdb *redis.Client, opts Options) *echo.Echo {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("rentwise"))

	// --- Repositories ---
	accountRepo := gormstore.NewAccountRepository(db)
	propertyRepo := gormstore.NewPropertyRepository(db)
	unitRepo := gormstore.NewUnitRepository(db)
	tenantRepo := gormstore.NewTenantProfileRepository(db)
	managerRepo := gormstore.NewManagerProfileRepository(db)
	caretakerRepo := gormstore.NewCaretakerProfileRepository(db)
	paymentRepo := gormstore.NewPaymentRepository(db)
	maintenanceRepo := gormstore.NewMaintenanceRepository(db)
	tokenStore := redisstore.NewTokenStore(rdb)

	// --- Services ---
	authService := service.NewAuthService(accountRepo, tenantRepo, managerRepo, caretakerRepo,
		tokenStore, opts.JWTSecret, opts.AccessTokenTTL, opts.RefreshTokenTTL, log)
	accountService := service.NewAccountService(accountRepo, authService, log)
	propertyService := service.NewPropertyService(propertyRepo, log)
	unitService := service.NewUnitService(unitRepo, propertyRepo, log)
	profileService := service.NewProfileService(tenantRepo, caretakerRepo, log)
	paymentService := service.NewPaymentService(paymentRepo, tenantRepo, log)
	maintenanceService := service.NewMaintenanceService(maintenanceRepo, tenantRepo, log)
	assignmentService := service.NewAssignmentService(accountRepo, propertyRepo, unitRepo,
		tenantRepo, managerRepo, caretakerRepo, log)
	reportService := service.NewReportService(propertyRepo, unitRepo, tenantRepo, caretakerRepo,
		paymentRepo, maintenanceRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	accountHandler := handler.NewAccountHandler(accountService)
	propertyHandler := handler.NewPropertyHandler(propertyService)
	unitHandler := handler.NewUnitHandler(unitService)
	profileHandler := handler.NewProfileHandler(profileService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	maintenanceHandler := handler.NewMaintenanceHandler(maintenanceService)
	assignmentHandler := handler.NewAssignmentHandler(assignmentService)
	reportHandler := handler.NewReportHandler(reportService)

	auth := middleware.Auth(opts.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	landlordOrAdmin := middleware.RBAC(domain.RoleLandlord, domain.RoleAdmin)
	recordWriters := middleware.RBAC(domain.RoleLandlord, domain.RolePropertyManager, domain.RoleAdmin)
	maintenanceWriters := middleware.RBAC(domain.RoleLandlord, domain.RolePropertyManager, domain.RoleCaretaker, domain.RoleAdmin)
	unitAssigners := middleware.RBAC(domain.RoleLandlord, domain.RolePropertyManager, domain.RoleCaretaker, domain.RoleAdmin)

	// --- Public surface ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/refresh", authHandler.Refresh)

	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Authenticated surface ---
	e.GET("/me", authHandler.Me, auth)

	v1 := e.Group("/v1", auth)

	accounts := v1.Group("/accounts", adminOnly)
	accounts.POST("", accountHandler.Create)
	accounts.GET("", accountHandler.List)
	accounts.GET("/:id", accountHandler.Get)
	accounts.PUT("/:id", accountHandler.Update)
	accounts.DELETE("/:id", accountHandler.Delete)

	v1.POST("/properties", propertyHandler.Create, landlordOrAdmin)
	v1.GET("/properties", propertyHandler.List)
	v1.GET("/properties/:id", propertyHandler.Get)
	v1.PUT("/properties/:id", propertyHandler.Update, landlordOrAdmin)
	v1.DELETE("/properties/:id", propertyHandler.Delete, landlordOrAdmin)

	v1.POST("/units", unitHandler.Create, recordWriters)
	v1.GET("/units", unitHandler.List)
	v1.GET("/units/:id", unitHandler.Get)
	v1.PUT("/units/:id", unitHandler.Update, recordWriters)
	v1.DELETE("/units/:id", unitHandler.Delete, recordWriters)

	v1.GET("/tenants", profileHandler.ListTenants)
	v1.GET("/tenants/:id", profileHandler.GetTenant)
	v1.GET("/caretakers", profileHandler.ListCaretakers)
	v1.GET("/caretakers/:id", profileHandler.GetCaretaker)

	v1.POST("/payments", paymentHandler.Create, recordWriters)
	v1.GET("/payments", paymentHandler.List)
	v1.GET("/payments/:id", paymentHandler.Get)
	v1.PUT("/payments/:id", paymentHandler.Update, recordWriters)
	v1.DELETE("/payments/:id", paymentHandler.Delete, recordWriters)

	v1.POST("/maintenance", maintenanceHandler.Create)
	v1.GET("/maintenance", maintenanceHandler.List)
	v1.GET("/maintenance/:id", maintenanceHandler.Get)
	v1.PUT("/maintenance/:id", maintenanceHandler.Update, maintenanceWriters)
	v1.DELETE("/maintenance/:id", maintenanceHandler.Delete, recordWriters)

	v1.POST("/assign/manager", assignmentHandler.AssignManager, landlordOrAdmin)
	v1.POST("/assign/caretaker", assignmentHandler.AssignCaretaker, landlordOrAdmin)
	v1.POST("/assign/unit", assignmentHandler.AssignUnit, unitAssigners)
	v1.POST("/vacate/unit", assignmentHandler.VacateUnit, unitAssigners)
	v1.POST("/unassign/caretaker", assignmentHandler.UnassignCaretaker, landlordOrAdmin)
	v1.POST("/unassign/manager", assignmentHandler.UnassignManager, landlordOrAdmin)

	v1.GET("/properties/:id/tenants", reportHandler.TenantsByProperty)
	v1.GET("/properties/:id/units", reportHandler.UnitsByProperty)
	v1.GET("/properties/:id/payments", reportHandler.PaymentsByProperty)
	v1.GET("/properties/:id/maintenance", reportHandler.MaintenanceByProperty)
	v1.GET("/tenants/:id/payments", reportHandler.PaymentsByTenant)

	return e
}
