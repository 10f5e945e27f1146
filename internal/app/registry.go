package app

import (
	"database/sql"
	"os"
	"path/filepath"

	"asdm-hrms/internal/master"
	"asdm-hrms/internal/messaging/kafka"
	"asdm-hrms/internal/middleware"
	"asdm-hrms/internal/rbac"
	"asdm-hrms/internal/rbac/infra"
	"asdm-hrms/internal/sheet"
	"asdm-hrms/internal/slip"
	"asdm-hrms/internal/upstream"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Infrastructure ---
	coreClient := upstream.NewClient(
		os.Getenv("HRMS_CORE_URL"),
		os.Getenv("HRMS_CORE_TOKEN"),
	)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC ---
	rbacRepo := rbac.NewRepository(gormDB)
	enforcer, err := infra.NewEnforcer(filepath.Join("internal", "rbac", "infra", "model.conf"))
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbacRepo, enforcer)

	// --- Repositories ---
	masterRepo := master.NewRepository(gormDB)

	// --- Services ---
	masterService := master.NewService(masterRepo)
	sheetService := sheet.NewServiceWithOutbox(db, coreClient, outboxRepo)
	slipService := slip.NewService(coreClient, sheetService)

	// --- Handlers ---
	masterHandler := master.NewHandler(masterService)
	sheetHandler := sheet.NewHandlerWithRedis(sheetService, rdb)
	slipHandler := slip.NewHandler(slipService)

	// --- Routes ---
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))

	api := router.Group("/api/v1")
	{
		master.RegisterRoutes(api, masterHandler, rbacService)
		sheet.RegisterRoutes(api, sheetHandler, rbacService, rdb)
		slip.RegisterRoutes(api, slipHandler, rbacService)
	}

	return nil
}
