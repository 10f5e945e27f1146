package sheet

import (
	"asdm-hrms/internal/middleware"
	"asdm-hrms/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	sheets := r.Group("/salary-sheets")
	sheets.Use(middleware.AuthMiddleware())
	{
		sheets.GET(
			"",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "salary-sheet", "read"),
			handler.View,
		)
		sheets.GET(
			"/export",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, "salary-sheet", "export"),
			handler.Export,
		)
		sheets.POST(
			"/load",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "salary-sheet", "read"),
			handler.Load,
		)
		sheets.PATCH(
			"/rows",
			middleware.RateLimitByUser(10, 30),
			middleware.RBACAuthorize(rbacService, "salary-sheet", "edit"),
			handler.EditField,
		)
		sheets.POST(
			"/selection",
			middleware.RateLimitByUser(10, 30),
			middleware.RBACAuthorize(rbacService, "salary-sheet", "edit"),
			handler.UpdateSelection,
		)
		if redisClient != nil {
			sheets.POST(
				"/generate",
				middleware.RateLimitByUser(0.1, 1),
				middleware.Idempotency(redisClient),
				middleware.RBACAuthorize(rbacService, "salary-sheet", "generate"),
				handler.Generate,
			)
		} else {
			sheets.POST(
				"/generate",
				middleware.RateLimitByUser(0.1, 1),
				middleware.RBACAuthorize(rbacService, "salary-sheet", "generate"),
				handler.Generate,
			)
		}
	}
}
