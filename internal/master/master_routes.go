package master

import (
	"asdm-hrms/internal/middleware"
	"asdm-hrms/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	masters := r.Group("/salary-structure-types")
	masters.Use(middleware.AuthMiddleware())
	{
		masters.GET(
			"",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "salary-sheet", "read"),
			handler.GetMasterData,
		)
	}
}
