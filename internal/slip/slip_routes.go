package slip

import (
	"asdm-hrms/internal/middleware"
	"asdm-hrms/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	slips := r.Group("/salary-slips")
	slips.Use(middleware.AuthMiddleware())
	{
		slips.POST(
			"",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "salary-slip", "read"),
			handler.Generate,
		)
	}
}
