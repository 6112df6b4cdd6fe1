package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/campusfest/fest-api/internal/api/handler/v1/response"
	"github.com/campusfest/fest-api/internal/authz"
	"github.com/campusfest/fest-api/internal/domain"
)

// Authorize checks the session role against the policy for the given
// resource and action. Anonymous callers get 401, authenticated callers
// without the permission get 403.
func Authorize(resource authz.Resource, action authz.Action) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		role := domain.RoleAnonymous
		if session, ok := SessionFromContext(ctx); ok {
			role = session.Role
		}

		if authz.Allow(role, action, resource) {
			ctx.Next()
			return
		}

		if role == domain.RoleAnonymous {
			response.RenderErr(ctx, response.ErrUnauthorized("authentication required"))
			return
		}

		response.RenderErr(ctx, response.ErrPermissionDenied(
			fmt.Errorf("role %v may not %v %v", role, action, resource)))
	}
}
