package middlewares

import (
	"net/http"
	"strings"
	"worker-management/constants"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var mutatingMethods = map[string]bool{
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodDelete: true,
}

// RequestGate pathPrefix配下への変更系リクエスト（POST/PUT/DELETE）を
// allowedRolesのみに許可する。参照系はそのまま通す
// AuthMiddlewareの後に使用することを想定
func RequestGate(pathPrefix string, logger *zap.Logger, allowedRoles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if !strings.HasPrefix(ctx.Request.URL.Path, pathPrefix) || !mutatingMethods[ctx.Request.Method] {
			ctx.Next()
			return
		}

		identity := CurrentIdentity(ctx)
		if identity == nil || !identity.HasRole(allowedRoles...) {
			role := ""
			if identity != nil {
				role = identity.Role
			}
			logger.Warn("RequestGate: access denied",
				zap.String("request_id", GetRequestID(ctx)),
				zap.String("method", ctx.Request.Method),
				zap.String("path", ctx.Request.URL.Path),
				zap.String("role", role),
				zap.Strings("allowed_roles", allowedRoles),
			)
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": constants.ErrForbidden})
			return
		}

		ctx.Next()
	}
}
