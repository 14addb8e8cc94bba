package middlewares

import (
	"net/http"
	"strings"
	"worker-management/constants"
	"worker-management/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const identityKey = "identity"

// AuthMiddleware 呼び出し元のIdentityを決定してctxに設定する
// Authorizationヘッダがない場合は匿名ロール、不正なトークンは401
func AuthMiddleware(authService services.IAuthService, logger *zap.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			ctx.Set(identityKey, authService.Anonymous())
			ctx.Next()
			return
		}

		if !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": constants.ErrInvalidToken})
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		identity, err := authService.Authenticate(tokenString)
		if err != nil {
			logger.Info("Rejected bearer token",
				zap.String("request_id", GetRequestID(ctx)),
				zap.Error(err),
			)
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": constants.ErrInvalidToken})
			return
		}

		ctx.Set(identityKey, identity)
		ctx.Next()
	}
}

// CurrentIdentity AuthMiddlewareが設定したIdentityを返す。未設定ならnil
func CurrentIdentity(ctx *gin.Context) *services.Identity {
	value, exists := ctx.Get(identityKey)
	if !exists {
		return nil
	}
	identity, ok := value.(*services.Identity)
	if !ok {
		return nil
	}
	return identity
}
