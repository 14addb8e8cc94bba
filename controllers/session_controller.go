package controllers

import (
	"net/http"
	"worker-management/constants"
	"worker-management/dto"
	"worker-management/middlewares"

	"github.com/gin-gonic/gin"
)

type ISessionController interface {
	Current(ctx *gin.Context)
}

// SessionController 画面側が管理操作を表示するかどうかの判定に使う
type SessionController struct{}

func NewSessionController() ISessionController {
	return &SessionController{}
}

func (c *SessionController) Current(ctx *gin.Context) {
	identity := middlewares.CurrentIdentity(ctx)
	if identity == nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": constants.ErrInvalidToken})
		return
	}

	ctx.JSON(http.StatusOK, dto.SessionResponse{
		Role:          identity.Role,
		Authenticated: identity.Authenticated,
		CanManage:     identity.IsAdmin(),
	})
}
