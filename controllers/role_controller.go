package controllers

import (
	"net/http"
	"worker-management/constants"
	"worker-management/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type IRoleController interface {
	FindAll(ctx *gin.Context)
}

type RoleController struct {
	service services.IRoleService
	logger  *zap.Logger
}

func NewRoleController(service services.IRoleService, logger *zap.Logger) IRoleController {
	return &RoleController{service: service, logger: logger}
}

func (c *RoleController) FindAll(ctx *gin.Context) {
	roles, err := c.service.FindAll()
	if err != nil {
		c.logger.Error("List roles error", zap.Error(err))
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
		return
	}

	ctx.JSON(http.StatusOK, roles)
}
