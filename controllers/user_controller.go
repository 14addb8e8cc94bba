package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"worker-management/constants"
	"worker-management/dto"
	"worker-management/middlewares"
	"worker-management/repositories"
	"worker-management/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type IUserController interface {
	FindAll(ctx *gin.Context)
	FindById(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type UserController struct {
	service services.IUserService
	logger  *zap.Logger
}

func NewUserController(service services.IUserService, logger *zap.Logger) IUserController {
	return &UserController{service: service, logger: logger}
}

func (c *UserController) FindAll(ctx *gin.Context) {
	users, err := c.service.FindAll()
	if err != nil {
		c.respondError(ctx, "List users error", err)
		return
	}

	ctx.JSON(http.StatusOK, users)
}

func (c *UserController) FindById(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}

	user, err := c.service.FindById(userID)
	if err != nil {
		c.respondError(ctx, "Find user error", err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

func (c *UserController) Create(ctx *gin.Context) {
	var input dto.CreateUserInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}
	if input.Email == "" || input.RoleID == 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrEmailAndRoleRequired})
		return
	}

	newUser, err := c.service.Create(input)
	if err != nil {
		c.respondError(ctx, "Create user error", err)
		return
	}

	ctx.JSON(http.StatusCreated, newUser)
}

func (c *UserController) Update(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}

	var input dto.UpdateUserInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidInput})
		return
	}

	updatedUser, err := c.service.Update(userID, input)
	if err != nil {
		c.respondError(ctx, "Update user error", err)
		return
	}

	ctx.JSON(http.StatusOK, updatedUser)
}

func (c *UserController) Delete(ctx *gin.Context) {
	userID, ok := parseUserID(ctx)
	if !ok {
		return
	}

	if err := c.service.Delete(userID); err != nil {
		c.respondError(ctx, "Delete user error", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// respondError エラーをログに出力してからステータスを決める
// ロール不在（外部キー違反）を含め、分類できないものはすべて500
func (c *UserController) respondError(ctx *gin.Context, msg string, err error) {
	c.logger.Error(msg,
		zap.String("request_id", middlewares.GetRequestID(ctx)),
		zap.String("path", ctx.Request.URL.Path),
		zap.Error(err),
	)

	switch {
	case errors.Is(err, repositories.ErrUserNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": constants.ErrUserNotFound})
	case errors.Is(err, repositories.ErrDuplicateEmail):
		ctx.JSON(http.StatusConflict, gin.H{"error": constants.ErrEmailExists})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": constants.ErrUnexpected})
	}
}

func parseUserID(ctx *gin.Context) (int, bool) {
	userID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidID})
		return 0, false
	}
	return userID, true
}
