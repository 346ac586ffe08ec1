package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/videobelajar/backend/internal/app/models/dto"
	"github.com/videobelajar/backend/internal/app/repositories"
	"github.com/videobelajar/backend/internal/app/services"
	"github.com/videobelajar/backend/internal/middleware"
	"github.com/videobelajar/backend/internal/pkg/helpers"
)

// UserController handles the users resource
type UserController struct {
	userService services.IUserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.IUserService) *UserController {
	return &UserController{userService: userService}
}

func parseIDParam(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("ID tidak valid"))
		return 0, false
	}
	return id, true
}

// ListUsers handles GET /users
func (c *UserController) ListUsers(ctx *gin.Context) {
	limit, offset := helpers.ParseLimitOffset(ctx)

	filter := repositories.UserListFilter{
		SortBy:  ctx.Query("sortBy"),
		SortDir: strings.ToUpper(ctx.Query("sort")),
		Limit:   limit,
		Offset:  offset,
	}
	if role := ctx.Query("role"); role != "" {
		filter.Role = &role
	}
	if search := ctx.Query("search"); search != "" {
		filter.Search = &search
	}

	users, total, err := c.userService.ListUsers(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(
		"Users retrieved successfully",
		dto.FromUsers(users),
		helpers.NewPagination(total, len(users), limit, offset),
	))
}

// GetUser handles GET /users/:id
func (c *UserController) GetUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	user, err := c.userService.GetUser(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("User retrieved successfully", dto.FromUser(user)))
}

// CreateUser handles POST /users
func (c *UserController) CreateUser(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(dto.HandleValidationError(err)))
		return
	}

	user, err := c.userService.CreateUser(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("User created successfully", dto.FromUser(user)))
}

// UpdateUser handles PUT /users/:id
func (c *UserController) UpdateUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(dto.HandleValidationError(err)))
		return
	}

	user, err := c.userService.UpdateUser(ctx.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("User updated successfully", dto.FromUser(user)))
}

// ResetPassword handles PUT /users/:id/reset-password
func (c *UserController) ResetPassword(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.ResetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.userService.ResetPassword(ctx.Request.Context(), id, req.NewPassword); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Password reset successfully"))
}

// DeleteUser handles DELETE /users/:id
func (c *UserController) DeleteUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.userService.DeleteUser(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("User deleted successfully"))
}
