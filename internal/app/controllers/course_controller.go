package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/videobelajar/backend/internal/app/models/dto"
	"github.com/videobelajar/backend/internal/app/repositories"
	"github.com/videobelajar/backend/internal/app/services"
	"github.com/videobelajar/backend/internal/middleware"
	"github.com/videobelajar/backend/internal/pkg/helpers"
)

// CourseController handles the course catalog
type CourseController struct {
	courseService services.ICourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.ICourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// ListCourses handles GET /courses
func (c *CourseController) ListCourses(ctx *gin.Context) {
	limit, offset := helpers.ParseLimitOffset(ctx)

	filter := repositories.CourseListFilter{
		SortBy:  ctx.Query("sortBy"),
		SortDir: strings.ToUpper(ctx.Query("sort")),
		Limit:   limit,
		Offset:  offset,
	}
	if category := ctx.Query("category"); category != "" {
		filter.Category = &category
	}
	if search := ctx.Query("search"); search != "" {
		filter.Search = &search
	}

	courses, total, err := c.courseService.ListCourses(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(
		"Courses retrieved successfully",
		courses,
		helpers.NewPagination(total, len(courses), limit, offset),
	))
}

// GetCourse handles GET /courses/:id
func (c *CourseController) GetCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	course, err := c.courseService.GetCourse(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Course retrieved successfully", course))
}

// GetCoursesByCategory handles GET /courses/category/:category
func (c *CourseController) GetCoursesByCategory(ctx *gin.Context) {
	category := ctx.Param("category")

	courses, err := c.courseService.GetCoursesByCategory(ctx.Request.Context(), category)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(
		fmt.Sprintf("Courses in category '%s' retrieved successfully", category),
		courses,
	))
}

// CreateCourse handles POST /courses
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(dto.HandleValidationError(err)))
		return
	}

	course, err := c.courseService.CreateCourse(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse("Course created successfully", course))
}

// UpdateCourse handles PUT /courses/:id
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(dto.HandleValidationError(err)))
		return
	}

	course, err := c.courseService.UpdateCourse(ctx.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Course updated successfully", course))
}

// DeleteCourse handles DELETE /courses/:id
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.courseService.DeleteCourse(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Course deleted successfully"))
}

// ResetCourses handles POST /courses/reset
func (c *CourseController) ResetCourses(ctx *gin.Context) {
	courses, err := c.courseService.ResetCourses(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Courses reset to default successfully", courses))
}
