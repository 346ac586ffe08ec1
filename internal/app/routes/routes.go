package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/videobelajar/backend/internal/app/controllers"
	"github.com/videobelajar/backend/internal/app/models/dto"
	"github.com/videobelajar/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	courseController *controllers.CourseController,
	uploadController *controllers.UploadController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewMessageResponse("OK"))
	})

	// --- Auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/register", authController.Register)
		auth.GET("/verify", authMiddleware.JWTAuth(), authController.VerifyToken)
		auth.GET("/verify-email", authController.VerifyEmail)
	}

	// --- Users resource ---
	users := api.Group("/users")
	{
		users.GET("", userController.ListUsers)
		users.GET("/:id", userController.GetUser)
		users.POST("", userController.CreateUser)
		users.PUT("/:id", userController.UpdateUser)
		users.PUT("/:id/reset-password", userController.ResetPassword)
		users.DELETE("/:id", userController.DeleteUser)
	}

	// --- Course catalog ---
	courses := api.Group("/courses")
	{
		courses.GET("", courseController.ListCourses)
		courses.GET("/:id", courseController.GetCourse)
		courses.GET("/category/:category", courseController.GetCoursesByCategory)
		courses.POST("", courseController.CreateCourse)
		courses.POST("/reset", courseController.ResetCourses)
		courses.PUT("/:id", courseController.UpdateCourse)
		courses.DELETE("/:id", courseController.DeleteCourse)
	}

	// --- File upload ---
	api.POST("/upload", uploadController.UploadFile)
}
