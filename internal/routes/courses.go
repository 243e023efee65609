package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/portal-cosmico/backend/internal/handlers"
	"github.com/portal-cosmico/backend/internal/middleware"
)

func RegisterCourseRoutes(r gin.IRouter) {
	courses := r.Group("/courses")
	{
		courses.GET("", handlers.ListCourses)
		courses.GET("/:slug", middleware.AuthMiddleware(), handlers.GetCourse)
	}

	r.POST("/lessons/:id/complete", middleware.AuthMiddleware(), handlers.CompleteLesson)
}
