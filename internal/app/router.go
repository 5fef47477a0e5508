package app

import (
	"cybit_edu/docs"
	"cybit_edu/internal/middleware"
	"cybit_edu/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	api.GET("/health", c.health.HealthCheck)

	// 没有登录体系，按 X-Client-ID 区分客户端
	client := api.Group("")
	client.Use(middleware.ClientID())
	{
		a.registerCourseRoutes(client, c)
		a.registerQuizRoutes(client, c)
		a.registerPlaygroundRoutes(client, c)
	}

	a.registerAdminRoutes(api, c)
}

func (a *App) registerCourseRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/courses", c.course.List)
	rg.GET("/courses/categories", c.course.Categories)
	rg.GET("/courses/:id", c.course.Detail)
	rg.GET("/courses/:id/progress", c.course.Progress)
	rg.GET("/courses/:id/player", c.course.Player)
	rg.POST("/courses/:id/videos/:videoId/complete", c.course.CompleteVideo)
}

func (a *App) registerQuizRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.POST("/videos/:videoId/quiz-sessions", c.quiz.Start)
	rg.GET("/videos/:videoId/quiz-scores", c.quiz.BestScore)

	sessions := rg.Group("/quiz-sessions/:id")
	{
		sessions.GET("", c.quiz.Get)
		sessions.PUT("/answers/:questionId", c.quiz.Answer)
		sessions.POST("/next", c.quiz.Next)
		sessions.POST("/previous", c.quiz.Previous)
		sessions.POST("/submit", c.quiz.Submit)
		sessions.POST("/retake", c.quiz.Retake)
		sessions.GET("/review", c.quiz.Review)
	}
}

func (a *App) registerPlaygroundRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.POST("/code/run", c.code.Run)

	rg.GET("/playground/files", c.playground.List)
	rg.POST("/playground/files", c.playground.Save)
	rg.GET("/playground/files/:id", c.playground.Load)
	rg.GET("/playground/files/:id/download", c.playground.Download)
	rg.DELETE("/playground/files/:id", c.playground.Delete)

	rg.GET("/preferences", c.preference.Get)
	rg.PUT("/preferences", c.preference.Update)
	rg.GET("/preferences/accents", c.preference.Accents)
}

func (a *App) registerAdminRoutes(rg *gin.RouterGroup, c *controllers) {
	admin := rg.Group("/admin")
	{
		admin.GET("/dashboard", c.admin.Dashboard)
		admin.GET("/courses", c.admin.Courses)
		admin.POST("/courses", c.admin.CreateCourse)
		admin.DELETE("/courses/:id", c.admin.DeleteCourse)
		admin.POST("/courses/:id/sections/:sectionId/videos", c.admin.UploadVideo)
		admin.PUT("/videos/:videoId/questions", c.admin.ReplaceQuestions)
	}
}
