package app

import (
	"quiz_prep_backend/docs"
	"quiz_prep_backend/internal/config"
	"quiz_prep_backend/internal/middleware"
	"quiz_prep_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由：健康检查和游客取题
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.GET("/questions", middleware.TryAuthMiddleware(cfg), c.question.GetQuestionsByLevel)
	}

	// 需要登录的答题/历史/回顾接口
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.POST("/attempts", c.attempt.CreateAttempt)
		authGroup.POST("/attempts/:id/answers", c.attempt.RecordAnswer)
		authGroup.POST("/attempts/:id/finish", c.attempt.FinishAttempt)

		authGroup.GET("/history", c.history.GetHistory)
		authGroup.GET("/history/:id", c.history.GetHistoryDetail)

		authGroup.GET("/review/incorrect", c.review.GetIncorrectQuestions)
	}

	// 题库管理接口
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware("admin"))
	{
		admin.POST("/questions", c.question.CreateQuestion)
		admin.PUT("/questions/:id", c.question.UpdateQuestion)
		admin.DELETE("/questions/:id", c.question.DeleteQuestion)
	}
}
