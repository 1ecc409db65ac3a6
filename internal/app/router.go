package app

import (
	"github.com/Ss09shubh/mock-test/docs"
	"github.com/Ss09shubh/mock-test/internal/config"
	"github.com/Ss09shubh/mock-test/internal/middleware"
	"github.com/Ss09shubh/mock-test/internal/model"
	"github.com/Ss09shubh/mock-test/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	api := router.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg))
	{
		api.GET("/profile", c.auth.GetProfile)

		// Courses: listing and reads are shared, role-aware filtering happens
		// in the service.
		api.GET("/courses", c.course.ListCourses)
		api.GET("/courses/:id", c.course.GetCourse)
		api.GET("/courses/:id/examinations", c.examination.ListCourseExaminations)

		// Examinations
		api.GET("/examinations/:id", c.examination.GetExamination)

		// Results
		api.GET("/results", c.result.ListResults)
		api.GET("/results/:id", c.result.GetResult)

		admin := api.Group("")
		admin.Use(middleware.RoleMiddleware(model.Admin))
		{
			admin.POST("/courses", c.course.CreateCourse)
			admin.POST("/courses/:id/assign", c.course.AssignCourse)
			admin.POST("/examinations", c.examination.CreateExamination)
			admin.GET("/results/member/:memberId", c.result.GetMemberResults)
			admin.GET("/results/course/:courseId", c.result.GetCourseResults)
			admin.POST("/users", c.user.CreateMember)
			admin.GET("/users/members", c.user.ListMembers)
			admin.GET("/users/members/:id", c.user.GetMember)
		}

		member := api.Group("")
		member.Use(middleware.RoleMiddleware(model.Member))
		{
			member.POST("/examinations/:id/start", c.examination.StartExamination)
			member.POST("/examinations/:id/submit", c.examination.SubmitExamination)
		}
	}
}
