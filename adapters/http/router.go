package http

import (
	"net/http"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/mahathirrr/portfolio/pkg/auth"
	"github.com/mahathirrr/portfolio/pkg/logger"
)

type Handlers struct {
	Auth         *AuthHandler
	Services     *ServiceHandler
	Projects     *ProjectHandler
	Experiences  *ExperienceHandler
	Education    *EducationHandler
	PersonalInfo *PersonalInfoHandler
	Settings     *SiteSettingHandler
	Dashboard    *DashboardHandler
	Pages        *PageHandler
	Uploads      *UploadHandler
	Contact      *ContactHandler
	Search       *SearchHandler
	Cache        *CacheHandler
	Web          *WebHandler
}

type RouterDeps struct {
	JWT        *auth.JWTService
	Sessions   SessionResolver
	CookieName string
	Pages      PageInvalidator
	Logger     logger.Logger
}

func NewRouter(h Handlers, deps RouterDeps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(deps.Logger), ErrorMiddleware(deps.Logger))

	authMiddleware := AuthMiddleware(deps.JWT, deps.Sessions, deps.CookieName, deps.Logger)

	api := router.Group("/api")
	{
		// Errors must be rendered inside the gzip writer, before it is closed.
		public := api.Group("/")
		public.Use(gzip.Gzip(gzip.DefaultCompression), ErrorMiddleware(deps.Logger))
		{
			public.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

			public.GET("/personal-info", h.PersonalInfo.GetPersonalInfo)
			public.GET("/services", h.Services.ListServices)
			public.GET("/projects", h.Projects.ListProjects)
			public.GET("/projects/categories", h.Projects.ListCategories)
			public.GET("/projects/rss", h.Projects.RSS)
			public.GET("/experiences", h.Experiences.ListExperiences)
			public.GET("/education", h.Education.ListEducation)
			public.GET("/settings", h.Settings.ListSettings)
			public.GET("/settings/:key", h.Settings.GetSetting)

			pages := public.Group("/pages")
			{
				pages.GET("/home", h.Pages.Home)
				pages.GET("/services", h.Pages.Services)
				pages.GET("/references", h.Pages.References)
				pages.GET("/experience", h.Pages.Experience)
			}

			public.GET("/search", h.Search.Search)
			public.POST("/contact", h.Contact.SubmitMessage)
		}

		admin := api.Group("/admin")
		{
			adminAuth := admin.Group("/auth")
			adminAuth.POST("/login", h.Auth.Login)
			adminAuth.POST("/logout", authMiddleware, h.Auth.Logout)
			adminAuth.GET("/session", authMiddleware, h.Auth.Session)

			adminPrivate := admin.Group("/")
			adminPrivate.Use(authMiddleware, InvalidatePages(deps.Pages, deps.Logger))
			{
				adminPrivate.GET("/dashboard", h.Dashboard.GetDashboard)

				adminPrivate.GET("/personal-info", h.PersonalInfo.GetPersonalInfo)
				adminPrivate.PUT("/personal-info", h.PersonalInfo.UpdatePersonalInfo)

				services := adminPrivate.Group("/services")
				{
					services.GET("", h.Services.ListServices)
					services.POST("", h.Services.CreateService)
					services.GET("/:id", h.Services.GetService)
					services.PATCH("/:id", h.Services.UpdateService)
					services.DELETE("/:id", h.Services.DeleteService)
				}

				projects := adminPrivate.Group("/projects")
				{
					projects.GET("", h.Projects.ListProjects)
					projects.POST("", h.Projects.CreateProject)
					projects.GET("/:id", h.Projects.GetProject)
					projects.PATCH("/:id", h.Projects.UpdateProject)
					projects.DELETE("/:id", h.Projects.DeleteProject)
				}

				experiences := adminPrivate.Group("/experiences")
				{
					experiences.GET("", h.Experiences.ListExperiences)
					experiences.POST("", h.Experiences.CreateExperience)
					experiences.GET("/:id", h.Experiences.GetExperience)
					experiences.PATCH("/:id", h.Experiences.UpdateExperience)
					experiences.DELETE("/:id", h.Experiences.DeleteExperience)
				}

				education := adminPrivate.Group("/education")
				{
					education.GET("", h.Education.ListEducation)
					education.POST("", h.Education.CreateEducation)
					education.GET("/:id", h.Education.GetEducation)
					education.PATCH("/:id", h.Education.UpdateEducation)
					education.DELETE("/:id", h.Education.DeleteEducation)
				}

				adminPrivate.GET("/settings", h.Settings.ListSettings)
				adminPrivate.PUT("/settings/:key", h.Settings.UpsertSetting)

				adminPrivate.POST("/uploads", h.Uploads.UploadImage)
				adminPrivate.GET("/contact-messages", h.Contact.ListMessages)
				adminPrivate.POST("/cache/clear", h.Cache.ClearCache)
			}
		}
	}

	web := router.Group("/")
	web.Use(gzip.Gzip(gzip.DefaultCompression), ErrorMiddleware(deps.Logger))
	{
		web.Static("/assets", h.Web.AssetsDir())
		for _, path := range []string{"/", "/services", "/references", "/booking", "/experience", AdminLoginPath} {
			web.GET(path, h.Web.Index)
		}
		web.GET("/admin", WebAuthGate(deps.JWT, deps.Sessions, deps.CookieName), h.Web.Index)
	}

	router.NoRoute(h.Web.NotFound)
	return router
}
