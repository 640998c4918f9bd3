// Package router assembles the HTTP surface of the site.
package router

import (
	"html/template"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"portfolio-core/internal/middleware"
	"portfolio-core/internal/presentation/handlers"
	"portfolio-core/internal/presentation/web"
)

// Handlers groups everything the router mounts
type Handlers struct {
	Health     *handlers.HealthHandler
	Repository *handlers.RepositoryHandler
	Assistant  *handlers.AssistantHandler
	Page       *handlers.PageHandler
	Wall       *handlers.WallHandler
}

// Options tune the router
type Options struct {
	AllowedOrigins []string
	// MaxBodyBytes is the upload size limit; it bounds the upload routes'
	// bodies (plus multipart overhead) and the form data held in memory
	MaxBodyBytes int64
	AccessLog    bool
}

// New builds the gin engine with middleware and every route
func New(h Handlers, auth *middleware.WallAuth, tmpl *template.Template, opts Options) *gin.Engine {
	router := gin.New()

	if opts.AccessLog {
		router.Use(gin.Logger())
	}
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(cors.New(corsConfig(opts.AllowedOrigins)))

	var limitUpload gin.HandlerFunc = func(c *gin.Context) { c.Next() }
	if opts.MaxBodyBytes > 0 {
		router.MaxMultipartMemory = opts.MaxBodyBytes
		limitUpload = middleware.LimitBody(opts.MaxBodyBytes + middleware.MultipartOverhead)
	}

	router.SetHTMLTemplate(tmpl)
	router.StaticFS("/static", web.Static())

	// Pages
	router.GET("/", h.Page.Home)
	router.GET("/projects", h.Page.Projects)
	router.GET("/chat", h.Page.Chat)

	wall := router.Group("/wall")
	wall.Use(auth.LoadSession())
	{
		wall.GET("", h.Wall.Show)
		wall.POST("/unlock", h.Wall.Unlock)
		wall.POST("/lock", h.Wall.Lock)
		wall.POST("/upload", limitUpload, h.Wall.Upload)
	}

	// Assistant proxies
	api := router.Group("/api")
	{
		api.POST("/chat", h.Assistant.Chat)
		api.POST("/analyze-alignment", h.Assistant.AnalyzeAlignment)
		api.POST("/ingest", auth.RequireSession(), limitUpload, h.Assistant.Ingest)
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", h.Health.Health)
		v1.GET("/health/ready", h.Health.Ready)
		v1.GET("/repos", h.Repository.ListRepositories)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.RequestIDHeader}
	cfg.ExposeHeaders = []string{middleware.RequestIDHeader}

	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
