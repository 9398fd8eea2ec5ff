package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/suggestbox/suggestbox/docs"
	"github.com/suggestbox/suggestbox/internal/config"
	"github.com/suggestbox/suggestbox/internal/graph"
	"github.com/suggestbox/suggestbox/internal/middleware"
	"github.com/suggestbox/suggestbox/internal/modules/handler"
	"github.com/suggestbox/suggestbox/internal/modules/serializer"
	"github.com/suggestbox/suggestbox/internal/modules/service"
	"github.com/suggestbox/suggestbox/internal/pkg/permission"
	"github.com/suggestbox/suggestbox/internal/telemetry"
)

type RouterDeps struct {
	Config            *config.Config
	Log               *zap.Logger
	TokenService      service.TokenService
	ProjectHandler    *handler.ProjectHandler
	SuggestionHandler *handler.SuggestionHandler
	TokenHandler      *handler.TokenHandler
	// GraphQLHandler is nil when GraphQL is disabled.
	GraphQLHandler *graph.Handler
}

func NewRouter(d RouterDeps) *gin.Engine {
	// Initialize logger for serializer package
	serializer.SetLogger(d.Log)

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery())
	r.Use(cors.New(corsConfig()))

	// Add OpenTelemetry middleware if enabled (using configuration system)
	if d.Config.Telemetry.Enabled && d.Config.Telemetry.OtlpEndpoint != "" {
		r.Use(telemetry.GinMiddleware(d.Config.App.Name))
		// Add trace ID to response header
		r.Use(telemetry.TraceIDMiddleware())
	}

	r.Use(middleware.ZapLogger(d.Log))

	// health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, serializer.Response{Msg: "ok"}) })

	// swagger
	r.GET("/swagger", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/tokens/:key", d.TokenHandler.GetToken)

	projects := r.Group("/projects")
	{
		projects.POST("", d.ProjectHandler.CreateProject)
		projects.POST("/", d.ProjectHandler.CreateProject)

		scoped := projects.Group("/:id")
		scoped.Use(middleware.TokenAuth(d.TokenService), middleware.ProjectScope("id"))
		{
			scoped.GET("", d.ProjectHandler.GetProject)
			scoped.PATCH("", d.ProjectHandler.PatchProject)
			scoped.DELETE("", middleware.RequireCapability(permission.Admin), d.ProjectHandler.DeleteProject)
			scoped.POST("/read", middleware.RequireCapability(permission.ViewSuggestions), d.ProjectHandler.RefreshLastRead)

			scoped.POST("/tokens", middleware.RequireCapability(permission.ViewTokens), d.TokenHandler.IssueToken)

			scoped.POST("/suggestions", middleware.RequireCapability(permission.AddSuggestions), d.SuggestionHandler.AddSuggestion)
			scoped.PATCH("/suggestions/:sid", middleware.RequireCapability(permission.ViewSuggestions), d.SuggestionHandler.PatchSuggestion)
		}
	}

	if d.GraphQLHandler != nil {
		// POST only, so a cross-origin link cannot run a mutation
		r.POST("/graphql", d.GraphQLHandler.Serve)
	}

	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, serializer.Err(http.StatusMethodNotAllowed, "Method Not Allowed", nil))
	})

	return r
}

// corsConfig allows any origin.
func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	cfg.ExposeHeaders = []string{"X-Trace-Id"}
	return cfg
}
