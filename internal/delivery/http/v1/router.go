package v1

import (
	"net/http"

	"cavaltron-backend/config"
	"cavaltron-backend/internal/delivery/http/middleware"
	"cavaltron-backend/internal/delivery/http/response"
	"cavaltron-backend/internal/domain"
	"cavaltron-backend/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	ContentUC domain.ContentUsecase
	HealthUC  usecase.HealthUsecase
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.CORSAllowedOrigins)) // CORS must be first!
	r.Use(middleware.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware(deps.Config.IsProduction()))
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.GlobalRateLimitConfig(deps.Config)))

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "Route not found", nil)
	})

	v1 := r.Group("/v1")

	v1.GET("/health", healthHandler(deps.HealthUC))

	// Public routes
	NewContactHandler(v1, deps.ContactUC, middleware.RateLimitMiddleware(middleware.ContactRateLimitConfig(deps.Config)))
	NewContentHandler(v1, deps.ContentUC)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// Health godoc
// @Summary      Health check
// @Description  Reports the status of the database, Redis and the email provider
// @Tags         health
// @Produce      json
// @Success      200  {object}  response.Response{data=map[string]string}
// @Router       /health [get]
func healthHandler(uc usecase.HealthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", uc.Check(c.Request.Context()))
	}
}
