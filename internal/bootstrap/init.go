package bootstrap

import (
	"CivicReportAPI/ent"
	"CivicReportAPI/internal/adapter"
	"CivicReportAPI/internal/config"
	"CivicReportAPI/internal/controller"
	"CivicReportAPI/internal/middleware"
	"CivicReportAPI/internal/repository"
	"CivicReportAPI/internal/service"
	"CivicReportAPI/internal/websocket"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// Init wires adapters, repositories, services, and controllers together and
// returns the fully routed mux. redisAdapter may be nil; rate limiting then
// falls back to the in-memory limiter.
func Init(appConfig *config.AppConfig, client *ent.Client, validator *validator.Validate, s3Client *s3.Client, redisAdapter *adapter.RedisAdapter, hub *websocket.Hub) *chi.Mux {
	storageAdapter := adapter.NewStorageAdapter(appConfig, s3Client)
	emailAdapter := adapter.NewEmailAdapter(appConfig)

	repo := repository.NewRepository(client, redisAdapter)

	authService := service.NewAuthService(repo, appConfig, validator)
	catalogService := service.NewCatalogService(repo, validator)
	officerService := service.NewOfficerService(repo)
	mediaService := service.NewMediaService(repo, appConfig, validator, storageAdapter)
	reportService := service.NewReportService(client, repo, appConfig, validator, hub, emailAdapter)
	queryService := service.NewQueryService(repo, appConfig, validator)

	authController := controller.NewAuthController(authService)
	catalogController := controller.NewCatalogController(catalogService)
	mediaController := controller.NewMediaController(mediaService)
	reportController := controller.NewReportController(reportService, queryService)
	adminController := controller.NewAdminController(reportService, queryService, officerService)
	wsController := controller.NewWebSocketController(hub)

	authMiddleware := middleware.NewAuthMiddleware(authService)

	var rateLimitRepo *repository.RateLimitRepository
	var localLimiter *config.RateLimiter
	if redisAdapter != nil {
		rateLimitRepo = repo.RateLimit
	} else {
		localLimiter = config.NewRateLimiter(appConfig)
	}
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(rateLimitRepo, localLimiter, appConfig)

	chiMux := config.NewChi(appConfig)
	route := NewRoute(appConfig, chiMux, authController, catalogController, mediaController, reportController, adminController, wsController, authMiddleware, rateLimitMiddleware)
	route.Register()

	return chiMux
}
