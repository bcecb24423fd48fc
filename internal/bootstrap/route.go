package bootstrap

import (
	"CivicReportAPI/internal/config"
	"CivicReportAPI/internal/controller"
	"CivicReportAPI/internal/middleware"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

type Route struct {
	cfg                 *config.AppConfig
	chi                 *chi.Mux
	authController      *controller.AuthController
	catalogController   *controller.CatalogController
	mediaController     *controller.MediaController
	reportController    *controller.ReportController
	adminController     *controller.AdminController
	wsController        *controller.WebSocketController
	authMiddleware      *middleware.AuthMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
}

func NewRoute(
	cfg *config.AppConfig,
	chi *chi.Mux,
	authController *controller.AuthController,
	catalogController *controller.CatalogController,
	mediaController *controller.MediaController,
	reportController *controller.ReportController,
	adminController *controller.AdminController,
	wsController *controller.WebSocketController,
	authMiddleware *middleware.AuthMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
) *Route {
	return &Route{
		cfg:                 cfg,
		chi:                 chi,
		authController:      authController,
		catalogController:   catalogController,
		mediaController:     mediaController,
		reportController:    reportController,
		adminController:     adminController,
		wsController:        wsController,
		authMiddleware:      authMiddleware,
		rateLimitMiddleware: rateLimitMiddleware,
	}
}

func (route *Route) Register() {
	submitWindow := time.Duration(route.cfg.SubmitRateWindowSeconds) * time.Second

	route.chi.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Welcome to CivicReportAPI"))
	})

	route.chi.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", route.authController.Register)
		r.Post("/auth/login", route.authController.Login)

		r.Group(func(r chi.Router) {
			r.Use(route.authMiddleware.VerifyToken)

			r.Get("/categories", route.catalogController.GetCategories)
			r.Get("/categories/{categoryID}/subcategories", route.catalogController.GetSubcategories)

			r.With(route.rateLimitMiddleware.Limit("submit_report", route.cfg.SubmitRateLimit, submitWindow)).
				Post("/reports", route.reportController.SubmitReport)
			r.Get("/reports", route.reportController.GetReports)
			r.Get("/reports/{reportID}", route.reportController.GetReport)

			r.With(route.rateLimitMiddleware.Limit("upload_media", route.cfg.SubmitRateLimit, submitWindow)).
				Post("/media/report-images", route.mediaController.UploadReportImage)

			r.Route("/admin", func(r chi.Router) {
				r.Use(route.authMiddleware.RequireAdmin)

				r.Get("/reports", route.adminController.GetReports)
				r.Get("/reports/stats", route.adminController.GetStats)
				r.Get("/officers", route.adminController.GetOfficers)
				r.Patch("/reports/{reportID}/status", route.adminController.AdvanceStatus)
				r.Patch("/reports/{reportID}/officer", route.adminController.AssignOfficer)
				r.Patch("/reports/{reportID}/resolution", route.adminController.AttachResolution)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(route.authMiddleware.VerifyWSToken)
			r.Get("/ws", route.wsController.ServeWS)
		})
	})
}
