package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Thilina-Shamika/property-stable-sub000/api/controllers"
	"github.com/Thilina-Shamika/property-stable-sub000/api/middleware"
	"github.com/Thilina-Shamika/property-stable-sub000/internal/auth"
	"github.com/Thilina-Shamika/property-stable-sub000/internal/catalog"
	"github.com/Thilina-Shamika/property-stable-sub000/internal/inquiries"
	"github.com/Thilina-Shamika/property-stable-sub000/pkg/auth/session"
	"github.com/Thilina-Shamika/property-stable-sub000/pkg/config"
	"github.com/Thilina-Shamika/property-stable-sub000/pkg/logger"
	"github.com/Thilina-Shamika/property-stable-sub000/pkg/metrics"
	"github.com/Thilina-Shamika/property-stable-sub000/pkg/redis"
	"github.com/Thilina-Shamika/property-stable-sub000/pkg/storage/disk"
)

// Params carries everything the router wires together.
type Params struct {
	Config   *config.Config
	Logger   *logger.Logger
	Metrics  *metrics.HTTPMetrics
	Registry *prometheus.Registry

	DB       controllers.Pinger
	Redis    *redis.Client
	Store    *disk.Store
	Sessions session.AccessSessionChecker

	AuthService    auth.Service
	InquiryService inquiries.Service

	// Catalog services keyed by URL segment: buy, commercial, offplan.
	Catalogs map[string]catalog.Service
}

func NewRouter(p Params) http.Handler {
	cfg := p.Config
	logg := p.Logger
	maxUploadBytes := int64(cfg.Uploads.MaxUploadMB) << 20

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(p.Metrics),
		middleware.CORS(),
	)

	loginPolicy := middleware.LoginRateLimitPolicy(cfg.AuthRateLimit)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, map[string]controllers.Pinger{
			"database":    p.DB,
			"redis":       p.Redis,
			"media_store": p.Store,
		}))
	})

	if p.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(p.Registry, promhttp.HandlerOpts{}))
	}

	if p.Store != nil {
		fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(p.Store.Root())))
		r.Get("/uploads/*", fileServer.ServeHTTP)
	}

	r.Route("/api/v1", func(r chi.Router) {
		for segment, svc := range p.Catalogs {
			svc := svc
			r.Route("/"+segment, func(r chi.Router) {
				r.Get("/", controllers.PublicListListings(svc, logg))
				r.Get("/{id}", controllers.GetListing(svc, logg))
			})
		}
		r.Post("/inquiries", controllers.SubmitInquiry(p.InquiryService, logg))
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(middleware.AuthRateLimit(loginPolicy, p.Redis, logg)).
				Post("/login", controllers.AuthLogin(p.AuthService, logg))
			r.Post("/refresh", controllers.AuthRefresh(p.AuthService, logg))
			r.With(middleware.Auth(cfg.JWT, p.Sessions, logg)).
				Post("/logout", controllers.AuthLogout(p.AuthService, logg))
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, p.Sessions, logg))

			for segment, svc := range p.Catalogs {
				svc := svc
				r.Route("/"+segment, func(r chi.Router) {
					r.Get("/", controllers.AdminListListings(svc, logg))
					r.Get("/{id}", controllers.GetListing(svc, logg))
					r.Post("/", controllers.CreateListing(svc, maxUploadBytes, logg))
					r.Put("/{id}", controllers.UpdateListing(svc, maxUploadBytes, logg))
					r.Patch("/{id}/status", controllers.UpdateListingStatus(svc, logg))
					r.Delete("/{id}", controllers.DeleteListing(svc, logg))
				})
			}

			r.Get("/inquiries", controllers.ListInquiries(p.InquiryService, logg))
			r.Post("/uploads", controllers.UploadFile(p.Store, maxUploadBytes, logg))
		})
	})

	return r
}
