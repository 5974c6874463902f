package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Arman11r/Catalog-web/api/controllers"
	"github.com/Arman11r/Catalog-web/api/middleware"
	"github.com/Arman11r/Catalog-web/pkg/config"
	"github.com/Arman11r/Catalog-web/pkg/logger"
)

// Deps carries everything the router wires into handlers. Nil optional
// members (Limiter, Cache, Gatherer) disable the corresponding surface.
type Deps struct {
	Contact  controllers.ContactService
	Proposal controllers.ProposalService
	PDF      controllers.PDFService

	DB       controllers.Pinger
	Cache    controllers.Pinger
	Limiter  middleware.RateLimiterStore
	Gatherer prometheus.Gatherer
}

func NewRouter(cfg *config.Config, logg *logger.Logger, deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	contactPolicy := middleware.NewContactRateLimitPolicy(cfg.ContactRateLimit)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.DB, deps.Cache))
	})

	if deps.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.With(middleware.ContactRateLimit(contactPolicy, deps.Limiter, logg)).
			Post("/contact", controllers.Contact(deps.Contact, logg))
		r.Post("/proposal", controllers.Proposal(deps.Proposal, logg))
		r.Post("/generate-pdf", controllers.GeneratePDF(deps.PDF, logg))
	})

	return r
}
