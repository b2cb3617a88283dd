package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvperiodic/component"
	"github.com/katalvlaran/lvperiodic/metrics"
	"github.com/katalvlaran/lvperiodic/periodicity"
)

// maxBody caps request documents.
const maxBody = 4 << 20

// Deps are the collaborators of the service. Zero values are usable: a
// no-op logger, no metrics, the default gatherer and no result cache.
type Deps struct {
	Logger    *zap.Logger
	Metrics   *metrics.Collector
	Gatherer  prometheus.Gatherer
	Cache     component.ResultCache
	Algorithm periodicity.Algorithm
}

type server struct {
	logger    *zap.Logger
	metrics   *metrics.Collector
	cache     component.ResultCache
	algorithm periodicity.Algorithm
}

// NewRouter wires the routes and middleware.
func NewRouter(deps Deps) http.Handler {
	s := &server{
		logger:    deps.Logger,
		metrics:   deps.Metrics,
		cache:     deps.Cache,
		algorithm: deps.Algorithm,
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.algorithm == "" {
		s.algorithm = periodicity.DefaultAlgorithm
	}
	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(requestLogger(s.logger))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.Route("/v1", func(r chi.Router) {
		r.Post("/periodicity", s.periodicity)
		r.Post("/centered", s.centered)
		r.Post("/supergraph", s.supergraph)
	})

	return r
}
