package router

import (
	"net/http"

	"dsr-service/internal/infrastructure/auth"
	"dsr-service/internal/interface/httpapi"
	"dsr-service/pkg/metrics"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

// HTTPRouterConfig wires the route table
type HTTPRouterConfig struct {
	Handler      *httpapi.Handler
	Overview     http.Handler
	Issuer       *auth.TokenIssuer
	Metrics      *metrics.Metrics
	Gatherer     prometheus.Gatherer
	LoginLimiter *rate.Limiter
}

// NewHTTPRouter builds the route table. Everything under /api except the
// session endpoints requires a valid access token.
func NewHTTPRouter(cfg HTTPRouterConfig) *mux.Router {
	h := cfg.Handler

	r := mux.NewRouter()
	r.Use(httpapi.Instrument(cfg.Metrics))

	r.Handle("/metrics", promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	}).Methods(http.MethodGet)

	// Overview push; subscribers send {"year": "..."} after connecting
	r.Handle("/ws", cfg.Overview)

	session := r.PathPrefix("/api").Subrouter()
	login := session.Path("/login").Subrouter()
	login.Use(httpapi.RateLimit(cfg.LoginLimiter))
	login.Methods(http.MethodPost).HandlerFunc(h.Login)
	session.HandleFunc("/refresh-token", h.RefreshToken).Methods(http.MethodPost)
	session.HandleFunc("/logout", h.Logout).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()
	api.Use(httpapi.AuthenticateJWT(cfg.Issuer))

	api.HandleFunc("/me", h.Me).Methods(http.MethodGet)

	api.HandleFunc("/job-lists/{list}", h.ListJobs).Methods(http.MethodGet)
	api.HandleFunc("/jobs/update-detailed-status", h.RefreshDetailedStatus).Methods(http.MethodPost)
	api.HandleFunc("/jobs/{year}/{job_no}", h.GetJob).Methods(http.MethodGet)
	api.HandleFunc("/jobs/{year}/{job_no}", h.UpdateJob).Methods(http.MethodPatch)
	api.HandleFunc("/report/{year}/{status}", h.DownloadReport).Methods(http.MethodGet)

	api.HandleFunc("/importers", h.ListImporters).Methods(http.MethodGet)
	api.HandleFunc("/icd-codes", h.ListIcdCodes).Methods(http.MethodGet)

	api.HandleFunc("/pr-data", h.ListPrData).Methods(http.MethodGet)
	api.HandleFunc("/pr-data/{pr_no}/containers/{container_number}/lr-completed", h.MarkLrCompleted).Methods(http.MethodPatch)

	return r
}
