package httpapi

import (
	"dsr-service/internal/infrastructure/auth"
	"dsr-service/internal/usecase"
	"dsr-service/pkg/logger"
	"dsr-service/pkg/metrics"

	"github.com/go-playground/validator/v10"
)

// Services groups the use cases served over HTTP
type Services struct {
	Lists     *usecase.JobListService
	Jobs      *usecase.JobService
	Refresher *usecase.StatusRefresher
	Reports   *usecase.ReportExporter
	Directory *usecase.DirectoryService
	Transport *usecase.TransportService
	Auth      *usecase.AuthService
}

// Handler serves the REST API
type Handler struct {
	services Services
	issuer   *auth.TokenIssuer
	cookies  auth.CookieWriter
	validate *validator.Validate
	metrics  *metrics.Metrics
	logger   logger.Logger
}

// NewHandler creates a new REST handler
func NewHandler(services Services, issuer *auth.TokenIssuer, cookies auth.CookieWriter, m *metrics.Metrics, logger logger.Logger) *Handler {
	return &Handler{
		services: services,
		issuer:   issuer,
		cookies:  cookies,
		validate: validator.New(),
		metrics:  m,
		logger:   logger,
	}
}
