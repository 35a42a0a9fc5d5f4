package rest

import (
	"net/http"

	"github.com/heartmarshall/ecovoice-backend/internal/transport/middleware"
)

// Handlers groups every HTTP handler the server exposes.
type Handlers struct {
	Analyze *AnalyzeHandler
	Profile *ProfileHandler
	Upload  *UploadHandler
	Blobs   *BlobHandler
	Health  *HealthHandler
}

// RouteMiddleware is applied around single routes. Nil entries are skipped.
type RouteMiddleware struct {
	Analyze middleware.Middleware
	Upload  middleware.Middleware
}

// NewRouter registers all routes. Global middleware such as recovery and
// access logging is applied by the caller around the returned handler.
func NewRouter(h Handlers, rm RouteMiddleware) *http.ServeMux {
	mux := http.NewServeMux()

	mux.Handle("POST /api/analyze", middleware.Chain(rm.Analyze)(http.HandlerFunc(h.Analyze.Analyze)))
	mux.Handle("POST /api/upload", middleware.Chain(rm.Upload)(http.HandlerFunc(h.Upload.Upload)))
	mux.HandleFunc("GET /api/users/{userId}", h.Profile.Get)
	mux.HandleFunc("GET /blobs/{container}/{key}", h.Blobs.Get)

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	return mux
}
