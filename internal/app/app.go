package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/ecovoice-backend/internal/adapter/blobstore"
	"github.com/heartmarshall/ecovoice-backend/internal/adapter/download"
	"github.com/heartmarshall/ecovoice-backend/internal/adapter/migrator"
	"github.com/heartmarshall/ecovoice-backend/internal/blobaccess"
	"github.com/heartmarshall/ecovoice-backend/internal/config"
	"github.com/heartmarshall/ecovoice-backend/internal/service/activity"
	"github.com/heartmarshall/ecovoice-backend/internal/service/analysis"
	"github.com/heartmarshall/ecovoice-backend/internal/service/normalize"
	"github.com/heartmarshall/ecovoice-backend/internal/service/profile"
	"github.com/heartmarshall/ecovoice-backend/internal/service/reputation"
	"github.com/heartmarshall/ecovoice-backend/internal/service/scoring"
	"github.com/heartmarshall/ecovoice-backend/internal/service/upload"
	"github.com/heartmarshall/ecovoice-backend/internal/transport/middleware"
	"github.com/heartmarshall/ecovoice-backend/internal/transport/rest"
)

// App holds every long-lived dependency. Build it with New and release it
// with Close.
type App struct {
	Config *config.Config
	Log    *slog.Logger

	Analysis *analysis.Service
	Profiles *profile.Service
	Uploads  *upload.Service

	issuer  *blobaccess.Issuer
	blobs   *blobstore.Store
	storage *storage
}

// New opens storage and builds the service graph. It does not migrate.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	st, err := openStorage(ctx, cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}

	blobs, err := blobstore.New(cfg.Blob.RootDir, logger)
	if err != nil {
		st.close()
		return nil, err
	}

	issuer := blobaccess.NewIssuer(cfg.Signing.Secret, cfg.Signing.Issuer, cfg.Signing.ReadTTL, cfg.Blob.PublicBaseURL)
	fetcher := download.NewFetcher(logger, cfg.Speech.Timeout, cfg.Blob.MaxUploadBytes).WithUserAgent(UserAgent())

	mdl, err := newModels(ctx, cfg, fetcher, logger)
	if err != nil {
		st.close()
		return nil, fmt.Errorf("model clients: %w", err)
	}
	llm, err := mdl.completer(cfg.Scoring.Provider)
	if err != nil {
		st.close()
		return nil, err
	}
	vision, err := mdl.describer(cfg.Vision.Provider)
	if err != nil {
		st.close()
		return nil, err
	}

	activities := activity.NewService(logger, st.activity)
	ledger := reputation.NewService(logger, st.reputation, cfg.Ledger)

	a := &App{
		Config: cfg,
		Log:    logger,
		Analysis: analysis.NewService(logger,
			normalize.TextPassthrough{},
			normalize.NewImageCaptioner(logger, issuer, vision, cfg.Vision),
			normalize.NewSpeechTranscriber(logger, issuer, fetcher, mdl.gemini, cfg.Speech),
			scoring.NewService(logger, llm, cfg.Scoring),
			activities,
			ledger,
		),
		Profiles: profile.NewService(logger, ledger, activities),
		Uploads:  upload.NewService(logger, blobs, cfg.Blob.MaxUploadBytes),
		issuer:   issuer,
		blobs:    blobs,
		storage:  st,
	}
	return a, nil
}

// Close releases database handles.
func (a *App) Close() {
	a.storage.close()
}

// Driver reports the active database driver.
func (a *App) Driver() string {
	return a.storage.driver
}

// Migrate applies pending migrations and returns how many ran.
func (a *App) Migrate(ctx context.Context) (int, error) {
	return a.storage.migrator.Up(ctx)
}

// MigrationStatus lists every known migration.
func (a *App) MigrationStatus(ctx context.Context) ([]migrator.Status, error) {
	return a.storage.migrator.Status(ctx)
}

// Handler builds the HTTP handler with the full middleware chain. The
// returned stop func ends the rate limiter's cleanup goroutine.
func (a *App) Handler() (http.Handler, func()) {
	cfg := a.Config

	var rm rest.RouteMiddleware
	stop := func() {}
	if cfg.RateLimit.Enabled {
		rl := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		rm.Analyze = rl.Limit("analyze", cfg.RateLimit.AnalyzePerMin)
		rm.Upload = rl.Limit("upload", cfg.RateLimit.UploadPerMin)
		stop = rl.Stop
	}

	mux := rest.NewRouter(rest.Handlers{
		Analyze: rest.NewAnalyzeHandler(a.Analysis, a.Log),
		Profile: rest.NewProfileHandler(a.Profiles, a.Log),
		Upload:  rest.NewUploadHandler(a.Uploads, cfg.Blob.MaxUploadBytes, a.Log),
		Blobs:   rest.NewBlobHandler(a.issuer, a.blobs, a.Log),
		Health: rest.NewHealthHandler(BuildVersion(),
			rest.Probe{Name: "database", Check: a.storage.ping},
			rest.Probe{Name: "blobstore", Check: func(context.Context) error {
				_, err := os.Stat(cfg.Blob.RootDir)
				return err
			}},
		),
	}, rm)

	chain := middleware.Chain(
		middleware.Recovery(a.Log),
		middleware.RequestID(),
		middleware.Logger(a.Log),
		middleware.CORS(cfg.CORS),
	)
	return chain(mux), stop
}

// Serve runs the HTTP server until ctx is canceled, then shuts it down
// within the configured timeout.
func (a *App) Serve(ctx context.Context) error {
	cfg := a.Config.Server
	handler, stop := a.Handler()
	defer stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(a.Log.Handler(), slog.LevelWarn),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Log.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.Log.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// Run is the server entry point: it loads configuration, builds the App,
// applies migrations when enabled and serves until ctx is canceled.
func Run(ctx context.Context, configPath string) error {
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("db_driver", cfg.Database.Driver),
		slog.String("scoring_provider", cfg.Scoring.Provider),
		slog.String("vision_provider", cfg.Vision.Provider),
	)

	a, err := New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	if cfg.Database.AutoMigrate {
		n, err := a.Migrate(ctx)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied", slog.Int("count", n))
	}

	return a.Serve(ctx)
}
