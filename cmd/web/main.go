package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/gorilla/csrf"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/appointme-client/internal/apiclient"
	"github.com/BruksfildServices01/appointme-client/internal/audit"
	"github.com/BruksfildServices01/appointme-client/internal/config"
	dbpkg "github.com/BruksfildServices01/appointme-client/internal/db"
	"github.com/BruksfildServices01/appointme-client/internal/handlers"
	infraRepo "github.com/BruksfildServices01/appointme-client/internal/infra/repository"
	"github.com/BruksfildServices01/appointme-client/internal/logger"
	"github.com/BruksfildServices01/appointme-client/internal/routes"
	"github.com/BruksfildServices01/appointme-client/internal/session"
	"github.com/BruksfildServices01/appointme-client/internal/tracing"
	"github.com/BruksfildServices01/appointme-client/internal/validators"
	"github.com/BruksfildServices01/appointme-client/internal/web"
)

const sessionPurgeInterval = 15 * time.Minute

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env, cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	shutdownTracing, err := tracing.Setup(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn("tracing shutdown failed", zap.Error(err))
		}
	}()

	if err := validators.Register(); err != nil {
		return err
	}

	// ======================================================
	// 🗄️ OPTIONAL STORAGE
	// ======================================================
	var db *gorm.DB
	if cfg.HasDatabase() {
		db, err = dbpkg.NewDB(cfg)
		if err != nil {
			return err
		}
	}

	var (
		sink     audit.Sink = audit.NewLogSink(log)
		activity handlers.ActivityReader
	)
	if db != nil {
		activityRepo := infraRepo.NewActivityLogGormRepository(db)
		sink = audit.NewDBSink(activityRepo)
		activity = activityRepo
	}
	auditDispatcher := audit.NewDispatcher(sink, log)
	defer auditDispatcher.Close()

	// ======================================================
	// 🔐 SESSIONS
	// ======================================================
	api := apiclient.New(cfg.APIBaseURL, cfg.APITimeout, log)

	store, err := sessionStore(ctx, cfg, db, log)
	if err != nil {
		return err
	}
	sessions := session.NewManager(store, session.NewAPIBackend(api), log)

	// ======================================================
	// 🌐 HTTP
	// ======================================================
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	tmpl, err := web.Templates(web.Options{FileURL: api.FileURL})
	if err != nil {
		return err
	}
	r.SetHTMLTemplate(tmpl)

	routes.RegisterRoutes(r, routes.Deps{
		Config:   cfg,
		Log:      log,
		API:      api,
		Sessions: sessions,
		Audit:    auditDispatcher,
		Activity: activity,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           otelhttp.NewHandler(protect(cfg, log, r), tracing.ServiceName),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server running", zap.String("addr", cfg.Addr()), zap.String("api", cfg.APIBaseURL))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(sctx)
}

// sessionStore picks where the session record lives.
func sessionStore(ctx context.Context, cfg *config.Config, db *gorm.DB, log *zap.Logger) (session.Store, error) {
	opts := session.CookieOptions{TTL: cfg.SessionTTL, Secure: cfg.SecureCookies}

	switch cfg.SessionStore {
	case config.SessionStoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, err
		}
		log.Info("sessions stored in redis", zap.String("addr", cfg.RedisAddr))
		return session.NewRedisStore(client, opts), nil

	case config.SessionStorePostgres:
		if db == nil {
			return nil, errors.New("SESSION_STORE=postgres requires DATABASE_URL")
		}
		repo := infraRepo.NewWebSessionGormRepository(db)
		go purgeSessions(ctx, repo, log)
		log.Info("sessions stored in postgres")
		return session.NewDBStore(repo, opts), nil
	}

	return session.NewCookieStore(cfg.SessionSecret, opts), nil
}

func purgeSessions(ctx context.Context, repo *infraRepo.WebSessionGormRepository, log *zap.Logger) {
	ticker := time.NewTicker(sessionPurgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := repo.PurgeExpired(ctx)
			if err != nil {
				log.Warn("session purge failed", zap.Error(err))
				continue
			}
			if n > 0 {
				log.Debug("expired sessions purged", zap.Int64("count", n))
			}
		}
	}
}

// protect adds CSRF checks to every unsafe request. Without secure
// cookies the app is served over plain HTTP and the Referer check of
// HTTPS requests must be skipped.
func protect(cfg *config.Config, log *zap.Logger, next http.Handler) http.Handler {
	h := csrf.Protect(
		[]byte(cfg.CSRFKey),
		csrf.Secure(cfg.SecureCookies),
		csrf.Path("/"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.FieldName("csrf_token"),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.Info("csrf rejected", zap.String("path", r.URL.Path), zap.Error(csrf.FailureReason(r)))
			http.Error(w, "Your form expired. Please go back, reload the page and try again.", http.StatusForbidden)
		})),
	)(next)

	if cfg.SecureCookies {
		return h
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
	})
}
