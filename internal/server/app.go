// Package server assembles and runs the website: configuration, storage,
// services, and the HTTP server with graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ozyalhan/ozyblog/internal/logging"
	"github.com/ozyalhan/ozyblog/internal/server/auth"
	"github.com/ozyalhan/ozyblog/internal/server/config"
	"github.com/ozyalhan/ozyblog/internal/server/contact"
	"github.com/ozyalhan/ozyblog/internal/server/posts"
	"github.com/ozyalhan/ozyblog/internal/server/shared/db"
	"github.com/ozyalhan/ozyblog/internal/server/users"
	"github.com/ozyalhan/ozyblog/internal/server/web"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config       *config.Config
	logger       logging.Logger
	repos        db.RepositoryManager
	userService  *users.Service
	postServices map[posts.Kind]*posts.Service
	contact      *contact.Service
}

func NewApp(cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	rm, err := db.NewPostgresRepositoryManager(cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	hasher := auth.NewPasswordHasher(cfg.Security.BcryptCost)
	us := users.NewService(rm.Users(), hasher, cfg.Session.Secret, cfg.Session.TTL)

	ps := make(map[posts.Kind]*posts.Service, len(posts.Kinds))
	for _, kind := range posts.Kinds {
		ps[kind] = posts.NewService(rm.Posts(kind), kind)
	}

	cs := contact.NewService(contact.NewLogSender(logger))

	return &App{
		config:       cfg,
		logger:       logger,
		repos:        rm,
		userService:  us,
		postServices: ps,
		contact:      cs,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) error {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	gin.SetMode(app.config.Server.Mode)

	router := web.NewRouter(web.RouterConfig{
		Users:         app.userService,
		Posts:         app.postServices,
		Contact:       app.contact,
		Logger:        app.logger,
		SessionSecret: []byte(app.config.Session.Secret),
		CookieName:    app.config.Session.CookieName,
		CookieTTL:     app.config.Session.TTL,
	})

	srv := &http.Server{
		Addr:    app.config.Server.Address,
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		app.logger.Info(ctx, "starting http server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
	}

	app.logger.Info(ctx, "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown error: %w", err)
	}

	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}

	return nil
}
