// @title           linkhub API
// @version         1.0
// @description     Curated, categorized links with an admin-gated write API.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/uptrace/bun"

	_ "linkhub/docs"
	"linkhub/internal/cache"
	"linkhub/internal/config"
	"linkhub/internal/handlers"
	"linkhub/internal/logger"
	"linkhub/internal/repository"
	"linkhub/internal/repository/db"
	"linkhub/internal/server"
	"linkhub/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:          "linkhub",
		Short:        "Curated link directory with an admin API",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default configs/config.yml)")

	root.AddCommand(
		newServeCmd(&cfgFile),
		newMigrateCmd(&cfgFile),
		newUserCmd(&cfgFile),
	)
	return root
}

func newServeCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*cfgFile)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

func newMigrateCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the database schema if missing",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*cfgFile)
			if err != nil {
				return err
			}
			log := logger.Get(cfg.Log.Level)
			bdb, err := openDB(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer closeDB(bdb, log)
			fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
			return nil
		},
	}
}

func newUserCmd(cfgFile *string) *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage accounts",
	}

	var (
		username string
		password string
		isAdmin  bool
	)
	create := &cobra.Command{
		Use:   "create",
		Short: "Provision an account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*cfgFile)
			if err != nil {
				return err
			}
			log := logger.Get(cfg.Log.Level)
			bdb, err := openDB(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer closeDB(bdb, log)

			repos := repository.NewRepository(bdb)
			auth := service.NewAuthService(repos.Auth, nil, log)
			u, err := auth.CreateUser(cmd.Context(), username, password, isAdmin)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created user %q (id=%d, admin=%t)\n", u.Username, u.ID, u.IsAdmin)
			return nil
		},
	}
	create.Flags().StringVar(&username, "username", "", "account name")
	create.Flags().StringVar(&password, "password", "", "initial password")
	create.Flags().BoolVar(&isAdmin, "admin", false, "grant admin rights")
	_ = create.MarkFlagRequired("username")
	_ = create.MarkFlagRequired("password")

	userCmd.AddCommand(create)
	return userCmd
}

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config: %w", err)
	}
	return cfg, nil
}

// openDB connects with the configured driver and ensures the schema exists.
func openDB(ctx context.Context, cfg *config.Config, log *logger.Logger) (*bun.DB, error) {
	bdb, err := db.Open(ctx, cfg.DB.Driver, cfg.DB.DSN, cfg.DB.MaxOpenConns)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.DB.Driver, err)
	}
	if err := db.EnsureSchema(ctx, bdb); err != nil {
		closeDB(bdb, log)
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	log.Infow("db_ready", "driver", cfg.DB.Driver)
	return bdb, nil
}

func closeDB(bdb *bun.DB, log *logger.Logger) {
	if err := bdb.Close(); err != nil {
		log.Errorw("db_close_failed", "err", err)
	}
}

// openCache returns a Redis-backed listing cache when redis.addr is set.
func openCache(ctx context.Context, cfg *config.Config, log *logger.Logger) (cache.ListingCache, func()) {
	if cfg.Redis.Addr == "" {
		log.Infow("listing_cache_disabled")
		return cache.NopCache{}, func() {}
	}
	rc := cache.NewRedisCache(cache.RedisOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TTL:      cfg.Redis.TTL,
	}, log)
	if err := rc.Ping(ctx); err != nil {
		log.Warnw("redis_unreachable", "addr", cfg.Redis.Addr, "err", err)
	}
	return rc, func() {
		if err := rc.Close(); err != nil {
			log.Warnw("redis_close_failed", "err", err)
		}
	}
}

func serve(parent context.Context, cfg *config.Config) error {
	log := logger.Get(cfg.Log.Level)
	defer func() { _ = log.Sync() }()

	bdb, err := openDB(parent, cfg, log)
	if err != nil {
		return err
	}
	defer closeDB(bdb, log)

	listing, closeCache := openCache(parent, cfg, log)
	defer closeCache()

	// wire dependencies
	repos := repository.NewRepository(bdb)
	tokens := service.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	services := service.NewService(repos, tokens, listing, log)
	apiHandler := handlers.NewHandler(services, log)

	// context for background goroutines
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	go services.CacheWarmer.Run(ctx, cfg.Redis.WarmInterval)

	srv := server.New(server.Timeouts{
		ReadHeader: cfg.HTTP.ReadHeaderTimeout,
		Write:      cfg.HTTP.WriteTimeout,
		Idle:       cfg.HTTP.IdleTimeout,
	})
	errCh := runHTTPServer(srv, cfg.Port, apiHandler, log)

	return waitForShutdown(ctx, cancel, srv, errCh, log)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		log.Infow("http_listening", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	return errCh
}

// waitForShutdown blocks until a termination signal or a server failure,
// then drains in-flight requests.
func waitForShutdown(ctx context.Context, cancel context.CancelFunc, srv *server.Server, errCh <-chan error, log *logger.Logger) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	var runErr error
	select {
	case sig := <-quit:
		log.Infow("shutting_down", "signal", sig.String())
	case err, ok := <-errCh:
		if ok && err != nil {
			log.Errorw("http_server_failed", "err", err)
			runErr = fmt.Errorf("error starting server: %w", err)
		}
	case <-ctx.Done():
		log.Infow("shutting_down", "reason", ctx.Err())
	}

	// stop background goroutines
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("server_forced_shutdown", "err", err)
		if runErr == nil {
			runErr = err
		}
	}
	return runErr
}
