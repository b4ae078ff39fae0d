package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ardanlabs/conf/v3"
	"github.com/irsalhamdi/video-catalog/api"
	"github.com/irsalhamdi/video-catalog/config"
	"github.com/irsalhamdi/video-catalog/core/video"
	"github.com/irsalhamdi/video-catalog/database"
	"github.com/irsalhamdi/video-catalog/rate"
	"github.com/sirupsen/logrus"
)

var build = "develop"

func main() {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	if err := Run(log); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func Run(logger *logrus.Logger) error {
	cfg := struct {
		conf.Version
		config.Config
	}{
		Version: conf.Version{
			Build: build,
			Desc:  "video catalog api",
		},
	}

	help, err := conf.Parse(config.Prefix, &cfg)
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			return nil
		}
		return fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Web.Debug {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		logger.Warn("debug mode is on, do not use it in production")
	} else {
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	logger.Infof("starting server, build[%s]", build)
	defer logger.Info("shutdown complete")

	if out, err := conf.String(&cfg); err == nil {
		logger.Debugf("config:\n%s", out)
	}

	lw := logger.Writer()
	defer lw.Close()
	errLog := log.New(lw, "", 0)

	store, closeStore, err := openStore(cfg.DB, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	limiter := rate.NewLimiter(cfg.Rate.Burst, cfg.Rate.Expiry, rate.Every(cfg.Rate.Interval))
	defer limiter.Stop()

	mux := api.APIMux(api.APIConfig{
		CorsOrigin: cfg.Cors.Origin,
		Log:        logger,
		Store:      store,
		Limiter:    limiter,
	})

	api := http.Server{
		Handler:      mux,
		Addr:         cfg.Web.Address,
		ReadTimeout:  cfg.Web.ReadTimeout,
		WriteTimeout: cfg.Web.WriteTimeout,
		IdleTimeout:  cfg.Web.IdleTimeout,
		ErrorLog:     errLog,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Infof("starting api router at %s", api.Addr)
		serverErrors <- api.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Infof("shutting down: signal %s", sig)

		ctx, cancel := context.WithTimeout(context.Background(), cfg.Web.ShutdownTimeout)
		defer cancel()

		if err := api.Shutdown(ctx); err != nil {
			api.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}
	return nil
}

func openStore(cfg config.DB, logger logrus.FieldLogger) (video.Storer, func(), error) {
	if cfg.Driver == database.DriverMemory {
		logger.Warn("using the in-memory store, videos are lost on restart")
		return video.NewMemoryStore(), func() {}, nil
	}

	db, err := database.Open(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open db connection: %w", err)
	}
	closeDB := func() {
		if err := db.Close(); err != nil {
			logger.WithError(err).Error("closing db")
		}
	}

	if cfg.AutoMigrate {
		logger.Info("migrating database")
		if err := database.Migrate(db); err != nil {
			closeDB()
			return nil, nil, fmt.Errorf("failed to migrate db: %w", err)
		}
	}

	return video.NewSQLStore(db), closeDB, nil
}
