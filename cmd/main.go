package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wishlisthub/internal/handlers"
	"wishlisthub/internal/logger"
	"wishlisthub/internal/repository"
	"wishlisthub/internal/repository/db"
	"wishlisthub/internal/server"
	"wishlisthub/internal/service"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// load .env + configs/config.yml + env overrides
	cfgErr := loadConfig()

	log := logger.Get(viper.GetString("log.level"))
	if cfgErr != nil {
		log.Fatalw("error reading config", "err", cfgErr)
	}

	// open store; nil means persistence is disabled
	dbConn, err := openStore(log)
	if err != nil {
		log.Fatalw("failed to init store", "err", err)
	}
	if dbConn != nil {
		defer func() {
			if cerr := dbConn.Close(); cerr != nil {
				log.Errorw("failed to close store", "err", cerr)
			}
		}()
	}

	// wire dependencies
	repos := repository.NewRepository(dbConn)
	services := service.NewService(repos, viper.GetString("jwt.secret"))
	apiHandler := handlers.NewHandler(services, log)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

// loadConfig reads configs/config.yml and binds environment overrides.
// A missing config file is fine; env vars and defaults carry the service.
func loadConfig() error {
	// .env for local development, ignored when absent
	_ = godotenv.Load()

	viper.SetDefault("port", "8080")
	viper.SetDefault("log.level", logger.InfoLevel)
	viper.SetDefault("db.driver", db.DriverPostgres)
	viper.SetDefault("db.path", "wishlist.db")

	_ = viper.BindEnv("port", "PORT")
	_ = viper.BindEnv("jwt.secret", "JWT_SECRET")
	_ = viper.BindEnv("db.url", "DATABASE_URL")

	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
	}
	return nil
}

// openStore connects to the configured store. With the postgres driver and
// no DATABASE_URL it returns nil: reads then serve empty results and writes
// fail, instead of refusing to start.
func openStore(log *logger.Logger) (*sql.DB, error) {
	driver := viper.GetString("db.driver")
	switch driver {
	case db.DriverPostgres:
		url := viper.GetString("db.url")
		if url == "" {
			log.Warnw("DATABASE_URL not set; persistence disabled")
			return nil, nil
		}
		return db.Open(db.DriverPostgres, url)
	case db.DriverSQLite:
		return db.Open(db.DriverSQLite, viper.GetString("db.path"))
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		log.Infow("starting http server", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
