package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/franciscosanchezn/edu-match/docs" // Import generated docs
	"github.com/franciscosanchezn/edu-match/internal/config"
	"github.com/franciscosanchezn/edu-match/internal/database"
	"github.com/franciscosanchezn/edu-match/internal/logging"
	"github.com/franciscosanchezn/edu-match/internal/server"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// @title EduMatch API
// @version 1.0
// @description EduMatch platform web application
// @host localhost:8080
// @BasePath /
func main() {
	// Start-up logs are JSON before the configured level and sinks apply
	log.SetFormatter(&log.JSONFormatter{})

	// Load environment variables
	loadDotenvFile()

	// Load configuration
	configuration := loadConfig()

	// Initialize logger; config and database log through the same standard logger
	logCloser := setUpLogger(configuration)
	defer logCloser.Close()

	// Initialize database connection and create tables
	db := setupDatabase(configuration)
	defer database.Close(db)

	router, err := server.NewRouter(server.Dependencies{
		DB:          db,
		Logger:      log.StandardLogger(),
		Environment: configuration.Environment,
	})
	checkPanicErr(err)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%v:%d", configuration.Host, configuration.Port),
		Handler: router,
	}

	go func() {
		log.Infof("Starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Server stopped unexpectedly")
		}
	}()

	waitForShutdown(srv)
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger configures the standard logger from the loaded configuration
func setUpLogger(conf *config.Config) io.Closer {
	return logging.Setup(log.StandardLogger(), logging.Options{
		Environment: conf.Environment,
		Level:       conf.LogLevel,
		File:        conf.LogFile,
	})
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase opens the configured database and creates any missing tables
func setupDatabase(conf *config.Config) *gorm.DB {
	db, err := database.InitDatabase(conf.Database())
	checkPanicErr(err)

	checkPanicErr(database.CreateTables(db))
	return db
}

// waitForShutdown blocks until SIGINT or SIGTERM, then drains in-flight requests
func waitForShutdown(srv *http.Server) {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	<-interrupt

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}
}
