package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"

	"github.com/sbilibin2017/inventory-tracker/internal/handlers"
	"github.com/sbilibin2017/inventory-tracker/internal/jwt"
	"github.com/sbilibin2017/inventory-tracker/internal/logger"
	"github.com/sbilibin2017/inventory-tracker/internal/middlewares"
	"github.com/sbilibin2017/inventory-tracker/internal/repositories"
	"github.com/sbilibin2017/inventory-tracker/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/inventory-tracker/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title inventory-tracker API
// @version 1.0.0
// @description Service for tracking products and their rental (stock movement) records
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel, storageDriver,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		jwtSecret, jwtExp, authEnforce,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel, storageDriver,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		jwtSecret, jwtExp, authEnforce,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, storage, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel, storageDriver string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	jwtSecretKey string, jwtExpSecond int, authEnforce bool,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// Storage config: "postgres" or "memory"
	storageDriver = getEnv("STORAGE_DRIVER", "postgres")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "inventory")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// JWT config. With AUTH_ENFORCE unset every endpoint stays reachable
	// without a token.
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "86400")); err != nil {
		return
	}
	authEnforce = getEnv("AUTH_ENFORCE", "false") == "true"

	return
}

// run initializes the logger, the selected store, and the HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel, storageDriver string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	jwtSecretKey string, jwtExpSecond int, authEnforce bool,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Initialize JWT service
	tokens := jwt.New(jwtSecretKey, time.Duration(jwtExpSecond)*time.Second)

	// Select storage and initialize repositories
	var (
		userReader    services.UserReader
		userWriter    services.UserWriter
		productReader services.ProductReader
		productWriter services.ProductWriter
		rentalReader  services.RentalReader
		rentalWriter  services.RentalWriter
	)

	switch storageDriver {
	case "memory":
		logger.Log.Info("Using in-memory storage")
		store := repositories.NewMemoryStore()
		userRepo := repositories.NewMemoryUserRepository(store)
		productRepo := repositories.NewMemoryProductRepository(store)
		rentalRepo := repositories.NewMemoryRentalRepository(store)
		userReader, userWriter = userRepo, userRepo
		productReader, productWriter = productRepo, productRepo
		rentalReader, rentalWriter = rentalRepo, rentalRepo

	case "postgres":
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			pgUser, pgPassword, pgHost, pgPort, pgDB)
		logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", pgHost, pgPort, pgDB)

		db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
		if err != nil {
			logger.Log.Error("PostgreSQL connection error:", err)
			return err
		}
		defer db.Close()
		db.SetMaxOpenConns(pgMaxOpenConns)
		db.SetMaxIdleConns(pgMaxIdleConns)
		if err := db.PingContext(ctx); err != nil {
			logger.Log.Error("PostgreSQL ping failed:", err)
			return err
		}
		if err := repositories.Bootstrap(ctx, db); err != nil {
			return err
		}

		userReader = repositories.NewUserReadRepository(db)
		userWriter = repositories.NewUserWriteRepository(db)
		productReader = repositories.NewProductReadRepository(db)
		productWriter = repositories.NewProductWriteRepository(db)
		rentalReader = repositories.NewRentalReadRepository(db)
		rentalWriter = repositories.NewRentalWriteRepository(db)

	default:
		return fmt.Errorf("unknown storage driver %q", storageDriver)
	}

	// Initialize services
	authService := services.NewAuthService(userReader, userWriter, tokens)
	productService := services.NewProductService(productReader, productWriter)
	rentalService := services.NewRentalService(rentalReader, rentalWriter)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Post("/register", handlers.NewRegisterHandler(authService))
	r.Post("/login", handlers.NewLoginHandler(authService))

	// Catalog and ledger routes; token enforcement is opt-in
	r.Group(func(r chi.Router) {
		if authEnforce {
			r.Use(middlewares.AuthMiddleware(tokens))
		}
		r.Get("/products", handlers.NewProductListHandler(productService))
		r.Post("/products", handlers.NewProductCreateHandler(productService))
		r.Put("/products/{product_sn}", handlers.NewProductUpdateHandler(productService))
		r.Delete("/products/{product_sn}", handlers.NewProductDeleteHandler(productService))

		r.Get("/rentals/{product_sn}", handlers.NewRentalListHandler(rentalService))
		r.Post("/rentals", handlers.NewRentalCreateHandler(rentalService))
		r.Put("/rentals/{product_sn}/{start_date}", handlers.NewRentalUpdateHandler(rentalService))
		r.Delete("/rentals/{product_sn}/{start_date}", handlers.NewRentalDeleteHandler(rentalService))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
