package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"

	createBookingHandler "github.com/m04kA/SMC-LaundryService/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/m04kA/SMC-LaundryService/internal/api/handlers/delete_booking"
	findBookingsByPhoneHandler "github.com/m04kA/SMC-LaundryService/internal/api/handlers/find_bookings_by_phone"
	getBookingHandler "github.com/m04kA/SMC-LaundryService/internal/api/handlers/get_booking"
	getFeaturedProductsHandler "github.com/m04kA/SMC-LaundryService/internal/api/handlers/get_featured_products"
	getProductHandler "github.com/m04kA/SMC-LaundryService/internal/api/handlers/get_product"
	getRecommendationsHandler "github.com/m04kA/SMC-LaundryService/internal/api/handlers/get_recommendations"
	getServiceRecommendationsHandler "github.com/m04kA/SMC-LaundryService/internal/api/handlers/get_service_recommendations"
	getStatsHandler "github.com/m04kA/SMC-LaundryService/internal/api/handlers/get_stats"
	healthHandler "github.com/m04kA/SMC-LaundryService/internal/api/handlers/health"
	listBookingsHandler "github.com/m04kA/SMC-LaundryService/internal/api/handlers/list_bookings"
	listProductsHandler "github.com/m04kA/SMC-LaundryService/internal/api/handlers/list_products"
	updateBookingStatusHandler "github.com/m04kA/SMC-LaundryService/internal/api/handlers/update_booking_status"
	"github.com/m04kA/SMC-LaundryService/internal/api/middleware"
	"github.com/m04kA/SMC-LaundryService/internal/config"
	bookingRepo "github.com/m04kA/SMC-LaundryService/internal/infra/storage/booking"
	productRepo "github.com/m04kA/SMC-LaundryService/internal/infra/storage/product"
	"github.com/m04kA/SMC-LaundryService/internal/integrations/paymentgateway"
	bookingsService "github.com/m04kA/SMC-LaundryService/internal/service/bookings"
	productsService "github.com/m04kA/SMC-LaundryService/internal/service/products"
	"github.com/m04kA/SMC-LaundryService/internal/service/recommendations"
	createBookingUC "github.com/m04kA/SMC-LaundryService/internal/usecase/create_booking"
	getRecommendationsUC "github.com/m04kA/SMC-LaundryService/internal/usecase/get_recommendations"
	"github.com/m04kA/SMC-LaundryService/pkg/dbmetrics"
	"github.com/m04kA/SMC-LaundryService/pkg/logger"
	"github.com/m04kA/SMC-LaundryService/pkg/metrics"
)

// appMetrics все метрики, которые использует сервис
type appMetrics interface {
	middleware.HTTPRecorder
	dbmetrics.Recorder
	recommendations.Metrics
	createBookingUC.Metrics
}

func main() {
	// Загружаем конфигурацию
	configPath := config.Path()
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-LaundryService...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var (
		metricsCollector *metrics.Metrics
		collector        appMetrics = metrics.Noop{}
	)
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		collector = metricsCollector
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории (с метриками или без)
	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, collector, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	bookingRepository := bookingRepo.NewRepository(executor)
	productRepository := productRepo.NewRepository(executor)

	// Платежный шлюз (опционально)
	var paymentClient createBookingUC.PaymentGatewayClient
	if cfg.Payment.Enabled {
		paymentClient = paymentgateway.NewClient(
			cfg.Payment.URL,
			cfg.Payment.ReturnURL,
			time.Duration(cfg.Payment.Timeout)*time.Second,
			log,
		)
		log.Info("Payment gateway client initialized (url=%s, timeout=%ds)", cfg.Payment.URL, cfg.Payment.Timeout)
	} else {
		log.Info("Payment gateway disabled, online bookings get paymentRequired flag only")
	}

	// Инициализируем сервисы
	recommendationEngine := recommendations.NewEngine(productRepository, collector, log)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		bookingsService.Options{
			StrictStatusTransitions: cfg.Booking.StrictStatusTransitions,
			DefaultPageSize:         cfg.Booking.DefaultPageSize,
			MaxPageSize:             cfg.Booking.MaxPageSize,
		},
		log,
	)
	productSvc := productsService.NewService(productRepository, log)

	if cfg.Booking.StrictStatusTransitions {
		log.Info("Strict status transitions enabled")
	}

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		recommendationEngine,
		paymentClient,
		collector,
		log,
	)
	getRecommendationsUseCase := getRecommendationsUC.NewUseCase(bookingRepository, recommendationEngine, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	findBookingsByPhone := findBookingsByPhoneHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getStats := getStatsHandler.NewHandler(bookingSvc, log)
	getRecommendations := getRecommendationsHandler.NewHandler(getRecommendationsUseCase, log)
	listProducts := listProductsHandler.NewHandler(productSvc, log)
	getProduct := getProductHandler.NewHandler(productSvc, log)
	getServiceRecommendations := getServiceRecommendationsHandler.NewHandler(productSvc, log)
	getFeaturedProducts := getFeaturedProductsHandler.NewHandler(productSvc, log)
	health := healthHandler.NewHandler(db)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestLogger(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(collector))
		r.Handle(cfg.Metrics.Path, metricsCollector.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// --- Заказы ---
	api.HandleFunc("/create-booking", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	api.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/phone/{phone}", findBookingsByPhone.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}", getBooking.Handle).Methods(http.MethodGet)
	api.HandleFunc("/bookings/{id}", deleteBooking.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/bookings/{id}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/stats", getStats.Handle).Methods(http.MethodGet)
	api.HandleFunc("/recommendations/{bookingId}", getRecommendations.Handle).Methods(http.MethodGet)

	// --- Каталог (только чтение) ---
	// Порядок важен: статические префиксы раньше /products/{id}
	api.HandleFunc("/products", listProducts.Handle).Methods(http.MethodGet)
	api.HandleFunc("/products/recommendations/{serviceType}", getServiceRecommendations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/products/featured/{kind}", getFeaturedProducts.Handle).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", getProduct.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
