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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	approveTestimonialHandler "github.com/fisiovita/clinic-booking/internal/api/handlers/approve_testimonial"
	createBookingHandler "github.com/fisiovita/clinic-booking/internal/api/handlers/create_booking"
	createServiceHandler "github.com/fisiovita/clinic-booking/internal/api/handlers/create_service"
	deleteMessageHandler "github.com/fisiovita/clinic-booking/internal/api/handlers/delete_message"
	deleteServiceHandler "github.com/fisiovita/clinic-booking/internal/api/handlers/delete_service"
	deleteTestimonialHandler "github.com/fisiovita/clinic-booking/internal/api/handlers/delete_testimonial"
	getAvailabilityHandler "github.com/fisiovita/clinic-booking/internal/api/handlers/get_availability"
	getSettingsHandler "github.com/fisiovita/clinic-booking/internal/api/handlers/get_settings"
	listAllServicesHandler "github.com/fisiovita/clinic-booking/internal/api/handlers/list_all_services"
	listAllTestimonialsHandler "github.com/fisiovita/clinic-booking/internal/api/handlers/list_all_testimonials"
	listBookingsHandler "github.com/fisiovita/clinic-booking/internal/api/handlers/list_bookings"
	listMessagesHandler "github.com/fisiovita/clinic-booking/internal/api/handlers/list_messages"
	listServicesHandler "github.com/fisiovita/clinic-booking/internal/api/handlers/list_services"
	listTestimonialsHandler "github.com/fisiovita/clinic-booking/internal/api/handlers/list_testimonials"
	markMessageReadHandler "github.com/fisiovita/clinic-booking/internal/api/handlers/mark_message_read"
	submitContactHandler "github.com/fisiovita/clinic-booking/internal/api/handlers/submit_contact"
	submitTestimonialHandler "github.com/fisiovita/clinic-booking/internal/api/handlers/submit_testimonial"
	updateBookingStatusHandler "github.com/fisiovita/clinic-booking/internal/api/handlers/update_booking_status"
	updateServiceHandler "github.com/fisiovita/clinic-booking/internal/api/handlers/update_service"
	updateSettingsHandler "github.com/fisiovita/clinic-booking/internal/api/handlers/update_settings"
	"github.com/fisiovita/clinic-booking/internal/api/middleware"
	"github.com/fisiovita/clinic-booking/internal/config"
	bookingRepo "github.com/fisiovita/clinic-booking/internal/infra/storage/booking"
	catalogRepo "github.com/fisiovita/clinic-booking/internal/infra/storage/catalog"
	messageRepo "github.com/fisiovita/clinic-booking/internal/infra/storage/message"
	settingsRepo "github.com/fisiovita/clinic-booking/internal/infra/storage/settings"
	testimonialRepo "github.com/fisiovita/clinic-booking/internal/infra/storage/testimonial"
	notifierClient "github.com/fisiovita/clinic-booking/internal/integrations/notifier"
	bookingsService "github.com/fisiovita/clinic-booking/internal/service/bookings"
	catalogService "github.com/fisiovita/clinic-booking/internal/service/catalog"
	messagesService "github.com/fisiovita/clinic-booking/internal/service/messages"
	settingsService "github.com/fisiovita/clinic-booking/internal/service/settings"
	testimonialsService "github.com/fisiovita/clinic-booking/internal/service/testimonials"
	createBookingUC "github.com/fisiovita/clinic-booking/internal/usecase/create_booking"
	getAvailabilityUC "github.com/fisiovita/clinic-booking/internal/usecase/get_availability"
	"github.com/fisiovita/clinic-booking/pkg/dbmetrics"
	"github.com/fisiovita/clinic-booking/pkg/logger"
	"github.com/fisiovita/clinic-booking/pkg/metrics"
	"github.com/fisiovita/clinic-booking/pkg/simpletxmanager"
	"github.com/fisiovita/clinic-booking/pkg/txmanager"
)

// bookingRateLimit throttles public booking submissions per IP
const (
	bookingRateLimit       = 5
	bookingRateLimitWindow = time.Minute
)

func main() {
	// .env is optional, deployments may provide the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting clinic-booking...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Notification webhook, disabled when no URL is configured
	var notify createBookingUC.Notifier
	if cfg.Notifier.URL != "" {
		notify = notifierClient.NewClient(
			cfg.Notifier.URL,
			time.Duration(cfg.Notifier.Timeout)*time.Second,
			log,
		)
		log.Info("Notification webhook enabled (url=%s, timeout=%ds)", cfg.Notifier.URL, cfg.Notifier.Timeout)
	} else {
		notify = notifierClient.Noop{}
		log.Info("Notification webhook disabled")
	}

	// Repositories and transaction manager, with or without metrics
	var (
		bookingRepository     *bookingRepo.Repository
		settingsRepository    *settingsRepo.Repository
		catalogRepository     *catalogRepo.Repository
		messageRepository     *messageRepo.Repository
		testimonialRepository *testimonialRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		catalogRepository = catalogRepo.NewRepository(wrappedDB)
		messageRepository = messageRepo.NewRepository(wrappedDB)
		testimonialRepository = testimonialRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		catalogRepository = catalogRepo.NewRepository(db)
		messageRepository = messageRepo.NewRepository(db)
		testimonialRepository = testimonialRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Services
	settingsSvc := settingsService.NewService(settingsRepository, txMgr, log)
	catalogSvc := catalogService.NewService(catalogRepository, log)
	bookingsSvc := bookingsService.NewService(bookingRepository, txMgr, log)
	messagesSvc := messagesService.NewService(messageRepository, log)
	testimonialsSvc := testimonialsService.NewService(testimonialRepository, settingsSvc, log)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		settingsSvc,
		catalogSvc,
		notify,
		txMgr,
		log,
	)

	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(
		bookingRepository,
		settingsSvc,
		catalogSvc,
		log,
	)

	// Handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	listServices := listServicesHandler.NewHandler(catalogSvc, log)
	submitContact := submitContactHandler.NewHandler(messagesSvc, log)
	listTestimonials := listTestimonialsHandler.NewHandler(testimonialsSvc, log)
	submitTestimonial := submitTestimonialHandler.NewHandler(testimonialsSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingsSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingsSvc, log)
	listMessages := listMessagesHandler.NewHandler(messagesSvc, log)
	markMessageRead := markMessageReadHandler.NewHandler(messagesSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)
	listAllServices := listAllServicesHandler.NewHandler(catalogSvc, log)
	createService := createServiceHandler.NewHandler(catalogSvc, log)
	updateService := updateServiceHandler.NewHandler(catalogSvc, log)
	deleteService := deleteServiceHandler.NewHandler(catalogSvc, log)
	listAllTestimonials := listAllTestimonialsHandler.NewHandler(testimonialsSvc, log)
	approveTestimonial := approveTestimonialHandler.NewHandler(testimonialsSvc, log)
	deleteTestimonial := deleteTestimonialHandler.NewHandler(testimonialsSvc, log)
	deleteMessage := deleteMessageHandler.NewHandler(messagesSvc, log)

	// Router
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/booking/availability", getAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/services", listServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/testimonials", listTestimonials.Handle).Methods(http.MethodGet)
	api.HandleFunc("/testimonials", submitTestimonial.Handle).Methods(http.MethodPost)
	api.HandleFunc("/contact", submitContact.Handle).Methods(http.MethodPost)

	// Booking submission is rate limited per client IP
	limiter := middleware.NewRateLimiter(bookingRateLimit, bookingRateLimitWindow, log)
	api.Handle("/booking/request",
		limiter.Middleware(http.HandlerFunc(createBooking.Handle))).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (static bearer token)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token, log))

	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{id}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/messages", listMessages.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/messages/{id}/read", markMessageRead.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/messages/{id}", deleteMessage.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/services", listAllServices.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/services", createService.Handle).Methods(http.MethodPost)
	admin.HandleFunc("/services/{id}", updateService.Handle).Methods(http.MethodPut)
	admin.HandleFunc("/services/{id}", deleteService.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/testimonials", listAllTestimonials.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/testimonials/{id}/approve", approveTestimonial.Handle).Methods(http.MethodPatch)
	admin.HandleFunc("/testimonials/{id}", deleteTestimonial.Handle).Methods(http.MethodDelete)
	admin.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
