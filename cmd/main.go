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
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createAppointmentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/create_appointment"
	createVideoAppointmentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/create_video_appointment"
	getAppointmentHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_appointment"
	getAvailabilityHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_availability"
	getLocationHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_location"
	getServicesHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_services"
	getTimeSlotsHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/get_time_slots"
	saveAvailabilityHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/save_availability"
	updateAppointmentStatusHandler "github.com/m04kA/SMC-AppointmentService/internal/api/handlers/update_appointment_status"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/SMC-AppointmentService/internal/config"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/migrate"
	appointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/appointment"
	availabilityRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/availability"
	servicecatalogRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/servicecatalog"
	settingsRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/settings"
	videoappointmentRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/videoappointment"
	mailServiceClient "github.com/m04kA/SMC-AppointmentService/internal/integrations/mailservice"
	availabilityService "github.com/m04kA/SMC-AppointmentService/internal/service/availability"
	catalogService "github.com/m04kA/SMC-AppointmentService/internal/service/catalog"
	createAppointmentUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_appointment"
	createVideoAppointmentUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/create_video_appointment"
	getTimeSlotsUC "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_time_slots"
	"github.com/m04kA/SMC-AppointmentService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
	"github.com/m04kA/SMC-AppointmentService/pkg/metrics"
	"github.com/m04kA/SMC-AppointmentService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-AppointmentService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
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

	log.Info("Starting SMC-AppointmentService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
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

	// Применяем миграции (если включено)
	if cfg.Database.Migrate {
		migrator, err := migrate.NewMigrator(db, cfg.Database.MigrationsPath)
		if err != nil {
			log.Fatal("Failed to initialize migrator: %v", err)
		}
		if err := migrator.Run(context.Background()); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		version, err := migrator.Version(context.Background())
		if err != nil {
			log.Fatal("Failed to get migration version: %v", err)
		}
		log.Info("Migrations applied, schema version=%d", version)
	}

	// Инициализируем клиент почтового сервиса
	mailClient := mailServiceClient.NewClient(
		cfg.MailService.URL,
		time.Duration(cfg.MailService.Timeout)*time.Second,
		log,
	)
	log.Info("Mail service client initialized (url=%s, timeout=%ds)",
		cfg.MailService.URL, cfg.MailService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		appointmentRepository      *appointmentRepo.Repository
		videoAppointmentRepository *videoappointmentRepo.Repository
		serviceRepository          *servicecatalogRepo.Repository
		availabilityRepository     *availabilityRepo.Repository
		settingsRepository         *settingsRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		videoAppointmentRepository = videoappointmentRepo.NewRepository(wrappedDB)
		serviceRepository = servicecatalogRepo.NewRepository(wrappedDB)
		availabilityRepository = availabilityRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		videoAppointmentRepository = videoappointmentRepo.NewRepository(db)
		serviceRepository = servicecatalogRepo.NewRepository(db)
		availabilityRepository = availabilityRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	catalogSvc := catalogService.NewService(serviceRepository, log)
	availabilitySvc := availabilityService.NewService(availabilityRepository, txMgr, log)

	// Инициализируем use cases
	getTimeSlotsUseCase := getTimeSlotsUC.NewUseCase(
		settingsRepository,
		serviceRepository,
		availabilityRepository,
		appointmentRepository,
		videoAppointmentRepository,
		cfg.Booking.CalendarOwnerID,
		log,
	)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		serviceRepository,
		settingsRepository,
		mailClient,
		txMgr,
		log,
	)

	createVideoAppointmentUseCase := createVideoAppointmentUC.NewUseCase(
		videoAppointmentRepository,
		settingsRepository,
		mailClient,
		txMgr,
		cfg.MailService.ManagerRecipient,
		log,
	)

	// Инициализируем handlers
	getServices := getServicesHandler.NewHandler(catalogSvc, log)
	getTimeSlots := getTimeSlotsHandler.NewHandler(getTimeSlotsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	createVideoAppointment := createVideoAppointmentHandler.NewHandler(createVideoAppointmentUseCase, log)
	getLocation := getLocationHandler.NewHandler(settingsRepository, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentRepository, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentRepository, log)
	getAvailability := getAvailabilityHandler.NewHandler(availabilitySvc, log)
	saveAvailability := saveAvailabilityHandler.NewHandler(availabilitySvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Идентификатор запроса проставляется всем запросам
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (гостевая форма записи, без аутентификации)
	// ============================================================

	// Каталог активных услуг
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)

	// Доступные слоты на горизонте записи
	api.HandleFunc("/slots", getTimeSlots.Handle).Methods(http.MethodGet)

	// Создание заявки на запись
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Создание заявки на видеопродакшн
	api.HandleFunc("/video-appointments", createVideoAppointment.Handle).Methods(http.MethodPost)

	// Поиск записи по публичному номеру
	api.HandleFunc("/appointments/{reference}", getAppointment.Handle).Methods(http.MethodGet)

	// Адрес компании для гостевой формы
	api.HandleFunc("/location", getLocation.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Недельная доступность пользователя
	protected.HandleFunc("/users/{userId}/availability", getAvailability.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}/availability", saveAvailability.Handle).Methods(http.MethodPut)

	// Ручная смена статуса записи менеджером
	protected.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPut)

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

	log.Info("Server exited")
}
