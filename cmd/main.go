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

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/mediana/WHX-BookingService/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/mediana/WHX-BookingService/internal/api/handlers/delete_booking"
	exportBookingsHandler "github.com/mediana/WHX-BookingService/internal/api/handlers/export_bookings"
	getAvailableSlotsHandler "github.com/mediana/WHX-BookingService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/mediana/WHX-BookingService/internal/api/handlers/get_booking"
	getBookingsByEmailHandler "github.com/mediana/WHX-BookingService/internal/api/handlers/get_bookings_by_email"
	getEventHandler "github.com/mediana/WHX-BookingService/internal/api/handlers/get_event"
	listBookingsHandler "github.com/mediana/WHX-BookingService/internal/api/handlers/list_bookings"
	updateBookingHandler "github.com/mediana/WHX-BookingService/internal/api/handlers/update_booking"
	"github.com/mediana/WHX-BookingService/internal/api/middleware"
	"github.com/mediana/WHX-BookingService/internal/config"
	"github.com/mediana/WHX-BookingService/internal/domain"
	"github.com/mediana/WHX-BookingService/internal/infra/kvstore"
	fileStore "github.com/mediana/WHX-BookingService/internal/infra/kvstore/file"
	postgresStore "github.com/mediana/WHX-BookingService/internal/infra/kvstore/postgres"
	redisStore "github.com/mediana/WHX-BookingService/internal/infra/kvstore/redis"
	bookingRepo "github.com/mediana/WHX-BookingService/internal/infra/storage/booking"
	mailServiceClient "github.com/mediana/WHX-BookingService/internal/integrations/mailservice"
	bookingsService "github.com/mediana/WHX-BookingService/internal/service/bookings"
	notifierService "github.com/mediana/WHX-BookingService/internal/service/notifier"
	createBookingUC "github.com/mediana/WHX-BookingService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/mediana/WHX-BookingService/internal/usecase/get_available_slots"
	"github.com/mediana/WHX-BookingService/pkg/logger"
	"github.com/mediana/WHX-BookingService/pkg/metrics"
	"github.com/mediana/WHX-BookingService/pkg/slotlock"
	"github.com/mediana/WHX-BookingService/pkg/storemetrics"
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

	log.Info("Starting WHX-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Конфигурация выставки
	event, err := cfg.Event.ToDomain()
	if err != nil {
		log.Fatal("Failed to build event configuration: %v", err)
	}
	log.Info("Event configured: name=%s, days=%d", event.Name, len(event.Days))

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// Подключаемся к хранилищу состояния
	var store kvstore.Store
	switch cfg.Storage.Driver {
	case "file":
		store, err = fileStore.NewStore(cfg.Storage.File.Dir)
		if err != nil {
			log.Fatal("Failed to open file store at %s: %v", cfg.Storage.File.Dir, err)
		}
		log.Info("Using file storage: dir=%s", cfg.Storage.File.Dir)

	case "redis":
		store, err = redisStore.NewStore(startupCtx, cfg.Storage.Redis.Addr, cfg.Storage.Redis.Password, cfg.Storage.Redis.DB)
		if err != nil {
			log.Fatal("Failed to connect to redis at %s: %v", cfg.Storage.Redis.Addr, err)
		}
		log.Info("Using redis storage: addr=%s, db=%d", cfg.Storage.Redis.Addr, cfg.Storage.Redis.DB)

	case "postgres":
		db, dbErr := sql.Open("postgres", cfg.Storage.Postgres.DSN())
		if dbErr != nil {
			log.Fatal("Failed to connect to database: %v", dbErr)
		}

		db.SetMaxOpenConns(cfg.Storage.Postgres.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Storage.Postgres.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Storage.Postgres.ConnMaxLifetime) * time.Second)

		store, err = postgresStore.NewStore(startupCtx, db)
		if err != nil {
			log.Fatal("Failed to initialize postgres store: %v", err)
		}
		log.Info("Using postgres storage: host=%s, port=%d, db=%s",
			cfg.Storage.Postgres.Host, cfg.Storage.Postgres.Port, cfg.Storage.Postgres.DBName)
	}
	defer store.Close()

	if cfg.Metrics.Enabled {
		store = storemetrics.Wrap(store, metricsCollector, cfg.Storage.Driver)
		log.Info("Storage metrics collection started")
	}

	// Инициализируем репозиторий бронирований
	bookingRepository, err := bookingRepo.NewRepository(startupCtx, store, domain.StorageKey)
	if err != nil {
		// Поврежденное состояние не валит сервис: стартуем с пустой
		// коллекцией, но след остается в логах
		if errors.Is(err, bookingRepo.ErrCorruptedData) {
			log.Error("Stored booking state is corrupted, starting with empty collection: %v", err)
		} else {
			log.Fatal("Failed to initialize booking repository: %v", err)
		}
	}
	log.Info("Booking repository initialized: key=%s", domain.StorageKey)

	// Инициализируем сервис отправки подтверждений (если включен)
	var confirmationNotifier createBookingUC.ConfirmationNotifier
	var notifierSvc *notifierService.Service
	if cfg.Mail.Enabled {
		mailClient := mailServiceClient.NewClient(
			cfg.Mail.URL,
			time.Duration(cfg.Mail.Timeout)*time.Second,
			log,
		)
		notifierSvc = notifierService.NewService(mailClient, cfg.Mail.QueueSize, log)
		confirmationNotifier = notifierSvc
		log.Info("Confirmation notifier enabled: url=%s, queue_size=%d", cfg.Mail.URL, cfg.Mail.QueueSize)
	} else {
		log.Info("Confirmation notifier disabled")
	}

	// Сериализация допуска бронирований: проверка и запись слота
	// выполняются атомарно
	admissionLock := slotlock.NewManager()

	// Счетчики бизнес-событий передаются только при включенных метриках
	var bookingMetrics createBookingUC.Metrics
	var adminMetrics bookingsService.Metrics
	if cfg.Metrics.Enabled {
		bookingMetrics = metricsCollector
		adminMetrics = metricsCollector
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, adminMetrics, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		event,
		admissionLock,
		confirmationNotifier,
		bookingMetrics,
		log,
	)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		bookingRepository,
		event,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getEvent := getEventHandler.NewHandler(event, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBooking := updateBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	exportBookings := exportBookingsHandler.NewHandler(bookingRepository, log)
	getBookingsByEmail := getBookingsByEmailHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
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
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Конфигурация выставки для формы бронирования
	api.HandleFunc("/event", getEvent.Handle).Methods(http.MethodGet)

	// Сетка слотов на дату
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Token header)
	// ============================================================

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token))

	// Список бронирований с фильтрами
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Выгрузка бронирований в CSV
	admin.HandleFunc("/bookings/export", exportBookings.Handle).Methods(http.MethodGet)

	// Бронирования по email посетителя
	admin.HandleFunc("/bookings/by-email", getBookingsByEmail.Handle).Methods(http.MethodGet)

	// Бронирование по ID
	admin.HandleFunc("/bookings/{id}", getBooking.Handle).Methods(http.MethodGet)

	// Частичное обновление бронирования
	admin.HandleFunc("/bookings/{id}", updateBooking.Handle).Methods(http.MethodPatch)

	// Удаление бронирования (освобождает слот)
	admin.HandleFunc("/bookings/{id}", deleteBooking.Handle).Methods(http.MethodDelete)

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

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Дожидаемся отправки уже поставленных в очередь подтверждений
	if notifierSvc != nil {
		notifierSvc.Close()
		log.Info("Confirmation notifier stopped")
	}

	log.Info("Server stopped gracefully")
}
