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
	"github.com/redis/go-redis/v9"

	createMenuItemHandler "github.com/xalexyi/prenotazioni-ai/internal/api/handlers/create_menu_item"
	createReservationHandler "github.com/xalexyi/prenotazioni-ai/internal/api/handlers/create_reservation"
	deleteMenuItemHandler "github.com/xalexyi/prenotazioni-ai/internal/api/handlers/delete_menu_item"
	deleteReservationHandler "github.com/xalexyi/prenotazioni-ai/internal/api/handlers/delete_reservation"
	deleteSpecialDayHandler "github.com/xalexyi/prenotazioni-ai/internal/api/handlers/delete_special_day"
	getReservationHandler "github.com/xalexyi/prenotazioni-ai/internal/api/handlers/get_reservation"
	getScheduleHandler "github.com/xalexyi/prenotazioni-ai/internal/api/handlers/get_schedule"
	listMenuHandler "github.com/xalexyi/prenotazioni-ai/internal/api/handlers/list_menu"
	listReservationsHandler "github.com/xalexyi/prenotazioni-ai/internal/api/handlers/list_reservations"
	replaceWeeklyHoursHandler "github.com/xalexyi/prenotazioni-ai/internal/api/handlers/replace_weekly_hours"
	replaceWeeklyHoursBulkHandler "github.com/xalexyi/prenotazioni-ai/internal/api/handlers/replace_weekly_hours_bulk"
	updateReservationStatusHandler "github.com/xalexyi/prenotazioni-ai/internal/api/handlers/update_reservation_status"
	updateSettingsHandler "github.com/xalexyi/prenotazioni-ai/internal/api/handlers/update_settings"
	upsertSpecialDayHandler "github.com/xalexyi/prenotazioni-ai/internal/api/handlers/upsert_special_day"
	validateReservationHandler "github.com/xalexyi/prenotazioni-ai/internal/api/handlers/validate_reservation"
	voiceActiveHandler "github.com/xalexyi/prenotazioni-ai/internal/api/handlers/voice_active"
	voiceInboundHandler "github.com/xalexyi/prenotazioni-ai/internal/api/handlers/voice_inbound"
	"github.com/xalexyi/prenotazioni-ai/internal/api/middleware"
	"github.com/xalexyi/prenotazioni-ai/internal/config"
	"github.com/xalexyi/prenotazioni-ai/internal/infra/callslots"
	menuRepo "github.com/xalexyi/prenotazioni-ai/internal/infra/storage/menu"
	reservationRepo "github.com/xalexyi/prenotazioni-ai/internal/infra/storage/reservation"
	scheduleRepo "github.com/xalexyi/prenotazioni-ai/internal/infra/storage/schedule"
	menuService "github.com/xalexyi/prenotazioni-ai/internal/service/menu"
	reservationsService "github.com/xalexyi/prenotazioni-ai/internal/service/reservations"
	rulesService "github.com/xalexyi/prenotazioni-ai/internal/service/rules"
	scheduleService "github.com/xalexyi/prenotazioni-ai/internal/service/schedule"
	voiceService "github.com/xalexyi/prenotazioni-ai/internal/service/voice"
	createReservationUC "github.com/xalexyi/prenotazioni-ai/internal/usecase/create_reservation"
	validateReservationUC "github.com/xalexyi/prenotazioni-ai/internal/usecase/validate_reservation"
	"github.com/xalexyi/prenotazioni-ai/pkg/logger"
	"github.com/xalexyi/prenotazioni-ai/pkg/metrics"
	"github.com/xalexyi/prenotazioni-ai/pkg/txmanager"
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

	log.Info("Starting prenotazioni-ai...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	if cfg.Metrics.Enabled {
		metricsCollector.StartPoolStats(db, cfg.Database.DBName, stopMetricsCh)
		log.Info("Database pool stats collection started")
	}

	// Подключаемся к Redis (лимит активных звонков)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to ping redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Address, cfg.Redis.DB)

	// Инициализируем репозитории
	scheduleRepository := scheduleRepo.NewRepository(db)
	reservationRepository := reservationRepo.NewRepository(db)
	menuRepository := menuRepo.NewRepository(db)

	txMgr := txmanager.NewTransactionManager(db)

	// Загрузчик правил - общий для движка проверки и голосового сервиса
	rulesLoader := rulesService.NewLoader(scheduleRepository, log)

	// Инициализируем use cases
	validateReservationUseCase := validateReservationUC.NewUseCase(rulesLoader, log)
	createReservationUseCase := createReservationUC.NewUseCase(
		rulesLoader,
		reservationRepository,
		txMgr,
		log,
	)

	// Инициализируем сервисы
	scheduleSvc := scheduleService.NewService(scheduleRepository, txMgr, log)
	reservationsSvc := reservationsService.NewService(reservationRepository, log)
	menuSvc := menuService.NewService(menuRepository, log)

	callLimiter := callslots.NewLimiter(
		redisClient,
		cfg.Voice.MaxActiveCalls,
		time.Duration(cfg.Voice.CallTTLMinutes)*time.Minute,
	)
	voiceSvc := voiceService.NewService(
		callLimiter,
		rulesLoader,
		createReservationUseCase,
		cfg.Voice.MaxActiveCalls,
		log,
	)

	// Инициализируем handlers
	validateReservation := validateReservationHandler.NewHandler(validateReservationUseCase, log)
	getSchedule := getScheduleHandler.NewHandler(scheduleSvc, log)
	replaceWeeklyHours := replaceWeeklyHoursHandler.NewHandler(scheduleSvc, log)
	replaceWeeklyHoursBulk := replaceWeeklyHoursBulkHandler.NewHandler(scheduleSvc, log)
	upsertSpecialDay := upsertSpecialDayHandler.NewHandler(scheduleSvc, log)
	deleteSpecialDay := deleteSpecialDayHandler.NewHandler(scheduleSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(scheduleSvc, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	listReservations := listReservationsHandler.NewHandler(reservationsSvc, log)
	getReservation := getReservationHandler.NewHandler(reservationsSvc, log)
	updateReservationStatus := updateReservationStatusHandler.NewHandler(reservationsSvc, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationsSvc, log)
	listMenu := listMenuHandler.NewHandler(menuSvc, log)
	createMenuItem := createMenuItemHandler.NewHandler(menuSvc, log)
	deleteMenuItem := deleteMenuItemHandler.NewHandler(menuSvc, log)
	voiceActive := voiceActiveHandler.NewHandler(voiceSvc, log)
	voiceInbound := voiceInboundHandler.NewHandler(voiceSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Проверка допустимости кандидата на бронь
	api.HandleFunc("/restaurants/{restaurantId}/validate",
		validateReservation.Handle).Methods(http.MethodGet)

	// Текущее расписание и настройки ресторана
	api.HandleFunc("/restaurants/{restaurantId}/schedule",
		getSchedule.Handle).Methods(http.MethodGet)

	// Меню ресторана
	api.HandleFunc("/restaurants/{restaurantId}/menu",
		listMenu.Handle).Methods(http.MethodGet)

	// Состояние голосовой линии
	api.HandleFunc("/voice/active/{restaurantId}",
		voiceActive.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют админский токен)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AdminAuth(cfg.Admin.Token))

	// --- Расписание ---
	// Полная замена окон одного дня недели
	protected.HandleFunc("/restaurants/{restaurantId}/weekly-hours/{weekday}",
		replaceWeeklyHours.Handle).Methods(http.MethodPut)

	// Полная замена всей недели
	protected.HandleFunc("/restaurants/{restaurantId}/weekly-hours",
		replaceWeeklyHoursBulk.Handle).Methods(http.MethodPut)

	// Особый день: перезапись и удаление
	protected.HandleFunc("/restaurants/{restaurantId}/special-days/{date}",
		upsertSpecialDay.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/restaurants/{restaurantId}/special-days/{date}",
		deleteSpecialDay.Handle).Methods(http.MethodDelete)

	// Настройки ресторана
	protected.HandleFunc("/restaurants/{restaurantId}/settings",
		updateSettings.Handle).Methods(http.MethodPatch)

	// --- Брони ---
	protected.HandleFunc("/restaurants/{restaurantId}/reservations",
		createReservation.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/restaurants/{restaurantId}/reservations",
		listReservations.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/restaurants/{restaurantId}/reservations/{reservationId}",
		getReservation.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/restaurants/{restaurantId}/reservations/{reservationId}/status",
		updateReservationStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/restaurants/{restaurantId}/reservations/{reservationId}",
		deleteReservation.Handle).Methods(http.MethodDelete)

	// --- Меню ---
	protected.HandleFunc("/restaurants/{restaurantId}/menu",
		createMenuItem.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/restaurants/{restaurantId}/menu/{itemId}",
		deleteMenuItem.Handle).Methods(http.MethodDelete)

	// --- Голосовой прием ---
	protected.HandleFunc("/voice/inbound",
		voiceInbound.Handle).Methods(http.MethodPost)

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

	log.Info("Server stopped gracefully")
}
