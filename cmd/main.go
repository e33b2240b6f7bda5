package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	cancelBookingHandler "github.com/aimanhzq/Survey-BookingService/internal/api/handlers/cancel_booking"
	completeBookingHandler "github.com/aimanhzq/Survey-BookingService/internal/api/handlers/complete_booking"
	createBookingHandler "github.com/aimanhzq/Survey-BookingService/internal/api/handlers/create_booking"
	getDayScheduleHandler "github.com/aimanhzq/Survey-BookingService/internal/api/handlers/get_day_schedule"
	getMonthDensityHandler "github.com/aimanhzq/Survey-BookingService/internal/api/handlers/get_month_density"
	getSitesHandler "github.com/aimanhzq/Survey-BookingService/internal/api/handlers/get_sites"
	getSurveyorsHandler "github.com/aimanhzq/Survey-BookingService/internal/api/handlers/get_surveyors"
	getWeekUsageHandler "github.com/aimanhzq/Survey-BookingService/internal/api/handlers/get_week_usage"
	rescheduleBookingHandler "github.com/aimanhzq/Survey-BookingService/internal/api/handlers/reschedule_booking"
	"github.com/aimanhzq/Survey-BookingService/internal/api/middleware"
	"github.com/aimanhzq/Survey-BookingService/internal/config"
	"github.com/aimanhzq/Survey-BookingService/internal/domain"
	bookingStore "github.com/aimanhzq/Survey-BookingService/internal/infra/storage/booking"
	randomuserClient "github.com/aimanhzq/Survey-BookingService/internal/integrations/randomuser"
	surveyapiClient "github.com/aimanhzq/Survey-BookingService/internal/integrations/surveyapi"
	aggregationService "github.com/aimanhzq/Survey-BookingService/internal/service/aggregation"
	bookingsService "github.com/aimanhzq/Survey-BookingService/internal/service/bookings"
	scheduleService "github.com/aimanhzq/Survey-BookingService/internal/service/schedule"
	completeBookingUC "github.com/aimanhzq/Survey-BookingService/internal/usecase/complete_booking"
	createBookingUC "github.com/aimanhzq/Survey-BookingService/internal/usecase/create_booking"
	rescheduleBookingUC "github.com/aimanhzq/Survey-BookingService/internal/usecase/reschedule_booking"
	"github.com/aimanhzq/Survey-BookingService/pkg/logger"
	"github.com/aimanhzq/Survey-BookingService/pkg/metrics"
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

	log.Info("Starting Survey-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// In-memory хранилище бронирований: единственный источник правды
	// для статусов сетки в рамках сессии сервиса
	store := bookingStore.NewStore()

	// Инициализируем интеграционных клиентов
	var upstreamMetrics surveyapiClient.MetricsRecorder
	if metricsCollector != nil {
		upstreamMetrics = metricsCollector
	}
	surveyClient := surveyapiClient.NewClient(
		cfg.Upstream.BaseURL,
		cfg.Upstream.Token,
		time.Duration(cfg.Upstream.Timeout)*time.Second,
		log,
		upstreamMetrics,
	)
	profileClient := randomuserClient.NewClient(
		cfg.Surveyors.DirectoryURL,
		time.Duration(cfg.Surveyors.Timeout)*time.Second,
		time.Duration(cfg.Surveyors.CacheTTL)*time.Second,
		log,
	)
	log.Info("Integration clients initialized (SurveyAPI=%s timeout=%ds, ProfileDirectory=%s timeout=%ds)",
		cfg.Upstream.BaseURL, cfg.Upstream.Timeout, cfg.Surveyors.DirectoryURL, cfg.Surveyors.Timeout)

	// Общий мьютекс жизненного цикла: сериализует все check-then-act
	// операции над бронированиями, включая вызовы upstream
	lifecycleMu := &sync.Mutex{}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		store,
		surveyClient,
		profileClient,
		lifecycleMu,
		log,
	)
	scheduleSvc := scheduleService.NewService(store, log)
	aggregationSvc := aggregationService.NewService(store, log)

	// Гидратируем хранилище из upstream до приёма трафика
	today := time.Now().Format(domain.DateFormat)
	loadCtx, loadCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	loadResult, err := bookingSvc.Load(loadCtx, today)
	loadCancel()
	if err != nil {
		log.Fatal("Failed to hydrate booking store: %v", err)
	}
	log.Info("Booking store hydrated: surveys=%d, surveyors=%d, sites=%d",
		loadResult.Surveys, loadResult.Surveyors, loadResult.Sites)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		store,
		scheduleSvc,
		scheduleSvc,
		bookingSvc,
		surveyClient,
		lifecycleMu,
		log,
	)
	rescheduleBookingUseCase := rescheduleBookingUC.NewUseCase(
		store,
		scheduleSvc,
		bookingSvc,
		lifecycleMu,
		log,
	)
	completeBookingUseCase := completeBookingUC.NewUseCase(
		store,
		surveyClient,
		lifecycleMu,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	rescheduleBooking := rescheduleBookingHandler.NewHandler(rescheduleBookingUseCase, log)
	completeBooking := completeBookingHandler.NewHandler(completeBookingUseCase, log)
	getDaySchedule := getDayScheduleHandler.NewHandler(scheduleSvc, bookingSvc, log)
	getWeekUsage := getWeekUsageHandler.NewHandler(aggregationSvc, bookingSvc, log)
	getMonthDensity := getMonthDensityHandler.NewHandler(aggregationSvc, bookingSvc, log)
	getSites := getSitesHandler.NewHandler(bookingSvc, log)
	getSurveyors := getSurveyorsHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Ограничение частоты запросов по IP
	r.Use(middleware.RateLimit(rate.Limit(cfg.RateLimit.RPS), cfg.RateLimit.Burst))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Справочники ---
	api.HandleFunc("/sites", getSites.Handle).Methods(http.MethodGet)
	api.HandleFunc("/surveyors", getSurveyors.Handle).Methods(http.MethodGet)

	// --- Расписание ---
	// Дневная сетка статусов слотов
	api.HandleFunc("/schedule/day", getDaySchedule.Handle).Methods(http.MethodGet)

	// Недельная загрузка сюрвейеров
	api.HandleFunc("/schedule/week", getWeekUsage.Handle).Methods(http.MethodGet)

	// Месячная плотность бронирований
	api.HandleFunc("/schedule/month", getMonthDensity.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	// Создание бронирования
	api.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Отмена бронирования (локальная)
	api.HandleFunc("/bookings/cancel", cancelBooking.Handle).Methods(http.MethodPost)

	// Перенос бронирования на следующий свободный слот дня
	api.HandleFunc("/bookings/reschedule", rescheduleBooking.Handle).Methods(http.MethodPost)

	// Завершение обследования
	api.HandleFunc("/bookings/complete", completeBooking.Handle).Methods(http.MethodPost)

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

	log.Info("Server stopped gracefully")
}
