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

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/m04kA/SMC-ConsultationService/internal/api"
	"github.com/m04kA/SMC-ConsultationService/internal/api/handlers"
	addBlockedDateHandler "github.com/m04kA/SMC-ConsultationService/internal/api/handlers/add_blocked_date"
	"github.com/m04kA/SMC-ConsultationService/internal/api/handlers/check_auth"
	createBookingHandler "github.com/m04kA/SMC-ConsultationService/internal/api/handlers/create_booking"
	deleteBookingHandler "github.com/m04kA/SMC-ConsultationService/internal/api/handlers/delete_booking"
	exportBookingHandler "github.com/m04kA/SMC-ConsultationService/internal/api/handlers/export_booking"
	exportBookingsHandler "github.com/m04kA/SMC-ConsultationService/internal/api/handlers/export_bookings"
	getAvailableSlotsHandler "github.com/m04kA/SMC-ConsultationService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/SMC-ConsultationService/internal/api/handlers/get_booking"
	getOccupiedTimesHandler "github.com/m04kA/SMC-ConsultationService/internal/api/handlers/get_occupied_times"
	getSettingsHandler "github.com/m04kA/SMC-ConsultationService/internal/api/handlers/get_settings"
	healthHandler "github.com/m04kA/SMC-ConsultationService/internal/api/handlers/health"
	listBlockedDatesHandler "github.com/m04kA/SMC-ConsultationService/internal/api/handlers/list_blocked_dates"
	listBookingsHandler "github.com/m04kA/SMC-ConsultationService/internal/api/handlers/list_bookings"
	listSchedulesHandler "github.com/m04kA/SMC-ConsultationService/internal/api/handlers/list_schedules"
	loginHandler "github.com/m04kA/SMC-ConsultationService/internal/api/handlers/login"
	logoutHandler "github.com/m04kA/SMC-ConsultationService/internal/api/handlers/logout"
	removeBlockedDateHandler "github.com/m04kA/SMC-ConsultationService/internal/api/handlers/remove_blocked_date"
	updateBookingStatusHandler "github.com/m04kA/SMC-ConsultationService/internal/api/handlers/update_booking_status"
	updateSettingHandler "github.com/m04kA/SMC-ConsultationService/internal/api/handlers/update_setting"
	"github.com/m04kA/SMC-ConsultationService/internal/api/middleware"
	"github.com/m04kA/SMC-ConsultationService/internal/config"
	"github.com/m04kA/SMC-ConsultationService/internal/infra/ratelimit"
	"github.com/m04kA/SMC-ConsultationService/internal/infra/session"
	adminRepo "github.com/m04kA/SMC-ConsultationService/internal/infra/storage/admin"
	bookingRepo "github.com/m04kA/SMC-ConsultationService/internal/infra/storage/booking"
	scheduleRepo "github.com/m04kA/SMC-ConsultationService/internal/infra/storage/schedule"
	settingsRepo "github.com/m04kA/SMC-ConsultationService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-ConsultationService/internal/integrations/resend"
	"github.com/m04kA/SMC-ConsultationService/internal/integrations/telegram"
	authService "github.com/m04kA/SMC-ConsultationService/internal/service/auth"
	bookingsService "github.com/m04kA/SMC-ConsultationService/internal/service/bookings"
	"github.com/m04kA/SMC-ConsultationService/internal/service/notifications"
	scheduleService "github.com/m04kA/SMC-ConsultationService/internal/service/schedule"
	settingsService "github.com/m04kA/SMC-ConsultationService/internal/service/settings"
	createBookingUC "github.com/m04kA/SMC-ConsultationService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-ConsultationService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-ConsultationService/migrations"
	"github.com/m04kA/SMC-ConsultationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ConsultationService/pkg/keylock"
	"github.com/m04kA/SMC-ConsultationService/pkg/logger"
	"github.com/m04kA/SMC-ConsultationService/pkg/metrics"
	"github.com/m04kA/SMC-ConsultationService/pkg/tracing"
	"github.com/m04kA/SMC-ConsultationService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.NewWithFormat(cfg.Logs.File, cfg.Logs.Level, cfg.Logs.Format)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting %s (env=%s)...", cfg.App.Name, cfg.App.Environment)

	// Трейсинг
	shutdownTracing, err := tracing.Setup(context.Background(), tracing.Config{
		Enabled:      cfg.Tracing.Enabled,
		ServiceName:  cfg.Metrics.ServiceName,
		OTLPEndpoint: cfg.Tracing.OTLPEndpoint,
		SampleRatio:  cfg.Tracing.SampleRatio,
	})
	if err != nil {
		log.Fatal("Failed to set up tracing: %v", err)
	}

	// Инициализируем метрики (если включены); nil-коллектор ничего не пишет
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

	if cfg.Database.AutoMigrate {
		if err := migrate(db); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Database migrations applied")
	}

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)

	// Репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	scheduleRepository := scheduleRepo.NewRepository(wrappedDB)
	settingsRepository := settingsRepo.NewRepository(wrappedDB)
	adminRepository := adminRepo.NewRepository(wrappedDB)
	txMgr := txmanager.NewTransactionManager(wrappedDB)

	// Сессии и лимитеры: Redis общий для инстансов, память для одного процесса
	var (
		sessionStore   session.Store
		generalLimiter middleware.Limiter
		loginLimiter   middleware.Limiter
	)
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis is unavailable at %s, rate limiting fails open: %v", cfg.Redis.Addr, err)
		}
		cancel()

		sessionStore = session.NewRedisStore(rdb, cfg.Session.TTL())
		generalLimiter = ratelimit.NewRedisLimiter(rdb, cfg.RateLimit.WindowDuration(), "rl:general")
		loginLimiter = ratelimit.NewRedisLimiter(rdb, cfg.RateLimit.WindowDuration(), "rl:login")
		log.Info("Sessions and rate limits stored in Redis (%s)", cfg.Redis.Addr)
	} else {
		sessionStore = session.NewMemoryStore(cfg.Session.TTL())
		generalLimiter = ratelimit.NewMemoryLimiter(cfg.RateLimit.WindowDuration())
		loginLimiter = ratelimit.NewMemoryLimiter(cfg.RateLimit.WindowDuration())
		log.Info("Sessions and rate limits stored in memory")
	}

	// Каналы уведомлений
	chatClient, err := telegram.NewClient(telegram.Config{
		BotToken: cfg.Notifications.Telegram.BotToken,
		ChatID:   cfg.Notifications.Telegram.ChatID,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize telegram client: %v", err)
	}
	emailClient := resend.NewClient(resend.Config{
		APIKey:     cfg.Notifications.Email.APIKey,
		BaseURL:    cfg.Notifications.Email.BaseURL,
		From:       cfg.Notifications.Email.From,
		AdminEmail: cfg.Notifications.Email.AdminEmail,
		Timeout:    time.Duration(cfg.Notifications.Email.Timeout) * time.Second,
	}, log)
	log.Info("Notification channels: telegram=%t, email=%t", chatClient.Enabled(), emailClient.Enabled())

	dispatcher := notifications.NewDispatcher(
		emailClient,
		chatClient,
		time.Duration(cfg.Notifications.Timeout)*time.Second,
		metricsCollector,
		log,
	)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)
	scheduleSvc := scheduleService.NewService(scheduleRepository, log)
	settingsSvc := settingsService.NewService(settingsRepository, log)
	authSvc := authService.NewService(adminRepository, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		scheduleRepository,
		bookingRepository,
		log,
	)

	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		getAvailableSlotsUseCase,
		txMgr,
		dispatcher,
		keylock.New(),
		metricsCollector,
		log,
		createBookingUC.Config{
			EnforceSchedule: cfg.Booking.EnforceSchedule,
			NotifyWait:      time.Duration(cfg.Notifications.ResponseWait) * time.Second,
		},
	)

	// Инициализируем handlers
	cookie := handlers.SessionCookie{
		Name:   cfg.Session.CookieName,
		MaxAge: cfg.Session.TTL(),
		Secure: cfg.Session.Secure,
	}

	h := api.Handlers{
		Health: healthHandler.NewHandler(db, cfg.App.Name).Handle,

		CreateBooking:     createBookingHandler.NewHandler(createBookingUseCase, log).Handle,
		GetOccupiedTimes:  getOccupiedTimesHandler.NewHandler(bookingSvc, log).Handle,
		GetAvailableSlots: getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log).Handle,
		Login:             loginHandler.NewHandler(authSvc, sessionStore, cookie, log).Handle,
		Logout:            logoutHandler.NewHandler(sessionStore, cookie, log).Handle,
		CheckAuth:         check_auth.Handle,

		ListBookings:        listBookingsHandler.NewHandler(bookingSvc, log).Handle,
		GetBooking:          getBookingHandler.NewHandler(bookingSvc, log).Handle,
		DeleteBooking:       deleteBookingHandler.NewHandler(bookingSvc, log).Handle,
		UpdateBookingStatus: updateBookingStatusHandler.NewHandler(bookingSvc, log).Handle,
		ExportBooking:       exportBookingHandler.NewHandler(bookingSvc, log).Handle,
		ExportBookings:      exportBookingsHandler.NewHandler(bookingSvc, log).Handle,
		ListSchedules:       listSchedulesHandler.NewHandler(scheduleSvc, log).Handle,
		ListBlockedDates:    listBlockedDatesHandler.NewHandler(scheduleSvc, log).Handle,
		AddBlockedDate:      addBlockedDateHandler.NewHandler(scheduleSvc, log).Handle,
		RemoveBlockedDate:   removeBlockedDateHandler.NewHandler(scheduleSvc, log).Handle,
		GetSettings:         getSettingsHandler.NewHandler(settingsSvc, log).Handle,
		UpdateSetting:       updateSettingHandler.NewHandler(settingsSvc, log).Handle,
	}

	opts := api.Options{
		Router: []middleware.Middleware{middleware.HTTPMetrics(metricsCollector)},
		API:    []middleware.Middleware{middleware.Sessions(sessionStore, cfg.Session.CookieName, log)},
	}
	if cfg.RateLimit.Enabled {
		opts.API = append(opts.API, middleware.RateLimit(
			generalLimiter, int64(cfg.RateLimit.GeneralLimit), "general", metricsCollector, log))
		opts.Login = middleware.LoginRateLimit(loginLimiter, int64(cfg.RateLimit.LoginLimit), metricsCollector, log)
		log.Info("Rate limiting enabled (general=%d, login=%d per %d min)",
			cfg.RateLimit.GeneralLimit, cfg.RateLimit.LoginLimit, cfg.RateLimit.Window)
	}
	if cfg.Metrics.Enabled {
		opts.MetricsPath = cfg.Metrics.Path
		opts.MetricsHandler = metricsCollector.Handler()
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	router := api.NewRouter(h, opts)

	trustedProxies, err := middleware.ParseTrustedProxies(cfg.Server.TrustedProxies)
	if err != nil {
		log.Fatal("Invalid server.trusted_proxies: %v", err)
	}

	// CORS и общие заголовки снаружи роутера, чтобы preflight не упирался в 405
	handler := middleware.Chain(router,
		middleware.RequestID,
		middleware.RealIP(trustedProxies),
		middleware.AccessLog(log),
		middleware.SecurityHeaders,
		middleware.CORS(middleware.CORSPolicy{
			AllowedOrigins:   cfg.Server.AllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
			AllowedHeaders:   []string{"Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           10 * time.Minute,
		}),
		middleware.BodyLimit(cfg.Server.MaxBodyBytes),
	)
	if cfg.Tracing.Enabled {
		handler = otelhttp.NewHandler(handler, cfg.Metrics.ServiceName)
		log.Info("Tracing enabled, exporting to %s", cfg.Tracing.OTLPEndpoint)
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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

	// Дожидаемся уведомлений, отправка которых уже началась
	if err := dispatcher.Wait(shutdownCtx); err != nil {
		log.Warn("Pending notifications were not delivered before shutdown: %v", err)
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("Failed to flush traces: %v", err)
	}

	log.Info("Server stopped gracefully")
}

// migrate применяет встроенные SQL-миграции
func migrate(db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}
	return goose.Up(db, ".")
}
