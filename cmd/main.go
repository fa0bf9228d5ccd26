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
	"github.com/redis/go-redis/v9"

	cancelAppointmentHandler "github.com/ndemina/Salon-AdminService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/ndemina/Salon-AdminService/internal/api/handlers/create_appointment"
	createClientHandler "github.com/ndemina/Salon-AdminService/internal/api/handlers/create_client"
	createStaffHandler "github.com/ndemina/Salon-AdminService/internal/api/handlers/create_staff"
	deleteClientHandler "github.com/ndemina/Salon-AdminService/internal/api/handlers/delete_client"
	deleteStaffHandler "github.com/ndemina/Salon-AdminService/internal/api/handlers/delete_staff"
	getAnalyticsSummaryHandler "github.com/ndemina/Salon-AdminService/internal/api/handlers/get_analytics_summary"
	getAppointmentHandler "github.com/ndemina/Salon-AdminService/internal/api/handlers/get_appointment"
	getAppointmentsHandler "github.com/ndemina/Salon-AdminService/internal/api/handlers/get_appointments"
	getBookingOptionsHandler "github.com/ndemina/Salon-AdminService/internal/api/handlers/get_booking_options"
	getClientHandler "github.com/ndemina/Salon-AdminService/internal/api/handlers/get_client"
	getClientsHandler "github.com/ndemina/Salon-AdminService/internal/api/handlers/get_clients"
	getConversationMessagesHandler "github.com/ndemina/Salon-AdminService/internal/api/handlers/get_conversation_messages"
	getServicesHandler "github.com/ndemina/Salon-AdminService/internal/api/handlers/get_services"
	getStaffHandler "github.com/ndemina/Salon-AdminService/internal/api/handlers/get_staff"
	liveInboxHandler "github.com/ndemina/Salon-AdminService/internal/api/handlers/live_inbox"
	recordInboundMessageHandler "github.com/ndemina/Salon-AdminService/internal/api/handlers/record_inbound_message"
	sendMessageHandler "github.com/ndemina/Salon-AdminService/internal/api/handlers/send_message"
	updateAppointmentStatusHandler "github.com/ndemina/Salon-AdminService/internal/api/handlers/update_appointment_status"
	updateClientHandler "github.com/ndemina/Salon-AdminService/internal/api/handlers/update_client"
	updateStaffHandler "github.com/ndemina/Salon-AdminService/internal/api/handlers/update_staff"
	"github.com/ndemina/Salon-AdminService/internal/api/middleware"
	"github.com/ndemina/Salon-AdminService/internal/config"
	appointmentRepo "github.com/ndemina/Salon-AdminService/internal/infra/storage/appointment"
	"github.com/ndemina/Salon-AdminService/internal/integrations/catalogcache"
	"github.com/ndemina/Salon-AdminService/internal/integrations/pushchannel"
	"github.com/ndemina/Salon-AdminService/internal/integrations/tablestore"
	analyticsService "github.com/ndemina/Salon-AdminService/internal/service/analytics"
	appointmentsService "github.com/ndemina/Salon-AdminService/internal/service/appointments"
	clientsService "github.com/ndemina/Salon-AdminService/internal/service/clients"
	conversationsService "github.com/ndemina/Salon-AdminService/internal/service/conversations"
	staffService "github.com/ndemina/Salon-AdminService/internal/service/staff"
	createAppointmentUC "github.com/ndemina/Salon-AdminService/internal/usecase/create_appointment"
	getBookingOptionsUC "github.com/ndemina/Salon-AdminService/internal/usecase/get_booking_options"
	"github.com/ndemina/Salon-AdminService/pkg/dbmetrics"
	"github.com/ndemina/Salon-AdminService/pkg/logger"
	"github.com/ndemina/Salon-AdminService/pkg/metrics"
	"github.com/ndemina/Salon-AdminService/pkg/simpletxmanager"
	"github.com/ndemina/Salon-AdminService/pkg/txmanager"
)

func main() {
	// Секреты (API-ключи хранилища и push-канала) приходят из окружения
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using environment as is")
	}

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

	log.Info("Starting Salon-AdminService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных (локальное хранилище записей)
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

	// Инициализируем клиент внешнего табличного хранилища
	tableClient := tablestore.NewClient(
		cfg.TableStore.URL,
		cfg.TableStore.APIKey(),
		tablestore.Tables{
			Services: cfg.TableStore.ServicesTable,
			Staff:    cfg.TableStore.StaffTable,
			Clients:  cfg.TableStore.ClientsTable,
			Messages: cfg.TableStore.MessagesTable,
			Revenue:  cfg.TableStore.RevenueTable,
		},
		time.Duration(cfg.TableStore.Timeout)*time.Second,
		log,
	)
	log.Info("Table store client initialized (url=%s, timeout=%ds)",
		cfg.TableStore.URL, cfg.TableStore.Timeout)

	// Каталог услуг и справочник сотрудников: напрямую или через Redis-кэш
	var catalog catalogcache.Source = tableClient
	var catalogCache *catalogcache.Cache

	if cfg.Cache.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Addr,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,
		})
		defer rdb.Close()

		catalogCache = catalogcache.New(
			tableClient,
			rdb,
			time.Duration(cfg.Cache.TTLSeconds)*time.Second,
			log,
		)
		catalog = catalogCache
		log.Info("Catalog cache enabled (redis=%s, ttl=%ds)", cfg.Cache.Addr, cfg.Cache.TTLSeconds)
	}

	// Клиент push-канала сообщений
	pushClient := pushchannel.NewClient(
		cfg.PushChannel.URL,
		cfg.PushChannel.APIKey(),
		time.Duration(cfg.PushChannel.Timeout)*time.Second,
		log,
	)
	log.Info("Push channel client initialized (url=%s, timeout=%ds)",
		cfg.PushChannel.URL, cfg.PushChannel.Timeout)

	// Инициализируем репозиторий записей (с метриками или без)
	var appointmentRepository *appointmentRepo.Repository

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Хаб подписчиков живой ленты входящих
	hub := conversationsService.NewHub(log)

	// Инициализируем сервисы
	appointmentSvc := appointmentsService.NewService(appointmentRepository, log)
	clientSvc := clientsService.NewService(tableClient, log)

	// Мутации справочника должны сбрасывать кэш каталога (если он включен)
	var staffCacheInvalidator staffService.CacheInvalidator
	if catalogCache != nil {
		staffCacheInvalidator = catalogCache
	}
	staffSvc := staffService.NewService(tableClient, staffCacheInvalidator, log)

	conversationSvc := conversationsService.NewService(tableClient, pushClient, hub, log)
	analyticsSvc := analyticsService.NewService(tableClient, log)

	// Инициализируем use cases
	getBookingOptionsUseCase := getBookingOptionsUC.NewUseCase(
		catalog,
		catalog,
		cfg.Booking.AlternativeWindowDays,
		log,
	)
	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		catalog,
		catalog,
		pushClient,
		txMgr,
		log,
	)

	// Инициализируем handlers
	getBookingOptions := getBookingOptionsHandler.NewHandler(getBookingOptionsUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentSvc, log)
	getAppointments := getAppointmentsHandler.NewHandler(appointmentSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentSvc, log)
	updateAppointmentStatus := updateAppointmentStatusHandler.NewHandler(appointmentSvc, log)
	getServices := getServicesHandler.NewHandler(catalog, log)
	getStaff := getStaffHandler.NewHandler(catalog, log)
	createStaff := createStaffHandler.NewHandler(staffSvc, log)
	updateStaff := updateStaffHandler.NewHandler(staffSvc, log)
	deleteStaff := deleteStaffHandler.NewHandler(staffSvc, log)
	getClients := getClientsHandler.NewHandler(clientSvc, log)
	getClient := getClientHandler.NewHandler(clientSvc, log)
	createClient := createClientHandler.NewHandler(clientSvc, log)
	updateClient := updateClientHandler.NewHandler(clientSvc, log)
	deleteClient := deleteClientHandler.NewHandler(clientSvc, log)
	getConversationMessages := getConversationMessagesHandler.NewHandler(conversationSvc, log)
	sendMessage := sendMessageHandler.NewHandler(conversationSvc, log)
	recordInboundMessage := recordInboundMessageHandler.NewHandler(conversationSvc, log)
	liveInbox := liveInboxHandler.NewHandler(hub, log)
	getAnalyticsSummary := getAnalyticsSummaryHandler.NewHandler(analyticsSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")

		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации, доступны виджету записи)
	// ============================================================

	// Каталог услуг и справочник сотрудников
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/staff", getStaff.Handle).Methods(http.MethodGet)

	// Варианты записи на услугу
	api.HandleFunc("/services/{serviceName}/booking-options",
		getBookingOptions.Handle).Methods(http.MethodGet)

	// Создание записи
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)

	// Входящие сообщения клиентов от push-канала
	api.HandleFunc("/webhooks/inbound-message", recordInboundMessage.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (панель администратора, требуют X-Admin-ID)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Записи ---
	protected.HandleFunc("/appointments", getAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{appointmentId}/status", updateAppointmentStatus.Handle).Methods(http.MethodPatch)

	// --- Справочник сотрудников ---
	protected.HandleFunc("/staff", createStaff.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/staff/{staffId}", updateStaff.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/staff/{staffId}", deleteStaff.Handle).Methods(http.MethodDelete)

	// --- Клиенты ---
	protected.HandleFunc("/clients", getClients.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/clients", createClient.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/clients/{clientId}", getClient.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{clientId}", updateClient.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/clients/{clientId}", deleteClient.Handle).Methods(http.MethodDelete)

	// --- Диалоги ---
	protected.HandleFunc("/conversations/{conversationId}/messages",
		getConversationMessages.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/conversations/{conversationId}/messages",
		sendMessage.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/inbox/live", liveInbox.Handle).Methods(http.MethodGet)

	// --- Аналитика ---
	protected.HandleFunc("/analytics/summary", getAnalyticsSummary.Handle).Methods(http.MethodGet)

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

	// Отключаем подписчиков живой ленты
	hub.Close()

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
