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

	addEmployeeHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/add_employee"
	adjustInventoryHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/adjust_inventory"
	assignHousekeepingHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/assign_housekeeping"
	cancelBookingHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/cancel_booking"
	cancelRoomServiceHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/cancel_room_service"
	checkInBookingHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/check_in_booking"
	checkOutBookingHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/check_out_booking"
	createBookingHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/create_booking"
	createRoomHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/create_room"
	createRoomServiceHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/create_room_service"
	deleteEmployeeHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/delete_employee"
	getAvailableRoomsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_available_rooms"
	getBookingHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_booking"
	getBookingBillHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_booking_bill"
	getDashboardStatsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_dashboard_stats"
	getEmployeesHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_employees"
	getGuestBookingsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_guest_bookings"
	getHousekeepingTasksHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_housekeeping_tasks"
	getInventoryHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_inventory"
	getOrdersHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_orders"
	getRoomServiceRequestsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_room_service_requests"
	getRoomsHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/get_rooms"
	occupancyReportHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/occupancy_report"
	placeOrderHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/place_order"
	revenueReportHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/revenue_report"
	updateEmployeeHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/update_employee"
	updateHousekeepingStatusHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/update_housekeeping_status"
	updateOrderStatusHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/update_order_status"
	updateRoomHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/update_room"
	updateRoomServiceStatusHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/update_room_service_status"
	updateRoomStatusHandler "github.com/m04kA/SMC-HotelService/internal/api/handlers/update_room_status"
	"github.com/m04kA/SMC-HotelService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelService/internal/config"
	bookingRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/booking"
	employeeRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/employee"
	housekeepingRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/housekeeping"
	inventoryRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/inventory"
	roomRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/room"
	roomServiceRepo "github.com/m04kA/SMC-HotelService/internal/infra/storage/roomservice"
	guestServiceClient "github.com/m04kA/SMC-HotelService/internal/integrations/guestservice"
	bookingsService "github.com/m04kA/SMC-HotelService/internal/service/bookings"
	inventoryService "github.com/m04kA/SMC-HotelService/internal/service/inventory"
	roomsService "github.com/m04kA/SMC-HotelService/internal/service/rooms"
	roomServiceService "github.com/m04kA/SMC-HotelService/internal/service/roomservice"
	staffService "github.com/m04kA/SMC-HotelService/internal/service/staff"
	createBookingUC "github.com/m04kA/SMC-HotelService/internal/usecase/create_booking"
	getAvailableRoomsUC "github.com/m04kA/SMC-HotelService/internal/usecase/get_available_rooms"
	occupancyReportUC "github.com/m04kA/SMC-HotelService/internal/usecase/occupancy_report"
	revenueReportUC "github.com/m04kA/SMC-HotelService/internal/usecase/revenue_report"
	"github.com/m04kA/SMC-HotelService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelService/pkg/logger"
	"github.com/m04kA/SMC-HotelService/pkg/metrics"
	"github.com/m04kA/SMC-HotelService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-HotelService/pkg/txmanager"
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

	log.Info("Starting SMC-HotelService...")
	log.Info("Configuration loaded from config.toml")

	// Таймзона отеля: все календарные даты считаются в ней
	location, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Failed to load hotel timezone: %v", err)
	}
	log.Info("Hotel timezone: %s", cfg.Booking.Timezone)

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

	// Инициализируем клиент GuestService
	guestClient := guestServiceClient.NewClient(
		cfg.GuestService.URL,
		time.Duration(cfg.GuestService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (GuestService=%s timeout=%ds)",
		cfg.GuestService.URL, cfg.GuestService.Timeout)

	// Интерфейс transaction manager (используется в use cases и сервисах)
	type TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
		DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	// Репозитории работают через общий интерфейс executor, поэтому
	// одинаково живут и на голом *sql.DB, и на обёртке с метриками
	var dbExecutor dbmetrics.DBExecutor

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		dbExecutor = wrappedDB
		txMgr = txmanager.NewTransactionManager(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		dbExecutor = db
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем репозитории
	roomRepository := roomRepo.NewRepository(dbExecutor)
	bookingRepository := bookingRepo.NewRepository(dbExecutor)
	employeeRepository := employeeRepo.NewRepository(dbExecutor)
	housekeepingRepository := housekeepingRepo.NewRepository(dbExecutor)
	inventoryRepository := inventoryRepo.NewRepository(dbExecutor)
	roomServiceRepository := roomServiceRepo.NewRepository(dbExecutor)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		roomRepository,
		roomServiceRepository,
		bookingsService.Config{
			CancellationNoticeHours: cfg.Booking.CancellationNoticeHours,
			TaxRate:                 cfg.Booking.TaxRate,
			RoomServiceCharge:       cfg.Booking.RoomServiceCharge,
			Location:                location,
		},
		log,
	)
	roomSvc := roomsService.NewService(
		roomRepository,
		bookingRepository,
		employeeRepository,
		inventoryRepository,
		log,
	)
	staffSvc := staffService.NewService(
		employeeRepository,
		housekeepingRepository,
		roomRepository,
		log,
	)
	inventorySvc := inventoryService.NewService(inventoryRepository, txMgr, log)
	roomServiceSvc := roomServiceService.NewService(roomServiceRepository, bookingRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		roomRepository,
		bookingRepository,
		guestClient,
		txMgr,
		location,
		log,
	)
	getAvailableRoomsUseCase := getAvailableRoomsUC.NewUseCase(roomRepository, log)
	occupancyReportUseCase := occupancyReportUC.NewUseCase(bookingRepository, roomRepository, txMgr, log)
	revenueReportUseCase := revenueReportUC.NewUseCase(bookingRepository, txMgr, log)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, location, log)
	getAvailableRooms := getAvailableRoomsHandler.NewHandler(getAvailableRoomsUseCase, location, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getBookingBill := getBookingBillHandler.NewHandler(bookingSvc, log)
	getGuestBookings := getGuestBookingsHandler.NewHandler(bookingSvc, log)
	checkInBooking := checkInBookingHandler.NewHandler(bookingSvc, log)
	checkOutBooking := checkOutBookingHandler.NewHandler(bookingSvc, log)
	getRooms := getRoomsHandler.NewHandler(roomSvc, log)
	createRoom := createRoomHandler.NewHandler(roomSvc, log)
	updateRoom := updateRoomHandler.NewHandler(roomSvc, log)
	updateRoomStatus := updateRoomStatusHandler.NewHandler(roomSvc, log)
	getDashboardStats := getDashboardStatsHandler.NewHandler(roomSvc, log)
	getEmployees := getEmployeesHandler.NewHandler(staffSvc, log)
	addEmployee := addEmployeeHandler.NewHandler(staffSvc, log)
	updateEmployee := updateEmployeeHandler.NewHandler(staffSvc, log)
	deleteEmployee := deleteEmployeeHandler.NewHandler(staffSvc, log)
	assignHousekeeping := assignHousekeepingHandler.NewHandler(staffSvc, location, log)
	getHousekeepingTasks := getHousekeepingTasksHandler.NewHandler(staffSvc, location, log)
	updateHousekeepingStatus := updateHousekeepingStatusHandler.NewHandler(staffSvc, log)
	getInventory := getInventoryHandler.NewHandler(inventorySvc, log)
	adjustInventory := adjustInventoryHandler.NewHandler(inventorySvc, log)
	getOrders := getOrdersHandler.NewHandler(inventorySvc, log)
	placeOrder := placeOrderHandler.NewHandler(inventorySvc, log)
	updateOrderStatus := updateOrderStatusHandler.NewHandler(inventorySvc, log)
	createRoomService := createRoomServiceHandler.NewHandler(roomServiceSvc, log)
	getRoomServiceRequests := getRoomServiceRequestsHandler.NewHandler(roomServiceSvc, log)
	cancelRoomService := cancelRoomServiceHandler.NewHandler(roomServiceSvc, log)
	updateRoomServiceStatus := updateRoomServiceStatusHandler.NewHandler(roomServiceSvc, log)
	occupancyReport := occupancyReportHandler.NewHandler(occupancyReportUseCase, location, log)
	revenueReport := revenueReportHandler.NewHandler(revenueReportUseCase, location, log)

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

	// Поиск свободных номеров на интервал дат
	api.HandleFunc("/rooms/available", getAvailableRooms.Handle).Methods(http.MethodGet)

	// Каталог номеров
	api.HandleFunc("/rooms", getRooms.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/check-in", checkInBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/check-out", checkOutBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId}/bill", getBookingBill.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/guests/{guestId}/bookings", getGuestBookings.Handle).Methods(http.MethodGet)

	// --- Рум-сервис ---
	protected.HandleFunc("/room-service", createRoomService.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/room-service", getRoomServiceRequests.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/room-service/{requestId}/cancel", cancelRoomService.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/room-service/{requestId}/status", updateRoomServiceStatus.Handle).Methods(http.MethodPatch)

	// --- Каталог номеров (админка) ---
	protected.HandleFunc("/rooms", createRoom.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/rooms/{roomId}", updateRoom.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/rooms/{roomId}/status", updateRoomStatus.Handle).Methods(http.MethodPatch)

	// --- Персонал и уборка ---
	protected.HandleFunc("/employees", getEmployees.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/employees", addEmployee.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/employees/{employeeId}", updateEmployee.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/employees/{employeeId}", deleteEmployee.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/housekeeping", assignHousekeeping.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/housekeeping", getHousekeepingTasks.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/housekeeping/{taskId}/status", updateHousekeepingStatus.Handle).Methods(http.MethodPatch)

	// --- Склад ---
	protected.HandleFunc("/inventory", getInventory.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/inventory/orders", placeOrder.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/inventory/orders", getOrders.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/inventory/orders/{orderId}/status", updateOrderStatus.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/inventory/{itemId}/quantity", adjustInventory.Handle).Methods(http.MethodPatch)

	// --- Отчеты и дашборд ---
	protected.HandleFunc("/reports/occupancy", occupancyReport.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/reports/revenue", revenueReport.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/dashboard/stats", getDashboardStats.Handle).Methods(http.MethodGet)

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
