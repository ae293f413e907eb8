package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ConsultationService/internal/api/middleware"
)

// Handlers обработчики всех маршрутов сервиса
type Handlers struct {
	Health http.HandlerFunc

	// публичные
	CreateBooking     http.HandlerFunc
	GetOccupiedTimes  http.HandlerFunc
	GetAvailableSlots http.HandlerFunc
	Login             http.HandlerFunc
	Logout            http.HandlerFunc
	CheckAuth         http.HandlerFunc

	// администратор
	ListBookings        http.HandlerFunc
	GetBooking          http.HandlerFunc
	DeleteBooking       http.HandlerFunc
	UpdateBookingStatus http.HandlerFunc
	ExportBooking       http.HandlerFunc
	ExportBookings      http.HandlerFunc
	ListSchedules       http.HandlerFunc
	ListBlockedDates    http.HandlerFunc
	AddBlockedDate      http.HandlerFunc
	RemoveBlockedDate   http.HandlerFunc
	GetSettings         http.HandlerFunc
	UpdateSetting       http.HandlerFunc
}

// Options middleware и служебные эндпоинты роутера
type Options struct {
	// Router выполняются для каждого найденного маршрута (метрики знают шаблон пути)
	Router []middleware.Middleware
	// API выполняются только для /api
	API []middleware.Middleware
	// Login лимит неудачных попыток входа; nil выключает
	Login middleware.Middleware

	MetricsPath    string
	MetricsHandler http.Handler
}

// NewRouter собирает маршруты REST API
func NewRouter(h Handlers, opts Options) *mux.Router {
	r := mux.NewRouter()
	for _, m := range opts.Router {
		r.Use(mux.MiddlewareFunc(m))
	}

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	if opts.MetricsHandler != nil && opts.MetricsPath != "" {
		r.Handle(opts.MetricsPath, opts.MetricsHandler).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api").Subrouter()
	for _, m := range opts.API {
		api.Use(mux.MiddlewareFunc(m))
	}

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/bookings", h.CreateBooking).Methods(http.MethodPost)
	api.HandleFunc("/bookings/occupied/{date}", h.GetOccupiedTimes).Methods(http.MethodGet)
	api.HandleFunc("/schedule/available/{date}", h.GetAvailableSlots).Methods(http.MethodGet)

	login := http.Handler(h.Login)
	if opts.Login != nil {
		login = opts.Login(login)
	}
	api.Handle("/auth/login", login).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", h.Logout).Methods(http.MethodPost)
	api.HandleFunc("/auth/check", h.CheckAuth).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (сессия администратора)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.RequireAuth)

	// --- Записи ---
	protected.HandleFunc("/bookings", h.ListBookings).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/export.ics", h.ExportBookings).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id:[0-9]+}", h.GetBooking).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id:[0-9]+}", h.DeleteBooking).Methods(http.MethodDelete)
	protected.HandleFunc("/bookings/{id:[0-9]+}/status", h.UpdateBookingStatus).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{id:[0-9]+}/calendar.ics", h.ExportBooking).Methods(http.MethodGet)

	// --- Расписание ---
	protected.HandleFunc("/schedule/all", h.ListSchedules).Methods(http.MethodGet)
	protected.HandleFunc("/schedule/blocked-dates", h.ListBlockedDates).Methods(http.MethodGet)
	protected.HandleFunc("/schedule/blocked-dates", h.AddBlockedDate).Methods(http.MethodPost)
	protected.HandleFunc("/schedule/blocked-dates/{id:[0-9]+}", h.RemoveBlockedDate).Methods(http.MethodDelete)

	// --- Настройки ---
	protected.HandleFunc("/settings", h.GetSettings).Methods(http.MethodGet)
	protected.HandleFunc("/settings/{key}", h.UpdateSetting).Methods(http.MethodPut)

	return r
}
