package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

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
	"github.com/m04kA/SMC-ConsultationService/internal/domain"
	"github.com/m04kA/SMC-ConsultationService/internal/infra/session"
	adminRepo "github.com/m04kA/SMC-ConsultationService/internal/infra/storage/admin"
	bookingRepo "github.com/m04kA/SMC-ConsultationService/internal/infra/storage/booking"
	authService "github.com/m04kA/SMC-ConsultationService/internal/service/auth"
	bookingsService "github.com/m04kA/SMC-ConsultationService/internal/service/bookings"
	"github.com/m04kA/SMC-ConsultationService/internal/service/notifications"
	scheduleService "github.com/m04kA/SMC-ConsultationService/internal/service/schedule"
	settingsService "github.com/m04kA/SMC-ConsultationService/internal/service/settings"
	createBookingUC "github.com/m04kA/SMC-ConsultationService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/m04kA/SMC-ConsultationService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-ConsultationService/pkg/keylock"
	"github.com/m04kA/SMC-ConsultationService/pkg/logger"
	"github.com/m04kA/SMC-ConsultationService/pkg/metrics"
	"github.com/m04kA/SMC-ConsultationService/pkg/ptr"
	"github.com/m04kA/SMC-ConsultationService/pkg/types"
)

const (
	cookieName    = "consultation_sid"
	adminEmail    = "admin@example.com"
	adminPassword = "correct-horse"
)

var now = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

type fixedTime struct{}

func (fixedTime) Now() time.Time { return now }

// ============================================================
// in-memory хранилища
// ============================================================

type bookingStore struct {
	mu       sync.Mutex
	nextID   int64
	bookings map[int64]*domain.Booking
}

func newBookingStore() *bookingStore {
	return &bookingStore{bookings: make(map[int64]*domain.Booking)}
}

func (s *bookingStore) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.bookings {
		if existing.IsActive() && existing.SlotKey() == b.SlotKey() {
			return nil, bookingRepo.ErrSlotTaken
		}
	}
	s.nextID++
	created := *b
	created.ID = s.nextID
	created.CreatedAt = now
	created.UpdatedAt = now
	s.bookings[created.ID] = &created
	out := created
	return &out, nil
}

func (s *bookingStore) GetActiveBySlot(_ context.Context, date time.Time, t types.TimeString) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bookings {
		if b.IsActive() && b.SlotKey() == domain.SlotKey(date, t) {
			out := *b
			return &out, nil
		}
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (s *bookingStore) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok || b.IsDeleted() {
		return nil, bookingRepo.ErrBookingNotFound
	}
	out := *b
	return &out, nil
}

func (s *bookingStore) List(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*domain.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		if b.IsDeleted() {
			continue
		}
		cp := *b
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *bookingStore) GetOccupiedTimes(_ context.Context, date time.Time) ([]types.TimeString, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []types.TimeString
	for _, b := range s.bookings {
		if b.IsActive() && types.FormatDate(b.Date) == types.FormatDate(date) {
			out = append(out, b.Time)
		}
	}
	return out, nil
}

func (s *bookingStore) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok || b.IsDeleted() {
		return nil, bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	out := *b
	return &out, nil
}

func (s *bookingStore) SoftDelete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok || b.IsDeleted() {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = domain.StatusCancelled
	b.DeletedAt = ptr.Ptr(now)
	return nil
}

// scheduleStore вторник 09:00-11:00, один консультант
type scheduleStore struct{}

func (scheduleStore) IsDateBlocked(context.Context, time.Time) (bool, error) { return false, nil }

func (scheduleStore) GetEntriesForDayOfWeek(_ context.Context, day int) ([]*domain.ScheduleEntry, error) {
	if day != 2 {
		return nil, nil
	}
	return []*domain.ScheduleEntry{{
		ID:             1,
		DayOfWeek:      2,
		StartTime:      "09:00",
		EndTime:        "11:00",
		ConsultantID:   ptr.Ptr(int64(1)),
		ConsultantName: ptr.Ptr("Ирина"),
		IsActive:       true,
	}}, nil
}

func (s scheduleStore) GetAllEntries(ctx context.Context) ([]*domain.ScheduleEntry, error) {
	return s.GetEntriesForDayOfWeek(ctx, 2)
}

func (scheduleStore) GetBlockedDates(context.Context) ([]*domain.BlockedDate, error) {
	return nil, nil
}

func (scheduleStore) AddBlockedDate(_ context.Context, b *domain.BlockedDate) (*domain.BlockedDate, error) {
	out := *b
	out.ID = 1
	return &out, nil
}

func (scheduleStore) RemoveBlockedDate(context.Context, int64) error { return nil }

type settingsStore struct{}

func (settingsStore) GetAll(context.Context) ([]*domain.Setting, error) {
	return []*domain.Setting{{Key: "slot_duration_minutes", Value: "60"}}, nil
}

func (settingsStore) Upsert(_ context.Context, key, value string) (*domain.Setting, error) {
	return &domain.Setting{Key: key, Value: value, UpdatedAt: now}, nil
}

type adminStore struct {
	mu     sync.Mutex
	admins map[string]*domain.AdminUser
}

func (s *adminStore) GetByEmail(_ context.Context, email string) (*domain.AdminUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.admins[email]
	if !ok {
		return nil, adminRepo.ErrAdminNotFound
	}
	return u, nil
}

func (s *adminStore) Create(_ context.Context, email, hash string) (*domain.AdminUser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.admins[email]; ok {
		return nil, adminRepo.ErrAdminExists
	}
	u := &domain.AdminUser{ID: int64(len(s.admins) + 1), Email: email, PasswordHash: hash}
	s.admins[email] = u
	return u, nil
}

type passTx struct{}

func (passTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubNotifier struct{}

func (stubNotifier) Dispatch(*domain.Booking, time.Duration) notifications.Result {
	return notifications.Result{EmailSent: true}
}

type okPinger struct{}

func (okPinger) PingContext(context.Context) error { return nil }

// ============================================================
// сборка приложения
// ============================================================

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	log := logger.NewNop()
	var m *metrics.Metrics

	bookings := newBookingStore()
	schedule := scheduleStore{}

	auth := authService.NewServiceWithCost(&adminStore{admins: map[string]*domain.AdminUser{}}, bcrypt.MinCost, log)
	_, err := auth.CreateAdmin(context.Background(), adminEmail, adminPassword)
	require.NoError(t, err)

	sessions := session.NewMemoryStore(time.Hour)
	cookie := handlers.SessionCookie{Name: cookieName, MaxAge: time.Hour}

	availability := getAvailableSlotsUC.NewUseCase(schedule, bookings, log).WithTimeProvider(fixedTime{})
	admission := createBookingUC.NewUseCase(
		bookings, availability, passTx{}, stubNotifier{}, keylock.New(), m, log,
		createBookingUC.Config{EnforceSchedule: true},
	).WithTimeProvider(fixedTime{})

	bookingSvc := bookingsService.NewService(bookings, log).WithTimeProvider(fixedTime{})
	scheduleSvc := scheduleService.NewService(schedule, log)
	settingsSvc := settingsService.NewService(settingsStore{}, log)

	h := api.Handlers{
		Health: healthHandler.NewHandler(okPinger{}, "test").Handle,

		CreateBooking:     createBookingHandler.NewHandler(admission, log).Handle,
		GetOccupiedTimes:  getOccupiedTimesHandler.NewHandler(bookingSvc, log).Handle,
		GetAvailableSlots: getAvailableSlotsHandler.NewHandler(availability, log).Handle,
		Login:             loginHandler.NewHandler(auth, sessions, cookie, log).Handle,
		Logout:            logoutHandler.NewHandler(sessions, cookie, log).Handle,
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

	router := api.NewRouter(h, api.Options{
		Router: []middleware.Middleware{middleware.HTTPMetrics(m)},
		API:    []middleware.Middleware{middleware.Sessions(sessions, cookieName, log)},
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

type client struct {
	t      *testing.T
	base   string
	cookie *http.Cookie
}

func (c *client) do(method, path string, body interface{}) *http.Response {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, c.base+path, &buf)
	require.NoError(c.t, err)
	req.Header.Set("Content-Type", "application/json")
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(c.t, err)
	c.t.Cleanup(func() { resp.Body.Close() })

	for _, ck := range resp.Cookies() {
		if ck.Name == cookieName {
			if ck.MaxAge < 0 {
				c.cookie = nil
			} else {
				c.cookie = ck
			}
		}
	}
	return resp
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func (c *client) login() {
	c.t.Helper()
	resp := c.do(http.MethodPost, "/api/auth/login", map[string]string{"email": adminEmail, "password": adminPassword})
	require.Equal(c.t, http.StatusOK, resp.StatusCode)
	require.NotNil(c.t, c.cookie)
}

func bookingBody(date, t string) map[string]string {
	return map[string]string{
		"date":     date,
		"time":     t,
		"fullName": "Анна Петрова",
		"email":    "anna@example.com",
		"phone":    "+7 900 123-45-67",
		"category": "applicant",
	}
}

// ============================================================
// тесты
// ============================================================

func TestCreateBooking_Statuses(t *testing.T) {
	srv := newServer(t)
	c := &client{t: t, base: srv.URL}

	resp := c.do(http.MethodPost, "/api/bookings", bookingBody("2025-06-10", "10:00"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created struct {
		Success bool `json:"success"`
		Booking struct {
			ID   int64  `json:"id"`
			Date string `json:"date"`
			Time string `json:"time"`
		} `json:"booking"`
		Notifications struct {
			Telegram bool `json:"telegram"`
			Email    bool `json:"email"`
		} `json:"notifications"`
	}
	decode(t, resp, &created)
	assert.True(t, created.Success)
	assert.Equal(t, "2025-06-10", created.Booking.Date)
	assert.Equal(t, "10:00", created.Booking.Time)
	assert.True(t, created.Notifications.Email)
	assert.False(t, created.Notifications.Telegram)

	t.Run("same slot gives 409", func(t *testing.T) {
		resp := c.do(http.MethodPost, "/api/bookings", bookingBody("2025-06-10", "10:00"))
		assert.Equal(t, http.StatusConflict, resp.StatusCode)

		var body handlers.ErrorResponse
		decode(t, resp, &body)
		assert.Equal(t, "Time slot already occupied", body.Error)
	})

	t.Run("invalid body gives 400 with fields", func(t *testing.T) {
		body := bookingBody("2025-06-10", "09:00")
		body["email"] = "not-an-email"
		body["category"] = "student"

		resp := c.do(http.MethodPost, "/api/bookings", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var errBody handlers.ErrorResponse
		decode(t, resp, &errBody)
		assert.Contains(t, errBody.Fields, "email")
		assert.Contains(t, errBody.Fields, "category")
	})

	t.Run("malformed json gives 400", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/bookings", strings.NewReader("{"))
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("booking appears in occupied times", func(t *testing.T) {
		resp := c.do(http.MethodGet, "/api/bookings/occupied/2025-06-10", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Date          string   `json:"date"`
			OccupiedTimes []string `json:"occupiedTimes"`
		}
		decode(t, resp, &body)
		assert.Equal(t, []string{"10:00"}, body.OccupiedTimes)
	})
}

func TestAvailableSlots(t *testing.T) {
	srv := newServer(t)
	c := &client{t: t, base: srv.URL}

	type slot struct {
		Time       string  `json:"time"`
		Consultant *string `json:"consultant"`
		Available  bool    `json:"available"`
	}
	var body struct {
		Date  string `json:"date"`
		Slots []slot `json:"slots"`
	}

	resp := c.do(http.MethodGet, "/api/schedule/available/2025-06-10", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decode(t, resp, &body)
	require.Len(t, body.Slots, 2)
	assert.Equal(t, "09:00", body.Slots[0].Time)
	assert.Equal(t, "10:00", body.Slots[1].Time)
	require.NotNil(t, body.Slots[0].Consultant)
	assert.Equal(t, "Ирина", *body.Slots[0].Consultant)

	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/api/bookings", bookingBody("2025-06-10", "09:00")).StatusCode)

	resp = c.do(http.MethodGet, "/api/schedule/available/2025-06-10", nil)
	decode(t, resp, &body)
	require.Len(t, body.Slots, 1)
	assert.Equal(t, "10:00", body.Slots[0].Time)

	t.Run("non-working day", func(t *testing.T) {
		resp := c.do(http.MethodGet, "/api/schedule/available/2025-06-11", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		decode(t, resp, &body)
		assert.Empty(t, body.Slots)
	})

	t.Run("bad date", func(t *testing.T) {
		resp := c.do(http.MethodGet, "/api/schedule/available/10-06-2025", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	srv := newServer(t)
	c := &client{t: t, base: srv.URL}

	routes := []struct{ method, path string }{
		{http.MethodGet, "/api/bookings"},
		{http.MethodGet, "/api/bookings/1"},
		{http.MethodDelete, "/api/bookings/1"},
		{http.MethodPut, "/api/bookings/1/status"},
		{http.MethodGet, "/api/bookings/1/calendar.ics"},
		{http.MethodGet, "/api/bookings/export.ics"},
		{http.MethodGet, "/api/schedule/all"},
		{http.MethodGet, "/api/schedule/blocked-dates"},
		{http.MethodPost, "/api/schedule/blocked-dates"},
		{http.MethodDelete, "/api/schedule/blocked-dates/1"},
		{http.MethodGet, "/api/settings"},
		{http.MethodPut, "/api/settings/booking_horizon_days"},
	}

	for _, rt := range routes {
		t.Run(rt.method+" "+rt.path, func(t *testing.T) {
			resp := c.do(rt.method, rt.path, nil)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

			var body map[string]string
			decode(t, resp, &body)
			assert.Equal(t, map[string]string{"error": "Unauthorized"}, body)
		})
	}
}

func TestLoginLogoutCheckCycle(t *testing.T) {
	srv := newServer(t)
	c := &client{t: t, base: srv.URL}

	type checkResponse struct {
		Authenticated bool `json:"authenticated"`
		User          *struct {
			Email string `json:"email"`
		} `json:"user"`
	}

	var check checkResponse
	decode(t, c.do(http.MethodGet, "/api/auth/check", nil), &check)
	assert.False(t, check.Authenticated)

	resp := c.do(http.MethodPost, "/api/auth/login", map[string]string{"email": adminEmail, "password": "wrong-password"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Nil(t, c.cookie)

	c.login()
	assert.True(t, c.cookie.HttpOnly)

	check = checkResponse{}
	decode(t, c.do(http.MethodGet, "/api/auth/check", nil), &check)
	assert.True(t, check.Authenticated)
	require.NotNil(t, check.User)
	assert.Equal(t, adminEmail, check.User.Email)

	assert.Equal(t, http.StatusOK, c.do(http.MethodGet, "/api/bookings", nil).StatusCode)

	stale := c.cookie
	assert.Equal(t, http.StatusOK, c.do(http.MethodPost, "/api/auth/logout", nil).StatusCode)
	assert.Nil(t, c.cookie)

	// старая cookie после выхода не действует
	c.cookie = stale
	assert.Equal(t, http.StatusUnauthorized, c.do(http.MethodGet, "/api/bookings", nil).StatusCode)

	check = checkResponse{}
	decode(t, c.do(http.MethodGet, "/api/auth/check", nil), &check)
	assert.False(t, check.Authenticated)
}

func TestDeleteBookingFreesSlot(t *testing.T) {
	srv := newServer(t)
	c := &client{t: t, base: srv.URL}
	c.login()

	var created struct {
		Booking struct {
			ID int64 `json:"id"`
		} `json:"booking"`
	}
	resp := c.do(http.MethodPost, "/api/bookings", bookingBody("2025-06-10", "10:00"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	decode(t, resp, &created)

	path := "/api/bookings/" + strconv.FormatInt(created.Booking.ID, 10)
	resp = c.do(http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stored struct {
		ID       int64  `json:"id"`
		Date     string `json:"date"`
		Time     string `json:"time"`
		Email    string `json:"email"`
		Category string `json:"category"`
		Status   string `json:"status"`
	}
	decode(t, resp, &stored)
	assert.Equal(t, created.Booking.ID, stored.ID)
	assert.Equal(t, "2025-06-10", stored.Date)
	assert.Equal(t, "10:00", stored.Time)
	assert.Equal(t, "anna@example.com", stored.Email)
	assert.Equal(t, "applicant", stored.Category)
	assert.Equal(t, "pending", stored.Status)

	resp = c.do(http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var deleted struct {
		Success bool `json:"success"`
		Deleted struct {
			ID int64 `json:"id"`
		} `json:"deleted"`
	}
	decode(t, resp, &deleted)
	assert.True(t, deleted.Success)
	assert.Equal(t, created.Booking.ID, deleted.Deleted.ID)

	assert.Equal(t, http.StatusNotFound, c.do(http.MethodGet, path, nil).StatusCode)
	assert.Equal(t, http.StatusNotFound, c.do(http.MethodDelete, path, nil).StatusCode)

	var list struct {
		Total int `json:"total"`
	}
	decode(t, c.do(http.MethodGet, "/api/bookings", nil), &list)
	assert.Equal(t, 0, list.Total)

	var slots struct {
		Slots []struct {
			Time string `json:"time"`
		} `json:"slots"`
	}
	decode(t, c.do(http.MethodGet, "/api/schedule/available/2025-06-10", nil), &slots)
	assert.Len(t, slots.Slots, 2)

	assert.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/api/bookings", bookingBody("2025-06-10", "10:00")).StatusCode)
}

func TestUpdateBookingStatus(t *testing.T) {
	srv := newServer(t)
	c := &client{t: t, base: srv.URL}
	c.login()

	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/api/bookings", bookingBody("2025-06-10", "10:00")).StatusCode)

	resp := c.do(http.MethodPut, "/api/bookings/1/status", map[string]string{"status": "confirmed"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body struct {
		Success bool `json:"success"`
		Booking struct {
			Status string `json:"status"`
		} `json:"booking"`
	}
	decode(t, resp, &body)
	assert.Equal(t, "confirmed", body.Booking.Status)

	assert.Equal(t, http.StatusBadRequest,
		c.do(http.MethodPut, "/api/bookings/1/status", map[string]string{"status": "archived"}).StatusCode)
	assert.Equal(t, http.StatusNotFound,
		c.do(http.MethodPut, "/api/bookings/42/status", map[string]string{"status": "confirmed"}).StatusCode)
}

func TestExportCalendar(t *testing.T) {
	srv := newServer(t)
	c := &client{t: t, base: srv.URL}
	c.login()

	require.Equal(t, http.StatusCreated, c.do(http.MethodPost, "/api/bookings", bookingBody("2025-06-10", "10:00")).StatusCode)

	resp := c.do(http.MethodGet, "/api/bookings/1/calendar.ics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/calendar")

	var buf bytes.Buffer
	_, err := buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	ics := buf.String()

	assert.True(t, strings.HasPrefix(ics, "BEGIN:VCALENDAR\r\n"))
	assert.Contains(t, ics, "PRODID:-//Consultation Booking//RU\r\n")
	assert.Contains(t, ics, "UID:booking-1@consultation.local\r\n")
	assert.Contains(t, ics, "SUMMARY:Консультация - Анна Петрова\r\n")
	assert.Contains(t, ics, "STATUS:TENTATIVE\r\n")
	assert.True(t, strings.HasSuffix(ics, "END:VCALENDAR\r\n"))

	resp = c.do(http.MethodGet, "/api/bookings/export.ics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	buf.Reset()
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(buf.String(), "BEGIN:VEVENT"))
}

func TestHealth(t *testing.T) {
	srv := newServer(t)
	c := &client{t: t, base: srv.URL}

	resp := c.do(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	decode(t, resp, &body)
	assert.Equal(t, "ok", body["status"])
}
