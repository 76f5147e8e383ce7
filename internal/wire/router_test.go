package wire_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hotel-booking/internal/adaptor"
	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/data/repository/mocks"
	"hotel-booking/internal/wire"
	"hotel-booking/pkg/utils"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const jwtSecret = "router-test-secret"

type envelope struct {
	Status  bool              `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

type fixture struct {
	router   http.Handler
	user     *mocks.UserRepository
	room     *mocks.RoomRepository
	booking  *mocks.BookingRepository
	order    *mocks.OrderRepository
	payment  *mocks.PaymentRepository
	feedback *mocks.FeedbackRepository
}

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func newFixture(t *testing.T, db adaptor.Pinger) *fixture {
	f := &fixture{
		user:     mocks.NewUserRepository(t),
		room:     mocks.NewRoomRepository(t),
		booking:  mocks.NewBookingRepository(t),
		order:    mocks.NewOrderRepository(t),
		payment:  mocks.NewPaymentRepository(t),
		feedback: mocks.NewFeedbackRepository(t),
	}

	repo := &repository.Repository{
		User:     f.user,
		Room:     f.room,
		Booking:  f.booking,
		Order:    f.order,
		Payment:  f.payment,
		Feedback: f.feedback,
		Support:  mocks.NewSupportRepository(t),
		Catalog:  mocks.NewCatalogRepository(t),
	}

	config := &utils.Config{
		App:       utils.AppConfig{AllowedOrigins: []string{"*"}},
		JWT:       utils.JWTConfig{Secret: jwtSecret, ExpiryHours: 168},
		Auth:      utils.AuthConfig{BcryptCost: bcrypt.MinCost},
		RateLimit: utils.RateLimitConfig{Enabled: true, Requests: 10, Window: time.Minute},
	}

	app := wire.Wiring(repo, wire.Infra{DB: db}, config, zap.NewNop())
	f.router = app.Router
	return f
}

func (f *fixture) do(t *testing.T, method, path, body, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

func aliceToken(t *testing.T) string {
	t.Helper()
	token, _, err := utils.GenerateToken(jwtSecret, time.Hour, utils.Identity{UserID: 42, Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)
	return token
}

func TestHealth(t *testing.T) {
	rec, env := newFixture(t, pinger{}).do(t, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Status)

	rec, env = newFixture(t, pinger{err: errors.New("down")}).do(t, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.False(t, env.Status)
}

func TestUnknownPath(t *testing.T) {
	rec, env := newFixture(t, nil).do(t, http.MethodGet, "/api/nowhere", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Status)
}

func TestMethodNotAllowed(t *testing.T) {
	f := newFixture(t, nil)

	tests := []struct {
		method string
		path   string
		allow  string
	}{
		{http.MethodPut, "/api/booking", "POST"},
		{http.MethodPut, "/api/bookings", "GET, POST"},
		{http.MethodGet, "/api/login", "POST"},
		{http.MethodPatch, "/api/room-service", "GET, POST, DELETE"},
		{http.MethodDelete, "/api/feedback", "GET, POST"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec, env := f.do(t, tt.method, tt.path, "", "")
			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
			assert.Equal(t, tt.allow, rec.Header().Get("Allow"))
			assert.False(t, env.Status)
		})
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	f := newFixture(t, nil)

	for _, route := range []struct{ method, path string }{
		{http.MethodPost, "/api/booking"},
		{http.MethodGet, "/api/bookings"},
		{http.MethodPost, "/api/bookings"},
		{http.MethodPost, "/api/room-service"},
		{http.MethodPost, "/api/payment"},
		{http.MethodGet, "/api/payments"},
		{http.MethodGet, "/api/user/profile"},
	} {
		rec, _ := f.do(t, route.method, route.path, "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, route.path)
	}
}

func TestRegister(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		f := newFixture(t, nil)
		f.user.On("FindByEmail", mock.Anything, "bob@example.com").Return(nil, nil)
		f.user.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).Run(func(args mock.Arguments) {
			args.Get(1).(*entity.User).ID = 7
		}).Return(nil)

		rec, env := f.do(t, http.MethodPost, "/api/register", `{"name":"Bob","email":"bob@example.com","password":"secret123"}`, "")
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.NotContains(t, string(env.Data), "password")
	})

	t.Run("duplicate", func(t *testing.T) {
		f := newFixture(t, nil)
		f.user.On("FindByEmail", mock.Anything, "bob@example.com").Return(&entity.User{Base: entity.Base{ID: 7}}, nil)

		rec, _ := f.do(t, http.MethodPost, "/api/register", `{"name":"Bob","email":"bob@example.com","password":"secret123"}`, "")
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		f := newFixture(t, nil)

		rec, env := f.do(t, http.MethodPost, "/api/register", `{"email":"bob@example.com"}`, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, env.Errors, "name")
		assert.Contains(t, env.Errors, "password")
	})

	t.Run("malformed body", func(t *testing.T) {
		f := newFixture(t, nil)

		rec, _ := f.do(t, http.MethodPost, "/api/register", `{"email":`, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLogin(t *testing.T) {
	hash, err := utils.HashPassword("secret123", bcrypt.MinCost)
	require.NoError(t, err)
	stored := &entity.User{Base: entity.Base{ID: 42}, Name: "Alice", Email: "alice@example.com", PasswordHash: hash}

	t.Run("issues token", func(t *testing.T) {
		f := newFixture(t, nil)
		f.user.On("FindByEmail", mock.Anything, "alice@example.com").Return(stored, nil)

		rec, env := f.do(t, http.MethodPost, "/api/login", `{"email":"alice@example.com","password":"secret123"}`, "")
		require.Equal(t, http.StatusOK, rec.Code)

		var data struct {
			Token string `json:"token"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))

		f.user.On("FindByID", mock.Anything, int64(42)).Return(stored, nil)
		rec, env = f.do(t, http.MethodGet, "/api/user/profile", "", data.Token)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(env.Data), `"email":"alice@example.com"`)
	})

	t.Run("unknown user", func(t *testing.T) {
		f := newFixture(t, nil)
		f.user.On("FindByEmail", mock.Anything, "ghost@example.com").Return(nil, nil)

		rec, _ := f.do(t, http.MethodPost, "/api/login", `{"email":"ghost@example.com","password":"secret123"}`, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newFixture(t, nil)
		f.user.On("FindByEmail", mock.Anything, "alice@example.com").Return(stored, nil)

		rec, _ := f.do(t, http.MethodPost, "/api/login", `{"email":"alice@example.com","password":"nope-nope"}`, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestCreateBooking(t *testing.T) {
	f := newFixture(t, nil)
	f.room.On("FindFirstByType", mock.Anything, entity.RoomTypeDeluxe).Return(&entity.Room{
		Base:          entity.Base{ID: 3},
		RoomNumber:    "201",
		RoomType:      entity.RoomTypeDeluxe,
		PricePerNight: decimal.NewFromInt(249),
	}, nil)
	f.booking.On("Create", mock.Anything, mock.AnythingOfType("*entity.Booking")).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Booking).ID = 10
	}).Return(nil)

	body := `{"room":"Deluxe Room","check_in":"2024-12-15","check_out":"2024-12-18","guests":2}`

	// /api/bookings accepts POST as well as GET
	for _, path := range []string{"/api/booking", "/api/bookings"} {
		t.Run(path, func(t *testing.T) {
			rec, env := f.do(t, http.MethodPost, path, body, aliceToken(t))
			require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

			var data struct {
				BookingID   int64           `json:"booking_id"`
				Nights      int             `json:"nights"`
				TotalAmount decimal.Decimal `json:"total_amount"`
			}
			require.NoError(t, json.Unmarshal(env.Data, &data))
			assert.Equal(t, int64(10), data.BookingID)
			assert.Equal(t, 3, data.Nights)
			assert.True(t, data.TotalAmount.Equal(decimal.NewFromInt(747)))
			assert.Contains(t, string(env.Data), `"total_amount":747`)
		})
	}
}

func TestCreateBooking_BadDates(t *testing.T) {
	f := newFixture(t, nil)

	for _, body := range []string{
		`{"room":"Deluxe Room","check_in":"2024-12-18","check_out":"2024-12-15","guests":2}`,
		`{"room":"Deluxe Room","check_in":"2024-12-15T10:00:00Z","check_out":"2024-12-15T20:00:00Z","guests":2}`,
	} {
		rec, _ := f.do(t, http.MethodPost, "/api/booking", body, aliceToken(t))
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestFeedback(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		f := newFixture(t, nil)
		f.feedback.On("Create", mock.Anything, mock.AnythingOfType("*entity.Feedback")).Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Feedback).ID = 1
		}).Return(nil)

		rec, env := f.do(t, http.MethodPost, "/api/feedback", `{"rating":5,"comment":"Lovely","category":"staff"}`, "")
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, string(env.Data), `"user_name":"Anonymous"`)
	})

	t.Run("named by token", func(t *testing.T) {
		f := newFixture(t, nil)
		f.feedback.On("Create", mock.Anything, mock.AnythingOfType("*entity.Feedback")).Return(nil)

		rec, env := f.do(t, http.MethodPost, "/api/feedback", `{"rating":4,"comment":"Nice","category":"rooms"}`, aliceToken(t))
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, string(env.Data), `"user_name":"Alice"`)
	})

	t.Run("rating out of range", func(t *testing.T) {
		f := newFixture(t, nil)

		rec, env := f.do(t, http.MethodPost, "/api/feedback", `{"rating":6,"comment":"Too good","category":"general"}`, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, env.Errors, "rating")
	})
}

func TestRoomServiceDeleteIsIdempotent(t *testing.T) {
	f := newFixture(t, nil)
	f.order.On("Delete", mock.Anything, int64(5), int64(42)).Return(int64(1), nil).Once()
	f.order.On("Delete", mock.Anything, int64(5), int64(42)).Return(int64(0), nil).Once()

	token := aliceToken(t)
	for i := 0; i < 2; i++ {
		rec, env := f.do(t, http.MethodDelete, "/api/room-service?order_id=5", "", token)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, env.Status)
	}
}

func TestRoomServiceListForbidden(t *testing.T) {
	f := newFixture(t, nil)

	rec, _ := f.do(t, http.MethodGet, "/api/room-service?user_id=7", "", aliceToken(t))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPaymentRejectsNonPositiveAmount(t *testing.T) {
	f := newFixture(t, nil)

	rec, _ := f.do(t, http.MethodPost, "/api/payment", `{"amount":0,"method":"card"}`, aliceToken(t))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStorageErrorsAreOpaque(t *testing.T) {
	f := newFixture(t, nil)
	f.feedback.On("FindAll", mock.Anything).Return(nil, errors.New(`pq: relation "feedback" does not exist`))

	rec, env := f.do(t, http.MethodGet, "/api/feedback", "", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "relation")
	assert.NotEmpty(t, env.Errors["error_id"])
}
