package handlers

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vapextuc-storefront/internal/account"
	"vapextuc-storefront/internal/cart"
	"vapextuc-storefront/internal/catalog"
	"vapextuc-storefront/internal/middleware"
	"vapextuc-storefront/internal/models"
	"vapextuc-storefront/internal/notify"
	"vapextuc-storefront/internal/storage"
	"vapextuc-storefront/internal/wheel"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMessenger struct{}

func (stubMessenger) Open(destination, message string) (string, error) {
	return "https://wa.me/" + destination, nil
}

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	store := storage.NewMemory()
	recorder := &notify.Recorder{}
	provider := catalog.NewStatic(
		models.Product{ID: 1, Title: "Vapex One", Price: 15000, Category: "Descartables", Stock: 3, Flavor: "Menta"},
		models.Product{ID: 2, Title: "Vapex Max", Price: 22500, Category: "Descartables", Stock: 5, Flavor: "Uva"},
	)

	manager, err := cart.NewManager(store, provider, recorder, stubMessenger{}, cart.CheckoutOptions{
		Destination: "+5493813256714",
		StoreName:   "VapexTuc",
		SiteURL:     "https://vapextuc.netlify.app",
	})
	require.NoError(t, err)

	accounts := account.NewService(store)
	table := wheel.DefaultTable()
	wh := wheel.New(table, accounts, recorder,
		wheel.WithRand(rand.New(rand.NewSource(3))),
		wheel.WithTiming(10*time.Millisecond, 2*time.Millisecond),
	)
	renderer := wheel.NewRenderer(table, 500)
	sessionMW := middleware.NewSessionMiddleware(sessions.NewCookieStore([]byte("test-secret")))

	return NewRouter(
		NewCartHandler(manager, recorder),
		NewWheelHandler(wh, renderer, accounts, sessionMW, recorder),
	)
}

func do(t *testing.T, router *chi.Mux, method, path string, body any) (*httptest.ResponseRecorder, response) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return rec, resp
}

func TestCartEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rec, resp := do(t, router, http.MethodPost, "/cart/items", map[string]int{"id": 1})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, resp.Notifications, 1)
	assert.Equal(t, notify.LevelSuccess, resp.Notifications[0].Level)

	data, err := json.Marshal(resp.Data)
	require.NoError(t, err)
	var view cartView
	require.NoError(t, json.Unmarshal(data, &view))
	assert.Equal(t, 1, view.Badge.Count)
	require.Len(t, view.Modal.Rows, 1)
	assert.Equal(t, "$15.000 c/u", view.Modal.Rows[0].PriceTag)

	rec, _ = do(t, router, http.MethodPost, "/cart/items", map[string]int{"id": 99})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = do(t, router, http.MethodPut, "/cart/items/1", map[string]int{"quantity": 9})
	assert.Equal(t, http.StatusTooManyRequests, rec.Code, "quantity above stock is rejected")

	rec, resp = do(t, router, http.MethodPost, "/cart/checkout", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data, err = json.Marshal(resp.Data)
	require.NoError(t, err)
	var msg cart.CheckoutMessage
	require.NoError(t, json.Unmarshal(data, &msg))
	assert.Equal(t, 15000, msg.Total)
	assert.Contains(t, msg.Message, "TOTAL A PAGAR: $15.000")
	assert.Equal(t, "https://wa.me/+5493813256714", msg.URL)

	rec, _ = do(t, router, http.MethodDelete, "/cart/", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = do(t, router, http.MethodPost, "/cart/checkout", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "an empty cart cannot check out")
}

func TestWheelEndpoints(t *testing.T) {
	router := newTestRouter(t)

	t.Run("spin requires login", func(t *testing.T) {
		rec, _ := do(t, router, http.MethodPost, "/wheel/spin", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("register rejects bad domains", func(t *testing.T) {
		rec, _ := do(t, router, http.MethodPost, "/wheel/register",
			models.RegisterRequest{Name: "Ana", Email: "ana@yahoo.com", Password: "secret1"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("register then spin", func(t *testing.T) {
		rec, resp := do(t, router, http.MethodPost, "/wheel/register",
			models.RegisterRequest{Name: "Ana", Email: "ana@gmail.com", Password: "secret1"})
		require.Equal(t, http.StatusCreated, rec.Code)

		data, err := json.Marshal(resp.Data)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "password", "hashes never leave the store")

		rec, resp = do(t, router, http.MethodPost, "/wheel/spin", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		data, err = json.Marshal(resp.Data)
		require.NoError(t, err)
		var result wheel.SpinResult
		require.NoError(t, json.Unmarshal(data, &result))
		assert.NotEmpty(t, result.Prize.Name)
		assert.Less(t, result.Angle, 0.0)
	})

	t.Run("cooldown blocks the next spin", func(t *testing.T) {
		rec, _ := do(t, router, http.MethodPost, "/wheel/spin", nil)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)

		rec, resp := do(t, router, http.MethodGet, "/wheel/countdown", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		data, err := json.Marshal(resp.Data)
		require.NoError(t, err)
		var remaining wheel.Remaining
		require.NoError(t, json.Unmarshal(data, &remaining))
		assert.False(t, remaining.Done)
		assert.Equal(t, 71, remaining.Hours)
	})

	t.Run("wheel state reflects the account", func(t *testing.T) {
		rec, resp := do(t, router, http.MethodGet, "/wheel/", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		data, err := json.Marshal(resp.Data)
		require.NoError(t, err)
		var view wheelView
		require.NoError(t, json.Unmarshal(data, &view))
		require.NotNil(t, view.Account)
		assert.Equal(t, "ana@gmail.com", view.Account.Email)
		assert.False(t, view.CanSpin)
		assert.Len(t, view.Prizes, 4)
		assert.Len(t, view.DisplayPrizes, 7)
		assert.Len(t, view.Layout.Segments, 4)
		require.Len(t, view.Account.SpinHistory, 1)
	})

	t.Run("logout", func(t *testing.T) {
		rec, _ := do(t, router, http.MethodPost, "/wheel/logout", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec, _ = do(t, router, http.MethodPost, "/wheel/spin", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
